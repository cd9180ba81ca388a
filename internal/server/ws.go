package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/campus-bot/internal/chat"
	"github.com/ziadkadry99/campus-bot/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	HasImage  bool   `json:"has_image"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type      string      `json:"type"` // "reply" or "error"
	SessionID string      `json:"session_id,omitempty"`
	Error     string      `json:"error,omitempty"`
	Reply     *chat.Reply `json:"reply,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWSError(conn, "", "invalid message format")
			continue
		}
		if req.Message == "" && !req.HasImage {
			s.sendWSError(conn, req.SessionID, "message is required")
			continue
		}

		reply, err := s.svc.Ask(r.Context(), req.SessionID, req.UserID, engine.Query{
			Text:     req.Message,
			HasImage: req.HasImage,
		})
		if err != nil {
			log.Printf("websocket chat failed: %v", err)
			s.sendWSError(conn, req.SessionID, "failed to answer")
			continue
		}

		if err := conn.WriteJSON(wsResponse{
			Type:      "reply",
			SessionID: reply.SessionID,
			Reply:     reply,
		}); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, sessionID, msg string) {
	if err := conn.WriteJSON(wsResponse{
		Type:      "error",
		SessionID: sessionID,
		Error:     msg,
	}); err != nil {
		log.Printf("websocket write: %v", err)
	}
}
