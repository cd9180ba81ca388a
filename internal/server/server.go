// Package server exposes the chat service and knowledge base over HTTP
// and WebSocket.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/campus-bot/internal/chat"
	"github.com/ziadkadry99/campus-bot/internal/knowledge"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the campus chatbot HTTP server.
type Server struct {
	cfg        Config
	svc        *chat.Service
	kb         *knowledge.Store
	sessions   *chat.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, svc *chat.Service, kb *knowledge.Store, sessions *chat.Store) *Server {
	s := &Server{
		cfg:      cfg,
		svc:      svc,
		kb:       kb,
		sessions: sessions,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		// WebSocket connections are long lived; the timeout covers the
		// plain HTTP API only.
		api.Use(middleware.Timeout(120 * time.Second))
		api.Post("/chat", s.handleChat)
		api.Get("/sessions/{id}/messages", s.handleSessionMessages)

		api.Route("/kb", func(kb chi.Router) {
			kb.Get("/", s.handleListEntries)
			kb.Post("/", s.handleCreateEntry)
			kb.Get("/{id}", s.handleGetEntry)
			kb.Put("/{id}", s.handleUpdateEntry)
			kb.Delete("/{id}", s.handleDeleteEntry)
		})
	})

	r.Get("/ws", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("campusbot server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
