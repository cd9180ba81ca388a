package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/campus-bot/internal/db"
	"github.com/ziadkadry99/campus-bot/internal/escalate"
)

// Session is one user conversation.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageMeta carries answer metadata persisted next to a message.
type Message struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Source    string          `json:"source,omitempty"`
	EntryID   string          `json:"entry_id,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Links     []escalate.Link `json:"links,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists chat sessions and messages.
type Store struct {
	db *db.DB
}

// NewStore creates a chat store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateSession starts a new conversation for a user.
func (s *Store) CreateSession(ctx context.Context, userID, language string) (*Session, error) {
	if userID == "" {
		userID = "anonymous"
	}
	if language == "" {
		language = "en"
	}
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_sessions (id, user_id, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.UserID, sess.Language, sess.CreatedAt, sess.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// GetSession loads a session, or nil if absent.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, language, created_at FROM chat_sessions WHERE id = ?`, id)
	var sess Session
	err := row.Scan(&sess.ID, &sess.UserID, &sess.Language, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return &sess, nil
}

// AddMessage appends a message to a session.
func (s *Store) AddMessage(ctx context.Context, msg Message) (*Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	links, err := json.Marshal(msg.Links)
	if err != nil {
		return nil, fmt.Errorf("encoding links: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, session_id, role, content, source, entry_id, image_url, links, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Source,
		nullable(msg.EntryID), msg.ImageURL, string(links), msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}
	return &msg, nil
}

// RecentMessages returns the last limit messages of a session in
// chronological order.
func (s *Store) RecentMessages(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, role, content, source, COALESCE(entry_id, ''), image_url, links, created_at
		FROM chat_messages WHERE session_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var links string
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Source, &m.EntryID, &m.ImageURL, &links, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		if err := json.Unmarshal([]byte(links), &m.Links); err != nil {
			m.Links = nil
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
