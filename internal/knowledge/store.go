// Package knowledge owns the curated question/answer entries the
// matching engine scores against.
package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/campus-bot/internal/db"
)

// Store provides CRUD access to knowledge entries in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new entry. A missing ID is generated; the entry is
// appended after all existing entries.
func (s *Store) Create(ctx context.Context, e Entry) (*Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if e.Answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	keywords, err := json.Marshal(e.Keywords)
	if err != nil {
		return nil, fmt.Errorf("encoding keywords: %w", err)
	}

	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO knowledge_entries (id, position, question, answer, category, image_url, keywords, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM knowledge_entries), ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Question, e.Answer, e.Category, e.ImageURL, string(keywords), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting entry: %w", err)
	}
	return &e, nil
}

// Get returns the entry with the given ID, or nil if absent.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, question, answer, category, image_url, keywords, created_at, updated_at
		FROM knowledge_entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading entry: %w", err)
	}
	return e, nil
}

// Update overwrites an existing entry's content fields.
func (s *Store) Update(ctx context.Context, e Entry) (*Entry, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("entry id is required")
	}
	keywords, err := json.Marshal(e.Keywords)
	if err != nil {
		return nil, fmt.Errorf("encoding keywords: %w", err)
	}

	e.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE knowledge_entries
		SET question = ?, answer = ?, category = ?, image_url = ?, keywords = ?, updated_at = ?
		WHERE id = ?`,
		e.Question, e.Answer, e.Category, e.ImageURL, string(keywords), e.UpdatedAt, e.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("entry %s not found", e.ID)
	}
	return &e, nil
}

// Delete removes an entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM knowledge_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// Snapshot returns every entry in stable insertion order as one
// consistent read. A query being scored works from a single snapshot
// even if the knowledge base is edited concurrently.
func (s *Store) Snapshot(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, answer, category, image_url, keywords, created_at, updated_at
		FROM knowledge_entries ORDER BY position, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM knowledge_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var keywords string
	err := row.Scan(&e.ID, &e.Question, &e.Answer, &e.Category, &e.ImageURL, &keywords, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keywords), &e.Keywords); err != nil {
		// Tolerate hand-edited rows; a broken keyword list should not
		// take the whole entry down.
		e.Keywords = nil
	}
	return &e, nil
}
