// Package history persists chat messages in SQLite. The table is
// append-only; messages are never updated or deleted by the application.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Message is one persisted chat message.
type Message struct {
	ID        int64
	Role      string // "user" or "assistant"
	Content   string
	CreatedAt time.Time
}

// Store reads and appends chat messages.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save appends a message.
func (s *Store) Save(ctx context.Context, role, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (role, content) VALUES (?, ?)`, role, content)
	if err != nil {
		return fmt.Errorf("saving message: %w", err)
	}
	return nil
}

// Recent returns the latest limit messages in chronological order. The
// query fetches most-recent-first and the result is reversed for display.
func (s *Store) Recent(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent messages: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}

	// reverse newest-first to chronological
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// All returns every message in chronological order.
func (s *Store) All(ctx context.Context) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, created_at
		 FROM messages
		 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Clear removes all messages. Used by the chat /clear command.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("clearing messages: %w", err)
	}
	return nil
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading message rows: %w", err)
	}
	return messages, nil
}
