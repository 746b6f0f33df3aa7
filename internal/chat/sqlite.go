package chat

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	agent_id      INTEGER NOT NULL DEFAULT 0,
	creator       TEXT NOT NULL DEFAULT '',
	last_question TEXT NOT NULL DEFAULT '',
	updated_at    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_conversations_updated ON conversations(updated_at DESC);
`

// SQLiteStore keeps conversations in a local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: conn, now: time.Now}, nil
}

// ListConversations returns conversations, most recently updated first.
func (s *SQLiteStore) ListConversations(ctx context.Context) ([]Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, agent_id, creator, last_question, updated_at
		FROM conversations
		ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []Conversation
	for rows.Next() {
		var (
			conv    Conversation
			updated int64
		)
		if err := rows.Scan(&conv.ID, &conv.Name, &conv.AgentID, &conv.Creator, &conv.LastQuestion, &updated); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		if updated > 0 {
			conv.UpdatedAt = time.UnixMilli(updated)
		}
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

// RenameConversation sets the name of conversationID and bumps its update time.
func (s *SQLiteStore) RenameConversation(ctx context.Context, name, conversationID string) error {
	id := strings.TrimSpace(conversationID)
	if id == "" {
		return fmt.Errorf("rename conversation: id required")
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE conversations SET name = ?, updated_at = ? WHERE id = ?`,
		name, s.now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("rename conversation %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename conversation %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("rename conversation %s: %w", id, ErrNotFound)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
