package chat

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "nested", "chat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func insertConversation(t *testing.T, store *SQLiteStore, id, name string, updated int64) {
	t.Helper()
	if _, err := store.db.Exec(
		`INSERT INTO conversations (id, name, agent_id, updated_at) VALUES (?, ?, 1, ?)`,
		id, name, updated,
	); err != nil {
		t.Fatalf("insert %s: %v", id, err)
	}
}

func TestSQLiteListOrdersByUpdate(t *testing.T) {
	store := openTestStore(t)
	insertConversation(t, store, "c1", "Q1 sales", 1000)
	insertConversation(t, store, "c2", "Ops", 3000)
	insertConversation(t, store, "c3", "Hiring", 0)

	conversations, err := store.ListConversations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(conversations) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(conversations))
	}
	if conversations[0].ID != "c2" || conversations[1].ID != "c1" || conversations[2].ID != "c3" {
		t.Fatalf("unexpected order: %#v", conversations)
	}
	if !conversations[2].UpdatedAt.IsZero() {
		t.Fatalf("expected zero time for unset updated_at")
	}
	if conversations[0].AgentID != 1 {
		t.Fatalf("expected agent id 1, got %d", conversations[0].AgentID)
	}
}

func TestSQLiteRenameUpdatesNameAndTimestamp(t *testing.T) {
	store := openTestStore(t)
	fixed := time.UnixMilli(5000)
	store.now = func() time.Time { return fixed }
	insertConversation(t, store, "c1", "Q1 sales", 1000)

	if err := store.RenameConversation(context.Background(), "Q1 review", "c1"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	conversations, err := store.ListConversations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if conversations[0].Name != "Q1 review" {
		t.Fatalf("expected renamed conversation, got %q", conversations[0].Name)
	}
	if !conversations[0].UpdatedAt.Equal(fixed) {
		t.Fatalf("expected updated_at %v, got %v", fixed, conversations[0].UpdatedAt)
	}
}

func TestSQLiteRenameUnknownConversation(t *testing.T) {
	store := openTestStore(t)
	err := store.RenameConversation(context.Background(), "name", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteRenameRejectsBlankName(t *testing.T) {
	store := openTestStore(t)
	insertConversation(t, store, "c1", "Q1 sales", 1000)
	if err := store.RenameConversation(context.Background(), "\t ", "c1"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestOpenSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := OpenSQLiteStore(" "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}
