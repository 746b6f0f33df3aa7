package chat

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a conversation id is unknown to the backend.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyName is returned when a rename is attempted with a blank name.
	ErrEmptyName = errors.New("conversation name required")
)

// Conversation is a named chat session owned by the backend.
type Conversation struct {
	ID           string
	Name         string
	AgentID      int
	Creator      string
	LastQuestion string
	UpdatedAt    time.Time
}

// Snapshot is the result of a single list poll.
type Snapshot struct {
	Conversations []Conversation
	FetchedAt     time.Time
}

type Lister interface {
	ListConversations(ctx context.Context) ([]Conversation, error)
}

// Renamer persists a new display name for a conversation.
type Renamer interface {
	RenameConversation(ctx context.Context, name, conversationID string) error
}

// Client is the full backend surface used by the popup.
type Client interface {
	Lister
	Renamer
	Close() error
}
