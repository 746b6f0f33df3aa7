package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomicstack/chat-popup-control/internal/chat"
)

// RenameCall records a single RenameConversation invocation.
type RenameCall struct {
	Name           string
	ConversationID string
}

// FakeClient is an in-memory chat.Client that records every rename.
//
// When Gate is non-nil, renames block until it is closed or the request
// context ends, which lets tests observe the submitting state.
type FakeClient struct {
	RenameErr error
	ListErr   error
	Gate      chan struct{}

	mu            sync.Mutex
	conversations []chat.Conversation
	renames       []RenameCall
	started       chan struct{}
	closed        bool
}

// NewFakeClient returns a fake seeded with the given conversations.
func NewFakeClient(conversations ...chat.Conversation) *FakeClient {
	return &FakeClient{
		conversations: append([]chat.Conversation(nil), conversations...),
		started:       make(chan struct{}, 16),
	}
}

func (f *FakeClient) ListConversations(ctx context.Context) ([]chat.Conversation, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]chat.Conversation(nil), f.conversations...), nil
}

func (f *FakeClient) RenameConversation(ctx context.Context, name, conversationID string) error {
	f.mu.Lock()
	f.renames = append(f.renames, RenameCall{Name: name, ConversationID: conversationID})
	f.mu.Unlock()
	select {
	case f.started <- struct{}{}:
	default:
	}

	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.RenameErr != nil {
		return f.RenameErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.conversations {
		if f.conversations[i].ID == conversationID {
			f.conversations[i].Name = name
			return nil
		}
	}
	return fmt.Errorf("rename %s: %w", conversationID, chat.ErrNotFound)
}

func (f *FakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Renames returns a copy of every recorded rename call.
func (f *FakeClient) Renames() []RenameCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RenameCall(nil), f.renames...)
}

// Started exposes a signal sent each time a rename begins.
func (f *FakeClient) Started() <-chan struct{} {
	return f.started
}

func (f *FakeClient) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Conversation returns the current state of a stored conversation.
func (f *FakeClient) Conversation(id string) (chat.Conversation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, conv := range f.conversations {
		if conv.ID == id {
			return conv, true
		}
	}
	return chat.Conversation{}, false
}
