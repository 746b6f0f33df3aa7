package state

import (
	"strings"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/menu"
)

type ConversationStore interface {
	Entries() []menu.ConversationEntry
	SetEntries([]menu.ConversationEntry)
	Find(id string) (menu.ConversationEntry, bool)
	Rename(id, name string) bool
	FetchedAt() time.Time
	SetFetchedAt(time.Time)
	Loaded() bool
}

type conversationStore struct {
	entries   []menu.ConversationEntry
	fetchedAt time.Time
	loaded    bool
}

func NewConversationStore() ConversationStore {
	return &conversationStore{}
}

func (s *conversationStore) Entries() []menu.ConversationEntry {
	return cloneConversationEntries(s.entries)
}

func (s *conversationStore) SetEntries(entries []menu.ConversationEntry) {
	s.entries = cloneConversationEntries(entries)
	s.loaded = true
}

func (s *conversationStore) Find(id string) (menu.ConversationEntry, bool) {
	id = strings.TrimSpace(id)
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return menu.ConversationEntry{}, false
}

// Rename updates the cached name so the list reflects a rename before the
// next poll lands. It reports whether the id was known.
func (s *conversationStore) Rename(id, name string) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Name = name
			return true
		}
	}
	return false
}

func (s *conversationStore) FetchedAt() time.Time {
	return s.fetchedAt
}

func (s *conversationStore) SetFetchedAt(at time.Time) {
	s.fetchedAt = at
}

func (s *conversationStore) Loaded() bool {
	return s.loaded
}

func cloneConversationEntries(entries []menu.ConversationEntry) []menu.ConversationEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.ConversationEntry, len(entries))
	copy(dup, entries)
	return dup
}
