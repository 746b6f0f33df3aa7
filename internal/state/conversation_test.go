package state

import (
	"testing"

	"github.com/atomicstack/chat-popup-control/internal/menu"
)

func TestConversationStoreClonesEntries(t *testing.T) {
	store := NewConversationStore()
	if store.Loaded() {
		t.Fatalf("expected fresh store to be unloaded")
	}
	entries := []menu.ConversationEntry{{ID: "c1", Name: "Q1 sales"}}
	store.SetEntries(entries)
	entries[0].Name = "mutated"

	got := store.Entries()
	if got[0].Name != "Q1 sales" {
		t.Fatalf("store should not alias caller slice, got %q", got[0].Name)
	}
	got[0].Name = "mutated again"
	if store.Entries()[0].Name != "Q1 sales" {
		t.Fatalf("Entries should return a copy")
	}
	if !store.Loaded() {
		t.Fatalf("expected store to be loaded after SetEntries")
	}
}

func TestConversationStoreFindAndRename(t *testing.T) {
	store := NewConversationStore()
	store.SetEntries([]menu.ConversationEntry{
		{ID: "c1", Name: "Q1 sales"},
		{ID: "c2", Name: "Ops"},
	})

	entry, ok := store.Find(" c1 ")
	if !ok || entry.Name != "Q1 sales" {
		t.Fatalf("expected to find c1, got %#v (%v)", entry, ok)
	}
	if !store.Rename("c1", "Q1 review") {
		t.Fatalf("expected rename of known id to succeed")
	}
	if entry, _ := store.Find("c1"); entry.Name != "Q1 review" {
		t.Fatalf("expected renamed entry, got %q", entry.Name)
	}
	if store.Rename("missing", "x") {
		t.Fatalf("expected rename of unknown id to report false")
	}
	if _, ok := store.Find("missing"); ok {
		t.Fatalf("expected unknown id to be absent")
	}
}

func TestConversationStoreEmptyEntriesStillLoaded(t *testing.T) {
	store := NewConversationStore()
	store.SetEntries(nil)
	if !store.Loaded() {
		t.Fatalf("an empty snapshot still counts as loaded")
	}
	if store.Entries() != nil {
		t.Fatalf("expected nil entries")
	}
}
