package menu

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/chat"
)

func TestConversationItemsFormatsTable(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := Context{
		Now: now,
		Conversations: []ConversationEntry{
			{ID: "c1", Name: "Q1 sales", UpdatedAt: now.Add(-2 * time.Hour), LastQuestion: "what were\nthe totals?"},
			{ID: "c2", Name: "", UpdatedAt: now.Add(-3 * 24 * time.Hour)},
			{ID: "c3", Name: "Hiring"},
		},
	}
	items := ConversationItems(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != "c1" || items[1].ID != "c2" || items[2].ID != "c3" {
		t.Fatalf("unexpected ids: %#v", items)
	}
	if !strings.HasPrefix(items[0].Label, "Q1 sales") {
		t.Fatalf("expected name first, got %q", items[0].Label)
	}
	if !strings.Contains(items[0].Label, "2 hours ago") {
		t.Fatalf("expected relative update time, got %q", items[0].Label)
	}
	if !strings.Contains(items[0].Label, "what were the totals?") {
		t.Fatalf("expected last question collapsed onto one line, got %q", items[0].Label)
	}
	if !strings.HasPrefix(items[1].Label, unnamedLabel) {
		t.Fatalf("expected unnamed placeholder, got %q", items[1].Label)
	}
	if strings.Contains(items[2].Label, "ago") {
		t.Fatalf("zero update time should render blank, got %q", items[2].Label)
	}
	if items[0].Search != "Q1 sales what were the totals?" {
		t.Fatalf("expected name and question as search text, got %q", items[0].Search)
	}
	if items[1].Search != unnamedLabel || strings.Contains(items[1].Search, "ago") {
		t.Fatalf("expected search text without the time column, got %q", items[1].Search)
	}
	col := strings.Index(items[0].Label, "2 hours ago") + len("2 hours ago")
	if got := strings.Index(items[1].Label, "3 days ago") + len("3 days ago"); got != col {
		t.Fatalf("expected right-aligned time column, got %d want %d", got, col)
	}
}

func TestConversationItemsTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", nameColumnWidth+10)
	items := ConversationItems(Context{Conversations: []ConversationEntry{{ID: "c1", Name: long}}})
	if len(items) != 1 {
		t.Fatalf("expected one item")
	}
	if strings.Contains(items[0].Label, long) {
		t.Fatalf("expected long name to be truncated, got %q", items[0].Label)
	}
	if !strings.Contains(items[0].Label, "…") {
		t.Fatalf("expected truncation tail in %q", items[0].Label)
	}
}

func TestConversationItemsEmpty(t *testing.T) {
	if items := ConversationItems(Context{}); items != nil {
		t.Fatalf("expected nil items, got %#v", items)
	}
}

func TestRenameActionEmitsPrompt(t *testing.T) {
	ctx := Context{Conversations: []ConversationEntry{{ID: "c1", Name: "Q1 sales"}}}
	msg := RenameAction(ctx, Item{ID: "c1", Label: "Q1 sales"})()
	prompt, ok := msg.(RenamePrompt)
	if !ok {
		t.Fatalf("expected RenamePrompt, got %T", msg)
	}
	if prompt.Conversation.ID != "c1" || prompt.Conversation.Name != "Q1 sales" {
		t.Fatalf("unexpected prompt %#v", prompt)
	}
}

func TestRenameActionUnknownConversation(t *testing.T) {
	msg := RenameAction(Context{}, Item{ID: "missing"})()
	result, ok := msg.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if !errors.Is(result.Err, chat.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", result.Err)
	}
}

func TestRenameActionBlankTarget(t *testing.T) {
	msg := RenameAction(Context{}, Item{ID: "  "})()
	if result, ok := msg.(ActionResult); !ok || result.Err == nil {
		t.Fatalf("expected error result, got %#v", msg)
	}
}

func TestConversationEntryRoundTrip(t *testing.T) {
	updated := time.Unix(1700000000, 0)
	entries := ConversationEntriesFromChat([]chat.Conversation{{ID: "c1", Name: "Q1 sales", AgentID: 4, Creator: "ana", UpdatedAt: updated}})
	record := entries[0].Record()
	if record.ID != "c1" || record.Name != "Q1 sales" || record.AgentID != 4 || record.Creator != "ana" || !record.UpdatedAt.Equal(updated) {
		t.Fatalf("unexpected record %#v", record)
	}
}

func TestActionHandlersRegistersRename(t *testing.T) {
	if ActionHandlers()[ActionRename] == nil {
		t.Fatalf("expected rename action to be registered")
	}
}
