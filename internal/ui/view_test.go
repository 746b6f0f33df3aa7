package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/chat-popup-control/internal/menu"
)

func TestViewShowsLoadingUntilFirstSnapshot(t *testing.T) {
	m := NewModel(Options{Width: 60, Height: 10, Now: fixedNow})
	if view := m.View(); !strings.Contains(view, "Loading conversations…") {
		t.Fatalf("expected loading line, got %q", view)
	}
	m.Update(snapshotMsg(nil))
	if view := m.View(); !strings.Contains(view, "(no conversations)") {
		t.Fatalf("expected empty list line, got %q", view)
	}
}

func TestViewListsConversations(t *testing.T) {
	m := loadedModel(t, Options{Width: 80, Height: 12})
	view := m.View()
	for _, want := range []string{"conversations (3)", "Q1 sales", "Ops", "(unnamed)", "2 hours ago", "How did Q1 go?"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewNoMatches(t *testing.T) {
	m := loadedModel(t, Options{Width: 60, Height: 10})
	m.setFilter("zzz")
	if view := m.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match line, got %q", view)
	}
}

func TestViewStatusLine(t *testing.T) {
	m := loadedModel(t, Options{Width: 60, Height: 10})
	m.errMsg = "broken"
	if view := m.View(); !strings.Contains(view, "Error: broken") {
		t.Fatalf("expected error status, got %q", view)
	}
	m.errMsg = ""
	m.loading = true
	m.pendingLabel = "Ops"
	if view := m.View(); !strings.Contains(view, "Opening Ops…") {
		t.Fatalf("expected pending status, got %q", view)
	}
}

func TestViewRendersDialog(t *testing.T) {
	m := loadedModel(t, Options{Width: 70, Height: 16})
	entry, _ := m.conversations.Find("c1")
	m.handleRenamePromptMsg(menu.RenamePrompt{Conversation: entry})
	view := m.View()
	if !strings.Contains(view, "Rename conversation") {
		t.Fatalf("expected dialog title, got %q", view)
	}
	if strings.Contains(view, "conversations (3)") {
		t.Fatalf("expected dialog to replace the list")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello world", 5); got != "hell…" {
		t.Fatalf("expected truncated text, got %q", got)
	}
	if got := truncateText("hi", 5); got != "hi" {
		t.Fatalf("expected short text unchanged, got %q", got)
	}
}
