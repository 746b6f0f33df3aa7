package command

import (
	"testing"

	"github.com/atomicstack/chat-popup-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteRunsHandler(t *testing.T) {
	var gotCtx menu.Context
	var gotItem menu.Item
	handler := func(ctx menu.Context, item menu.Item) tea.Cmd {
		gotCtx = ctx
		gotItem = item
		return func() tea.Msg { return menu.ActionResult{Info: "done"} }
	}
	ctx := menu.Context{Conversations: []menu.ConversationEntry{{ID: "c1"}}}
	msg := New().Execute(ctx, Request{ID: "x", Label: "X", Handler: handler, Item: menu.Item{ID: "c1"}})()

	result, ok := msg.(menu.ActionResult)
	if !ok || result.Info != "done" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if gotItem.ID != "c1" || len(gotCtx.Conversations) != 1 {
		t.Fatalf("handler did not receive request data: %#v %#v", gotCtx, gotItem)
	}
}

func TestExecuteWithoutHandlerReportsError(t *testing.T) {
	msg := New().Execute(menu.Context{}, Request{ID: "missing"})()
	result, ok := msg.(menu.ActionResult)
	if !ok || result.Err == nil {
		t.Fatalf("expected error result, got %#v", msg)
	}
}

func TestExecuteNoOpHandlerClearsPending(t *testing.T) {
	handler := func(menu.Context, menu.Item) tea.Cmd { return nil }
	msg := New().Execute(menu.Context{}, Request{ID: "noop", Handler: handler})()
	if result, ok := msg.(menu.ActionResult); !ok || result.Err != nil {
		t.Fatalf("expected empty result, got %#v", msg)
	}
}
