package menu

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable list entry. Search, when set, is the text the
// list filter matches against instead of Label.
type Item struct {
	ID     string
	Label  string
	Search string
}

// Context carries runtime data needed by actions.
type Context struct {
	Conversations []ConversationEntry
	Now           time.Time
}

// ConversationEntry is the list-side view of a chat conversation.
type ConversationEntry struct {
	ID           string
	Name         string
	AgentID      int
	Creator      string
	LastQuestion string
	UpdatedAt    time.Time
}

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a list action.
type ActionResult struct {
	Info string
	Err  error
}

// RenamePrompt requests the rename dialog for a conversation.
type RenamePrompt struct {
	Context      Context
	Conversation ConversationEntry
}

const ActionRename = "conversation:rename"

// ActionHandlers maps action identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		ActionRename: RenameAction,
	}
}
