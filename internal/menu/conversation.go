package menu

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/format/table"
	"github.com/atomicstack/chat-popup-control/internal/logging/events"
)

const (
	nameColumnWidth     = 32
	questionColumnWidth = 40
	unnamedLabel        = "(unnamed)"
)

func RenameAction(ctx Context, item Item) tea.Cmd {
	target := strings.TrimSpace(item.ID)
	if target == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid conversation target")} }
	}
	return func() tea.Msg {
		entry, ok := FindConversation(ctx.Conversations, target)
		if !ok {
			events.Conversation.CancelRename(target, events.ReasonMissing)
			return ActionResult{Err: fmt.Errorf("conversation %s: %w", target, chat.ErrNotFound)}
		}
		events.Conversation.RenamePrompt(entry.ID, entry.Name)
		return RenamePrompt{Context: ctx, Conversation: entry}
	}
}

// FindConversation returns the entry with the given id.
func FindConversation(entries []ConversationEntry, id string) (ConversationEntry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return ConversationEntry{}, false
}

func ConversationEntriesFromChat(conversations []chat.Conversation) []ConversationEntry {
	entries := make([]ConversationEntry, 0, len(conversations))
	for _, conv := range conversations {
		entries = append(entries, ConversationEntry{
			ID:           conv.ID,
			Name:         conv.Name,
			AgentID:      conv.AgentID,
			Creator:      conv.Creator,
			LastQuestion: conv.LastQuestion,
			UpdatedAt:    conv.UpdatedAt,
		})
	}
	return entries
}

// Record converts the entry back into the backend record the rename dialog edits.
func (e ConversationEntry) Record() chat.Conversation {
	return chat.Conversation{
		ID:           e.ID,
		Name:         e.Name,
		AgentID:      e.AgentID,
		Creator:      e.Creator,
		LastQuestion: e.LastQuestion,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ConversationItems produces the aligned table shown on the conversation list.
func ConversationItems(ctx Context) []Item {
	if len(ctx.Conversations) == 0 {
		return nil
	}
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}
	rows := make([][]string, 0, len(ctx.Conversations))
	ids := make([]string, 0, len(ctx.Conversations))
	search := make([]string, 0, len(ctx.Conversations))
	for _, entry := range ctx.Conversations {
		search = append(search, searchText(entry))
		rows = append(rows, []string{
			conversationName(entry),
			updatedLabel(entry.UpdatedAt, now),
			shorten(singleLine(entry.LastQuestion), questionColumnWidth),
		})
		ids = append(ids, entry.ID)
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	items := make([]Item, len(aligned))
	for i, label := range aligned {
		items[i] = Item{ID: ids[i], Label: strings.TrimRight(label, " "), Search: search[i]}
	}
	return items
}

func conversationName(entry ConversationEntry) string {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return unnamedLabel
	}
	return shorten(singleLine(name), nameColumnWidth)
}

func updatedLabel(updated, now time.Time) string {
	if updated.IsZero() {
		return ""
	}
	return humanize.RelTime(updated, now, "ago", "from now")
}

func shorten(text string, width int) string {
	if width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// searchText is what the list filter sees for a conversation: its name and
// last question, never the relative time column.
func searchText(entry ConversationEntry) string {
	name := singleLine(entry.Name)
	if name == "" {
		name = unnamedLabel
	}
	return strings.TrimSpace(name + " " + singleLine(entry.LastQuestion))
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
