package ui

import (
	"github.com/atomicstack/chat-popup-control/internal/logging/events"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// handleEscapeKey clears an active filter; with no filter it quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.filter.Value() != "" {
		m.setFilter("")
		return nil
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	item := current.Items[current.Cursor]
	events.UI.ListEnter(current.ID, item.ID, item.Label, current.Filter)
	if entry, ok := m.conversations.Find(item.ID); ok {
		item.Label = entry.Name
	}
	return m.runAction(menu.ActionRename, item)
}

// moveCursor steps through the rows. Single steps wrap around the list, page
// steps stop at either end.
func (m *Model) moveCursor(delta int, wrap bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.Move(delta, wrap) {
		events.UI.ListCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

// jumpCursor puts the cursor on row idx; -1 is the last row.
func (m *Model) jumpCursor(idx int) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.Jump(idx) {
		events.UI.ListCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) pageSize() int {
	if rows := m.maxVisibleItems(); rows > 0 {
		return rows
	}
	return len(m.list.Items)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.Scroll(m.maxVisibleItems())
}

// handleKeyMsg claims list keys first; anything else edits the filter.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.mode != ModeList {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter", "ctrl+r":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursor(-1, true)
	case "down", "ctrl+n":
		m.moveCursor(1, true)
	case "pgup":
		m.moveCursor(-m.pageSize(), false)
	case "pgdown":
		m.moveCursor(m.pageSize(), false)
	case "home":
		m.jumpCursor(0)
	case "end":
		m.jumpCursor(-1)
	default:
		return m.handleFilterKey(keyMsg)
	}
	return nil
}

func (m *Model) currentLevel() *level {
	return m.list
}
