package ui

import (
	"strings"

	"github.com/atomicstack/chat-popup-control/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	filterPrompt      = "» "
	filterPlaceholder = "type to filter conversations"
)

// newFilterInput builds the always-focused filter field under the list. List
// navigation keys are claimed before they reach it, so its suggestion
// bindings are switched off.
func newFilterInput() textinput.Model {
	in := textinput.New()
	in.Prompt = filterPrompt
	in.Placeholder = filterPlaceholder
	in.KeyMap.AcceptSuggestion = key.NewBinding(key.WithDisabled())
	in.KeyMap.NextSuggestion = key.NewBinding(key.WithDisabled())
	in.KeyMap.PrevSuggestion = key.NewBinding(key.WithDisabled())
	in.Cursor.SetMode(cursor.CursorStatic)
	in.PromptStyle = styleOrZero(styles.FilterPrompt)
	in.TextStyle = styleOrZero(styles.Filter)
	in.PlaceholderStyle = styleOrZero(styles.FilterPlaceholder)
	in.Cursor.Style = styleOrZero(styles.Cursor)
	in.Focus()
	return in
}

func styleOrZero(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return lipgloss.NewStyle()
	}
	return *style
}

// handleFilterKey feeds a key to the filter field and narrows the list when
// the text changes. Typing is ignored while an action is pending.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if m.loading {
		return nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if after := m.filter.Value(); after != before {
		m.applyFilter(after)
	}
	return cmd
}

// setFilter replaces the filter text, as if the user had typed it.
func (m *Model) setFilter(query string) {
	m.filter.SetValue(query)
	m.filter.CursorEnd()
	m.applyFilter(query)
}

func (m *Model) applyFilter(query string) {
	m.list.SetFilter(query)
	m.errMsg = ""
	m.forceClearInfo()
	if strings.TrimSpace(query) == "" {
		events.Filter.Cleared(m.list.ID)
	} else {
		events.Filter.Changed(m.list.ID, query, len(m.list.Items))
	}
	m.syncViewport(m.list)
}

// resizeFilter fits the field to the popup width. The placeholder is only
// drawn in full when the field has a width.
func (m *Model) resizeFilter() {
	width := m.width - lipgloss.Width(filterPrompt) - 1
	if floor := lipgloss.Width(filterPlaceholder); width < floor {
		width = floor
	}
	m.filter.Width = width
	m.filter.SetValue(m.filter.Value())
}
