package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeFilter(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestTypingFiltersByNameAndQuestion(t *testing.T) {
	m := loadedModel(t, Options{})
	typeFilter(m, "incidents")
	if m.list.Filter != "incidents" {
		t.Fatalf("expected filter 'incidents', got %q", m.list.Filter)
	}
	if len(m.list.Items) != 1 || m.list.Items[0].ID != "c2" {
		t.Fatalf("expected only c2 to match its last question, got %#v", m.list.Items)
	}
}

func TestFilterIgnoresRelativeTimeColumn(t *testing.T) {
	m := loadedModel(t, Options{})
	typeFilter(m, "hours")
	if len(m.list.Items) != 0 {
		t.Fatalf("expected no rows for a time-only query, got %#v", m.list.Items)
	}
	if view := m.View(); !strings.Contains(view, `No matches for "hours"`) {
		t.Fatalf("expected no-match line, got %q", view)
	}
}

func TestFilterEditingKeys(t *testing.T) {
	m := loadedModel(t, Options{})
	typeFilter(m, "opsx")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.list.Filter != "ops" {
		t.Fatalf("expected backspace to edit the filter, got %q", m.list.Filter)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if m.list.Filter != "op!s" {
		t.Fatalf("expected insert at the caret, got %q", m.list.Filter)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.list.Filter != "" || len(m.list.Items) != 3 {
		t.Fatalf("expected ctrl+u to clear the filter, got %q with %d rows", m.list.Filter, len(m.list.Items))
	}
}

func TestListKeysDoNotReachFilter(t *testing.T) {
	m := loadedModel(t, Options{})
	typeFilter(m, "q")
	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyUp, tea.KeyHome, tea.KeyEnd} {
		m.Update(tea.KeyMsg{Type: k})
	}
	if m.filter.Value() != "q" || m.filter.Position() != 1 {
		t.Fatalf("expected filter untouched by list keys, got %q at %d", m.filter.Value(), m.filter.Position())
	}
}

func TestTypingIgnoredWhileLoading(t *testing.T) {
	m := loadedModel(t, Options{})
	m.loading = true
	typeFilter(m, "a")
	if m.filter.Value() != "" || m.list.Filter != "" {
		t.Fatalf("expected typing to be ignored while an action is pending")
	}
}

func TestFilterPlaceholder(t *testing.T) {
	m := NewModel(Options{})
	prompt := m.filter.View()
	if !strings.Contains(prompt, "»") {
		t.Fatalf("expected prompt marker, got %q", prompt)
	}
	if !strings.Contains(prompt, "ype to filter conversations") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

func TestTypingClearsStatusMessages(t *testing.T) {
	m := loadedModel(t, Options{Verbose: true})
	m.errMsg = "old"
	m.setInfo("note")
	typeFilter(m, "o")
	if m.errMsg != "" || m.currentInfo() != "" {
		t.Fatalf("expected status cleared by filtering")
	}
}
