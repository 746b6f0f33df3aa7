package ui

import (
	"fmt"

	"github.com/atomicstack/chat-popup-control/internal/logging/events"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	"github.com/atomicstack/chat-popup-control/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleDialogMsg gives the rename dialog first claim on every message. Key
// presses only reach it while it is on screen.
func (m *Model) handleDialogMsg(msg tea.Msg) (bool, tea.Cmd) {
	if m.dialog == nil {
		return false, nil
	}
	if _, isKey := msg.(tea.KeyMsg); isKey && m.mode != ModeRenameDialog {
		return false, nil
	}
	cmd, handled := m.dialog.Update(msg)
	return handled, cmd
}

func (m *Model) startRenameDialog(entry menu.ConversationEntry) (tea.Cmd, error) {
	cmd, err := m.dialog.Open(entry.Record())
	if err != nil {
		return nil, err
	}
	m.mode = ModeRenameDialog
	return cmd, nil
}

func (m *Model) closeRenameDialog() {
	m.dialog.Close()
	m.mode = ModeList
}

func (m *Model) handleDialogClose() tea.Cmd {
	m.closeRenameDialog()
	if m.renameID != "" {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleDialogFinish(name string) tea.Cmd {
	id := m.dialog.Record().ID
	m.closeRenameDialog()
	if m.conversations.Rename(id, name) {
		m.refreshList()
	}
	if m.backend != nil {
		m.backend.Refresh()
	}
	info := fmt.Sprintf("Renamed conversation to %s", name)
	return func() tea.Msg { return menu.ActionResult{Info: info} }
}

func (m *Model) viewRenameDialog() string {
	box := m.dialog.View(m.width)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// openDirectTarget opens the dialog for the conversation named on the command
// line once the first snapshot is in.
func (m *Model) openDirectTarget() tea.Cmd {
	if m.renameID == "" || m.directOpened || !m.conversations.Loaded() {
		return nil
	}
	m.directOpened = true
	if _, ok := m.conversations.Find(m.renameID); !ok {
		events.Conversation.CancelRename(m.renameID, events.ReasonMissing)
		m.exitErr = fmt.Errorf("conversation %q not found", m.renameID)
		m.errMsg = m.exitErr.Error()
		return tea.Quit
	}
	item := menu.Item{ID: m.renameID, Label: m.renameID}
	return m.runAction(menu.ActionRename, item)
}

func (m *Model) runAction(id string, item menu.Item) tea.Cmd {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = item.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(m.menuContext(), command.Request{ID: id, Label: item.Label, Handler: m.actions[id], Item: item})
}
