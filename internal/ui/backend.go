package ui

import (
	"github.com/atomicstack/chat-popup-control/internal/backend"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	m.backendErr = evt.Err
	if evt.Err != nil {
		return nil
	}
	res := m.dispatcher.Handle(evt)
	if !res.ConversationsUpdated {
		return nil
	}
	m.refreshList()
	if len(m.list.Items) > 0 {
		m.clearInfo()
	}
	return m.openDirectTarget()
}

// refreshList rebuilds the list rows from the conversation store.
func (m *Model) refreshList() {
	m.list.UpdateItems(menu.ConversationItems(m.menuContext()))
	m.syncViewport(m.list)
}

func (m *Model) backendIssue() string {
	if m.backendErr == nil {
		return ""
	}
	return m.backendErr.Error()
}
