package ui

import (
	"github.com/atomicstack/chat-popup-control/internal/logging/events"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		if m.renameID != "" {
			m.exitErr = result.Err
			return tea.Quit
		}
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	if m.renameID != "" {
		return tea.Quit
	}
	return nil
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Conversations: m.conversations.Entries(),
		Now:           m.now(),
	}
}
