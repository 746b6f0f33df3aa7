package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/backend"
	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	APIURL       string
	Token        string
	AgentID      int
	DBPath       string
	RenameID     string
	PollInterval time.Duration
	Timeout      time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// OpenClient returns the backend selected by cfg.
func OpenClient(cfg Config) (chat.Client, error) {
	switch {
	case cfg.DBPath != "":
		store, err := chat.OpenSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case cfg.APIURL != "":
		client, err := chat.NewHTTPClient(cfg.APIURL, cfg.Token, cfg.AgentID, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("open api client: %w", err)
		}
		return client, nil
	default:
		return nil, errors.New("no backend configured")
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client, err := OpenClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	watcher := backend.NewWatcher(client, cfg.PollInterval, cfg.Timeout)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Renamer:    client,
		Watcher:    watcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Timeout:    cfg.Timeout,
		RenameID:   cfg.RenameID,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return model.Err()
}
