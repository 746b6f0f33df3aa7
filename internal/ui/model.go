package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/backend"
	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/data/dispatcher"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	"github.com/atomicstack/chat-popup-control/internal/state"
	"github.com/atomicstack/chat-popup-control/internal/theme"
	"github.com/atomicstack/chat-popup-control/internal/ui/command"
	"github.com/atomicstack/chat-popup-control/internal/ui/dialog"
	uistate "github.com/atomicstack/chat-popup-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeList Mode = iota
	ModeRenameDialog
)

const (
	listLevelID = "conversations"
	listTitle   = "conversations"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item) *level {
	return uistate.NewLevel(id, title, items)
}

// Options configures a Model.
type Options struct {
	Renamer    chat.Renamer
	Watcher    *backend.Watcher
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Timeout bounds each rename call.
	Timeout time.Duration
	// RenameID opens the dialog for that conversation once the list has
	// loaded; the program quits when the dialog is dismissed.
	RenameID string
	Now      func() time.Time
}

// Model implements the Bubble Tea model for the conversation popup.
type Model struct {
	list         *level
	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	backend      *backend.Watcher
	backendErr   error
	showFooter   bool
	verbose      bool
	filter       textinput.Model

	handlers map[reflect.Type]msgHandler

	bus           *command.Bus
	actions       map[string]menu.Action
	mode          Mode
	conversations state.ConversationStore
	dispatcher    *dispatcher.Dispatcher
	dialog        *dialog.RenameDialog
	now           func() time.Time

	renameID     string
	directOpened bool
	exitErr      error
}

// NewModel initialises the UI state with an empty conversation list.
func NewModel(opts Options) *Model {
	conversations := state.NewConversationStore()
	m := &Model{
		list:          newLevel(listLevelID, listTitle, nil),
		bus:           command.New(),
		actions:       menu.ActionHandlers(),
		backend:       opts.Watcher,
		showFooter:    opts.ShowFooter,
		verbose:       opts.Verbose,
		mode:          ModeList,
		conversations: conversations,
		dispatcher:    dispatcher.New(conversations),
		dialog:        dialog.New(opts.Renamer, opts.Timeout),
		now:           opts.Now,
		renameID:      strings.TrimSpace(opts.RenameID),
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.dialog.OnClose = m.handleDialogClose
	m.dialog.OnFinish = m.handleDialogFinish
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.filter = newFilterInput()
	m.resizeFilter()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handleDialogMsg(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

// Err reports why the program stopped early, if it did.
func (m *Model) Err() error {
	return m.exitErr
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.RenamePrompt{}): m.handleRenamePromptMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
