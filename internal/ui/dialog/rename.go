package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/logging/events"
	"github.com/atomicstack/chat-popup-control/internal/theme"
)

var (
	// ErrNoConversation is returned by Open when the record has no id.
	ErrNoConversation = errors.New("rename dialog: no conversation to rename")
	// ErrAlreadyOpen is returned by Open while the dialog is visible.
	ErrAlreadyOpen = errors.New("rename dialog: already open")

	errNoRenamer = errors.New("no backend configured")
)

// Text shown by the dialog.
const (
	Title       = "Rename conversation"
	Label       = "Name"
	Placeholder = "Enter a conversation name"

	// MsgNameRequired is the inline error for a blank name.
	MsgNameRequired = "Name is required"

	nameCharLimit  = 100
	defaultWidth   = 56
	minWidth       = 24
	helpIdle       = "enter rename · esc cancel"
	helpSubmitting = "Renaming…"
)

var styles = theme.Default()

// ValidateName reports the inline error for name, or "" when it is usable.
func ValidateName(name string) string {
	if strings.TrimSpace(name) == "" {
		return MsgNameRequired
	}
	return ""
}

type focusMsg struct {
	seq int
}

type renameResultMsg struct {
	token string
	id    string
	name  string
	err   error
}

// RenameDialog is a modal form with a single name field. The zero value is
// not usable; construct it with New.
type RenameDialog struct {
	// OnClose runs when the user cancels. The host is expected to call Close.
	OnClose func() tea.Cmd
	// OnFinish runs once per successful rename with the submitted name.
	OnFinish func(name string) tea.Cmd

	renamer chat.Renamer
	timeout time.Duration

	input   textinput.Model
	spinner spinner.Model

	record     chat.Conversation
	visible    bool
	focused    bool
	submitting bool
	err        string

	token  string
	cancel context.CancelFunc
	seq    int
}

// New builds a hidden dialog that persists names through renamer. Each
// rename is bounded by timeout when it is positive.
func New(renamer chat.Renamer, timeout time.Duration) *RenameDialog {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = Placeholder
	ti.CharLimit = nameCharLimit
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Input != nil {
		ti.TextStyle = styles.Input.Copy()
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Spinner != nil {
		sp.Style = styles.Spinner.Copy()
	}

	return &RenameDialog{
		renamer: renamer,
		timeout: timeout,
		input:   ti,
		spinner: sp,
	}
}

// Open shows the dialog for record, seeding the field with its current name.
// The returned command focuses the field once the dialog has been drawn.
func (d *RenameDialog) Open(record chat.Conversation) (tea.Cmd, error) {
	if d.visible {
		return nil, ErrAlreadyOpen
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return nil, ErrNoConversation
	}
	d.record = record
	d.visible = true
	d.focused = false
	d.submitting = false
	d.err = ""
	d.token = ""
	d.input.Blur()
	d.input.SetValue(record.Name)
	d.seq++
	seq := d.seq
	return func() tea.Msg { return focusMsg{seq: seq} }, nil
}

// Close hides the dialog and abandons any rename still in flight.
func (d *RenameDialog) Close() {
	if d.token != "" {
		events.Conversation.CancelRename(d.record.ID, events.ReasonClosed)
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.token = ""
	d.visible = false
	d.focused = false
	d.submitting = false
	d.err = ""
	d.input.Blur()
}

// Confirm validates the field and starts the rename. It is a no-op while a
// rename is pending.
func (d *RenameDialog) Confirm() tea.Cmd {
	if !d.visible {
		return nil
	}
	id := d.record.ID
	if d.submitting {
		events.Conversation.SkipRename(id)
		return nil
	}
	name := d.input.Value()
	if msg := ValidateName(name); msg != "" {
		d.err = msg
		events.Conversation.Invalid(id, msg)
		return nil
	}

	d.err = ""
	d.submitting = true
	d.token = uuid.NewString()
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if d.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), d.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	d.cancel = cancel

	token := d.token
	renamer := d.renamer
	events.Conversation.SubmitRename(id, name, token)
	call := func() tea.Msg {
		defer cancel()
		if renamer == nil {
			return renameResultMsg{token: token, id: id, name: name, err: errNoRenamer}
		}
		events.Conversation.Rename(id, name)
		err := renamer.RenameConversation(ctx, name, id)
		return renameResultMsg{token: token, id: id, name: name, err: err}
	}
	return tea.Batch(call, d.spinner.Tick)
}

// Cancel asks the host to close the dialog without renaming anything.
func (d *RenameDialog) Cancel() tea.Cmd {
	if !d.visible {
		return nil
	}
	events.Conversation.CancelRename(d.record.ID, events.ReasonEscape)
	if d.OnClose == nil {
		return nil
	}
	return d.OnClose()
}

// Update consumes messages addressed to the dialog. While visible every key
// press except ctrl+c is captured.
func (d *RenameDialog) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch m := msg.(type) {
	case focusMsg:
		if !d.visible || m.seq != d.seq {
			return nil, true
		}
		return d.focus(), true
	case renameResultMsg:
		return d.finish(m), true
	case spinner.TickMsg:
		if m.ID != d.spinner.ID() {
			return nil, false
		}
		if !d.submitting {
			return nil, true
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(m)
		return cmd, true
	case tea.KeyMsg:
		if !d.visible || m.String() == "ctrl+c" {
			return nil, false
		}
		switch m.Type {
		case tea.KeyEsc:
			return d.Cancel(), true
		case tea.KeyEnter:
			return d.Confirm(), true
		}
		if d.submitting {
			return nil, true
		}
		if m.String() == "ctrl+u" {
			d.input.SetValue("")
			d.input.CursorStart()
			d.err = ValidateName("")
			return nil, true
		}
		var cmd tea.Cmd
		before := d.input.Value()
		d.input, cmd = d.input.Update(m)
		if d.input.Value() != before {
			d.err = ValidateName(d.input.Value())
		}
		return cmd, true
	}
	return nil, false
}

func (d *RenameDialog) focus() tea.Cmd {
	cmd := d.input.Focus()
	d.input.CursorEnd()
	d.focused = true
	events.Conversation.Focus(d.record.ID, d.input.Position())
	return cmd
}

func (d *RenameDialog) finish(msg renameResultMsg) tea.Cmd {
	if !d.visible || msg.token == "" || msg.token != d.token {
		events.Conversation.StaleResult(msg.id, msg.token)
		return nil
	}
	d.submitting = false
	d.token = ""
	d.cancel = nil
	if msg.err != nil {
		d.err = fmt.Sprintf("Rename failed: %v", msg.err)
		events.Conversation.RenameFailed(msg.id, msg.err)
		return nil
	}
	d.record.Name = msg.name
	events.Conversation.Renamed(msg.id, msg.name)
	if d.OnFinish == nil {
		return nil
	}
	return d.OnFinish(msg.name)
}

// Visible reports whether the dialog is on screen.
func (d *RenameDialog) Visible() bool { return d.visible }

// Submitting reports whether a rename is in flight.
func (d *RenameDialog) Submitting() bool { return d.submitting }

// Focused reports whether the name field has taken focus since the last Open.
func (d *RenameDialog) Focused() bool { return d.focused && d.input.Focused() }

// Value returns the name field exactly as typed.
func (d *RenameDialog) Value() string { return d.input.Value() }

// Position returns the caret offset within the name field.
func (d *RenameDialog) Position() int { return d.input.Position() }

// Error returns the inline error, or "" when there is none.
func (d *RenameDialog) Error() string { return d.err }

// Record returns the conversation being renamed.
func (d *RenameDialog) Record() chat.Conversation { return d.record }

// View renders the dialog box, at most width cells wide. It returns "" while
// the dialog is hidden.
func (d *RenameDialog) View(width int) string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle()
	if styles.Dialog != nil {
		box = styles.Dialog.Copy()
	}
	outer := defaultWidth
	if width > 0 && width < outer {
		outer = width
	}
	if outer < minWidth {
		outer = minWidth
	}
	inner := outer - box.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	d.input.Width = inner - 1

	title := truncate.StringWithTail(Title, uint(inner), "…")
	lines := []string{
		render(styles.DialogTitle, title),
		"",
		render(styles.Label, Label),
		d.input.View(),
	}
	if d.err != "" {
		lines = append(lines, render(styles.Error, truncate.StringWithTail(d.err, uint(inner), "…")))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "")
	if d.submitting {
		lines = append(lines, d.spinner.View()+" "+render(styles.Help, helpSubmitting))
	} else {
		lines = append(lines, render(styles.Help, helpIdle))
	}
	block := outer - box.GetHorizontalBorderSize() - box.GetHorizontalMargins()
	return box.Width(block).Render(strings.Join(lines, "\n"))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
