// Package tui is the interactive to-do list: a text input that adds
// entries, a list whose rows expose checkbox, label, reminder and delete
// controls, and the reminder flow on top of a notify.Host.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo-remind/internal/logging"
	"github.com/idilsaglam/todo-remind/internal/notify"
	"github.com/idilsaglam/todo-remind/internal/tasklist"
	"github.com/idilsaglam/todo-remind/internal/ui"
)

const (
	msgUnsupported = "Notifications are not supported on this system."
	msgBlocked     = "Notifications are blocked in your system settings."
	msgEmpty       = "Nothing to do yet. Type a task below and press enter."

	defaultWidth  = 80
	defaultHeight = 24
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type requestPurpose int

const (
	primeRequest requestPurpose = iota
	reminderRequest
)

// permissionMsg carries the result of a permission request back to the loop.
type permissionMsg struct {
	purpose requestPurpose
	text    string
	perm    notify.Permission
	err     error
}

// notifiedMsg reports the outcome of showing a reminder.
type notifiedMsg struct {
	text string
	err  error
}

// prompter is a host whose pending permission request is answered in the UI.
type prompter interface {
	Begin() bool
	Pending() bool
	Answer(notify.Permission)
}

// Options wire a Model to its collaborators.
type Options struct {
	Theme  ui.Theme
	Host   notify.Host
	Logger *log.Logger
}

// Model implements tea.Model.
type Model struct {
	ctx    context.Context
	tasks  *tasklist.List
	host   notify.Host
	logger *log.Logger
	theme  ui.Theme
	keys   keyMap

	list  list.Model
	input textinput.Model
	help  help.Model
	focus focusArea

	emptyVisible bool
	alert        string
	prime        tea.Cmd

	width, height int
}

// New builds the model. ctx bounds outstanding permission requests.
func New(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.Named("classic")
	}

	l := list.New(nil, entryDelegate{theme: opts.Theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = opts.Theme.Help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Accent
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.ShortSeparator = opts.Theme.Help

	m := Model{
		ctx:    ctx,
		tasks:  tasklist.New(),
		host:   opts.Host,
		logger: logger,
		theme:  opts.Theme,
		keys:   defaultKeyMap(),
		list:   l,
		input:  ti,
		help:   h,
		focus:  focusInput,
	}
	m.resize(defaultWidth, defaultHeight)
	m.syncEmptyState()

	// Ask early so the first reminder does not have to.
	if notify.ShouldPrime(m.host) {
		logger.Debug("priming notification permission")
		m.prime = m.requestPermission(primeRequest, "")
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.prime)
}

// syncEmptyState recomputes the empty-state message visibility.
func (m *Model) syncEmptyState() {
	m.emptyVisible = m.tasks.Empty()
}

func (m Model) prompting() bool {
	p, ok := m.host.(prompter)
	return ok && p.Pending()
}

// requestPermission opens the prompt right away so the next render shows
// it; the returned command only waits for the answer.
func (m Model) requestPermission(purpose requestPurpose, text string) tea.Cmd {
	if p, ok := m.host.(prompter); ok {
		p.Begin()
	}
	ctx, host := m.ctx, m.host
	return func() tea.Msg {
		perm, err := host.RequestPermission(ctx)
		return permissionMsg{purpose: purpose, text: text, perm: perm, err: err}
	}
}

func (m Model) showReminder(text string) tea.Cmd {
	host := m.host
	return func() tea.Msg {
		return notifiedMsg{text: text, err: host.Show(notify.Reminder(text))}
	}
}
