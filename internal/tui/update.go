package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo-remind/internal/notify"
	"github.com/idilsaglam/todo-remind/internal/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case permissionMsg:
		return m.onPermission(msg)

	case notifiedMsg:
		if msg.err != nil {
			m.logger.Warn("reminder not shown", "err", msg.err)
		} else {
			m.logger.Info("reminder shown")
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		// alerts are modal
		if m.alert != "" {
			if key.Matches(msg, m.keys.CloseAlert) {
				m.alert = ""
			}
			return m, nil
		}
		if m.prompting() {
			switch {
			case key.Matches(msg, m.keys.Allow):
				return m.answer(notify.PermissionGranted)
			case key.Matches(msg, m.keys.Deny):
				return m.answer(notify.PermissionDenied)
			case key.Matches(msg, m.keys.DismissPrompt):
				return m.answer(notify.PermissionDefault)
			}
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)

	case tea.MouseMsg:
		if m.alert != "" {
			return m, nil
		}
		return m.onMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Focus), msg.String() == "esc":
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Toggle):
		return m.dispatchSelected(tasklist.ActionToggle)
	case key.Matches(msg, m.keys.Delete):
		return m.dispatchSelected(tasklist.ActionDelete)
	case key.Matches(msg, m.keys.Remind):
		return m.dispatchSelected(tasklist.ActionRemind)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submit adds the input text as a new entry. Blank input is ignored and
// left as typed.
func (m Model) submit() (tea.Model, tea.Cmd) {
	e, ok := m.tasks.Add(m.input.Value())
	if !ok {
		return m, nil
	}
	m.logger.Info("entry added", "id", e.ID)
	m.refresh()
	m.list.Select(m.tasks.Len() - 1)
	m.input.Reset()
	cmd := m.focusInput()
	m.syncEmptyState()
	return m, cmd
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
}

func (m Model) dispatchSelected(a tasklist.Action) (tea.Model, tea.Cmd) {
	it, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return m, nil
	}
	return m.dispatch(a, it.ID)
}

// dispatch applies one resolved action to the entry with the given id.
func (m Model) dispatch(a tasklist.Action, id string) (tea.Model, tea.Cmd) {
	switch a {
	case tasklist.ActionDelete:
		if m.tasks.Remove(id) {
			m.logger.Info("entry removed", "id", id)
			m.refresh()
			m.syncEmptyState()
		}
	case tasklist.ActionToggle:
		if e, ok := m.tasks.Toggle(id); ok {
			m.logger.Info("entry toggled", "id", id, "done", e.Done)
			m.refresh()
		}
	case tasklist.ActionRemind:
		return m.remind(id)
	}
	return m, nil
}

func (m Model) remind(id string) (tea.Model, tea.Cmd) {
	e, found := m.tasks.Get(id)
	text := notify.ReminderText(e.Text, found)

	d := notify.Decide(m.host)
	m.logger.Debug("reminder requested", "id", id, "decision", d)
	switch d {
	case notify.DecisionUnsupported:
		m.alert = msgUnsupported
	case notify.DecisionSend:
		return m, m.showReminder(text)
	case notify.DecisionRequest:
		return m, m.requestPermission(reminderRequest, text)
	case notify.DecisionBlocked:
		m.alert = msgBlocked
	}
	return m, nil
}

func (m Model) onPermission(msg permissionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// neither priming nor a reminder request reports failures
		m.logger.Debug("permission request failed", "err", msg.err)
		return m, nil
	}
	m.logger.Info("notification permission", "state", msg.perm)
	if msg.purpose == reminderRequest && msg.perm == notify.PermissionGranted {
		return m, m.showReminder(msg.text)
	}
	return m, nil
}

func (m Model) answer(p notify.Permission) (tea.Model, tea.Cmd) {
	if pr, ok := m.host.(prompter); ok {
		pr.Answer(p)
	}
	return m, nil
}

func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.inInput(msg.Y) {
		return m, m.focusInput()
	}
	idx, part := m.hitTest(msg.X, msg.Y)
	if idx < 0 {
		return m, nil
	}
	it, ok := m.list.Items()[idx].(entryItem)
	if !ok {
		return m, nil
	}
	m.list.Select(idx)
	m.focusList()
	return m.dispatch(tasklist.ActionFor(part), it.ID)
}

// refresh re-renders the list from the controller's entries.
func (m *Model) refresh() {
	entries := m.tasks.List()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{e})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}
