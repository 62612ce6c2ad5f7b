package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo-remind/internal/tasklist"
	"github.com/idilsaglam/todo-remind/internal/ui"
)

// Vertical layout of the panel content, top to bottom:
// header, progress, blank, body (list or empty message), blank, input box,
// help, and room for an alert or permission prompt.
const (
	headerLines  = 3
	inputLines   = 3
	helpLines    = 1
	overlayLines = 3
	// panel border (2) + header + blank + input + help + overlay
	chromeLines = 2 + headerLines + 1 + inputLines + helpLines + overlayLines
	// panel border and padding on both sides
	chromeCols = 2 * ui.PanelInsetX
)

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(m.innerWidth(), m.bodyHeight())
	m.input.Width = m.innerWidth() - 8
	m.help.Width = m.innerWidth()
}

func (m Model) innerWidth() int {
	w := m.width - chromeCols
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) bodyHeight() int {
	h := m.height - chromeLines
	if h < 1 {
		h = 1
	}
	return h
}

// bodyTop is the screen row of the first list entry.
func (m Model) bodyTop() int { return ui.PanelInsetY + headerLines }

func (m Model) inputTop() int { return m.bodyTop() + m.bodyHeight() + 1 }

func (m Model) inInput(y int) bool {
	top := m.inputTop()
	return y >= top && y < top+inputLines
}

// hitTest maps a screen cell to the entry index and the control under it.
// idx is -1 when the cell is not on an entry row.
func (m Model) hitTest(x, y int) (idx int, part tasklist.Part) {
	if m.emptyVisible {
		return -1, tasklist.PartNone
	}
	row := y - m.bodyTop()
	per := m.list.Paginator.PerPage
	if row < 0 || row >= per {
		return -1, tasklist.PartNone
	}
	idx = m.list.Paginator.Page*per + row
	items := m.list.Items()
	if idx >= len(items) {
		return -1, tasklist.PartNone
	}
	it, ok := items[idx].(entryItem)
	if !ok {
		return -1, tasklist.PartNone
	}
	col := x - ui.PanelInsetX
	return idx, partAt(layoutRow(m.theme, it.Entry, m.list.Width()), col)
}

func (m Model) View() string {
	t := m.theme
	done, pending := m.tasks.Stats()
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), m.tasks.Len(),
	)
	progress := t.Muted.Render(ui.ProgressBar(done, done+pending, 28))

	var body string
	if m.emptyVisible {
		body = t.Muted.Render(msgEmpty)
	} else {
		body = m.list.View()
	}
	body = lipgloss.NewStyle().
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)

	inputBorder := t.Muted
	if m.focus == focusInput {
		inputBorder = t.Accent
	}
	input := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(inputBorder.GetForeground()).
		Padding(0, 1).
		Width(m.innerWidth() - 2).
		Render(m.input.View())

	sections := []string{header, progress, "", body, "", input}
	switch {
	case m.alert != "":
		sections = append(sections, m.help.View(m.keys.alertHelp()), t.Alert.Render(t.Error.Render("! ")+m.alert))
	case m.prompting():
		sections = append(sections, m.help.View(m.currentHelp()),
			t.Prompt.Render("Allow desktop notifications?  "+m.help.View(m.keys.promptHelp())))
	default:
		sections = append(sections, m.help.View(m.currentHelp()))
	}
	return ui.Panel(t, strings.Join(sections, "\n"))
}

func (m Model) currentHelp() bindings {
	if m.focus == focusInput {
		return m.keys.inputHelp()
	}
	return m.keys.listHelp()
}
