package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todo-remind/internal/model"
	"github.com/idilsaglam/todo-remind/internal/tasklist"
	"github.com/idilsaglam/todo-remind/internal/ui"
)

// entryItem adapts model.Entry to bubbles/list.Item
type entryItem struct{ model.Entry }

func (i entryItem) FilterValue() string { return i.Text }

// cursor marker column width ("> " or two spaces)
const prefixWidth = 2

// segment is one clickable control of a rendered row.
// Columns are relative to the row start; end is exclusive.
type segment struct {
	part       tasklist.Part
	text       string
	start, end int
}

// layoutRow places the checkbox, label, reminder and delete controls of an
// entry on a row of the given width. Rendering and mouse hit-testing both
// use it, so what is drawn is what is clicked.
func layoutRow(t ui.Theme, e model.Entry, width int) []segment {
	box := t.BoxUnchecked
	if e.Done {
		box = t.BoxChecked
	}
	fixed := prefixWidth + ansi.StringWidth(box) + ansi.StringWidth(t.Bell) + ansi.StringWidth(t.Delete) + 3
	avail := width - fixed
	if avail < 1 {
		avail = 1
	}
	label := ansi.Truncate(e.Text, avail, "…")

	segs := make([]segment, 0, 4)
	col := prefixWidth
	for i, p := range []struct {
		part tasklist.Part
		text string
	}{
		{tasklist.PartCheckbox, box},
		{tasklist.PartLabel, label},
		{tasklist.PartReminder, t.Bell},
		{tasklist.PartDelete, t.Delete},
	} {
		if i > 0 {
			col++
		}
		w := ansi.StringWidth(p.text)
		segs = append(segs, segment{part: p.part, text: p.text, start: col, end: col + w})
		col += w
	}
	return segs
}

// partAt returns the control under column x, or PartNone for gaps.
func partAt(segs []segment, x int) tasklist.Part {
	for _, s := range segs {
		if x >= s.start && x < s.end {
			return s.part
		}
	}
	return tasklist.PartNone
}

// Custom delegate to control how entries render (single line)
type entryDelegate struct {
	theme ui.Theme
}

func (d entryDelegate) Height() int                               { return 1 }
func (d entryDelegate) Spacing() int                              { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	var b strings.Builder
	if index == m.Index() {
		b.WriteString(d.theme.Selected.Render(">") + " ")
	} else {
		b.WriteString(strings.Repeat(" ", prefixWidth))
	}
	col := prefixWidth
	for _, s := range layoutRow(d.theme, it.Entry, m.Width()) {
		b.WriteString(strings.Repeat(" ", s.start-col))
		b.WriteString(d.style(s.part, it.Done).Render(s.text))
		col = s.end
	}
	io.WriteString(w, b.String())
}

func (d entryDelegate) style(p tasklist.Part, done bool) lipgloss.Style {
	t := d.theme
	switch p {
	case tasklist.PartCheckbox:
		if done {
			return t.Success
		}
		return t.Muted
	case tasklist.PartLabel:
		if done {
			return t.Completed
		}
		return lipgloss.NewStyle()
	case tasklist.PartReminder:
		return t.Accent
	case tasklist.PartDelete:
		return t.Error
	}
	return lipgloss.NewStyle()
}
