// Package tasklist owns the ordered set of to-do entries.
package tasklist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/todo-remind/internal/model"
)

// List is an in-memory, insertion-ordered list of entries.
// It is not safe for concurrent use; the UI mutates it from its event loop only.
type List struct {
	entries []model.Entry
	newID   func() string
}

// New returns an empty list.
func New() *List {
	return &List{newID: uuid.NewString}
}

// Add appends an entry with the trimmed text. Whitespace-only text is
// rejected and reported with ok=false.
func (l *List) Add(text string) (e model.Entry, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Entry{}, false
	}
	e = model.Entry{ID: l.newID(), Text: text}
	l.entries = append(l.entries, e)
	return e, true
}

// Remove deletes the entry with the given id, keeping the order of the rest.
func (l *List) Remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Toggle flips the completion flag and returns the updated entry.
func (l *List) Toggle(id string) (model.Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	l.entries[i].Done = !l.entries[i].Done
	return l.entries[i], true
}

func (l *List) Get(id string) (model.Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	return l.entries[i], true
}

// List returns a copy of the entries in display order.
func (l *List) List() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *List) Len() int { return len(l.entries) }

// Empty reports whether the empty-state message should be shown.
func (l *List) Empty() bool { return len(l.entries) == 0 }

// Stats counts done and pending entries.
func (l *List) Stats() (done, pending int) {
	for _, e := range l.entries {
		if e.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *List) index(id string) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
