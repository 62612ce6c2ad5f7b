package tasklist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(l *List) []string {
	var out []string
	for _, e := range l.List() {
		out = append(out, e.Text)
	}
	return out
}

func TestAddTrimsAndAppends(t *testing.T) {
	l := New()
	e, ok := l.Add("  buy milk \t")
	require.True(t, ok)
	assert.Equal(t, "buy milk", e.Text)
	assert.False(t, e.Done)
	assert.NotEmpty(t, e.ID)

	_, ok = l.Add("call mom")
	require.True(t, ok)
	assert.Equal(t, []string{"buy milk", "call mom"}, texts(l))
}

func TestAddRejectsWhitespace(t *testing.T) {
	l := New()
	_, _ = l.Add("keep")
	for _, in := range []string{"", " ", "\t\n", "   \r\n  "} {
		_, ok := l.Add(in)
		assert.False(t, ok, "input %q", in)
	}
	assert.Equal(t, []string{"keep"}, texts(l))
}

func TestIDsAreUnique(t *testing.T) {
	l := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		e, _ := l.Add("same text")
		require.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	for k := 0; k < 5; k++ {
		t.Run(fmt.Sprintf("remove_%d", k), func(t *testing.T) {
			l := New()
			var ids, want []string
			for i := 0; i < 5; i++ {
				txt := fmt.Sprintf("task %d", i)
				e, _ := l.Add(txt)
				ids = append(ids, e.ID)
				if i != k {
					want = append(want, txt)
				}
			}
			require.True(t, l.Remove(ids[k]))
			assert.Equal(t, want, texts(l))
			assert.False(t, l.Remove(ids[k]))
		})
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	l := New()
	e, _ := l.Add("read")
	got, ok := l.Toggle(e.ID)
	require.True(t, ok)
	assert.True(t, got.Done)
	got, _ = l.Toggle(e.ID)
	assert.False(t, got.Done)

	_, ok = l.Toggle("missing")
	assert.False(t, ok)
}

func TestEmptyTracksCount(t *testing.T) {
	l := New()
	assert.True(t, l.Empty())
	e, _ := l.Add("only")
	assert.False(t, l.Empty())
	l.Remove(e.ID)
	assert.True(t, l.Empty())
}

func TestListReturnsCopy(t *testing.T) {
	l := New()
	l.Add("a")
	out := l.List()
	out[0].Done = true
	e := l.List()[0]
	assert.False(t, e.Done)
}

func TestStats(t *testing.T) {
	l := New()
	a, _ := l.Add("a")
	l.Add("b")
	l.Add("c")
	l.Toggle(a.ID)
	done, pending := l.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestActionFor(t *testing.T) {
	cases := map[Part]Action{
		PartNone:     ActionNone,
		PartCheckbox: ActionToggle,
		PartLabel:    ActionToggle,
		PartReminder: ActionRemind,
		PartDelete:   ActionDelete,
		Part(42):     ActionNone,
	}
	for p, want := range cases {
		assert.Equal(t, want, ActionFor(p), "part %s", p)
	}
}
