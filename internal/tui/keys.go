package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Focus     key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Remind    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	CloseAlert key.Binding

	Allow         key.Binding
	Deny          key.Binding
	DismissPrompt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Remind:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remind")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		CloseAlert: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),

		Allow:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "allow")),
		Deny:          key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "block")),
		DismissPrompt: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "not now")),
	}
}

// bindings adapts a slice of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) inputHelp() bindings {
	return bindings{k.Submit, k.Focus, k.ForceQuit}
}

func (k keyMap) listHelp() bindings {
	return bindings{k.Toggle, k.Remind, k.Delete, k.Focus, k.Quit}
}

func (k keyMap) alertHelp() bindings { return bindings{k.CloseAlert} }

func (k keyMap) promptHelp() bindings { return bindings{k.Allow, k.Deny, k.DismissPrompt} }
