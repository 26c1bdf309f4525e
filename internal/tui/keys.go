package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the input form
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Calculate key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Calculate, k.Reset, k.Quit}
}
