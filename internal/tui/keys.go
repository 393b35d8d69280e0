package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap mirrors the numbered menu: every action answers to its menu
// number as well as a mnemonic letter.
type keyMap struct {
	Add, Show, Delete, Quit key.Binding
	Submit, Cancel          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1/a", "add")),
		Show:   key.NewBinding(key.WithKeys("2", "l"), key.WithHelp("2/l", "refresh")),
		Delete: key.NewBinding(key.WithKeys("3", "d"), key.WithHelp("3/d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("4", "q", "esc", "ctrl+c"), key.WithHelp("4/q", "quit")),
		Submit: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) menu() []key.Binding { return []key.Binding{k.Add, k.Show, k.Delete, k.Quit} }
