package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	add    key.Binding
	report key.Binding
	submit key.Binding
	back   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add user")),
		report: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export report")),
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.add},
		{k.report, k.submit, k.back},
		{k.quit},
	}
}
