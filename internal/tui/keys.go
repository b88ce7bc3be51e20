package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	DetailUp   key.Binding
	DetailDown key.Binding
	NextHit    key.Binding
	PrevHit    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "prev step"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next step"),
	),
	DetailUp: key.NewBinding(
		key.WithKeys("K", "pgup"),
		key.WithHelp("K/pgup", "detail up"),
	),
	DetailDown: key.NewBinding(
		key.WithKeys("J", "pgdown"),
		key.WithHelp("J/pgdn", "detail down"),
	),
	NextHit: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next hit"),
	),
	PrevHit: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev hit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
