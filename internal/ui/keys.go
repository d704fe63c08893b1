package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Keyword  key.Binding
	Excludes key.Binding
	Clear    key.Binding
	Refilter key.Binding
	Follow   key.Binding

	// Editing
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Keyword: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter text"),
		),
		Excludes: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exclude senders"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear log"),
		),
		Refilter: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refilter"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
