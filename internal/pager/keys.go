package pager

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pager bindings. Scrolling keys come from the viewport.
type KeyMap struct {
	Quit          key.Binding
	ToggleASCII   key.Binding
	CycleWidth    key.Binding
	ToggleCompact key.Binding
	Top           key.Binding
	Bottom        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleASCII: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ascii"),
		),
		CycleWidth: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "width"),
		),
		ToggleCompact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compact"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

func (k KeyMap) hints() []key.Binding {
	return []key.Binding{k.ToggleASCII, k.CycleWidth, k.ToggleCompact, k.Top, k.Bottom, k.Quit}
}
