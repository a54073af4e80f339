package pager

import "github.com/charmbracelet/lipgloss"

// Styles only decorate the pager chrome. Dump text is shown unstyled.
type Styles struct {
	Header    lipgloss.Style
	HeaderKey lipgloss.Style
	Footer    lipgloss.Style
	HintKey   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		HeaderKey: lipgloss.NewStyle().Bold(true),
		Footer:    lipgloss.NewStyle().Faint(true).Padding(0, 1),
		HintKey:   lipgloss.NewStyle().Bold(true),
	}
}
