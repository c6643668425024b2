package checkin

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	mood    lipgloss.Style
	quote   lipgloss.Style
	task    lipgloss.Style
	warning lipgloss.Style
	action  lipgloss.Style
	note    lipgloss.Style
	footer  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		mood:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		quote:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		task:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		action:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		note:    lipgloss.NewStyle().Faint(true),
		footer:  lipgloss.NewStyle().Faint(true),
	}
}
