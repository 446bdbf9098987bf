package calendar

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	day        lipgloss.Style
	cursor     lipgloss.Style
	today      lipgloss.Style
	panel      lipgloss.Style
	panelTitle lipgloss.Style
	item       lipgloss.Style
	private    lipgloss.Style
	group      lipgloss.Style
	activeGrp  lipgloss.Style
	help       lipgloss.Style
	errNotice  lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cursor:     lipgloss.NewStyle().Bold(true).Reverse(true),
		today:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		private:    lipgloss.NewStyle().Faint(true),
		group:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		activeGrp:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		help:       lipgloss.NewStyle().Faint(true),
		errNotice:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}
