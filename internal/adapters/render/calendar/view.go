package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kit-coca/coca-cli/internal/application"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	left := m.viewPanel()
	right := m.viewMonth()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var footer strings.Builder
	if m.notice != "" {
		footer.WriteString("\n" + m.styles.errNotice.Render(m.notice))
	}
	footer.WriteString("\n" + m.styles.help.Render(m.helpLine()))

	return body + footer.String() + "\n"
}

func (m Model) viewPanel() string {
	state := m.opts.Panel.State()

	var b strings.Builder
	switch state.Kind {
	case application.PanelDefault:
		b.WriteString(m.styles.panelTitle.Render("Calendar") + "\n\n")
		b.WriteString(m.viewGroups())
		if m.fetching {
			b.WriteString("\n" + m.spinner.View() + " loading...")
		}
	case application.PanelScheduleDetail:
		b.WriteString(m.styles.panelTitle.Render(state.Date) + "\n\n")
		if len(state.Schedules) == 0 {
			b.WriteString(m.styles.empty.Render("no schedules"))
		}
		for _, schedule := range state.Schedules {
			line := "• " + schedule.Title
			if schedule.IsPrivate {
				b.WriteString(m.styles.private.Render(line))
			} else {
				b.WriteString(m.styles.item.Render(line))
			}
			b.WriteString("\n")
		}
	case application.PanelAddSchedule:
		b.WriteString(m.styles.panelTitle.Render("Add · "+state.Date) + "\n\n")
		b.WriteString(m.input.View())
	case application.PanelEditSchedule:
		b.WriteString(m.styles.panelTitle.Render("Edit · "+state.Date) + "\n\n")
		b.WriteString(m.input.View())
	}

	return m.styles.panel.Render(b.String())
}

func (m Model) viewGroups() string {
	var b strings.Builder
	current := m.opts.Groups.Current()

	if current.Personal() {
		b.WriteString(m.styles.activeGrp.Render("▸ personal") + "\n")
	} else {
		b.WriteString(m.styles.group.Render("  personal") + "\n")
	}
	for _, group := range m.opts.GroupTab {
		if !current.Personal() && group.ID == current.GroupID {
			b.WriteString(m.styles.activeGrp.Render("▸ "+group.Name) + "\n")
		} else {
			b.WriteString(m.styles.group.Render("  "+group.Name) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewMonth() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.cursor.Format("January 2006")) + "\n")
	b.WriteString(m.styles.header.Render("Su Mo Tu We Th Fr Sa") + "\n")

	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, m.cursor.Location())
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := m.opts.Now()

	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString("   ")
		col++
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == m.cursor.Day():
			cell = m.styles.cursor.Render(cell)
		case day == today.Day() && m.cursor.Month() == today.Month() && m.cursor.Year() == today.Year():
			cell = m.styles.today.Render(cell)
		default:
			cell = m.styles.day.Render(cell)
		}
		b.WriteString(cell + " ")
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpLine() string {
	state := m.opts.Panel.State()
	switch state.Kind {
	case application.PanelScheduleDetail:
		return "a add · e edit · b back · q quit"
	case application.PanelAddSchedule, application.PanelEditSchedule:
		return "enter submit · esc cancel"
	default:
		return "arrows move · enter day · tab group · q quit"
	}
}
