package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/energycoach/internal/content"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("Energy Coach · %s · %s", m.agenda.Day, utils.ClockTime(m.now))),
	}

	if !m.agenda.HasAnchor() {
		sections = append(sections, mutedStyle.Render("Not checked in yet. Press c when you're up."))
	} else {
		sections = append(sections, m.viewSlots())
		if m.agenda.Quote != nil {
			sections = append(sections, quoteStyle.Render(content.RenderQuote(*m.agenda.Quote)))
		}
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("%d reminder(s) pending", m.pending)))
	}

	if len(m.events) > 0 {
		sections = append(sections, m.viewEvents())
	}
	if m.status != "" {
		sections = append(sections, countdownStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewSlots() string {
	rows := make([]string, 0, len(m.slots))
	for i, s := range m.slots {
		headline := firstLine(s.Note)
		if headline == "" {
			headline = models.FallbackBody(s.Kind)
		}
		row := fmt.Sprintf("%s  %-9s %s  %s",
			timeStyle.Render(utils.ClockTime(*s.At)),
			s.Label(),
			countdownStyle.Render(fmt.Sprintf("%-7s", utils.CountdownLabel(*s.At, m.now))),
			headline,
		)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewEvents() string {
	rows := []string{mutedStyle.Render("Calendar")}
	for _, ev := range m.events {
		when := "all day"
		if !ev.AllDay {
			when = utils.ClockTime(ev.Start.In(m.now.Location()))
		}
		rows = append(rows, fmt.Sprintf("  %-7s %s", when, ev.Summary))
	}
	return strings.Join(rows, "\n")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
