package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/energycoach/internal/agenda"
	"github.com/julianstephens/energycoach/internal/content"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	dueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noteStyle   = lipgloss.NewStyle().PaddingLeft(4)
)

// PrintAgenda writes the agenda in slot order. Notes are printed in full when
// verbose is set, otherwise only their first line.
func PrintAgenda(w io.Writer, a models.Agenda, now time.Time, verbose bool) {
	fmt.Fprintln(w, headerStyle.Render("Agenda for "+a.Day))
	if !a.HasAnchor() {
		fmt.Fprintln(w, mutedStyle.Render("Not checked in yet. Run 'energycoach checkin' when you're up."))
		return
	}
	fmt.Fprintln(w, mutedStyle.Render("Checked in at "+utils.ClockTime(a.CheckIn.In(now.Location()))))
	fmt.Fprintln(w)

	for _, s := range agenda.OrderedSlots(a) {
		at := s.At.In(now.Location())
		countdown := "done"
		if !at.Before(now.Add(-time.Minute)) {
			countdown = utils.CountdownLabel(at, now)
		}
		fmt.Fprintf(w, "%s  %-9s %s\n", timeStyle.Render(utils.ClockTime(at)), s.Label(), dueStyle.Render(countdown))

		note := s.Note
		if note == "" {
			note = models.FallbackBody(s.Kind)
		}
		if !verbose {
			note, _, _ = strings.Cut(note, "\n")
		}
		fmt.Fprintln(w, noteStyle.Render(note))
	}

	if a.Quote != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, content.RenderQuote(*a.Quote))
	}
}

// PrintEvents writes today's calendar entries; nothing when there are none.
func PrintEvents(w io.Writer, events []models.Event, loc *time.Location) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Calendar"))
	for _, ev := range events {
		when := "all day"
		if !ev.AllDay {
			when = utils.ClockTime(ev.Start.In(loc))
		}
		fmt.Fprintf(w, "  %-7s %s\n", when, ev.Summary)
	}
}
