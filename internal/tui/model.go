package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/energycoach/internal/agenda"
	"github.com/julianstephens/energycoach/internal/app"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
)

type TickMsg time.Time

type eventsMsg []models.Event

// Model is the live agenda view. Every tick re-reads the agenda, which also
// runs the day rollover check.
type Model struct {
	app      *app.App
	keys     KeyMap
	help     help.Model
	agenda   models.Agenda
	slots    []models.Slot
	events   []models.Event
	pending  int
	now      time.Time
	cursor   int
	status   string
	quitting bool
}

func NewModel(a *app.App) Model {
	m := Model{
		app:  a,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	m.refresh()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(constants.WatchTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) fetchEvents() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		return eventsMsg(a.Events(context.Background()))
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.fetchEvents())
}

func (m *Model) refresh() {
	prevDay := m.agenda.Day
	m.agenda = m.app.Today()
	m.slots = agenda.OrderedSlots(m.agenda)
	m.pending = len(m.app.Reminders.Pending())
	m.now = m.app.Now()
	if prevDay != "" && prevDay != m.agenda.Day {
		m.status = "New day: check in when you're up."
		m.events = nil
	}
	if m.cursor >= len(m.slots) {
		m.cursor = max(0, len(m.slots)-1)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		day := m.agenda.Day
		m.refresh()
		if day != m.agenda.Day {
			return m, tea.Batch(tick(), m.fetchEvents())
		}
		return m, tick()

	case eventsMsg:
		m.events = msg
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.slots)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.CheckIn):
			m.app.CheckIn()
			m.status = "Checked in."
			m.refresh()
		case key.Matches(msg, m.keys.Reroll):
			if m.cursor < len(m.slots) {
				kind := m.slots[m.cursor].Kind
				if _, err := m.app.Reroll(kind); err != nil {
					logger.Warn("Reroll failed", "slot", kind, "error", err)
					m.status = err.Error()
				} else {
					m.status = "New " + models.SlotLabel(kind) + " suggestion."
				}
				m.refresh()
			}
		}
	}
	return m, nil
}
