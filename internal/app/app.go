// Package app is the composition root: it owns the store, the agenda engine,
// the reminder scheduler and the external channels, and persists every
// change to the agenda.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/agenda"
	"github.com/julianstephens/energycoach/internal/calendar"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/content"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/pantry"
	"github.com/julianstephens/energycoach/internal/reminder"
	"github.com/julianstephens/energycoach/internal/scheduler"
	"github.com/julianstephens/energycoach/internal/sleep"
	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/utils"
)

// Options carries the externally probed capabilities. Zero values fall back
// to no-op implementations.
type Options struct {
	Channel  notifier.Channel
	Cue      notifier.Cue
	Calendar calendar.Source
	Content  content.Provider
	Rand     *rand.Rand
}

type App struct {
	Store     storage.Provider
	Clock     clock.Clock
	Engine    *agenda.Engine
	Monitor   *agenda.Monitor
	Reminders *reminder.Scheduler
	Channel   notifier.Channel
	Cue       notifier.Cue
	Calendar  calendar.Source

	live     bool
	arranged string
}

func New(store storage.Provider, clk clock.Clock, opts Options) *App {
	if clk == nil {
		clk = clock.New()
	}
	if opts.Channel == nil {
		opts.Channel = notifier.NoopChannel{}
	}
	if opts.Cue == nil {
		opts.Cue = notifier.NoopCue{}
	}
	if opts.Content == nil {
		opts.Content = content.NewLibrary()
	}

	a := &App{
		Store:     store,
		Clock:     clk,
		Engine:    agenda.NewEngine(scheduler.New(), content.NewSelector(opts.Content), opts.Rand),
		Reminders: reminder.New(clk, opts.Channel, opts.Cue),
		Channel:   opts.Channel,
		Cue:       opts.Cue,
		Calendar:  opts.Calendar,
	}
	a.Monitor = agenda.NewMonitor(a.onRollover)
	return a
}

func (a *App) onRollover(from, to string) {
	a.Reminders.CancelAll()
	a.Sleep(to)
}

// StartReminders makes agenda changes re-arrange pending reminders, including
// changes another process wrote to the store. One-shot commands leave it off
// so that exiting never races a due reminder.
func (a *App) StartReminders() {
	a.live = true
	a.Today()
}

func (a *App) Close() {
	a.live = false
	a.Reminders.Close()
}

func (a *App) Settings() models.Settings {
	s := models.DefaultSettings()
	storage.GetJSON(a.Store, constants.KeySettings, &s)
	models.ApplyDefaultSettings(&s)
	return s
}

func (a *App) SaveSettings(s models.Settings) error {
	if err := storage.SetJSON(a.Store, constants.KeySettings, s); err != nil {
		return err
	}
	a.Today()
	return nil
}

// Now is the clock's time in the configured zone.
func (a *App) Now() time.Time {
	return a.Clock.Now().In(utils.LocationFromSettings(a.Settings()))
}

func (a *App) TodayKey() string {
	return utils.DayKey(a.Now())
}

func (a *App) Pantry() []models.PantryItem {
	items := pantry.DefaultPantry(a.Now())
	storage.GetJSON(a.Store, constants.KeyPantry, &items)
	return items
}

// SavePantry persists items and refills any empty notes with the new tags.
func (a *App) SavePantry(items []models.PantryItem) error {
	if err := storage.SetJSON(a.Store, constants.KeyPantry, items); err != nil {
		return err
	}
	a.Today()
	return nil
}

// Sleep returns the record for day, writing a default when none is stored.
func (a *App) Sleep(day string) models.SleepEntry {
	entry := sleep.Default(day, a.Now())
	if !storage.GetJSON(a.Store, sleep.Key(day), &entry) {
		_ = storage.SetJSON(a.Store, sleep.Key(day), entry)
	}
	return entry
}

func (a *App) SaveSleep(e models.SleepEntry) error {
	return storage.SetJSON(a.Store, sleep.Key(e.Day), e)
}

func (a *App) loadAgenda() models.Agenda {
	ag := models.NewAgenda(a.TodayKey())
	storage.GetJSON(a.Store, constants.KeyAgenda, &ag)
	return ag
}

func (a *App) saveAgenda(ag models.Agenda) {
	_ = storage.SetJSON(a.Store, constants.KeyAgenda, ag)
}

// Today reads the agenda, rolling it over when the day changed and filling
// empty notes from the library.
func (a *App) Today() models.Agenda {
	ag := a.loadAgenda()
	ag, rolled := a.Monitor.Check(ag, a.TodayKey())
	dirty := rolled
	if agenda.NeedsFill(ag) {
		ag = a.Engine.Fill(ag, pantry.AvailableTags(a.Pantry()))
		dirty = true
	}
	if dirty {
		a.saveAgenda(ag)
	}
	if a.live && arrangement(ag, a.Settings().Notify) != a.arranged {
		a.rearrange(ag)
	}
	return ag
}

// CheckIn anchors today at the current time and announces the quote.
func (a *App) CheckIn() models.Agenda {
	settings := a.Settings()
	a.Today()
	ag := a.Engine.CheckIn(a.Now(), settings)
	ag = a.Engine.Fill(ag, pantry.AvailableTags(a.Pantry()))
	a.saveAgenda(ag)
	a.rearrange(ag)
	a.Reminders.AnnounceQuote(ag.Quote, settings)
	return ag
}

func (a *App) EditTime(kind constants.SlotKind, hhmm string, cascade bool) (models.Agenda, error) {
	ag, err := a.Engine.EditSlotTime(a.Today(), kind, hhmm, cascade, a.Settings())
	if err != nil {
		logger.Debug("Time edit ignored", "slot", kind, "time", hhmm, "error", err)
		return ag, err
	}
	return a.commit(ag), nil
}

func (a *App) EditNote(kind constants.SlotKind, text string) (models.Agenda, error) {
	ag, err := a.Engine.EditSlotNote(a.Today(), kind, text)
	if err != nil {
		return ag, err
	}
	return a.commit(ag), nil
}

func (a *App) Reroll(kind constants.SlotKind) (models.Agenda, error) {
	ag, err := a.Engine.Reroll(a.Today(), kind, a.Clock.Now())
	if err != nil {
		return ag, err
	}
	return a.commit(ag), nil
}

func (a *App) commit(ag models.Agenda) models.Agenda {
	a.saveAgenda(ag)
	a.rearrange(ag)
	return ag
}

func (a *App) rearrange(ag models.Agenda) {
	if !a.live {
		return
	}
	settings := a.Settings()
	tasks := a.Reminders.Arrange(ag, settings)
	a.arranged = arrangement(ag, settings.Notify)
	logger.Debug("Reminders arranged", "day", ag.Day, "count", len(tasks))
}

// arrangement fingerprints everything the pending reminders were built from.
func arrangement(ag models.Agenda, toggles models.NotifyToggles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%+v", ag.Day, toggles)
	if ag.CheckIn != nil {
		fmt.Fprintf(&b, "|%d", ag.CheckIn.Unix())
	}
	for _, kind := range models.SlotKinds {
		slot := ag.Slot(kind)
		if slot == nil {
			continue
		}
		fmt.Fprintf(&b, "|%s=", kind)
		if slot.At != nil {
			fmt.Fprintf(&b, "%d", slot.At.Unix())
		}
		fmt.Fprintf(&b, ":%q", slot.Note)
	}
	return b.String()
}

// Events lists today's calendar events, empty on any failure.
func (a *App) Events(ctx context.Context) []models.Event {
	return calendar.FetchToday(ctx, a.Calendar, a.Now())
}
