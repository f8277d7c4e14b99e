package reminder

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/content"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
)

type handle struct {
	task   models.Task
	sound  bool
	cancel chan struct{}
}

// Scheduler arranges one pending reminder per slot. Arranging a slot again
// cancels its unfired predecessor, and a slot instant that already fired
// today is not armed again.
type Scheduler struct {
	clock   clock.Clock
	channel notifier.Channel
	cue     notifier.Cue

	mu        sync.Mutex
	day       string
	handles   map[constants.SlotKind]*handle
	delivered map[constants.SlotKind]time.Time
	wg        sync.WaitGroup
}

func New(clk clock.Clock, ch notifier.Channel, cue notifier.Cue) *Scheduler {
	if ch == nil {
		ch = notifier.NoopChannel{}
	}
	if cue == nil {
		cue = notifier.NoopCue{}
	}
	return &Scheduler{
		clock:     clk,
		channel:   ch,
		cue:       cue,
		handles:   make(map[constants.SlotKind]*handle),
		delivered: make(map[constants.SlotKind]time.Time),
	}
}

func enabled(kind constants.SlotKind, toggles models.NotifyToggles) bool {
	if kind == constants.SlotExercise {
		return toggles.Exercise
	}
	return toggles.Meals
}

// Arrange replaces the pending reminders with one per timed, enabled slot of
// the agenda and returns the tasks it registered.
func (s *Scheduler) Arrange(agenda models.Agenda, settings models.Settings) []models.Task {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.day != agenda.Day {
		clear(s.delivered)
	}
	s.day = agenda.Day
	var tasks []models.Task
	for _, kind := range models.SlotKinds {
		s.cancelLocked(kind)

		slot := agenda.Slot(kind)
		if slot == nil || slot.At == nil || !enabled(kind, settings.Notify) {
			continue
		}
		if done, ok := s.delivered[kind]; ok && done.Equal(*slot.At) {
			continue
		}

		body := slot.Note
		if body == "" {
			body = models.FallbackBody(kind)
		}
		h := &handle{
			task: models.Task{
				ID:     uuid.New().String(),
				Slot:   kind,
				Day:    agenda.Day,
				FireAt: *slot.At,
				Title:  models.NotificationTitle(kind),
				Body:   body,
			},
			sound:  settings.Notify.Sound,
			cancel: make(chan struct{}),
		}
		s.handles[kind] = h

		delay := slot.At.Sub(now)
		if delay < 0 {
			delay = 0
		}
		s.start(h, delay, now)
		tasks = append(tasks, h.task)

		logger.Debug("Arranged reminder", "slot", kind, "fire_at", h.task.FireAt, "delay", delay)
	}
	return tasks
}

// start creates the timer before spawning so the wait is anchored to now.
func (s *Scheduler) start(h *handle, delay time.Duration, now time.Time) {
	var fire <-chan time.Time
	var timer *clock.Timer
	if delay > 0 {
		timer = s.clock.NewTimer(delay)
		fire = timer.C
	} else {
		immediate := make(chan time.Time, 1)
		immediate <- now
		fire = immediate
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if timer != nil {
			defer timer.Stop()
		}
		select {
		case <-h.cancel:
			return
		case <-fire:
		}
		s.fire(h)
	}()
}

func (s *Scheduler) fire(h *handle) {
	s.mu.Lock()
	current, ok := s.handles[h.task.Slot]
	if !ok || current != h {
		s.mu.Unlock()
		return
	}
	delete(s.handles, h.task.Slot)
	if h.task.Day != s.day {
		s.mu.Unlock()
		logger.Debug("Dropping reminder from a previous day", "slot", h.task.Slot, "day", h.task.Day)
		return
	}
	s.delivered[h.task.Slot] = h.task.FireAt
	s.mu.Unlock()

	s.deliver(h.task.Title, h.task.Body, h.sound)
}

func (s *Scheduler) deliver(title, body string, sound bool) {
	if sound {
		s.cue.Emit(constants.CueDurationMs, constants.CueFrequencyHz)
	}
	if err := s.channel.Deliver(title, body); err != nil {
		logger.Warn("Notification delivery failed", "channel", s.channel.Name(), "title", title, "error", err)
	}
}

func (s *Scheduler) cancelLocked(kind constants.SlotKind) {
	if h, ok := s.handles[kind]; ok {
		close(h.cancel)
		delete(s.handles, kind)
	}
}

// CancelAll drops every pending reminder and forgets the current day along
// with what it delivered.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for kind := range s.handles {
		s.cancelLocked(kind)
	}
	clear(s.delivered)
	s.day = ""
}

// Pending returns the unfired tasks ordered by fire time.
func (s *Scheduler) Pending() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, 0, len(s.handles))
	for _, h := range s.handles {
		tasks = append(tasks, h.task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].FireAt.Equal(tasks[j].FireAt) {
			return tasks[i].FireAt.Before(tasks[j].FireAt)
		}
		return slices.Index(models.SlotKinds, tasks[i].Slot) < slices.Index(models.SlotKinds, tasks[j].Slot)
	})
	return tasks
}

// AnnounceQuote delivers the daily quote immediately when quotes are enabled.
func (s *Scheduler) AnnounceQuote(q *models.Quote, settings models.Settings) bool {
	if q == nil || !settings.Notify.Quotes {
		return false
	}
	s.deliver(constants.QuoteTitle, content.RenderQuote(*q), false)
	return true
}

// Close cancels everything and waits for timer goroutines to exit.
func (s *Scheduler) Close() {
	s.CancelAll()
	s.wg.Wait()
}
