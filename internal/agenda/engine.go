// Package agenda owns the daily agenda lifecycle: check-in, slot edits with
// downstream cascade, content fill and day rollover.
package agenda

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/content"
	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/scheduler"
	"github.com/julianstephens/energycoach/internal/utils"
)

type Engine struct {
	scheduler *scheduler.Scheduler
	selector  *content.Selector
	rng       *rand.Rand
}

// NewEngine wires an engine. A nil rng draws quotes from the global source.
func NewEngine(sched *scheduler.Scheduler, sel *content.Selector, rng *rand.Rand) *Engine {
	if sched == nil {
		sched = scheduler.New()
	}
	if sel == nil {
		sel = content.NewSelector(content.NewLibrary())
	}
	return &Engine{scheduler: sched, selector: sel, rng: rng}
}

// CheckIn starts the day at now. It is the only operation that sets the
// anchor. Notes are left empty for Fill.
func (e *Engine) CheckIn(now time.Time, settings models.Settings) models.Agenda {
	now = now.In(utils.LocationFromSettings(settings))
	a := models.NewAgenda(utils.DayKey(now))
	a.CheckIn = &now

	sched := e.scheduler.ComputeSchedule(now, settings)
	for _, kind := range models.SlotKinds {
		a.Slot(kind).At = sched.At(kind)
	}

	if q, ok := content.PickQuote(e.selector.Provider(), settings.QuotePref, e.rng); ok {
		a.Quote = &q
	}
	return a
}

// EditSlotTime moves a slot to hhmm on the check-in day. With cascade set,
// breakfast pushes lunch and dinner and lunch pushes dinner; nothing moves
// upstream. Without an anchor, or with a malformed time, the agenda is
// returned unchanged along with the reason.
func (e *Engine) EditSlotTime(a models.Agenda, kind constants.SlotKind, hhmm string, cascade bool, settings models.Settings) (models.Agenda, error) {
	if !a.HasAnchor() {
		return a, fmt.Errorf("%w: check in before editing times", apperrors.ErrPreconditionNotMet)
	}
	slot := a.Slot(kind)
	if slot == nil {
		return a, fmt.Errorf("unknown slot %q", kind)
	}

	base := a.CheckIn.In(utils.LocationFromSettings(settings))
	at, err := utils.WithClockTime(base, hhmm)
	if err != nil {
		return a, err
	}
	slot.At = &at

	if cascade {
		prev := at
		for _, next := range scheduler.Downstream(kind) {
			t := utils.AddOffset(prev, settings.MealIntervalHours*60)
			a.Slot(next).At = &t
			prev = t
		}
	}
	a.Edited = true
	return a, nil
}

// EditSlotNote replaces a slot's note verbatim.
func (e *Engine) EditSlotNote(a models.Agenda, kind constants.SlotKind, text string) (models.Agenda, error) {
	slot := a.Slot(kind)
	if slot == nil {
		return a, fmt.Errorf("unknown slot %q", kind)
	}
	slot.Note = text
	a.Edited = true
	return a, nil
}

// OrderedSlots returns the timed slots by ascending time, ties in slot order.
func OrderedSlots(a models.Agenda) []models.Slot {
	slots := make([]models.Slot, 0, len(models.SlotKinds))
	for _, s := range a.Slots() {
		if s.At != nil {
			slots = append(slots, s)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].At.Before(*slots[j].At)
	})
	return slots
}

// NextSlot returns the first timed slot at or after now.
func NextSlot(a models.Agenda, now time.Time) (models.Slot, bool) {
	for _, s := range OrderedSlots(a) {
		if !s.At.Before(now) {
			return s, true
		}
	}
	return models.Slot{}, false
}

// NeedsFill reports whether a checked-in agenda has an empty note.
func NeedsFill(a models.Agenda) bool {
	if !a.HasAnchor() {
		return false
	}
	for _, s := range a.Slots() {
		if s.Note == "" {
			return true
		}
	}
	return false
}

// Fill writes the day's content into empty notes only. For an unchanged
// day and tag set it always produces the same notes.
func (e *Engine) Fill(a models.Agenda, available []string) models.Agenda {
	if !NeedsFill(a) {
		return a
	}
	for _, kind := range models.SlotKinds {
		slot := a.Slot(kind)
		if slot.Note != "" {
			continue
		}
		if pick, ok := e.selector.Pick(kind, a.Day, available); ok {
			slot.Note = pick.Text
		}
	}
	return a
}

// Reroll swaps a slot's note for a fresh suggestion.
func (e *Engine) Reroll(a models.Agenda, kind constants.SlotKind, now time.Time) (models.Agenda, error) {
	slot := a.Slot(kind)
	if slot == nil {
		return a, fmt.Errorf("unknown slot %q", kind)
	}
	day := a.Day
	if day == "" {
		day = utils.DayKey(now)
	}
	pick, ok := e.selector.Suggest(kind, day, now)
	if !ok {
		return a, fmt.Errorf("no suggestions for %s", kind)
	}
	slot.Note = pick.Text
	a.Edited = true
	return a, nil
}
