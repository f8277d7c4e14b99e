package scheduler

import (
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

// Schedule holds the four slot instants derived from one anchor.
// Exercise is nil when the exercise mode is custom.
type Schedule struct {
	Breakfast time.Time
	Lunch     time.Time
	Dinner    time.Time
	Exercise  *time.Time
}

// At returns the instant for a slot kind, or nil if the slot is unset.
func (s Schedule) At(kind constants.SlotKind) *time.Time {
	var t time.Time
	switch kind {
	case constants.SlotBreakfast:
		t = s.Breakfast
	case constants.SlotLunch:
		t = s.Lunch
	case constants.SlotDinner:
		t = s.Dinner
	case constants.SlotExercise:
		if s.Exercise == nil {
			return nil
		}
		t = *s.Exercise
	default:
		return nil
	}
	return &t
}

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// ComputeSchedule derives the slot instants from the anchor. It never reads the
// current time, so equal inputs always yield equal schedules.
func (s *Scheduler) ComputeSchedule(anchor time.Time, settings models.Settings) Schedule {
	interval := settings.MealIntervalHours * 60

	sched := Schedule{}
	sched.Breakfast = utils.AddOffset(anchor, settings.BreakfastOffsetMin)
	sched.Lunch = utils.AddOffset(sched.Breakfast, interval)
	sched.Dinner = utils.AddOffset(sched.Lunch, interval)

	switch settings.Exercise.Mode {
	case constants.ExerciseMorning:
		ex := utils.AddOffset(sched.Breakfast, -constants.MorningExerciseLeadMin)
		sched.Exercise = &ex
	case constants.ExerciseEvening:
		ex := utils.AddOffset(sched.Dinner, settings.Exercise.OffsetMin)
		sched.Exercise = &ex
	}

	return sched
}

// Downstream returns the slots that follow kind in the meal cascade, in order.
// Dinner and exercise have none.
func Downstream(kind constants.SlotKind) []constants.SlotKind {
	switch kind {
	case constants.SlotBreakfast:
		return []constants.SlotKind{constants.SlotLunch, constants.SlotDinner}
	case constants.SlotLunch:
		return []constants.SlotKind{constants.SlotDinner}
	}
	return nil
}
