package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/energycoach/internal/constants"
)

// DefaultSettings returns the canonical default settings instance.
func DefaultSettings() Settings {
	return Settings{
		BreakfastOffsetMin: constants.DefaultBreakfastOffsetMin,
		MealIntervalHours:  constants.DefaultMealIntervalHours,
		Exercise:           Evening(constants.DefaultExerciseOffsetMin),
		QuotePref:          constants.DefaultQuotePref,
		Notify: NotifyToggles{
			Meals:    constants.DefaultNotifyMeals,
			Exercise: constants.DefaultNotifyExercise,
			Quotes:   constants.DefaultNotifyQuotes,
			Sound:    constants.DefaultNotifySound,
		},
		CalendarID: constants.DefaultCalendarID,
		Timezone:   constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.BreakfastOffsetMin == 0 {
		settings.BreakfastOffsetMin = constants.DefaultBreakfastOffsetMin
	}
	if settings.MealIntervalHours == 0 {
		settings.MealIntervalHours = constants.DefaultMealIntervalHours
	}
	switch settings.Exercise.Mode {
	case constants.ExerciseMorning, constants.ExerciseCustom:
		settings.Exercise.OffsetMin = 0
	case constants.ExerciseEvening:
	default:
		settings.Exercise = Evening(constants.DefaultExerciseOffsetMin)
	}
	if settings.QuotePref == "" {
		settings.QuotePref = constants.DefaultQuotePref
	}
	if settings.CalendarID == "" {
		settings.CalendarID = constants.DefaultCalendarID
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// ParseExerciseSchedule builds the exercise variant from a mode name and an
// optional evening offset.
func ParseExerciseSchedule(mode string, offsetMin int) (ExerciseSchedule, error) {
	switch constants.ExerciseMode(mode) {
	case constants.ExerciseMorning:
		return Morning(), nil
	case constants.ExerciseEvening:
		return Evening(offsetMin), nil
	case constants.ExerciseCustom:
		return Custom(), nil
	default:
		return ExerciseSchedule{}, fmt.Errorf("invalid exercise mode %q (expected morning, evening or custom)", mode)
	}
}

// String renders the exercise variant for display.
func (e ExerciseSchedule) String() string {
	if e.Mode == constants.ExerciseEvening {
		return string(e.Mode) + " (+" + strconv.Itoa(e.OffsetMin) + "m after dinner)"
	}
	return string(e.Mode)
}
