package models

import "github.com/julianstephens/energycoach/internal/constants"

// ExerciseSchedule is a tagged variant over the exercise mode. OffsetMin is only
// read in evening mode, where it is the gap between dinner and exercise.
type ExerciseSchedule struct {
	Mode      constants.ExerciseMode `json:"mode"`
	OffsetMin int                    `json:"offset_min,omitempty"`
}

// Morning places exercise a fixed lead before breakfast.
func Morning() ExerciseSchedule {
	return ExerciseSchedule{Mode: constants.ExerciseMorning}
}

// Evening places exercise offsetMin minutes after dinner.
func Evening(offsetMin int) ExerciseSchedule {
	return ExerciseSchedule{Mode: constants.ExerciseEvening, OffsetMin: offsetMin}
}

// Custom leaves the exercise slot for the user to set.
func Custom() ExerciseSchedule {
	return ExerciseSchedule{Mode: constants.ExerciseCustom}
}

// NotifyToggles enables or disables reminder categories and the audible cue.
type NotifyToggles struct {
	Meals    bool `json:"meals"`
	Exercise bool `json:"exercise"`
	Quotes   bool `json:"quotes"`
	Sound    bool `json:"sound"`
}

// Settings represents application-wide settings
type Settings struct {
	BreakfastOffsetMin int                 `json:"breakfast_offset_min"` // anchor -> breakfast
	MealIntervalHours  int                 `json:"meal_interval_hours"`  // meal -> meal spacing
	Exercise           ExerciseSchedule    `json:"exercise"`
	QuotePref          constants.QuotePref `json:"quote_pref"`
	Notify             NotifyToggles       `json:"notify"`
	WebhookURL         string              `json:"webhook_url,omitempty"` // optional web delivery target
	CalendarID         string              `json:"calendar_id"`
	Timezone           string              `json:"timezone"` // IANA timezone name or "Local"
}
