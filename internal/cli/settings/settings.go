package settings

import (
	"fmt"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	BreakfastOffsetMin *int    `help:"Minutes from check-in to breakfast."`
	MealIntervalHours  *int    `help:"Hours between meals."`
	ExerciseMode       *string `help:"Exercise placement: morning, evening or custom."`
	ExerciseOffsetMin  *int    `help:"Minutes after dinner for evening exercise."`
	Quotes             *string `help:"Quote authors: bruce, alan or both."`

	NotifyMeals    *bool   `help:"Remind at meal times."`
	NotifyExercise *bool   `help:"Remind at exercise time."`
	NotifyQuotes   *bool   `help:"Announce the daily quote at check-in."`
	Sound          *bool   `help:"Play an audible cue with reminders."`
	Webhook        *string `help:"URL that receives reminders as JSON (empty to disable)."`

	CalendarID *string `help:"Google calendar to show events from."`
	Timezone   *string `help:"IANA timezone name or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings()

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Breakfast Offset:      %d min\n", settings.BreakfastOffsetMin)
		ctx.Printf("  Meal Interval:         %d h\n", settings.MealIntervalHours)
		ctx.Printf("  Exercise:              %s\n", settings.Exercise)
		ctx.Printf("  Quotes:                %s\n", settings.QuotePref)
		ctx.Printf("  Calendar:              %s\n", settings.CalendarID)
		ctx.Printf("  Timezone:              %s\n", settings.Timezone)
		ctx.Println("\nNotification Settings:")
		ctx.Printf("  Meals:                 %v\n", settings.Notify.Meals)
		ctx.Printf("  Exercise:              %v\n", settings.Notify.Exercise)
		ctx.Printf("  Quotes:                %v\n", settings.Notify.Quotes)
		ctx.Printf("  Sound:                 %v\n", settings.Notify.Sound)
		webhook := settings.WebhookURL
		if webhook == "" {
			webhook = "(none)"
		}
		ctx.Printf("  Webhook:               %s\n", webhook)
		return nil
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}

	if updated {
		if err := ctx.App().SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func (c *SettingsCmd) apply(settings *models.Settings) (bool, error) {
	updated := false
	if c.BreakfastOffsetMin != nil {
		if *c.BreakfastOffsetMin <= 0 {
			return false, fmt.Errorf("breakfast offset must be positive, got %d", *c.BreakfastOffsetMin)
		}
		settings.BreakfastOffsetMin = *c.BreakfastOffsetMin
		updated = true
	}
	if c.MealIntervalHours != nil {
		if *c.MealIntervalHours <= 0 {
			return false, fmt.Errorf("meal interval must be positive, got %d", *c.MealIntervalHours)
		}
		settings.MealIntervalHours = *c.MealIntervalHours
		updated = true
	}
	if c.ExerciseMode != nil || c.ExerciseOffsetMin != nil {
		mode := string(settings.Exercise.Mode)
		if c.ExerciseMode != nil {
			mode = *c.ExerciseMode
		}
		offset := settings.Exercise.OffsetMin
		if c.ExerciseOffsetMin != nil {
			if *c.ExerciseOffsetMin < 0 {
				return false, fmt.Errorf("exercise offset cannot be negative, got %d", *c.ExerciseOffsetMin)
			}
			offset = *c.ExerciseOffsetMin
		} else if settings.Exercise.Mode != constants.ExerciseEvening {
			offset = constants.DefaultExerciseOffsetMin
		}
		schedule, err := models.ParseExerciseSchedule(mode, offset)
		if err != nil {
			return false, err
		}
		settings.Exercise = schedule
		updated = true
	}
	if c.Quotes != nil {
		switch pref := constants.QuotePref(*c.Quotes); pref {
		case constants.QuoteBruce, constants.QuoteAlan, constants.QuoteBoth:
			settings.QuotePref = pref
		default:
			return false, fmt.Errorf("invalid quote preference %q (expected bruce, alan or both)", *c.Quotes)
		}
		updated = true
	}
	if c.NotifyMeals != nil {
		settings.Notify.Meals = *c.NotifyMeals
		updated = true
	}
	if c.NotifyExercise != nil {
		settings.Notify.Exercise = *c.NotifyExercise
		updated = true
	}
	if c.NotifyQuotes != nil {
		settings.Notify.Quotes = *c.NotifyQuotes
		updated = true
	}
	if c.Sound != nil {
		settings.Notify.Sound = *c.Sound
		updated = true
	}
	if c.Webhook != nil {
		settings.WebhookURL = *c.Webhook
		updated = true
	}
	if c.CalendarID != nil {
		if *c.CalendarID == "" {
			return false, fmt.Errorf("calendar id cannot be empty")
		}
		settings.CalendarID = *c.CalendarID
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return false, fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	return updated, nil
}
