package content

import (
	"fmt"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

// Provider supplies the pools the selector draws from.
type Provider interface {
	RecipesFor(meal constants.SlotKind) []models.Recipe
	PlanForDay(dayKey string) (models.WorkoutPlan, error)
	Quotes(pref constants.QuotePref) []models.Quote
}

// Library is the built-in static content set.
type Library struct{}

func NewLibrary() *Library {
	return &Library{}
}

// RecipesFor returns the recipe pool for a meal slot. Non-meal kinds yield nil.
func (l *Library) RecipesFor(meal constants.SlotKind) []models.Recipe {
	switch meal {
	case constants.SlotBreakfast:
		return breakfasts
	case constants.SlotLunch:
		return lunches
	case constants.SlotDinner:
		return dinners
	}
	return nil
}

// PlanForDay picks the workout of the 4-day rotation for the given date,
// indexed by weekday (Sunday = 0) mod 4.
func (l *Library) PlanForDay(dayKey string) (models.WorkoutPlan, error) {
	d, err := time.Parse(constants.DateFormat, dayKey)
	if err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("invalid day key %q: %w", dayKey, err)
	}
	return rotation[int(d.Weekday())%len(rotation)], nil
}

// Plans returns the full workout rotation.
func (l *Library) Plans() []models.WorkoutPlan {
	return rotation
}

// Quotes returns the quote pool for an author preference.
func (l *Library) Quotes(pref constants.QuotePref) []models.Quote {
	switch pref {
	case constants.QuoteBruce:
		return bruceQuotes
	case constants.QuoteAlan:
		return alanQuotes
	}
	all := make([]models.Quote, 0, len(bruceQuotes)+len(alanQuotes))
	all = append(all, bruceQuotes...)
	return append(all, alanQuotes...)
}
