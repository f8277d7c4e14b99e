package models

import (
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
)

// SlotKinds lists the slots in input order. Ordering ties are broken by this order.
var SlotKinds = []constants.SlotKind{
	constants.SlotBreakfast,
	constants.SlotLunch,
	constants.SlotDinner,
	constants.SlotExercise,
}

// MealKinds lists the slots filled from the recipe library.
var MealKinds = []constants.SlotKind{
	constants.SlotBreakfast,
	constants.SlotLunch,
	constants.SlotDinner,
}

// Slot is one timed entry of the agenda.
type Slot struct {
	Kind constants.SlotKind `json:"kind"`
	At   *time.Time         `json:"at,omitempty"`
	Note string             `json:"note,omitempty"`
}

// Label returns the display label of the slot.
func (s Slot) Label() string {
	return SlotLabel(s.Kind)
}

// Agenda is the aggregate for one calendar day.
type Agenda struct {
	Day       string     `json:"day"`                // YYYY-MM-DD
	CheckIn   *time.Time `json:"check_in,omitempty"` // anchor; set only by check-in
	Breakfast Slot       `json:"breakfast"`
	Lunch     Slot       `json:"lunch"`
	Dinner    Slot       `json:"dinner"`
	Exercise  Slot       `json:"exercise"`
	Quote     *Quote     `json:"quote,omitempty"`
	Edited    bool       `json:"edited,omitempty"`
}

// AgendaState is the lifecycle position of an agenda relative to today.
type AgendaState string

const (
	StateEmpty     AgendaState = "empty"
	StateCheckedIn AgendaState = "checked-in"
	StateEdited    AgendaState = "edited"
	StateStale     AgendaState = "stale"
)

// NewAgenda returns an empty agenda shell for the given day.
func NewAgenda(day string) Agenda {
	return Agenda{
		Day:       day,
		Breakfast: Slot{Kind: constants.SlotBreakfast},
		Lunch:     Slot{Kind: constants.SlotLunch},
		Dinner:    Slot{Kind: constants.SlotDinner},
		Exercise:  Slot{Kind: constants.SlotExercise},
	}
}

// Slot returns a pointer to the slot of the given kind, or nil for an unknown kind.
func (a *Agenda) Slot(kind constants.SlotKind) *Slot {
	switch kind {
	case constants.SlotBreakfast:
		return &a.Breakfast
	case constants.SlotLunch:
		return &a.Lunch
	case constants.SlotDinner:
		return &a.Dinner
	case constants.SlotExercise:
		return &a.Exercise
	}
	return nil
}

// Slots returns the four slots in input order.
func (a Agenda) Slots() []Slot {
	return []Slot{a.Breakfast, a.Lunch, a.Dinner, a.Exercise}
}

// HasAnchor reports whether the agenda has been checked in.
func (a Agenda) HasAnchor() bool {
	return a.CheckIn != nil
}

// State reports where the agenda is in its daily cycle.
func (a Agenda) State(today string) AgendaState {
	switch {
	case a.Day != today:
		return StateStale
	case a.CheckIn == nil:
		return StateEmpty
	case a.Edited:
		return StateEdited
	default:
		return StateCheckedIn
	}
}

// SlotLabel returns the display label for a slot kind.
func SlotLabel(kind constants.SlotKind) string {
	switch kind {
	case constants.SlotBreakfast:
		return "Breakfast"
	case constants.SlotLunch:
		return "Lunch"
	case constants.SlotDinner:
		return "Dinner"
	case constants.SlotExercise:
		return "Exercise"
	}
	return string(kind)
}

// NotificationTitle returns the reminder title for a slot kind.
func NotificationTitle(kind constants.SlotKind) string {
	if kind == constants.SlotExercise {
		return "Time to Move"
	}
	return SlotLabel(kind)
}

// FallbackBody is the reminder body used when a slot has no note.
func FallbackBody(kind constants.SlotKind) string {
	if kind == constants.SlotExercise {
		return "Exercise session"
	}
	return SlotLabel(kind) + " time"
}

// ParseSlotKind validates a user supplied slot name.
func ParseSlotKind(s string) (constants.SlotKind, bool) {
	for _, k := range SlotKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// IsMeal reports whether the slot is filled from the recipe library.
func IsMeal(kind constants.SlotKind) bool {
	return kind == constants.SlotBreakfast || kind == constants.SlotLunch || kind == constants.SlotDinner
}
