package models

import (
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
)

// Event is a read-only calendar entry for today.
type Event struct {
	ID       string     `json:"id"`
	Summary  string     `json:"summary"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
	Location string     `json:"location,omitempty"`
	Link     string     `json:"link,omitempty"`
	AllDay   bool       `json:"all_day"`
}

// Task is a pending reminder registered by the notification scheduler.
type Task struct {
	ID     string             `json:"id"`
	Slot   constants.SlotKind `json:"slot"`
	Day    string             `json:"day"`
	FireAt time.Time          `json:"fire_at"`
	Title  string             `json:"title"`
	Body   string             `json:"body"`
}
