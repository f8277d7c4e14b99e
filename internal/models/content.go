package models

import "github.com/julianstephens/energycoach/internal/constants"

// Recipe is one entry of the meal library.
type Recipe struct {
	ID          string             `json:"id"`
	Meal        constants.SlotKind `json:"meal"`
	Title       string             `json:"title"`
	Summary     string             `json:"summary"`
	Ingredients []string           `json:"ingredients"`
	Steps       []string           `json:"steps"`
	Tags        []string           `json:"tags,omitempty"`
}

// Block is one timed component of a workout plan.
type Block struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	Details string `json:"details"`
}

// WorkoutPlan is one entry of the exercise rotation.
type WorkoutPlan struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Quote is a motivational quote shown at check-in.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// ContentPick is the selector's result for one slot and day.
type ContentPick struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
