package models

import (
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
)

// PantryItem tracks availability of one ingredient.
type PantryItem struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Category  constants.PantryCategory `json:"category"`
	Status    constants.PantryStatus   `json:"status"`
	RecipeTag string                   `json:"recipe_tag,omitempty"` // links to Recipe tags e.g. "adds-salmon"
	UpdatedAt time.Time                `json:"updated_at"`
}
