package content

import (
	"fmt"
	"strings"

	"github.com/julianstephens/energycoach/internal/models"
)

// RenderRecipe formats a recipe as a slot note.
func RenderRecipe(r models.Recipe) string {
	steps := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return fmt.Sprintf("%s — %s\nIngredients: %s\nSteps: %s",
		r.Title, r.Summary, strings.Join(r.Ingredients, ", "), strings.Join(steps, " "))
}

// RenderPlan formats a workout plan as a slot note.
func RenderPlan(p models.WorkoutPlan) string {
	var b strings.Builder
	b.WriteString(p.Title)
	for _, blk := range p.Blocks {
		fmt.Fprintf(&b, "\n• %s — %dm (%s)", blk.Label, blk.Minutes, blk.Details)
	}
	return b.String()
}

// RenderQuote formats a quote as a notification body.
func RenderQuote(q models.Quote) string {
	return q.Text + " — " + q.Author
}
