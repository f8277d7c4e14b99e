package content

import (
	"testing"

	"github.com/julianstephens/energycoach/internal/models"
)

func TestRenderRecipe(t *testing.T) {
	r := models.Recipe{
		Title:       "Toast",
		Summary:     "Crisp bread.",
		Ingredients: []string{"bread", "butter"},
		Steps:       []string{"Toast bread.", "Butter it."},
	}
	want := "Toast — Crisp bread.\nIngredients: bread, butter\nSteps: 1. Toast bread. 2. Butter it."
	if got := RenderRecipe(r); got != want {
		t.Errorf("RenderRecipe() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderPlan(t *testing.T) {
	p := models.WorkoutPlan{
		Title: "Easy Day",
		Blocks: []models.Block{
			{Label: "Walk", Minutes: 20, Details: "Relaxed"},
			{Label: "Stretch", Minutes: 5, Details: "Calves"},
		},
	}
	want := "Easy Day\n• Walk — 20m (Relaxed)\n• Stretch — 5m (Calves)"
	if got := RenderPlan(p); got != want {
		t.Errorf("RenderPlan() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderQuote(t *testing.T) {
	q := models.Quote{Text: "Be water, my friend.", Author: "Bruce Lee"}
	if got := RenderQuote(q); got != "Be water, my friend. — Bruce Lee" {
		t.Errorf("RenderQuote() = %q", got)
	}
}
