package content

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

// PolynomialHash computes h = h*31 + c (mod 2^32) over the code points of s.
func PolynomialHash(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}

// RequiresTag returns the first "adds-" tag on the list, if any.
func RequiresTag(tags []string) (string, bool) {
	for _, t := range tags {
		if strings.HasPrefix(t, constants.RequiresTagPrefix) {
			return t, true
		}
	}
	return "", false
}

// FilterAvailable keeps items with no requires tag, or with at least one tag
// in available. An empty result falls back to the full pool.
func FilterAvailable(pool []models.Recipe, available []string) []models.Recipe {
	filtered := make([]models.Recipe, 0, len(pool))
	for _, r := range pool {
		if _, requires := RequiresTag(r.Tags); !requires {
			filtered = append(filtered, r)
			continue
		}
		for _, t := range r.Tags {
			if slices.Contains(available, t) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

// SelectDeterministic picks the recipe for a category and day. A nil available
// list disables tag filtering. The bool is false only for an empty pool.
func SelectDeterministic(category, dayKey string, pool []models.Recipe, available []string) (models.Recipe, bool) {
	if len(pool) == 0 {
		return models.Recipe{}, false
	}
	if available != nil {
		pool = FilterAvailable(pool, available)
	}
	idx := PolynomialHash(category+":"+dayKey) % uint32(len(pool))
	return pool[idx], true
}

// SelectPseudoRandom picks by wall-clock seconds. Results are not reproducible.
func SelectPseudoRandom[T any](pool []T, now time.Time) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	idx := now.Unix() % int64(len(pool))
	if idx < 0 {
		idx += int64(len(pool))
	}
	return pool[idx], true
}

// PickQuote draws a quote for the preference. A nil rng uses the global source.
func PickQuote(p Provider, pref constants.QuotePref, rng *rand.Rand) (models.Quote, bool) {
	pool := p.Quotes(pref)
	if len(pool) == 0 {
		return models.Quote{}, false
	}
	var idx int
	if rng != nil {
		idx = rng.IntN(len(pool))
	} else {
		idx = rand.IntN(len(pool))
	}
	return pool[idx], true
}

// Selector fills slot notes from a Provider.
type Selector struct {
	provider Provider
}

func NewSelector(p Provider) *Selector {
	return &Selector{provider: p}
}

// Provider returns the underlying content provider.
func (s *Selector) Provider() Provider {
	return s.provider
}

// Pick returns the deterministic content for a slot on a day. Meals honour the
// available tags; exercise follows the weekday rotation.
func (s *Selector) Pick(kind constants.SlotKind, dayKey string, available []string) (models.ContentPick, bool) {
	if kind == constants.SlotExercise {
		plan, err := s.provider.PlanForDay(dayKey)
		if err != nil {
			return models.ContentPick{}, false
		}
		return models.ContentPick{ID: plan.ID, Text: RenderPlan(plan)}, true
	}
	r, ok := SelectDeterministic(string(kind), dayKey, s.provider.RecipesFor(kind), available)
	if !ok {
		return models.ContentPick{}, false
	}
	return models.ContentPick{ID: r.ID, Text: RenderRecipe(r)}, true
}

// Suggest re-rolls a meal with the pseudo-random strategy. Exercise is
// re-planned through the rotation since there is no random plan pool.
func (s *Selector) Suggest(kind constants.SlotKind, dayKey string, now time.Time) (models.ContentPick, bool) {
	if kind == constants.SlotExercise {
		return s.Pick(kind, dayKey, nil)
	}
	r, ok := SelectPseudoRandom(s.provider.RecipesFor(kind), now)
	if !ok {
		return models.ContentPick{}, false
	}
	return models.ContentPick{ID: r.ID, Text: RenderRecipe(r)}, true
}
