package pantry

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	s := models.DefaultSettings()
	s.Timezone = "UTC"
	if err := storage.SetJSON(store, constants.KeySettings, s); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	clk := clock.NewFake()
	clk.Set(time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC))
	out := &bytes.Buffer{}
	ctx := &cli.Context{Store: store, Clock: clk, Out: out, Channel: notifier.NoopChannel{}}
	t.Cleanup(func() {
		ctx.Close()
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return ctx, out
}

func find(items []models.PantryItem, id string) (models.PantryItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.PantryItem{}, false
}

func TestPantryListCmd(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&PantryListCmd{Category: "protein"}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Eggs") || strings.Contains(out.String(), "Blueberries") {
		t.Errorf("unexpected protein listing:\n%s", out.String())
	}

	if err := (&PantryListCmd{Category: "snacks"}).Run(ctx); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestPantryCycleCmd(t *testing.T) {
	ctx, out := setupTestDB(t)

	want := []constants.PantryStatus{constants.PantryLow, constants.PantryOut, constants.PantryFull}
	for i, status := range want {
		if err := (&PantryCycleCmd{ID: "eggs"}).Run(ctx); err != nil {
			t.Fatalf("cycle %d failed: %v", i, err)
		}
		item, ok := find(ctx.App().Pantry(), "eggs")
		if !ok || item.Status != status {
			t.Errorf("after cycle %d status = %s, want %s", i, item.Status, status)
		}
	}
	if !strings.Contains(out.String(), "Eggs is now low") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	if err := (&PantryCycleCmd{ID: "caviar"}).Run(ctx); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestPantrySetAndShopping(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&PantrySetCmd{ID: "eggs", Status: "out"}).Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := (&PantrySetCmd{ID: "chicken", Status: "low"}).Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := (&PantrySetCmd{ID: "eggs", Status: "gone"}).Run(ctx); err == nil {
		t.Error("expected error for invalid status")
	}

	out.Reset()
	if err := (&PantryShoppingCmd{}).Run(ctx); err != nil {
		t.Fatalf("shopping failed: %v", err)
	}
	want := "Shopping List — 5/6/2024\n\n[~] Chicken\n[ ] Eggs\n"
	if out.String() != want {
		t.Errorf("shopping output = %q, want %q", out.String(), want)
	}

	if err := (&PantryClearCmd{}).Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if item, _ := find(ctx.App().Pantry(), "eggs"); item.Status != constants.PantryFull {
		t.Errorf("eggs status after clear = %s", item.Status)
	}
	if item, _ := find(ctx.App().Pantry(), "chicken"); item.Status != constants.PantryLow {
		t.Errorf("chicken status after clear = %s, want low", item.Status)
	}
}

func TestPantryAddCmd(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&PantryAddCmd{Name: "Tofu", Category: "protein", Tag: "tofu"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	var added models.PantryItem
	for _, item := range ctx.App().Pantry() {
		if item.Name == "Tofu" {
			added = item
		}
	}
	if added.ID == "" || added.RecipeTag != "adds-tofu" || added.Category != constants.CategoryProtein {
		t.Errorf("added item = %+v", added)
	}
	if !strings.Contains(out.String(), added.ID) {
		t.Errorf("output should include the new ID:\n%s", out.String())
	}

	if err := (&PantryAddCmd{Name: " ", Category: "pantry"}).Run(ctx); err == nil {
		t.Error("expected error for blank name")
	}
	if err := (&PantryAddCmd{Name: "Kelp", Category: "seaweed"}).Run(ctx); err == nil {
		t.Error("expected error for unknown category")
	}
}
