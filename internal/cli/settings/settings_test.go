package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	clk := clock.NewFake()
	clk.Set(time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC))
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:   store,
		Clock:   clk,
		Out:     out,
		Channel: notifier.NoopChannel{},
	}

	t.Cleanup(func() {
		ctx.Close()
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return ctx, out
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings list failed: %v", err)
	}
	for _, want := range []string{"Breakfast Offset:      60 min", "Meal Interval:         4 h", "evening (+60m after dinner)", "Webhook:               (none)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatalf("settings run failed: %v", err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, _ := setupTestDB(t)

	cmd := &SettingsCmd{
		BreakfastOffsetMin: intPtr(45),
		MealIntervalHours:  intPtr(3),
		Quotes:             strPtr("alan"),
		NotifyQuotes:       boolPtr(false),
		Webhook:            strPtr("https://example.com/hook"),
		Timezone:           strPtr("America/New_York"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got := ctx.Settings()
	if got.BreakfastOffsetMin != 45 {
		t.Errorf("BreakfastOffsetMin = %d, want 45", got.BreakfastOffsetMin)
	}
	if got.MealIntervalHours != 3 {
		t.Errorf("MealIntervalHours = %d, want 3", got.MealIntervalHours)
	}
	if got.QuotePref != constants.QuoteAlan {
		t.Errorf("QuotePref = %s, want alan", got.QuotePref)
	}
	if got.Notify.Quotes {
		t.Error("Notify.Quotes should be disabled")
	}
	if !got.Notify.Meals {
		t.Error("Notify.Meals should keep its default")
	}
	if got.WebhookURL != "https://example.com/hook" {
		t.Errorf("WebhookURL = %q", got.WebhookURL)
	}
	if got.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q", got.Timezone)
	}
}

func TestSettingsCmd_Exercise(t *testing.T) {
	tests := []struct {
		name       string
		cmd        SettingsCmd
		wantMode   constants.ExerciseMode
		wantOffset int
	}{
		{"morning", SettingsCmd{ExerciseMode: strPtr("morning")}, constants.ExerciseMorning, 0},
		{"custom", SettingsCmd{ExerciseMode: strPtr("custom")}, constants.ExerciseCustom, 0},
		{"evening offset only", SettingsCmd{ExerciseOffsetMin: intPtr(90)}, constants.ExerciseEvening, 90},
		{"evening with offset", SettingsCmd{ExerciseMode: strPtr("evening"), ExerciseOffsetMin: intPtr(30)}, constants.ExerciseEvening, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("settings update failed: %v", err)
			}
			got := ctx.Settings().Exercise
			if got.Mode != tt.wantMode || got.OffsetMin != tt.wantOffset {
				t.Errorf("Exercise = %+v, want mode %s offset %d", got, tt.wantMode, tt.wantOffset)
			}
		})
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"zero breakfast offset", SettingsCmd{BreakfastOffsetMin: intPtr(0)}},
		{"negative interval", SettingsCmd{MealIntervalHours: intPtr(-1)}},
		{"unknown exercise mode", SettingsCmd{ExerciseMode: strPtr("noon")}},
		{"negative exercise offset", SettingsCmd{ExerciseOffsetMin: intPtr(-5)}},
		{"unknown quotes", SettingsCmd{Quotes: strPtr("seneca")}},
		{"empty calendar", SettingsCmd{CalendarID: strPtr("")}},
		{"bad timezone", SettingsCmd{Timezone: strPtr("Mars/Olympus")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			before := ctx.Settings()
			if err := tt.cmd.Run(ctx); err == nil {
				t.Fatal("expected error")
			}
			if ctx.Settings() != before {
				t.Error("settings changed despite invalid input")
			}
		})
	}
}
