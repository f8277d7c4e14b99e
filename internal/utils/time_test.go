package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/energycoach/internal/models"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: ""},
		{name: "Local returns local", timezone: "Local"},
		{name: "valid timezone UTC", timezone: "UTC"},
		{name: "valid timezone Europe/London", timezone: "Europe/London"},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestLocationFromSettingsFallsBack(t *testing.T) {
	s := models.DefaultSettings()
	s.Timezone = "Not/AZone"
	if got := LocationFromSettings(s); got != time.Local {
		t.Errorf("LocationFromSettings() = %v, want time.Local", got)
	}
	s.Timezone = "UTC"
	if got := LocationFromSettings(s); got.String() != "UTC" {
		t.Errorf("LocationFromSettings() = %v, want UTC", got)
	}
}

func TestAddOffset(t *testing.T) {
	base := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"zero", 0, "07:00"},
		{"forward", 60, "08:00"},
		{"backward", -30, "06:30"},
		{"across midnight", 17*60 + 30, "00:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClockTime(AddOffset(base, tt.minutes)); got != tt.want {
				t.Errorf("AddOffset(%d) = %s, want %s", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "00:00"},
		{time.Date(2024, 1, 1, 9, 5, 59, 0, time.UTC), "09:05"},
		{time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), "23:59"},
	}
	for _, tt := range tests {
		if got := ClockTime(tt.in); got != tt.want {
			t.Errorf("ClockTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithClockTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	base := time.Date(2024, 6, 1, 8, 15, 42, 123, loc)

	got, err := WithClockTime(base, "09:30")
	if err != nil {
		t.Fatalf("WithClockTime() error = %v", err)
	}
	want := time.Date(2024, 6, 1, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("WithClockTime() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("WithClockTime() location = %v, want %v", got.Location(), loc)
	}

	for _, bad := range []string{"", "25:00", "12:60", "noon", "12-30"} {
		if _, err := WithClockTime(base, bad); err == nil {
			t.Errorf("WithClockTime(%q) expected error", bad)
		}
	}
}

func TestCountdownLabel(t *testing.T) {
	now := time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		offset time.Duration
		want   string
	}{
		{"past", -10 * time.Minute, "now"},
		{"exactly now", 0, "now"},
		{"inside window", 30 * time.Second, "now"},
		{"just outside window", 31 * time.Second, "1m"},
		{"minutes", 59 * time.Minute, "59m"},
		{"rounds up", 59*time.Minute + 40*time.Second, "1h 00m"},
		{"hours and minutes", 65 * time.Minute, "1h 05m"},
		{"many hours", 10*time.Hour + 1*time.Minute, "10h 01m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountdownLabel(now.Add(tt.offset), now); got != tt.want {
				t.Errorf("CountdownLabel(+%v) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2024-02-29", "18:45", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime() error = %v", err)
	}
	if want := time.Date(2024, 2, 29, 18, 45, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("CombineDateAndTime() = %v, want %v", got, want)
	}
	if _, err := CombineDateAndTime("2024-13-01", "10:00", time.UTC); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestDayKey(t *testing.T) {
	if got := DayKey(time.Date(2024, 7, 4, 23, 59, 0, 0, time.UTC)); got != "2024-07-04" {
		t.Errorf("DayKey() = %q", got)
	}
}
