package sleep

import (
	"fmt"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

const (
	DefaultQuality = 7
	maxSleep       = 16 * time.Hour
)

// Key returns the storage key for the record of day.
func Key(day string) string {
	return constants.KeySleepPrefix + day
}

// Default returns an empty record for day stamped with now's UTC offset.
func Default(day string, now time.Time) models.SleepEntry {
	_, offset := now.Zone()
	return models.SleepEntry{
		Day:         day,
		Quality:     DefaultQuality,
		TZOffsetMin: offset / 60,
	}
}

// MinutesSlept reports the time between bed and wake. A wake at or before
// bed is taken to be on the following day. Results outside (0, 16h] are
// rejected.
func MinutesSlept(e models.SleepEntry) (int, bool) {
	if e.Bed == nil || e.Wake == nil {
		return 0, false
	}
	start, end := *e.Bed, *e.Wake
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	d := end.Sub(start).Round(time.Minute)
	if d <= 0 || d > maxSleep {
		return 0, false
	}
	return int(d / time.Minute), true
}

// FormatDuration renders minutes as "7h 05m", or "—" when unknown.
func FormatDuration(mins int, ok bool) string {
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

// WakeDay returns the day key the record belongs to: the wake day, or the
// day of now when no wake time is known.
func WakeDay(wake *time.Time, now time.Time) string {
	if wake != nil {
		return utils.DayKey(*wake)
	}
	return utils.DayKey(now)
}

// Update applies the provided fields to e. Clock times are placed on the
// record's day in loc.
func Update(e models.SleepEntry, bed, wake *string, quality *int, dream *string, loc *time.Location) (models.SleepEntry, error) {
	if bed != nil {
		t, err := utils.CombineDateAndTime(e.Day, *bed, loc)
		if err != nil {
			return e, fmt.Errorf("invalid bed time: %w", err)
		}
		e.Bed = &t
	}
	if wake != nil {
		t, err := utils.CombineDateAndTime(e.Day, *wake, loc)
		if err != nil {
			return e, fmt.Errorf("invalid wake time: %w", err)
		}
		e.Wake = &t
	}
	if quality != nil {
		if *quality < 1 || *quality > 10 {
			return e, fmt.Errorf("quality must be between 1 and 10, got %d", *quality)
		}
		e.Quality = *quality
	}
	if dream != nil {
		e.Dream = *dream
	}
	return e, nil
}
