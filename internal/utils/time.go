package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// LocationFromSettings resolves the configured timezone, falling back to the
// system zone when the name is invalid.
func LocationFromSettings(settings models.Settings) *time.Location {
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DayKey returns the wall-clock date (YYYY-MM-DD) of t in its own location.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// AddOffset shifts t by a signed number of minutes.
func AddOffset(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// ClockTime renders the wall-clock time of t as zero padded 24h "HH:MM".
func ClockTime(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// WithClockTime returns the instant on the same calendar day as base, in base's
// location, with hour and minute replaced and seconds zeroed.
func WithClockTime(base time.Time, hhmm string) (time.Time, error) {
	tod, err := ParseTime(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", hhmm, err)
	}
	return time.Date(base.Year(), base.Month(), base.Day(), tod.Hour(), tod.Minute(), 0, 0, base.Location()), nil
}

// CountdownLabel renders the time remaining until target. Anything at or past
// the 30 second window reads "now".
func CountdownLabel(target, now time.Time) string {
	d := target.Sub(now)
	if d <= constants.CountdownNowWindow {
		return "now"
	}
	total := int(math.Round(d.Minutes()))
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(constants.DateFormat, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return WithClockTime(date, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
