package models

import "time"

// SleepEntry is the day-scoped sleep record, keyed to the wake day.
type SleepEntry struct {
	Day         string     `json:"day"` // YYYY-MM-DD
	Bed         *time.Time `json:"bed,omitempty"`
	Wake        *time.Time `json:"wake,omitempty"`
	Quality     int        `json:"quality"` // 1..10
	Dream       string     `json:"dream,omitempty"`
	TZOffsetMin int        `json:"tz_offset_min"`
}
