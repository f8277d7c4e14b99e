package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
)

// Source lists the events of a single local day.
type Source interface {
	TodayEvents(ctx context.Context, day time.Time) ([]models.Event, error)
}

// FetchToday asks src for the day's events and never fails: any error is
// logged and an empty list is returned.
func FetchToday(ctx context.Context, src Source, day time.Time) []models.Event {
	if src == nil {
		return []models.Event{}
	}
	ctx, cancel := context.WithTimeout(ctx, constants.CalendarFetchTimeout)
	defer cancel()

	events, err := src.TodayEvents(ctx, day)
	if err != nil {
		logger.Warn("Calendar fetch failed", "error", fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err))
		return []models.Event{}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

// DayBounds returns local midnight of day and the last nanosecond before the next midnight.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
