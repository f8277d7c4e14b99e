package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

const (
	DefaultCalendarID = "primary"
	untitledEvent     = "(no title)"
)

// GoogleSource reads events from a Google calendar.
type GoogleSource struct {
	srv        *gcal.Service
	calendarID string
}

// NewGoogleSource builds a source on an authenticated HTTP client. Extra
// options are passed through to the API client.
func NewGoogleSource(ctx context.Context, client *http.Client, calendarID string, opts ...option.ClientOption) (*GoogleSource, error) {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}
	return &GoogleSource{srv: srv, calendarID: calendarID}, nil
}

func (g *GoogleSource) TodayEvents(ctx context.Context, day time.Time) ([]models.Event, error) {
	start, end := DayBounds(day)
	resp, err := g.srv.Events.List(g.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", start.Format(constants.DateFormat), err)
	}

	events := make([]models.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Status == "cancelled" {
			continue
		}
		events = append(events, convertEvent(item, day.Location()))
	}
	return events, nil
}

// convertEvent maps an API event. All-day events start at local midnight and
// end at the last instant of their final day.
func convertEvent(item *gcal.Event, loc *time.Location) models.Event {
	ev := models.Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Location: item.Location,
		Link:     item.HtmlLink,
	}
	if ev.Summary == "" {
		ev.Summary = untitledEvent
	}

	if item.Start != nil {
		if item.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
				ev.Start = t.In(loc)
			}
		} else if item.Start.Date != "" {
			if t, err := time.ParseInLocation(constants.DateFormat, item.Start.Date, loc); err == nil {
				ev.Start = t
				ev.AllDay = true
			}
		}
	}

	if item.End != nil {
		if item.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				end := t.In(loc)
				ev.End = &end
			}
		} else if item.End.Date != "" {
			// API all-day end dates are exclusive.
			if t, err := time.ParseInLocation(constants.DateFormat, item.End.Date, loc); err == nil {
				end := t.Add(-time.Nanosecond)
				ev.End = &end
			}
		}
	}
	return ev
}
