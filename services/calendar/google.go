// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"frontdesk/models"
	"frontdesk/services/scheduling"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleCalendarBackend reads and writes the support-team calendar through
// the Google Calendar API.
type GoogleCalendarBackend struct {
	service    *gcal.Service
	calendarID string
}

// NewGoogleCalendarBackend builds a backend from a service-account credentials
// file with write access to the given calendar.
func NewGoogleCalendarBackend(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendarBackend, error) {
	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &GoogleCalendarBackend{service: service, calendarID: calendarID}, nil
}

// ListBusyIntervals returns the occupied ranges between dayStart and dayEnd.
// All-day events carry no time component and are skipped; they mark things
// like holidays rather than blocked call time.
func (b *GoogleCalendarBackend) ListBusyIntervals(ctx context.Context, dayStart, dayEnd time.Time) ([]models.BusyInterval, error) {
	events, err := b.service.Events.List(b.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var busy []models.BusyInterval
	for _, ev := range events.Items {
		if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			continue
		}
		busy = append(busy, models.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

// CreateEvent books the requested window and invites the caller. The calendar
// itself accepts double bookings, so the window is re-checked against current
// busy intervals immediately before the insert; a hit maps to ErrSlotConflict.
func (b *GoogleCalendarBackend) CreateEvent(ctx context.Context, req models.BookingRequest, duration time.Duration) (string, error) {
	start := req.StartTime
	end := start.Add(duration)

	busy, err := b.ListBusyIntervals(ctx, start, end)
	if err != nil {
		return "", err
	}
	for _, interval := range busy {
		if start.Before(interval.End) && end.After(interval.Start) {
			return "", scheduling.ErrSlotConflict
		}
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Support call with %s", req.Name),
		Description: eventDescription(req),
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
		Attendees:   []*gcal.EventAttendee{{Email: req.Email, DisplayName: req.Name}},
		Reminders:   &gcal.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}

	created, err := b.service.Events.Insert(b.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 409 {
			return "", scheduling.ErrSlotConflict
		}
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.HtmlLink, nil
}

func eventDescription(req models.BookingRequest) string {
	desc := fmt.Sprintf("Booked for %s (%s", req.Name, req.Email)
	if req.Phone != "" {
		desc += ", " + req.Phone
	}
	desc += ")"
	if req.Notes != "" {
		desc += "\n" + req.Notes
	}
	return desc
}
