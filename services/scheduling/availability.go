// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"time"

	"frontdesk/models"
)

// Window describes the bookable portion of the calendar: how many days ahead
// to search and the daily hours and slot size within each day.
type Window struct {
	LookaheadDays int
	DayStartHour  int
	DayEndHour    int
	SlotMinutes   int
	Location      *time.Location
}

// SlotSize returns the uniform slot duration.
func (w Window) SlotSize() time.Duration {
	return time.Duration(w.SlotMinutes) * time.Minute
}

// DefaultAvailabilityEngine is a concrete implementation backed by a remote
// calendar.
type DefaultAvailabilityEngine struct {
	Calendar CalendarBackend
	Window   Window
}

// ComputeAvailability fetches each day's busy intervals and emits every open
// slot in chronological order. Slots strictly in the past (relative to now)
// are excluded. A backend failure on any day aborts the whole computation
// with ErrBackendUnavailable; the caller treats that as terminal for the
// current booking attempt rather than retrying.
func (e *DefaultAvailabilityEngine) ComputeAvailability(ctx context.Context, now time.Time) ([]models.Slot, error) {
	loc := e.Window.Location
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	slotSize := e.Window.SlotSize()

	var slots []models.Slot
	for day := 0; day < e.Window.LookaheadDays; day++ {
		dayStart, dayEnd := dayBounds(local.AddDate(0, 0, day), e.Window.DayStartHour, e.Window.DayEndHour)
		busy, err := e.Calendar.ListBusyIntervals(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, backendUnavailable(err)
		}
		slots = append(slots, openSlots(dayStart, dayEnd, now, slotSize, busy)...)
	}
	return slots, nil
}
