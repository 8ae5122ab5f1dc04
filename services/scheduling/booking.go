package scheduling

import (
	"context"
	"errors"
	"time"

	"frontdesk/models"
)

// DefaultBookingTransactor commits bookings through the calendar backend.
type DefaultBookingTransactor struct {
	Calendar CalendarBackend
	SlotSize time.Duration
}

// Book creates the calendar event for the requested window. A conflict
// detected by the backend surfaces as ErrSlotConflict so the conversation can
// re-offer times; any other failure becomes ErrBackendUnavailable.
func (t *DefaultBookingTransactor) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	ref, err := t.Calendar.CreateEvent(ctx, req, t.SlotSize)
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return nil, err
		}
		return nil, backendUnavailable(err)
	}
	return &models.BookingConfirmation{EventRef: ref}, nil
}
