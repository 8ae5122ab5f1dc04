// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"frontdesk/models"
)

// CalendarBackend is the remote calendar the engine books against.
// Implementations must report failures as ErrBackendUnavailable or, on
// CreateEvent, ErrSlotConflict when the window was taken by a racing booking.
type CalendarBackend interface {
	ListBusyIntervals(ctx context.Context, dayStart, dayEnd time.Time) ([]models.BusyInterval, error)
	CreateEvent(ctx context.Context, req models.BookingRequest, duration time.Duration) (string, error)
}

// AvailabilityEngine computes candidate open slots from the calendar's busy
// intervals.
type AvailabilityEngine interface {
	ComputeAvailability(ctx context.Context, now time.Time) ([]models.Slot, error)
}

// BookingTransactor commits a chosen slot as a calendar event.
type BookingTransactor interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// FlowResponse is one turn's reply to the caller. State is nil once the
// conversation has ended; Err carries the terminal failure cause, if any.
type FlowResponse struct {
	Message string
	Done    bool
	State   *models.ConversationState
	Err     error
}

// SchedulingFlow is the dialogue engine exposed to callers. StartFlow begins
// a fresh conversation without touching the network; ContinueFlow processes
// one utterance against the caller-held state.
type SchedulingFlow interface {
	StartFlow() *FlowResponse
	ContinueFlow(ctx context.Context, utterance string, state *models.ConversationState) *FlowResponse
}
