package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
)

// fakeCalendar is an in-memory CalendarBackend for tests.
type fakeCalendar struct {
	busy      []models.BusyInterval
	listErr   error
	createErr error
	eventRef  string
	created   []models.BookingRequest
	listCalls int
}

func (f *fakeCalendar) ListBusyIntervals(_ context.Context, dayStart, dayEnd time.Time) ([]models.BusyInterval, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.BusyInterval
	for _, b := range f.busy {
		if b.Start.Before(dayEnd) && b.End.After(dayStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req models.BookingRequest, _ time.Duration) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, req)
	return f.eventRef, nil
}

func testWindow() Window {
	return Window{
		LookaheadDays: 7,
		DayStartHour:  9,
		DayEndHour:    17,
		SlotMinutes:   30,
		Location:      time.UTC,
	}
}

func TestComputeAvailability(t *testing.T) {
	now := mustTime(t, "2026-03-02T08:00:00Z")

	t.Run("free week yields full grid", func(t *testing.T) {
		cal := &fakeCalendar{}
		engine := &DefaultAvailabilityEngine{Calendar: cal, Window: testWindow()}

		slots, err := engine.ComputeAvailability(context.Background(), now)
		require.NoError(t, err)
		assert.Len(t, slots, 7*16)
		assert.Equal(t, 7, cal.listCalls, "one busy lookup per day")
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		}
	})

	t.Run("busy mornings are excluded", func(t *testing.T) {
		cal := &fakeCalendar{busy: []models.BusyInterval{
			{Start: mustTime(t, "2026-03-02T09:00:00Z"), End: mustTime(t, "2026-03-02T12:00:00Z")},
		}}
		engine := &DefaultAvailabilityEngine{Calendar: cal, Window: testWindow()}

		slots, err := engine.ComputeAvailability(context.Background(), now)
		require.NoError(t, err)
		assert.Len(t, slots, 7*16-6)
		assert.True(t, slots[0].Start.Equal(mustTime(t, "2026-03-02T12:00:00Z")))
	})

	t.Run("fully booked week is empty, not an error", func(t *testing.T) {
		cal := &fakeCalendar{busy: []models.BusyInterval{
			{Start: now, End: now.AddDate(0, 0, 8)},
		}}
		engine := &DefaultAvailabilityEngine{Calendar: cal, Window: testWindow()}

		slots, err := engine.ComputeAvailability(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("backend failure maps to ErrBackendUnavailable", func(t *testing.T) {
		cal := &fakeCalendar{listErr: errors.New("dial tcp: connection refused")}
		engine := &DefaultAvailabilityEngine{Calendar: cal, Window: testWindow()}

		slots, err := engine.ComputeAvailability(context.Background(), now)
		assert.Nil(t, slots)
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("same-day past slots are excluded", func(t *testing.T) {
		midday := mustTime(t, "2026-03-02T13:00:00Z")
		cal := &fakeCalendar{}
		engine := &DefaultAvailabilityEngine{Calendar: cal, Window: testWindow()}

		slots, err := engine.ComputeAvailability(context.Background(), midday)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.True(t, slots[0].Start.Equal(mustTime(t, "2026-03-02T13:30:00Z")))
	})
}
