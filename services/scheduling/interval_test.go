package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time fixture %q: %v", value, err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	busy := models.BusyInterval{
		Start: mustTime(t, "2026-03-02T10:00:00Z"),
		End:   mustTime(t, "2026-03-02T11:00:00Z"),
	}

	tests := []struct {
		name      string
		slotStart string
		slotEnd   string
		want      bool
	}{
		{"fully inside", "2026-03-02T10:15:00Z", "2026-03-02T10:45:00Z", true},
		{"overlapping start", "2026-03-02T09:45:00Z", "2026-03-02T10:15:00Z", true},
		{"overlapping end", "2026-03-02T10:45:00Z", "2026-03-02T11:15:00Z", true},
		{"covering", "2026-03-02T09:00:00Z", "2026-03-02T12:00:00Z", true},
		{"touching start", "2026-03-02T09:30:00Z", "2026-03-02T10:00:00Z", false},
		{"touching end", "2026-03-02T11:00:00Z", "2026-03-02T11:30:00Z", false},
		{"well before", "2026-03-02T08:00:00Z", "2026-03-02T08:30:00Z", false},
		{"well after", "2026-03-02T13:00:00Z", "2026-03-02T13:30:00Z", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := overlaps(mustTime(t, tc.slotStart), mustTime(t, tc.slotEnd), busy)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOpenSlots(t *testing.T) {
	dayStart := mustTime(t, "2026-03-02T09:00:00Z")
	dayEnd := mustTime(t, "2026-03-02T17:00:00Z")
	slotSize := 30 * time.Minute

	t.Run("empty day yields every slot", func(t *testing.T) {
		now := mustTime(t, "2026-03-01T12:00:00Z")
		slots := openSlots(dayStart, dayEnd, now, slotSize, nil)
		assert.Len(t, slots, 16)
		assert.True(t, slots[0].Start.Equal(dayStart))
		assert.True(t, slots[15].Start.Equal(mustTime(t, "2026-03-02T16:30:00Z")))
	})

	t.Run("busy intervals carve out slots", func(t *testing.T) {
		now := mustTime(t, "2026-03-01T12:00:00Z")
		busy := []models.BusyInterval{
			{Start: mustTime(t, "2026-03-02T10:00:00Z"), End: mustTime(t, "2026-03-02T11:00:00Z")},
			{Start: mustTime(t, "2026-03-02T14:15:00Z"), End: mustTime(t, "2026-03-02T14:45:00Z")},
		}
		slots := openSlots(dayStart, dayEnd, now, slotSize, busy)
		assert.Len(t, slots, 12)
		for _, s := range slots {
			assert.False(t, overlapsAny(s.Start, s.Start.Add(slotSize), busy),
				"slot %s overlaps a busy interval", s.Start)
		}
	})

	t.Run("slots must start strictly after now", func(t *testing.T) {
		now := mustTime(t, "2026-03-02T10:00:00Z")
		slots := openSlots(dayStart, dayEnd, now, slotSize, nil)
		assert.Len(t, slots, 13)
		assert.True(t, slots[0].Start.Equal(mustTime(t, "2026-03-02T10:30:00Z")),
			"a slot starting exactly at now is excluded")
	})

	t.Run("chronological order", func(t *testing.T) {
		now := mustTime(t, "2026-03-01T12:00:00Z")
		slots := openSlots(dayStart, dayEnd, now, slotSize, nil)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		}
	})

	t.Run("slot may not run past day end", func(t *testing.T) {
		now := mustTime(t, "2026-03-01T12:00:00Z")
		shortEnd := mustTime(t, "2026-03-02T09:45:00Z")
		slots := openSlots(dayStart, shortEnd, now, slotSize, nil)
		assert.Len(t, slots, 1)
	})
}
