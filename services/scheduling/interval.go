package scheduling

import (
	"time"

	"frontdesk/models"
)

// overlaps reports whether the window [slotStart, slotEnd) intersects the
// busy interval.
func overlaps(slotStart, slotEnd time.Time, busy models.BusyInterval) bool {
	return slotStart.Before(busy.End) && slotEnd.After(busy.Start)
}

// overlapsAny reports whether the window intersects any of the busy intervals.
func overlapsAny(slotStart, slotEnd time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if overlaps(slotStart, slotEnd, b) {
			return true
		}
	}
	return false
}

// dayBounds returns the start and end of the bookable window on the given
// day, in the day's own location.
func dayBounds(day time.Time, startHour, endHour int) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location())
	return start, end
}

// openSlots generates every slot-sized window between dayStart and dayEnd and
// keeps the ones that start strictly after now and clear every busy interval.
// Generation is monotonic, so the result is already in chronological order.
func openSlots(dayStart, dayEnd, now time.Time, slotSize time.Duration, busy []models.BusyInterval) []models.Slot {
	var slots []models.Slot
	for start := dayStart; !start.Add(slotSize).After(dayEnd); start = start.Add(slotSize) {
		if !start.After(now) {
			continue
		}
		if overlapsAny(start, start.Add(slotSize), busy) {
			continue
		}
		slots = append(slots, models.Slot{Start: start})
	}
	return slots
}
