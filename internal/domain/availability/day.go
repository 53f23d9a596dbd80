package availability

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

const MessagePastDate = "date is in the past"

type DayAvailability struct {
	StudioID  uint       `json:"studio_id"`
	Date      string     `json:"date"`
	TimeSlots []TimeSlot `json:"time_slots"`
	Message   string     `json:"message,omitempty"`
}

// Day returns the slots of date that can still be booked.
func (e *Engine) Day(studio Studio, date, now time.Time) DayAvailability {
	out := DayAvailability{
		StudioID:  studio.ID,
		TimeSlots: []TimeSlot{},
	}

	if date.IsZero() {
		return out
	}

	day := timezone.StartOfDay(date, e.loc)
	today := timezone.StartOfDay(now, e.loc)
	out.Date = timezone.FormatDate(day, e.loc)

	if day.Before(today) {
		out.Message = MessagePastDate
		return out
	}

	slots := SlotsForDate(
		studio.Hours,
		bookingsOn(day, studio.Bookings, e.loc),
		day,
		now,
		e.loc,
	)

	if day.Equal(today) {
		slots = startingAfter(slots, now)
	}

	out.TimeSlots = onlyAvailable(slots)
	return out
}
