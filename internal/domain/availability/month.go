package availability

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

type DayStatus string

const (
	StatusPast            DayStatus = "past"
	StatusFullyBooked     DayStatus = "fully-booked"
	StatusPartiallyBooked DayStatus = "partially-booked"
	StatusAvailable       DayStatus = "available"
)

type DayMetadata struct {
	IsWeekend bool `json:"is_weekend"`
	Bookings  int  `json:"bookings"`
}

type MonthDayStatus struct {
	Date           string      `json:"date"`
	Status         DayStatus   `json:"status"`
	AvailableSlots int         `json:"available_slots"`
	TotalSlots     int         `json:"total_slots"`
	Metadata       DayMetadata `json:"metadata"`
}

type MonthAvailability struct {
	StudioID uint             `json:"studio_id"`
	Month    string           `json:"month"`
	Days     []MonthDayStatus `json:"days"`
}

// Classify derives a day's status from its slot counts. A day with no slots
// at all is past, not fully booked.
func Classify(available, total int) DayStatus {
	switch {
	case total == 0:
		return StatusPast
	case available == 0:
		return StatusFullyBooked
	case available < total:
		return StatusPartiallyBooked
	default:
		return StatusAvailable
	}
}

// Month summarises every calendar day of date's month.
func (e *Engine) Month(studio Studio, date, now time.Time) MonthAvailability {
	out := MonthAvailability{
		StudioID: studio.ID,
		Days:     []MonthDayStatus{},
	}

	if date.IsZero() {
		return out
	}

	first := timezone.StartOfMonth(date, e.loc)
	today := timezone.StartOfDay(now, e.loc)
	out.Month = timezone.FormatMonth(first, e.loc)

	n := timezone.DaysInMonth(first, e.loc)
	out.Days = make([]MonthDayStatus, 0, n)

	for i := 0; i < n; i++ {
		day := first.AddDate(0, 0, i)
		out.Days = append(out.Days, e.summarizeDay(studio, day, today, now))
	}

	return out
}

func (e *Engine) summarizeDay(studio Studio, day, today, now time.Time) MonthDayStatus {
	status := MonthDayStatus{
		Date: timezone.FormatDate(day, e.loc),
		Metadata: DayMetadata{
			IsWeekend: timezone.IsWeekend(day, e.loc),
		},
	}

	if day.Before(today) {
		status.Status = StatusPast
		return status
	}

	bookings := bookingsOn(day, studio.Bookings, e.loc)
	status.Metadata.Bookings = len(bookings)

	slots := SlotsForDate(studio.Hours, bookings, day, now, e.loc)
	if day.Equal(today) {
		slots = startingAfter(slots, now)
	}

	for _, s := range slots {
		if s.Available {
			status.AvailableSlots++
		}
	}
	status.TotalSlots = len(slots)
	status.Status = Classify(status.AvailableSlots, status.TotalSlots)

	return status
}
