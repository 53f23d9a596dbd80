package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayStatus(t *testing.T, m MonthAvailability, day int) MonthDayStatus {
	t.Helper()
	require.GreaterOrEqual(t, len(m.Days), day)
	return m.Days[day-1]
}

func TestMonth_CoversWholeMonth(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{ID: 4, Hours: StudioHours{OpeningTime: "10:00", ClosingTime: "15:00"}}

	got := e.Month(studio, at(20, 0, 0), testNow)

	assert.Equal(t, uint(4), got.StudioID)
	assert.Equal(t, "2026-06", got.Month)
	require.Len(t, got.Days, 30)
	assert.Equal(t, "2026-06-01", got.Days[0].Date)
	assert.Equal(t, "2026-06-30", got.Days[29].Date)
}

func TestMonth_PastDaysShortCircuit(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{
		Hours:    StudioHours{OpeningTime: "10:00", ClosingTime: "15:00"},
		Bookings: []BookingInterval{booking(3, 10, 12, "CONFIRMED")},
	}

	got := e.Month(studio, at(1, 0, 0), testNow)

	for d := 1; d <= 9; d++ {
		s := dayStatus(t, got, d)
		assert.Equal(t, StatusPast, s.Status, s.Date)
		assert.Zero(t, s.TotalSlots)
		assert.Zero(t, s.AvailableSlots)
		assert.Zero(t, s.Metadata.Bookings)
	}
}

func TestMonth_StatusClassification(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{
		Hours: StudioHours{OpeningTime: "10:00", ClosingTime: "15:00"},
		Bookings: []BookingInterval{
			// 15th: slots 2 and 4 taken
			booking(15, 11, 12, "CONFIRMED"),
			booking(15, 13, 14, "PENDING"),
			// 16th: whole day taken
			booking(16, 10, 15, "CONFIRMED"),
		},
	}

	got := e.Month(studio, at(15, 0, 0), testNow)

	partial := dayStatus(t, got, 15)
	assert.Equal(t, StatusPartiallyBooked, partial.Status)
	assert.Equal(t, 3, partial.AvailableSlots)
	assert.Equal(t, 5, partial.TotalSlots)
	assert.Equal(t, 2, partial.Metadata.Bookings)

	full := dayStatus(t, got, 16)
	assert.Equal(t, StatusFullyBooked, full.Status)
	assert.Equal(t, 0, full.AvailableSlots)
	assert.Equal(t, 5, full.TotalSlots)
	assert.Equal(t, 1, full.Metadata.Bookings)

	free := dayStatus(t, got, 17)
	assert.Equal(t, StatusAvailable, free.Status)
	assert.Equal(t, 5, free.AvailableSlots)
	assert.Equal(t, 5, free.TotalSlots)
	assert.Zero(t, free.Metadata.Bookings)
}

func TestMonth_TodayRestrictedToRemainingSlots(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{
		Hours:    StudioHours{OpeningTime: "09:00", ClosingTime: "18:00"},
		Bookings: []BookingInterval{booking(10, 15, 16, "CONFIRMED")},
	}

	got := e.Month(studio, at(10, 0, 0), testNow)

	today := dayStatus(t, got, 10)
	assert.Equal(t, StatusPartiallyBooked, today.Status)
	assert.Equal(t, 3, today.TotalSlots)
	assert.Equal(t, 2, today.AvailableSlots)
}

func TestMonth_TodayPastClosingIsPastNotFullyBooked(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{
		Hours:    StudioHours{OpeningTime: "09:00", ClosingTime: "14:00"},
		Bookings: []BookingInterval{booking(10, 9, 14, "CONFIRMED")},
	}

	got := e.Month(studio, at(10, 0, 0), testNow)

	today := dayStatus(t, got, 10)
	assert.Equal(t, StatusPast, today.Status)
	assert.Zero(t, today.TotalSlots)
	assert.Equal(t, 1, today.Metadata.Bookings)

	tomorrow := dayStatus(t, got, 11)
	assert.Equal(t, StatusAvailable, tomorrow.Status)
}

func TestMonth_WeekendFlag(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{Hours: StudioHours{OpeningTime: "10:00", ClosingTime: "15:00"}}

	got := e.Month(studio, at(1, 0, 0), testNow)

	assert.False(t, dayStatus(t, got, 12).Metadata.IsWeekend) // Friday
	assert.True(t, dayStatus(t, got, 13).Metadata.IsWeekend)
	assert.True(t, dayStatus(t, got, 14).Metadata.IsWeekend)
	assert.False(t, dayStatus(t, got, 15).Metadata.IsWeekend)
	assert.True(t, dayStatus(t, got, 6).Metadata.IsWeekend) // past days keep the flag
}

func TestMonth_FutureMonth(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{Hours: StudioHours{OpeningTime: "10:00", ClosingTime: "12:00"}}

	got := e.Month(studio, at(1, 0, 0).AddDate(0, 2, 0), testNow)

	assert.Equal(t, "2026-08", got.Month)
	require.Len(t, got.Days, 31)
	for _, d := range got.Days {
		assert.Equal(t, StatusAvailable, d.Status, d.Date)
		assert.Equal(t, 2, d.TotalSlots)
	}
}

func TestMonth_MalformedHoursReportsPast(t *testing.T) {
	e := NewEngine(dubai)
	studio := Studio{Hours: StudioHours{OpeningTime: "18:00", ClosingTime: "09:00"}}

	got := e.Month(studio, at(20, 0, 0), testNow)

	s := dayStatus(t, got, 20)
	assert.Equal(t, StatusPast, s.Status)
	assert.Zero(t, s.TotalSlots)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusPast, Classify(0, 0))
	assert.Equal(t, StatusFullyBooked, Classify(0, 4))
	assert.Equal(t, StatusPartiallyBooked, Classify(1, 4))
	assert.Equal(t, StatusAvailable, Classify(4, 4))
}
