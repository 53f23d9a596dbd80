package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, offset := now.In(loc).Zone()
	assert.Equal(t, 4*60*60, offset)
}

func TestLocation_UsesValidZone(t *testing.T) {
	assert.True(t, IsValid("Europe/London"))
	assert.False(t, IsValid(""))
	assert.Equal(t, "Europe/London", Location("Europe/London").String())
}

func TestSameDay_UsesReferenceZone(t *testing.T) {
	loc := Location(DefaultTimezone)

	// 21:30 UTC on the 10th is already 01:30 on the 11th in Dubai
	a := time.Date(2026, 5, 10, 21, 30, 0, 0, time.UTC)
	b := time.Date(2026, 5, 11, 9, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestStartOfDay(t *testing.T) {
	loc := Location(DefaultTimezone)
	in := time.Date(2026, 5, 10, 21, 30, 0, 0, time.UTC)

	got := StartOfDay(in, loc)
	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, loc), got)
}

func TestDaysInMonth(t *testing.T) {
	loc := time.UTC
	cases := map[string]int{
		"2026-02-10": 28,
		"2028-02-01": 29,
		"2026-04-30": 30,
		"2026-12-31": 31,
	}
	for in, want := range cases {
		d, err := ParseDate(in, loc)
		require.NoError(t, err)
		assert.Equal(t, want, DaysInMonth(d, loc), in)
	}
}

func TestParseDateTime(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDateTime("2026-07-01", "14:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 1, 14, 0, 0, 0, loc), got)

	_, err = ParseDateTime("2026-07-01", "2pm", loc)
	assert.Error(t, err)
}

func TestIsWeekend(t *testing.T) {
	loc := time.UTC
	sat := time.Date(2026, 10, 24, 12, 0, 0, 0, loc)
	mon := time.Date(2026, 10, 26, 12, 0, 0, 0, loc)

	assert.True(t, IsWeekend(sat, loc))
	assert.True(t, IsWeekend(sat.AddDate(0, 0, 1), loc))
	assert.False(t, IsWeekend(mon, loc))
}
