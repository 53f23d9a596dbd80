package timezone

import "time"

// DefaultTimezone is the booking system's operating timezone.
const DefaultTimezone = "Asia/Dubai"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// tzdata missing on the host; Dubai has no DST so a fixed zone is exact
		return time.FixedZone("GST", 4*60*60)
	}
	return loc
}

// --------------------------------------------------
// Clock
// --------------------------------------------------

// Clock is the only source of "now" for availability and booking rules.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns the same instant. Used by tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// --------------------------------------------------
// Calendar helpers
// --------------------------------------------------

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func DaysInMonth(t time.Time, loc *time.Location) int {
	return StartOfMonth(t, loc).AddDate(0, 1, -1).Day()
}

// At returns the wall-clock time hour:minute on day's calendar date in loc.
func At(day time.Time, loc *time.Location, hour, minute int) time.Time {
	l := day.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), hour, minute, 0, 0, loc)
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" 15:04", date+" "+clock, loc)
}

func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

func FormatMonth(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}

func IsWeekend(t time.Time, loc *time.Location) bool {
	switch t.In(loc).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
