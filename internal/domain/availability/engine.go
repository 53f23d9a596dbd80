package availability

import (
	"time"
)

type View string

const (
	ViewDay   View = "day"
	ViewMonth View = "month"
)

// ParseView maps the query parameter to a View; empty means day.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case "", ViewDay:
		return ViewDay, true
	case ViewMonth:
		return ViewMonth, true
	}
	return "", false
}

// Studio is the engine's view of a studio: its hours and the blocking
// (non-cancelled) bookings for the queried range.
type Studio struct {
	ID       uint
	Hours    StudioHours
	Bookings []BookingInterval
}

// Engine computes availability against a single reference timezone.
// It holds no mutable state and never reads the wall clock; callers pass now.
type Engine struct {
	loc *time.Location
}

func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

type Result struct {
	View  View               `json:"view"`
	Day   *DayAvailability   `json:"day,omitempty"`
	Month *MonthAvailability `json:"month,omitempty"`
}

func (e *Engine) Evaluate(view View, studio Studio, date, now time.Time) Result {
	if view == ViewMonth {
		m := e.Month(studio, date, now)
		return Result{View: ViewMonth, Month: &m}
	}

	d := e.Day(studio, date, now)
	return Result{View: ViewDay, Day: &d}
}
