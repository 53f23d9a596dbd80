package availability

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidClock    = errors.New("availability: clock time is not HH:MM")
	ErrClockOutOfRange = errors.New("availability: clock time out of range")
	ErrInvertedHours   = errors.New("availability: opening time is not before closing time")
	ErrInvalidDate     = errors.New("availability: invalid target date")
)

// Clock is a wall-clock time of day, independent of any date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict 24h "HH:MM" time.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, ok := twoDigits(s[0:2])
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, ok := twoDigits(s[3:5])
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if h > 23 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrClockOutOfRange, s)
	}

	return Clock{Hour: h, Minute: m}, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// StudioHours is a same-day operating window.
type StudioHours struct {
	OpeningTime string
	ClosingTime string
}

// Parse validates both clock strings and that opening precedes closing.
func (h StudioHours) Parse() (open, close Clock, err error) {
	if open, err = ParseClock(h.OpeningTime); err != nil {
		return Clock{}, Clock{}, err
	}
	if close, err = ParseClock(h.ClosingTime); err != nil {
		return Clock{}, Clock{}, err
	}
	if open.Minutes() >= close.Minutes() {
		return Clock{}, Clock{}, fmt.Errorf("%w: %s-%s", ErrInvertedHours, open, close)
	}
	return open, close, nil
}

func (h StudioHours) Validate() error {
	_, _, err := h.Parse()
	return err
}
