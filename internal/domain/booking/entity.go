package booking

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// Apply performs action on b, stamping the matching timestamp with now.
func Apply(b *models.Booking, action Action, now time.Time) error {
	switch action {
	case ActionConfirm:
		return Confirm(b, now)
	case ActionCancel:
		return Cancel(b, now)
	case ActionComplete:
		return Complete(b, now)
	}
	return ErrUnknownAction
}

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// BlockingIntervals converts stored bookings to engine intervals, dropping
// cancelled rows. This is the filtering the engine itself never performs.
func BlockingIntervals(rows []models.Booking) []availability.BookingInterval {
	out := make([]availability.BookingInterval, 0, len(rows))
	for _, b := range rows {
		if !IsBlocking(Status(b.Status)) {
			continue
		}
		out = append(out, availability.BookingInterval{
			Start:  b.StartTime,
			End:    b.EndTime,
			Status: b.Status,
		})
	}
	return out
}

// Bookable returns s unless it is missing or deactivated; a deactivated
// studio is reported as not found on public paths.
func Bookable(s *models.Studio, err error) (*models.Studio, error) {
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, ErrStudioNotFound
	}
	return s, nil
}

// HoursOf returns the engine's view of a studio's operating window.
func HoursOf(s *models.Studio) availability.StudioHours {
	return availability.StudioHours{
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
	}
}
