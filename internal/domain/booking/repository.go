package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

var (
	ErrStudioNotFound  = httperr.ErrBusiness("studio_not_found")
	ErrBookingNotFound = httperr.ErrBusiness("booking_not_found")
	ErrUnknownAction   = httperr.ErrBusiness("unknown_action")
)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// -------- Availability --------

	// ListBlockingBookings returns non-cancelled bookings of the studio whose
	// window overlaps [from, to), ordered by start time.
	ListBlockingBookings(
		ctx context.Context,
		studioID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		studioID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Booking (state change) --------
	GetBookingForStudio(
		ctx context.Context,
		bookingID uint,
		studioID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookingsForPeriod(
		ctx context.Context,
		studioID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
