package booking

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type memoryRepo struct {
	studio    *models.Studio
	bookings  []models.Booking
	createErr error
	nextID    uint
}

func (r *memoryRepo) GetStudioByID(_ context.Context, id uint) (*models.Studio, error) {
	if r.studio == nil || r.studio.ID != id {
		return nil, domain.ErrStudioNotFound
	}
	return r.studio, nil
}

func (r *memoryRepo) ListBlockingBookings(_ context.Context, studioID uint, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StudioID == studioID && domain.IsBlocking(domain.Status(b.Status)) &&
			b.StartTime.Before(to) && b.EndTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memoryRepo) AssertNoTimeConflict(ctx context.Context, studioID uint, start, end time.Time) error {
	rows, _ := r.ListBlockingBookings(ctx, studioID, start, end)
	if len(rows) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (r *memoryRepo) GetBookingForStudio(_ context.Context, bookingID, studioID uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == bookingID && b.StudioID == studioID {
			cp := b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *memoryRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
		}
	}
	return nil
}

func (r *memoryRepo) ListBookingsForPeriod(_ context.Context, studioID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StudioID == studioID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*memoryRepo)(nil)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}
