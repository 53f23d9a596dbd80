package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	engine "github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

const MaxBookingHours = 12

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StudioID uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Hours int
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit Auditor
	loc   *time.Location
	clock timezone.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	audit Auditor,
	loc *time.Location,
	clock timezone.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Studio
	// --------------------------------------------------
	studio, err := domain.Bookable(uc.repo.GetStudioByID(ctx, in.StudioID))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Window in the booking timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.Hours < 1 || in.Hours > MaxBookingHours {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	end := start.Add(time.Duration(in.Hours) * engine.SlotDuration)

	now := uc.clock.Now()
	if !start.After(now) {
		return nil, httperr.ErrBusiness("past_time")
	}

	// --------------------------------------------------
	// Requested hours must be bookable slots
	// --------------------------------------------------
	day := timezone.StartOfDay(start, uc.loc)
	rows, err := uc.repo.ListBlockingBookings(ctx, studio.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	slots := engine.SlotsForDate(
		domain.HoursOf(studio),
		domain.BlockingIntervals(rows),
		day,
		now,
		uc.loc,
	)
	if err := coveredBySlots(slots, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Authoritative conflict check
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(ctx, studio.ID, start, end); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.dispatchConflict(studio.ID, start, end)
		}
		return nil, err
	}

	b := &models.Booking{
		StudioID:      studio.ID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		StartTime:     start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
		TotalPrice:    studio.HourlyRate * float64(in.Hours),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsExclusionConflict(err) {
			uc.dispatchConflict(studio.ID, start, end)
			return nil, httperr.Wrap("time_conflict", err)
		}
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Uint("studio_id", studio.ID).
		Uint("booking_id", b.ID).
		Time("start", start).
		Int("hours", in.Hours).
		Msg("booking created")

	uc.audit.Dispatch(audit.Event{
		StudioID: studio.ID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) dispatchConflict(studioID uint, start, end time.Time) {
	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		Action:   audit.ActionBookingConflict,
		Entity:   "booking",
		Metadata: map[string]any{
			"start": start,
			"end":   end,
		},
	})
}

// coveredBySlots requires [start,end) to be exactly a run of consecutive
// generated slots, all available.
func coveredBySlots(slots []engine.TimeSlot, start, end time.Time) error {
	i := 0
	for i < len(slots) && slots[i].Start.Before(start) {
		i++
	}
	if i == len(slots) || !slots[i].Start.Equal(start) {
		return httperr.ErrBusiness("outside_opening_hours")
	}

	for cur := start; cur.Before(end); cur = cur.Add(engine.SlotDuration) {
		if i == len(slots) || !slots[i].Start.Equal(cur) {
			return httperr.ErrBusiness("outside_opening_hours")
		}
		if !slots[i].Available {
			return httperr.ErrBusiness("time_conflict")
		}
		i++
	}

	return nil
}
