package booking

import (
	"context"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

var auditActions = map[domain.Action]string{
	domain.ActionConfirm:  audit.ActionBookingConfirmed,
	domain.ActionCancel:   audit.ActionBookingCancelled,
	domain.ActionComplete: audit.ActionBookingCompleted,
}

// ChangeBookingStatus applies a back-office transition to a studio's booking.
type ChangeBookingStatus struct {
	repo  domain.Repository
	audit Auditor
	clock timezone.Clock
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	bookingID uint,
	action domain.Action,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForStudio(ctx, bookingID, studioID)
	if err != nil {
		return nil, err
	}

	if err := domain.Apply(b, action, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   auditActions[action],
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
