package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

func TestChangeBookingStatus_ConfirmThenComplete(t *testing.T) {
	repo := studioRepo()
	repo.bookings = []models.Booking{
		{ID: 7, StudioID: 1, StartTime: at(15, 12), EndTime: at(15, 13), Status: string(domain.StatusPending)},
	}
	aud := &recordingAuditor{}
	uc := NewChangeBookingStatus(repo, aud, timezone.FixedClock{At: now})

	b, err := uc.Execute(context.Background(), 1, 3, 7, domain.ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)

	b, err = uc.Execute(context.Background(), 1, 3, 7, domain.ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	assert.Equal(t, string(domain.StatusCompleted), repo.bookings[0].Status)

	assert.Equal(t, []string{audit.ActionBookingConfirmed, audit.ActionBookingCompleted}, aud.actions())
}

func TestChangeBookingStatus_CancelFreesSlot(t *testing.T) {
	repo := studioRepo()
	repo.bookings = []models.Booking{
		{ID: 7, StudioID: 1, StartTime: at(15, 12), EndTime: at(15, 13), Status: string(domain.StatusConfirmed)},
	}
	uc := NewChangeBookingStatus(repo, &recordingAuditor{}, timezone.FixedClock{At: now})

	_, err := uc.Execute(context.Background(), 1, 3, 7, domain.ActionCancel)
	require.NoError(t, err)

	create, _ := newCreate(repo)
	_, err = create.Execute(context.Background(), input("2026-06-15", "12:00", 1))
	assert.NoError(t, err)
}

func TestChangeBookingStatus_Errors(t *testing.T) {
	repo := studioRepo()
	repo.bookings = []models.Booking{
		{ID: 7, StudioID: 1, Status: string(domain.StatusCancelled)},
	}
	uc := NewChangeBookingStatus(repo, &recordingAuditor{}, timezone.FixedClock{At: now})

	_, err := uc.Execute(context.Background(), 1, 3, 7, domain.ActionConfirm)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = uc.Execute(context.Background(), 2, 3, 7, domain.ActionCancel)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestListBookingsByMonth(t *testing.T) {
	repo := studioRepo()
	repo.bookings = []models.Booking{
		{ID: 1, StudioID: 1, StartTime: at(15, 12), EndTime: at(15, 13), Status: "CONFIRMED", CustomerName: "A"},
		{ID: 2, StudioID: 1, StartTime: at(20, 12), EndTime: at(20, 13), Status: "CANCELLED", CustomerName: "B"},
		{ID: 3, StudioID: 1, StartTime: at(15, 12).AddDate(0, 1, 0), EndTime: at(15, 13).AddDate(0, 1, 0), Status: "PENDING"},
	}
	uc := NewListBookingsByMonth(repo, loc)

	got, err := uc.Execute(context.Background(), 1, 2026, 6)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].CustomerName)
	assert.Equal(t, "CANCELLED", got[1].Status)
}
