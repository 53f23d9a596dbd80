package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func TestApply_Transitions(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		from   Status
		action Action
		to     Status
		ok     bool
	}{
		{StatusPending, ActionConfirm, StatusConfirmed, true},
		{StatusPending, ActionCancel, StatusCancelled, true},
		{StatusConfirmed, ActionCancel, StatusCancelled, true},
		{StatusConfirmed, ActionComplete, StatusCompleted, true},
		{StatusPending, ActionComplete, StatusPending, false},
		{StatusCancelled, ActionConfirm, StatusCancelled, false},
		{StatusCancelled, ActionCancel, StatusCancelled, false},
		{StatusCompleted, ActionCancel, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.action), func(t *testing.T) {
			b := &models.Booking{Status: string(tc.from)}
			err := Apply(b, tc.action, now)

			if tc.ok {
				require.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
			assert.Equal(t, string(tc.to), b.Status)
		})
	}
}

func TestApply_StampsTimestamps(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Confirm(b, now))
	require.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, now, *b.ConfirmedAt)

	require.NoError(t, Cancel(b, now))
	require.NotNil(t, b.CancelledAt)
}

func TestApply_UnknownAction(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	assert.ErrorIs(t, Apply(b, Action("archive"), time.Now()), ErrUnknownAction)
}

func TestBlockingIntervals_DropsCancelled(t *testing.T) {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := []models.Booking{
		{StartTime: start, EndTime: start.Add(time.Hour), Status: string(StatusConfirmed)},
		{StartTime: start, EndTime: start.Add(2 * time.Hour), Status: string(StatusCancelled)},
		{StartTime: start.Add(3 * time.Hour), EndTime: start.Add(4 * time.Hour), Status: string(StatusPending)},
	}

	got := BlockingIntervals(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "CONFIRMED", got[0].Status)
	assert.Equal(t, "PENDING", got[1].Status)
}

func TestBookable(t *testing.T) {
	active := &models.Studio{ID: 1, Active: true}
	got, err := Bookable(active, nil)
	require.NoError(t, err)
	assert.Same(t, active, got)

	_, err = Bookable(&models.Studio{ID: 1}, nil)
	assert.ErrorIs(t, err, ErrStudioNotFound)

	_, err = Bookable(nil, ErrStudioNotFound)
	assert.ErrorIs(t, err, ErrStudioNotFound)
}
