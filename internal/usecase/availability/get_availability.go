package availability

import (
	"context"
	"time"

	engine "github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

type Input struct {
	StudioID uint
	Date     time.Time
	View     engine.View
}

type GetAvailability struct {
	repo   domain.Repository
	engine *engine.Engine
	clock  timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	eng *engine.Engine,
	clock timezone.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		engine: eng,
		clock:  clock,
	}
}

// Execute loads the studio and its blocking bookings for the queried day or
// month and evaluates the engine against a single captured "now".
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in Input,
) (engine.Result, error) {

	studio, err := domain.Bookable(uc.repo.GetStudioByID(ctx, in.StudioID))
	if err != nil {
		return engine.Result{}, err
	}

	loc := uc.engine.Location()
	from, to := window(in.View, in.Date, loc)

	rows, err := uc.repo.ListBlockingBookings(ctx, studio.ID, from, to)
	if err != nil {
		return engine.Result{}, err
	}

	// the engine treats every interval as blocking; cancelled rows must not reach it
	intervals := domain.BlockingIntervals(rows)
	if dropped := len(rows) - len(intervals); dropped > 0 {
		logger.FromContext(ctx).Warn().
			Uint("studio_id", studio.ID).
			Int("dropped", dropped).
			Msg("cancelled bookings returned by blocking query")
	}

	hours := domain.HoursOf(studio)
	if err := hours.Validate(); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Uint("studio_id", studio.ID).
			Msg("studio hours invalid, reporting no availability")
	}

	now := uc.clock.Now()

	return uc.engine.Evaluate(
		in.View,
		engine.Studio{
			ID:       studio.ID,
			Hours:    hours,
			Bookings: intervals,
		},
		in.Date,
		now,
	), nil
}

func window(view engine.View, date time.Time, loc *time.Location) (time.Time, time.Time) {
	if view == engine.ViewMonth {
		start := timezone.StartOfMonth(date, loc)
		return start, start.AddDate(0, 1, 0)
	}

	start := timezone.StartOfDay(date, loc)
	return start, start.AddDate(0, 0, 1)
}
