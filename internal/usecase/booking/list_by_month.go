package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
)

type ListBookingsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	studioID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		studioID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Status:        b.Status,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			TotalPrice:    b.TotalPrice,
		})
	}

	return out, nil
}
