package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/studio-scheduler/internal/usecase/booking"
)

// ======================================================
// USE CASE PORTS
// ======================================================

type CreateBookingService interface {
	Execute(ctx context.Context, in ucBooking.CreateBookingInput) (*models.Booking, error)
}

type ChangeBookingStatusService interface {
	Execute(ctx context.Context, studioID, userID, bookingID uint, action domain.Action) (*models.Booking, error)
}

type ListBookingsByMonthService interface {
	Execute(ctx context.Context, studioID uint, year, month int) ([]dto.BookingListDTO, error)
}

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       CreateBookingService
	changeStatus ChangeBookingStatusService
	listByMonth  ListBookingsByMonthService
	clock        timezone.Clock
	loc          *time.Location
}

func NewBookingHandler(
	create CreateBookingService,
	changeStatus ChangeBookingStatusService,
	listByMonth ListBookingsByMonthService,
	clock timezone.Clock,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		changeStatus: changeStatus,
		listByMonth:  listByMonth,
		clock:        clock,
		loc:          loc,
	}
}

// ======================================================
// REQUEST
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=100"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=20"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required,clock"`
	Hours int    `json:"hours" binding:"required,min=1"`
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	studioID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_studio_id", "Invalid studio id.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StudioID:      studioID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Hours:         req.Hours,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// ADMIN
// ======================================================

// ListByMonth handles GET /api/admin/bookings/month?year=2026&month=6.
// Missing parameters default to the current month in the booking timezone.
func (h *BookingHandler) ListByMonth(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	now := h.clock.Now().In(h.loc)
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			httperr.BadRequest(c, "invalid_year", "Invalid year.")
			return
		}
		year = y
	}

	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", "Month must be between 1 and 12.")
			return
		}
		month = m
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), studioID, year, month)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("list bookings failed")
		httperr.Internal(c, "list_failed", "Could not list bookings.")
		return
	}

	httpresp.List(c, list)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.ActionConfirm)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.ActionCancel)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, domain.ActionComplete)
}

func (h *BookingHandler) transition(c *gin.Context, action domain.Action) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.changeStatus.Execute(c.Request.Context(), studioID, userID, bookingID, action)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "studio_not_found"):
		httperr.NotFound(c, "studio_not_found", "Studio not found.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Date must be YYYY-MM-DD and time HH:MM.")
	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Duration must be between 1 and 12 hours.")
	case httperr.IsBusiness(err, "past_time"):
		httperr.BadRequest(c, "past_time", "Cannot book a time in the past.")
	case httperr.IsBusiness(err, "outside_opening_hours"):
		httperr.BadRequest(c, "outside_opening_hours", "Requested time is outside opening hours.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Requested time is already booked.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Booking cannot change to that status.")
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("booking request failed")
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
