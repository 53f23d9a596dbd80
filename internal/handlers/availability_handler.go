package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	engine "github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/studio-scheduler/internal/usecase/availability"
)

type AvailabilityService interface {
	Execute(ctx context.Context, in ucAvailability.Input) (engine.Result, error)
}

type AvailabilityHandler struct {
	uc  AvailabilityService
	loc *time.Location
}

func NewAvailabilityHandler(uc AvailabilityService, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc, loc: loc}
}

// Get handles GET /api/public/studios/:id/availability?date=YYYY-MM-DD&view=day|month
func (h *AvailabilityHandler) Get(c *gin.Context) {
	studioID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_studio_id", "Invalid studio id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := timezone.ParseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	view, ok := engine.ParseView(c.Query("view"))
	if !ok {
		httperr.BadRequest(c, "invalid_view", "View must be day or month.")
		return
	}

	res, err := h.uc.Execute(c.Request.Context(), ucAvailability.Input{
		StudioID: studioID,
		Date:     date,
		View:     view,
	})
	if err != nil {
		if httperr.IsBusiness(err, "studio_not_found") {
			httperr.NotFound(c, "studio_not_found", "Studio not found.")
			return
		}

		logger.FromContext(c.Request.Context()).Error().Err(err).
			Uint("studio_id", studioID).
			Msg("availability query failed")
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	if res.Month != nil {
		httpresp.OK(c, res.Month)
		return
	}
	httpresp.OK(c, res.Day)
}
