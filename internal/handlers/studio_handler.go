package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	engine "github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type EventDispatcher interface {
	Dispatch(ev audit.Event)
}

type StudioHandler struct {
	db    *gorm.DB
	audit EventDispatcher
}

func NewStudioHandler(db *gorm.DB, audit EventDispatcher) *StudioHandler {
	return &StudioHandler{db: db, audit: audit}
}

type UpdateStudioRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string  `json:"description"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20"`
	OpeningTime *string  `json:"opening_time" binding:"omitempty,clock"`
	ClosingTime *string  `json:"closing_time" binding:"omitempty,clock"`
	HourlyRate  *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}

func (h *StudioHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var studio models.Studio
	if err := h.db.WithContext(c.Request.Context()).First(&studio, studioID).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Studio not found.")
		return
	}

	httpresp.OK(c, studio)
}

func (h *StudioHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var studio models.Studio
	if err := db.First(&studio, studioID).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Studio not found.")
		return
	}

	if req.Name != nil {
		studio.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		studio.Description = *req.Description
	}
	if req.Address != nil {
		studio.Address = *req.Address
	}
	if req.Phone != nil {
		studio.Phone = *req.Phone
	}
	if req.OpeningTime != nil {
		studio.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		studio.ClosingTime = *req.ClosingTime
	}
	if req.HourlyRate != nil {
		studio.HourlyRate = *req.HourlyRate
	}
	if req.Active != nil {
		studio.Active = *req.Active
	}

	hours := engine.StudioHours{OpeningTime: studio.OpeningTime, ClosingTime: studio.ClosingTime}
	if err := hours.Validate(); err != nil {
		httperr.BadRequest(c, "invalid_hours", "Opening time must be before closing time.")
		return
	}

	if err := db.Save(&studio).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Could not update studio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   audit.ActionStudioUpdated,
		Entity:   "studio",
		EntityID: &studio.ID,
	})

	httpresp.OK(c, studio)
}
