package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/cache"
	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

func NewAvailabilityHandler(db *gorm.DB, sc *cache.ScheduleCache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, cache: sc}
}

type AvailabilityRequest struct {
	StylistID uint   `json:"stylist_id" binding:"required"`
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) validate(c *gin.Context, req *AvailabilityRequest) bool {
	if *req.Weekday < 0 || *req.Weekday > 6 {
		httperr.BadRequest(c, "invalid_weekday", "The weekday must be between 0 (Sunday) and 6 (Saturday).")
		return false
	}

	if _, err := booking.NewWindow(req.StartTime, req.EndTime); err != nil {
		httperr.FromError(c, err)
		return false
	}

	var stylist models.User
	if !fetchByID(c, h.db, &stylist, req.StylistID, "stylist_not_found", "Stylist not found.") {
		return false
	}
	if stylist.Role != models.RoleStylist {
		httperr.BadRequest(c, "not_a_stylist", "The specified user is not a stylist.")
		return false
	}

	return true
}

func (h *AvailabilityHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "stylistId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var rows []models.Availability
	err := h.db.
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	// One row per stylist and weekday keeps the weekly schedule unambiguous.
	var count int64
	err := h.db.Model(&models.Availability{}).
		Where("stylist_id = ? AND weekday = ?", req.StylistID, *req.Weekday).
		Count(&count).Error
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if count > 0 {
		httperr.Conflict(c, "weekday_taken", "The stylist already has availability for this weekday.")
		return
	}

	row := models.Availability{
		StylistID: req.StylistID,
		Weekday:   *req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.cache.InvalidateStylist(c.Request.Context(), req.StylistID)
	httpresp.Created(c, row)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var row models.Availability
	if !fetchByID(c, h.db, &row, id, "availability_not_found", "Availability not found.") {
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	if *req.Weekday != row.Weekday || req.StylistID != row.StylistID {
		var count int64
		err := h.db.Model(&models.Availability{}).
			Where("stylist_id = ? AND weekday = ? AND id <> ?", req.StylistID, *req.Weekday, row.ID).
			Count(&count).Error
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		if count > 0 {
			httperr.Conflict(c, "weekday_taken", "The stylist already has availability for this weekday.")
			return
		}
	}

	oldStylist := row.StylistID
	row.StylistID = req.StylistID
	row.Weekday = *req.Weekday
	row.StartTime = req.StartTime
	row.EndTime = req.EndTime

	if err := h.db.Save(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.cache.InvalidateStylist(c.Request.Context(), oldStylist)
	if row.StylistID != oldStylist {
		h.cache.InvalidateStylist(c.Request.Context(), row.StylistID)
	}
	httpresp.OK(c, row)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var row models.Availability
	if !fetchByID(c, h.db, &row, id, "availability_not_found", "Availability not found.") {
		return
	}

	if err := h.db.Delete(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.cache.InvalidateStylist(c.Request.Context(), row.StylistID)
	c.Status(204)
}
