package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/cache"
	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/middleware"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

type ScheduleExceptionHandler struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

func NewScheduleExceptionHandler(db *gorm.DB, sc *cache.ScheduleCache) *ScheduleExceptionHandler {
	return &ScheduleExceptionHandler{db: db, cache: sc}
}

type ScheduleExceptionRequest struct {
	StylistID *uint   `json:"stylist_id"`
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Type      string  `json:"type" binding:"required"`
	Reason    string  `json:"reason"`
}

func (h *ScheduleExceptionHandler) validate(c *gin.Context, req *ScheduleExceptionRequest) bool {
	if req.Type != models.ExceptionAvailable && req.Type != models.ExceptionUnavailable {
		httperr.BadRequest(c, "invalid_exception_type", "The type must be AVAILABLE or UNAVAILABLE.")
		return false
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		httperr.BadRequest(c, "invalid_time_range", "Start and end time must be provided together.")
		return false
	}
	if req.StartTime != nil {
		if _, err := booking.NewWindow(*req.StartTime, *req.EndTime); err != nil {
			httperr.FromError(c, err)
			return false
		}
	}

	if req.StylistID != nil {
		var stylist models.User
		if !fetchByID(c, h.db, &stylist, *req.StylistID, "stylist_not_found", "Stylist not found.") {
			return false
		}
		if stylist.Role != models.RoleStylist {
			httperr.BadRequest(c, "not_a_stylist", "The specified user is not a stylist.")
			return false
		}
	}

	return true
}

func (h *ScheduleExceptionHandler) invalidate(c *gin.Context, stylistID *uint) {
	if stylistID != nil {
		h.cache.InvalidateStylist(c.Request.Context(), *stylistID)
		return
	}
	// A salon-wide exception affects every stylist's snapshot.
	h.cache.InvalidateAll(c.Request.Context())
}

func (h *ScheduleExceptionHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ScheduleException{}).Preload("Stylist").Preload("Administrator")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
			return
		}
		q = q.Where("date = ?", date.Format(dateLayout))
	}
	if stylistStr := c.Query("stylist_id"); stylistStr != "" {
		q = q.Where("stylist_id = ?", stylistStr)
	}

	var rows []models.ScheduleException
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ScheduleExceptionHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req ScheduleExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid exception payload.")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
		return
	}

	row := models.ScheduleException{
		StylistID:       req.StylistID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Type:            req.Type,
		Reason:          req.Reason,
		AdministratorID: adminID,
	}

	if err := h.db.Create(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.invalidate(c, row.StylistID)
	httpresp.Created(c, row)
}

func (h *ScheduleExceptionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var row models.ScheduleException
	if !fetchByID(c, h.db, &row, id, "exception_not_found", "Schedule exception not found.") {
		return
	}

	var req ScheduleExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid exception payload.")
		return
	}
	if !h.validate(c, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
		return
	}

	oldStylist := row.StylistID

	row.StylistID = req.StylistID
	row.Date = date
	row.StartTime = req.StartTime
	row.EndTime = req.EndTime
	row.Type = req.Type
	row.Reason = req.Reason

	if err := h.db.Save(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.invalidate(c, oldStylist)
	h.invalidate(c, row.StylistID)
	httpresp.OK(c, row)
}

func (h *ScheduleExceptionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var row models.ScheduleException
	if !fetchByID(c, h.db, &row, id, "exception_not_found", "Schedule exception not found.") {
		return
	}

	if err := h.db.Delete(&row).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	h.invalidate(c, row.StylistID)
	c.Status(204)
}
