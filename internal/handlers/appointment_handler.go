package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/usecase/appointment"
	"github.com/bookmycut/salon-scheduler/internal/validators"
)

type AppointmentHandler struct {
	create       *appointment.CreateAppointment
	createPublic *appointment.CreatePublicAppointment
	update       *appointment.UpdateAppointment
	delete       *appointment.DeleteAppointment
	queries      *appointment.Queries
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	createPublic *appointment.CreatePublicAppointment,
	update *appointment.UpdateAppointment,
	delete_ *appointment.DeleteAppointment,
	queries *appointment.Queries,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		createPublic: createPublic,
		update:       update,
		delete:       delete_,
		queries:      queries,
	}
}

type CreateAppointmentRequest struct {
	ClientID    uint             `json:"client_id" binding:"required"`
	StylistID   uint             `json:"stylist_id" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	StartTime   string           `json:"start_time" binding:"required"`
	EndTime     string           `json:"end_time" binding:"required"`
	ClientPhone string           `json:"client_phone"`
	TotalPrice  *decimal.Decimal `json:"total_price"`
	ServiceIDs  []uint           `json:"service_ids"`
}

type CreatePublicAppointmentRequest struct {
	ClientName     string           `json:"client_name" binding:"required"`
	ClientEmail    string           `json:"client_email" binding:"required"`
	ClientPhone    string           `json:"client_phone"`
	ClientPassword string           `json:"client_password"`
	StylistID      uint             `json:"stylist_id" binding:"required"`
	Date           string           `json:"date" binding:"required"`
	StartTime      string           `json:"start_time" binding:"required"`
	EndTime        string           `json:"end_time" binding:"required"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	ServiceIDs     []uint           `json:"service_ids"`
}

type UpdateAppointmentRequest struct {
	Status    *string `json:"status"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "The phone number must be 9 digits with an optional +34 or 0034 prefix.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		ClientID:    req.ClientID,
		StylistID:   req.StylistID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ClientPhone: req.ClientPhone,
		TotalPrice:  req.TotalPrice,
		ServiceIDs:  req.ServiceIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) CreatePublic(c *gin.Context) {
	var req CreatePublicAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "The phone number must be 9 digits with an optional +34 or 0034 prefix.")
		return
	}

	out, err := h.createPublic.Execute(c.Request.Context(), appointment.CreatePublicAppointmentInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		ClientPassword: req.ClientPassword,
		StylistID:      req.StylistID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TotalPrice:     req.TotalPrice,
		ServiceIDs:     req.ServiceIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	ap, err := h.queries.ByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page := parsePageQuery(c)

	aps, total, err := h.queries.All(c.Request.Context(), page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, aps, page.Page, page.Size, total)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}
	page := parsePageQuery(c)

	aps, total, err := h.queries.ByClient(c.Request.Context(), clientID, page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, aps, page.Page, page.Size, total)
}

func (h *AppointmentHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "stylistId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}
	page := parsePageQuery(c)

	aps, total, err := h.queries.ByStylist(c.Request.Context(), stylistID, page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, aps, page.Page, page.Size, total)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
		return
	}

	aps, err := h.queries.ByDate(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByStylistAndDate(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "stylistId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
		return
	}

	aps, err := h.queries.ByStylistAndDate(c.Request.Context(), stylistID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Search(c *gin.Context) {
	filters := booking.AppointmentFilters{
		ClientName:  c.Query("client_name"),
		StylistName: c.Query("stylist_name"),
		ServiceName: c.Query("service_name"),
		Status:      c.Query("status"),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "The date is not a valid YYYY-MM-DD value.")
			return
		}
		filters.Date = &date
	}

	page := parsePageQuery(c)

	aps, total, err := h.queries.Search(c.Request.Context(), filters, page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, aps, page.Page, page.Size, total)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, appointment.UpdateAppointmentInput{
		Status:    req.Status,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}
