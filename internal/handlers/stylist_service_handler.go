package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/middleware"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/usecase/catalog"
)

type StylistServiceHandler struct {
	services *catalog.StylistServices
}

func NewStylistServiceHandler(services *catalog.StylistServices) *StylistServiceHandler {
	return &StylistServiceHandler{services: services}
}

type AssignServicesRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required"`
}

func (h *StylistServiceHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "stylistId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	services, err := h.services.ListForStylist(c.Request.Context(), stylistID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *StylistServiceHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	services, err := h.services.ListForStylist(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *StylistServiceHandler) Assign(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "stylistId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	// A stylist may only manage their own service set; admins manage anyone's.
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)
	if role == models.RoleStylist && userID != stylistID {
		httperr.Forbidden(c, "forbidden", "Stylists can only manage their own services.")
		return
	}

	var req AssignServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service assignment payload.")
		return
	}

	services, err := h.services.Assign(c.Request.Context(), stylistID, req.ServiceIDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}
