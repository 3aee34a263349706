package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

type ServiceOfferHandler struct {
	db *gorm.DB
}

func NewServiceOfferHandler(db *gorm.DB) *ServiceOfferHandler {
	return &ServiceOfferHandler{db: db}
}

type ServiceOfferRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DurationMin int             `json:"duration_min" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

func (h *ServiceOfferHandler) List(c *gin.Context) {
	var services []models.ServiceOffer
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceOfferHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var service models.ServiceOffer
	if !fetchByID(c, h.db, &service, id, "service_not_found", "Service not found.") {
		return
	}
	httpresp.OK(c, service)
}

func (h *ServiceOfferHandler) Create(c *gin.Context) {
	var req ServiceOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.UnitPrice.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "The price cannot be negative.")
		return
	}

	service := models.ServiceOffer{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		UnitPrice:   req.UnitPrice,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceOfferHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var service models.ServiceOffer
	if !fetchByID(c, h.db, &service, id, "service_not_found", "Service not found.") {
		return
	}

	var req ServiceOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.UnitPrice.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "The price cannot be negative.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.UnitPrice = req.UnitPrice

	if err := h.db.Save(&service).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceOfferHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var service models.ServiceOffer
	if !fetchByID(c, h.db, &service, id, "service_not_found", "Service not found.") {
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}
