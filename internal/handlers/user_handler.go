package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/auth"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/provision"
	"github.com/bookmycut/salon-scheduler/internal/validators"
)

// UserHandler covers the admin-only account management surface plus the
// public stylist directory.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", strings.ToUpper(role))
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, users)
}

// ListStylists is the unauthenticated directory used by the booking page.
func (h *UserHandler) ListStylists(c *gin.Context) {
	var stylists []models.User
	err := h.db.
		Where("role = ? AND active = true", models.RoleStylist).
		Order("name ASC").
		Find(&stylists).Error
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, stylists)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var user models.User
	if !fetchByID(c, h.db, &user, id, "user_not_found", "User not found.") {
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var user models.User
	if !fetchByID(c, h.db, &user, id, "user_not_found", "User not found.") {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}

	becameStylist := false

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "The phone number must be 9 digits with an optional +34 or 0034 prefix.")
			return
		}
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		role := strings.ToUpper(*req.Role)
		if !models.IsValidRole(role) {
			httperr.BadRequest(c, "invalid_role", "The role must be CLIENT, STYLIST or ADMIN.")
			return
		}
		becameStylist = role == models.RoleStylist && user.Role != models.RoleStylist
		user.Role = role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		user.PasswordHash = hashed
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	// A freshly promoted stylist gets a weekday schedule so they are bookable
	// immediately.
	if becameStylist {
		if err := provision.EnsureStylistSchedule(c.Request.Context(), h.db, user.ID); err != nil {
			log.Error().Err(err).Uint("stylist_id", user.ID).Msg("failed to seed stylist schedule")
		}
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	var user models.User
	if !fetchByID(c, h.db, &user, id, "user_not_found", "User not found.") {
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	log.Info().Uint("user_id", id).Msg("user deleted")
	c.Status(204)
}
