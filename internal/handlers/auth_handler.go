package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/auth"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/middleware"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register always creates a CLIENT; stylist and admin accounts are only
// provisioned through the admin user endpoints.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid registration payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email", "The email address is not deliverable.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "The phone number must be 9 digits with an optional +34 or 0034 prefix.")
		return
	}

	var existing models.User
	err := h.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		httperr.Conflict(c, "email_taken", "An account with this email already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		Username:     email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         models.RoleClient,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	log.Info().Uint("user_id", user.ID).Msg("client registered")
	httpresp.Created(c, AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid login payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		} else {
			httperr.FromError(c, err)
		}
		return
	}

	if !user.Active || !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if !fetchByID(c, h.db, &user, userID, "user_not_found", "User not found.") {
		return
	}

	httpresp.OK(c, user)
}
