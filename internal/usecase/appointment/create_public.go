package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/auth"
	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

type CreatePublicAppointmentInput struct {
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	ClientPassword string

	StylistID uint

	Date      string
	StartTime string
	EndTime   string

	TotalPrice *decimal.Decimal
	ServiceIDs []uint
}

type CreatePublicAppointmentOutput struct {
	Appointment *models.Appointment `json:"appointment"`

	// Token is only set when a new account with a password was created.
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// CreatePublicAppointment resolves (or creates) the client account from the
// public booking form, then delegates to the regular create pipeline.
type CreatePublicAppointment struct {
	repo   booking.Repository
	create *CreateAppointment
	tokens *auth.TokenManager
}

func NewCreatePublicAppointment(
	repo booking.Repository,
	create *CreateAppointment,
	tokens *auth.TokenManager,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:   repo,
		create: create,
		tokens: tokens,
	}
}

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*CreatePublicAppointmentOutput, error) {

	email := strings.ToLower(strings.TrimSpace(in.ClientEmail))
	if email == "" {
		return nil, httperr.ErrBadRequest("missing_email", "An email address is required.")
	}

	client, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	wasNew := false

	if err != nil {
		user := &models.User{
			Name:     in.ClientName,
			Email:    email,
			Username: email,
			Phone:    in.ClientPhone,
			Role:     models.RoleClient,
			Active:   true,
		}

		if pw := strings.TrimSpace(in.ClientPassword); pw != "" {
			hashed, err := auth.HashPassword(pw)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = hashed
		}

		if err := uc.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}

		client = user
		wasNew = true
		log.Info().Uint("user_id", user.ID).Msg("client account created from public booking")
	} else if client.Role != models.RoleClient {
		return nil, httperr.ErrBadRequest(
			"not_a_client",
			"This email belongs to an account that cannot book appointments.",
		)
	}

	ap, err := uc.create.Execute(ctx, CreateAppointmentInput{
		ClientID:    client.ID,
		StylistID:   in.StylistID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		ClientPhone: in.ClientPhone,
		TotalPrice:  in.TotalPrice,
		ServiceIDs:  in.ServiceIDs,
	})
	if err != nil {
		return nil, err
	}

	out := &CreatePublicAppointmentOutput{Appointment: ap}

	if wasNew && strings.TrimSpace(in.ClientPassword) != "" {
		token, err := uc.tokens.Generate(client)
		if err != nil {
			// The booking already exists; a token failure must not undo it.
			log.Warn().Err(err).Uint("user_id", client.ID).Msg("failed to issue token for new client")
		} else {
			out.Token = token
			out.User = client
		}
	}

	return out, nil
}
