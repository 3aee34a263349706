package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// StylistServices manages which catalog services a stylist performs. The
// booking frontend uses the list to show what each stylist offers.
type StylistServices struct {
	repo booking.Repository
}

func NewStylistServices(repo booking.Repository) *StylistServices {
	return &StylistServices{repo: repo}
}

func (uc *StylistServices) resolveStylist(ctx context.Context, stylistID uint) (*models.User, error) {
	stylist, err := uc.repo.GetUser(ctx, stylistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("stylist_not_found", "Stylist not found.")
	}
	if err != nil {
		return nil, err
	}
	if stylist.Role != models.RoleStylist {
		return nil, httperr.ErrBadRequest("not_a_stylist", "The specified user is not a stylist.")
	}
	return stylist, nil
}

func (uc *StylistServices) ListForStylist(ctx context.Context, stylistID uint) ([]models.ServiceOffer, error) {
	if _, err := uc.resolveStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	return uc.repo.ListStylistServices(ctx, stylistID)
}

// Assign replaces the stylist's service set with the given ids. Every id must
// resolve; an empty list is rejected rather than clearing the set.
func (uc *StylistServices) Assign(ctx context.Context, stylistID uint, serviceIDs []uint) ([]models.ServiceOffer, error) {
	stylist, err := uc.resolveStylist(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBadRequest("missing_service_ids", "A non-empty list of service ids is required.")
	}

	services, err := uc.repo.ListServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrBadRequest("invalid_service_ids", "One or more service ids do not exist.")
	}

	if err := uc.repo.ReplaceStylistServices(ctx, stylist, services); err != nil {
		return nil, err
	}

	log.Info().
		Uint("stylist_id", stylist.ID).
		Int("services", len(services)).
		Msg("stylist services updated")
	return services, nil
}
