package appointment

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo booking.Repository
}

func NewDeleteAppointment(repo booking.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

// Execute removes the appointment permanently. Deleting an unknown id is an
// error, not a no-op.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	log.Info().Uint("appointment_id", id).Msg("appointment deleted")
	return nil
}
