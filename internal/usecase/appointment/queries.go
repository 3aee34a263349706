package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// Queries groups the read-only appointment lookups. They share the pattern of
// resolving referenced users first so a missing id surfaces as not-found
// instead of an empty list.
type Queries struct {
	repo booking.Repository
}

func NewQueries(repo booking.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) ByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := q.repo.GetAppointment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}

func (q *Queries) All(ctx context.Context, page booking.PageRequest) ([]models.Appointment, int64, error) {
	return q.repo.ListAppointments(ctx, booking.AppointmentFilters{}, page)
}

func (q *Queries) ByClient(ctx context.Context, clientID uint, page booking.PageRequest) ([]models.Appointment, int64, error) {
	if _, err := q.repo.GetUser(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, httperr.ErrNotFound("client_not_found", "Client not found.")
		}
		return nil, 0, err
	}
	return q.repo.ListAppointmentsByClient(ctx, clientID, page)
}

func (q *Queries) ByStylist(ctx context.Context, stylistID uint, page booking.PageRequest) ([]models.Appointment, int64, error) {
	if _, err := q.repo.GetUser(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, httperr.ErrNotFound("stylist_not_found", "Stylist not found.")
		}
		return nil, 0, err
	}
	return q.repo.ListAppointmentsByStylist(ctx, stylistID, page)
}

func (q *Queries) ByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	return q.repo.ListAppointmentsByDate(ctx, date)
}

func (q *Queries) ByStylistAndDate(ctx context.Context, stylistID uint, date time.Time) ([]models.Appointment, error) {
	if _, err := q.repo.GetUser(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("stylist_not_found", "Stylist not found.")
		}
		return nil, err
	}
	return q.repo.ListAppointmentsByStylistAndDate(ctx, stylistID, date)
}

func (q *Queries) Search(ctx context.Context, filters booking.AppointmentFilters, page booking.PageRequest) ([]models.Appointment, int64, error) {
	return q.repo.ListAppointments(ctx, filters, page)
}
