package booking

import (
	"context"
	"time"

	"github.com/bookmycut/salon-scheduler/internal/models"
)

// AppointmentFilters narrows appointment searches; zero values mean "any".
type AppointmentFilters struct {
	ClientName  string
	StylistName string
	ServiceName string
	Date        *time.Time
	Status      string
}

// PageRequest is an optional pagination window; Size <= 0 means unpaginated.
type PageRequest struct {
	Page int
	Size int
}

type Repository interface {
	// -------- Users --------
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// -------- Service catalog --------
	ListServicesByIDs(ctx context.Context, ids []uint) ([]models.ServiceOffer, error)
	ListStylistServices(ctx context.Context, stylistID uint) ([]models.ServiceOffer, error)
	ReplaceStylistServices(ctx context.Context, stylist *models.User, services []models.ServiceOffer) error

	// -------- Availability & exceptions --------
	ListAvailability(ctx context.Context, stylistID uint, weekday time.Weekday) ([]models.Availability, error)
	ListExceptionsForDate(ctx context.Context, stylistID uint, date time.Time) ([]models.ScheduleException, error)

	// -------- Appointments --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filters AppointmentFilters, page PageRequest) ([]models.Appointment, int64, error)
	ListAppointmentsByClient(ctx context.Context, clientID uint, page PageRequest) ([]models.Appointment, int64, error)
	ListAppointmentsByStylist(ctx context.Context, stylistID uint, page PageRequest) ([]models.Appointment, int64, error)
	ListAppointmentsByDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
	ListAppointmentsByStylistAndDate(ctx context.Context, stylistID uint, date time.Time) ([]models.Appointment, error)
	ListConfirmedAppointmentsByDate(ctx context.Context, date time.Time) ([]models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, ap *models.Appointment) error

	// CountOverlapping counts non-cancelled appointments for the stylist and
	// date whose window strictly overlaps [start, end); excludeID, when not
	// nil, leaves out the appointment being updated.
	CountOverlapping(ctx context.Context, stylistID uint, date time.Time, startTime, endTime string, excludeID *uint) (int64, error)

	// LockStylistDay serializes writers for one stylist-day. Must be called
	// inside a transaction, before the overlap check; the lock is released
	// when the transaction ends.
	LockStylistDay(ctx context.Context, stylistID uint, date time.Time) error

	// InTransaction runs fn against a repository bound to a single database
	// transaction, committing on nil and rolling back on error.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}
