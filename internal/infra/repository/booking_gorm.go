package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/cache"
	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// BookingRepository is the gorm-backed implementation of booking.Repository.
// The schedule cache is optional; a nil cache means every read hits postgres.
type BookingRepository struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

var _ booking.Repository = (*BookingRepository)(nil)

func NewBookingRepository(db *gorm.DB, sc *cache.ScheduleCache) *BookingRepository {
	return &BookingRepository{db: db, cache: sc}
}

// -------- Users --------

func (r *BookingRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// -------- Service catalog --------

func (r *BookingRepository) ListServicesByIDs(ctx context.Context, ids []uint) ([]models.ServiceOffer, error) {
	var services []models.ServiceOffer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingRepository) ListStylistServices(ctx context.Context, stylistID uint) ([]models.ServiceOffer, error) {
	var stylist models.User
	err := r.db.WithContext(ctx).Preload("Services").First(&stylist, stylistID).Error
	if err != nil {
		return nil, err
	}
	return stylist.Services, nil
}

// ReplaceStylistServices swaps the stylist's full service set in one shot.
func (r *BookingRepository) ReplaceStylistServices(ctx context.Context, stylist *models.User, services []models.ServiceOffer) error {
	return r.db.WithContext(ctx).Model(stylist).Association("Services").Replace(services)
}

// -------- Availability & exceptions --------

func (r *BookingRepository) ListAvailability(ctx context.Context, stylistID uint, weekday time.Weekday) ([]models.Availability, error) {
	if rows, ok := r.cache.GetAvailability(ctx, stylistID, weekday); ok {
		return rows, nil
	}

	var rows []models.Availability
	err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, int(weekday)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	r.cache.SetAvailability(ctx, stylistID, weekday, rows)
	return rows, nil
}

func (r *BookingRepository) ListExceptionsForDate(ctx context.Context, stylistID uint, date time.Time) ([]models.ScheduleException, error) {
	if rows, ok := r.cache.GetExceptions(ctx, stylistID, date); ok {
		return rows, nil
	}

	var rows []models.ScheduleException
	err := r.db.WithContext(ctx).
		Where("date = ? AND (stylist_id = ? OR stylist_id IS NULL)", date.Format("2006-01-02"), stylistID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	r.cache.SetExceptions(ctx, stylistID, date, rows)
	return rows, nil
}

// -------- Appointments --------

func (r *BookingRepository) appointmentQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Client").
		Preload("Stylist").
		Preload("Services")
}

func (r *BookingRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.appointmentQuery(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func paginate(q *gorm.DB, page booking.PageRequest) *gorm.DB {
	if page.Size <= 0 {
		return q
	}
	p := page.Page
	if p < 1 {
		p = 1
	}
	return q.Offset((p - 1) * page.Size).Limit(page.Size)
}

func (r *BookingRepository) listPaged(q *gorm.DB, page booking.PageRequest) ([]models.Appointment, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	err := paginate(q, page).
		Order("date DESC, start_time DESC").
		Find(&aps).Error
	if err != nil {
		return nil, 0, err
	}
	return aps, total, nil
}

func (r *BookingRepository) ListAppointments(ctx context.Context, filters booking.AppointmentFilters, page booking.PageRequest) ([]models.Appointment, int64, error) {
	q := r.appointmentQuery(ctx)

	if filters.ClientName != "" {
		q = q.Joins("JOIN users AS clients ON clients.id = appointments.client_id").
			Where("clients.name ILIKE ?", "%"+filters.ClientName+"%")
	}
	if filters.StylistName != "" {
		q = q.Joins("JOIN users AS stylists ON stylists.id = appointments.stylist_id").
			Where("stylists.name ILIKE ?", "%"+filters.StylistName+"%")
	}
	if filters.ServiceName != "" {
		q = q.Joins("JOIN appointment_services ON appointment_services.appointment_id = appointments.id").
			Joins("JOIN service_offers ON service_offers.id = appointment_services.service_offer_id").
			Where("service_offers.name ILIKE ?", "%"+filters.ServiceName+"%").
			Distinct("appointments.*")
	}
	if filters.Date != nil {
		q = q.Where("appointments.date = ?", filters.Date.Format("2006-01-02"))
	}
	if filters.Status != "" {
		q = q.Where("appointments.status = ?", filters.Status)
	}

	return r.listPaged(q, page)
}

func (r *BookingRepository) ListAppointmentsByClient(ctx context.Context, clientID uint, page booking.PageRequest) ([]models.Appointment, int64, error) {
	q := r.appointmentQuery(ctx).Where("client_id = ?", clientID)
	return r.listPaged(q, page)
}

func (r *BookingRepository) ListAppointmentsByStylist(ctx context.Context, stylistID uint, page booking.PageRequest) ([]models.Appointment, int64, error) {
	q := r.appointmentQuery(ctx).Where("stylist_id = ?", stylistID)
	return r.listPaged(q, page)
}

func (r *BookingRepository) ListAppointmentsByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	var aps []models.Appointment
	err := r.appointmentQuery(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *BookingRepository) ListAppointmentsByStylistAndDate(ctx context.Context, stylistID uint, date time.Time) ([]models.Appointment, error) {
	var aps []models.Appointment
	err := r.appointmentQuery(ctx).
		Where("stylist_id = ? AND date = ?", stylistID, date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *BookingRepository) ListConfirmedAppointmentsByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	var aps []models.Appointment
	err := r.appointmentQuery(ctx).
		Where("date = ? AND status = ?", date.Format("2006-01-02"), "CONFIRMED").
		Order("start_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *BookingRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingRepository) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingRepository) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Select("Services").Delete(ap).Error
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, stylistID uint, date time.Time, startTime, endTime string, excludeID *uint) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("stylist_id = ? AND date = ? AND status <> ?", stylistID, date.Format("2006-01-02"), "CANCELLED").
		Where("start_time < ? AND end_time > ?", endTime, startTime)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

// LockStylistDay takes a transaction-scoped advisory lock keyed on the
// stylist and calendar day. Row locks cannot serialize two inserts that each
// see zero conflicting rows; this lock can.
func (r *BookingRepository) LockStylistDay(ctx context.Context, stylistID uint, date time.Time) error {
	day := date.Year()*10000 + int(date.Month())*100 + date.Day()
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", int64(stylistID), int64(day)).Error
}

func (r *BookingRepository) InTransaction(ctx context.Context, fn func(booking.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingRepository{db: tx, cache: r.cache})
	})
}
