package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

// fakeRepo is an in-memory booking.Repository for exercising the use cases
// without a database. Missing rows surface as gorm.ErrRecordNotFound, like
// the real repository; the fail* fields inject infrastructure errors.
type fakeRepo struct {
	users        map[uint]*models.User
	services     []models.ServiceOffer
	availability []models.Availability
	exceptions   []models.ScheduleException
	appointments map[uint]*models.Appointment

	nextID    uint
	lockCalls int

	failGetUser        error
	failGetAppointment error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addUser(id uint, role string) *models.User {
	u := &models.User{ID: id, Name: "User", Role: role, Active: true}
	f.users[id] = u
	return u
}

func (f *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	ap.ID = f.nextID
	f.nextID++
	stored := ap
	f.appointments[stored.ID] = &stored
	return &stored
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if f.failGetUser != nil {
		return nil, f.failGetUser
	}
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) ListServicesByIDs(_ context.Context, ids []uint) ([]models.ServiceOffer, error) {
	var out []models.ServiceOffer
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListStylistServices(_ context.Context, stylistID uint) ([]models.ServiceOffer, error) {
	u, ok := f.users[stylistID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u.Services, nil
}

func (f *fakeRepo) ReplaceStylistServices(_ context.Context, stylist *models.User, services []models.ServiceOffer) error {
	stylist.Services = services
	f.users[stylist.ID] = stylist
	return nil
}

func (f *fakeRepo) ListAvailability(_ context.Context, stylistID uint, weekday time.Weekday) ([]models.Availability, error) {
	var out []models.Availability
	for _, a := range f.availability {
		if a.StylistID == stylistID && a.Weekday == int(weekday) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListExceptionsForDate(_ context.Context, stylistID uint, date time.Time) ([]models.ScheduleException, error) {
	var out []models.ScheduleException
	for _, e := range f.exceptions {
		if !sameDay(e.Date, date) {
			continue
		}
		if e.StylistID == nil || *e.StylistID == stylistID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if f.failGetAppointment != nil {
		return nil, f.failGetAppointment
	}
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, _ booking.AppointmentFilters, _ booking.PageRequest) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListAppointmentsByClient(_ context.Context, clientID uint, _ booking.PageRequest) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListAppointmentsByStylist(_ context.Context, stylistID uint, _ booking.PageRequest) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StylistID == stylistID {
			out = append(out, *ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListAppointmentsByDate(_ context.Context, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if sameDay(ap.Date, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByStylistAndDate(_ context.Context, stylistID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StylistID == stylistID && sameDay(ap.Date, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedAppointmentsByDate(_ context.Context, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == "CONFIRMED" && sameDay(ap.Date, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	f.appointments[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(f.appointments, ap.ID)
	return nil
}

func (f *fakeRepo) CountOverlapping(_ context.Context, stylistID uint, date time.Time, startTime, endTime string, excludeID *uint) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if ap.StylistID != stylistID || !sameDay(ap.Date, date) || ap.Status == "CANCELLED" {
			continue
		}
		// "15:04" strings compare correctly as text.
		if ap.StartTime < endTime && ap.EndTime > startTime {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) LockStylistDay(_ context.Context, _ uint, _ time.Time) error {
	f.lockCalls++
	return nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(booking.Repository) error) error {
	return fn(f)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

var _ booking.Repository = (*fakeRepo)(nil)

// recordingDispatcher captures dispatched events for assertions.
type recordingDispatcher struct {
	events []notification.Event
}

func (d *recordingDispatcher) Dispatch(ev notification.Event) {
	d.events = append(d.events, ev)
}
