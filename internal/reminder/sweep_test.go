package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

// fakeBookingRepo only implements the one read the sweep performs; the
// embedded nil interface panics loudly if anything else is called.
type fakeBookingRepo struct {
	booking.Repository
	confirmed []models.Appointment
}

func (f *fakeBookingRepo) ListConfirmedAppointmentsByDate(_ context.Context, _ time.Time) ([]models.Appointment, error) {
	return f.confirmed, nil
}

type fakeReminderStore struct {
	created      []notification.Event
	alreadySent  map[uint]bool
	failCreate   map[uint]bool
	failedDedupe map[uint]bool
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{
		alreadySent:  map[uint]bool{},
		failCreate:   map[uint]bool{},
		failedDedupe: map[uint]bool{},
	}
}

func (s *fakeReminderStore) Create(ev notification.Event) error {
	if ev.RelatedAppointmentID != nil && s.failCreate[*ev.RelatedAppointmentID] {
		return errors.New("insert failed")
	}
	s.created = append(s.created, ev)
	return nil
}

func (s *fakeReminderStore) HasReminderToday(appointmentID uint, _ time.Time) (bool, error) {
	if s.failedDedupe[appointmentID] {
		return false, errors.New("query failed")
	}
	return s.alreadySent[appointmentID], nil
}

func confirmedAppointment(id uint) models.Appointment {
	return models.Appointment{
		ID:        id,
		ClientID:  1,
		StylistID: 2,
		Status:    "CONFIRMED",
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Client:    models.User{ID: 1, Name: "Ana"},
		Stylist:   models.User{ID: 2, Name: "Bea"},
	}
}

func newSweep(repo *fakeBookingRepo, store *fakeReminderStore) *Sweep {
	s := NewSweep(repo, store)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestSweepCreatesReminderPairs(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: []models.Appointment{
		confirmedAppointment(1),
		confirmedAppointment(2),
	}}
	store := newFakeReminderStore()

	if err := newSweep(repo, store).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two appointments, one event for the client and one for the stylist each.
	if len(store.created) != 4 {
		t.Fatalf("created %d events, want 4", len(store.created))
	}
	for _, ev := range store.created {
		if ev.Type != models.NotificationAppointmentReminder {
			t.Errorf("event type = %s, want %s", ev.Type, models.NotificationAppointmentReminder)
		}
	}
}

func TestSweepSkipsAlreadyReminded(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: []models.Appointment{
		confirmedAppointment(1),
		confirmedAppointment(2),
	}}
	store := newFakeReminderStore()
	store.alreadySent[1] = true

	if err := newSweep(repo, store).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.created) != 2 {
		t.Fatalf("created %d events, want 2", len(store.created))
	}
	for _, ev := range store.created {
		if *ev.RelatedAppointmentID != 2 {
			t.Errorf("reminded appointment %d, want only 2", *ev.RelatedAppointmentID)
		}
	}
}

func TestSweepIsolatesFailures(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: []models.Appointment{
		confirmedAppointment(1),
		confirmedAppointment(2),
		confirmedAppointment(3),
	}}
	store := newFakeReminderStore()
	store.failedDedupe[1] = true
	store.failCreate[2] = true

	// One broken appointment must not stop the rest of the sweep.
	if err := newSweep(repo, store).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := 0
	for _, ev := range store.created {
		if *ev.RelatedAppointmentID == 3 {
			got++
		}
	}
	if got != 2 {
		t.Errorf("appointment 3 got %d reminders, want 2", got)
	}
}
