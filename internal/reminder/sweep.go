package reminder

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

// ReminderStore is the slice of the notification store the sweep needs.
type ReminderStore interface {
	Create(ev notification.Event) error
	HasReminderToday(appointmentID uint, now time.Time) (bool, error)
}

// Sweep finds tomorrow's confirmed appointments and creates one reminder per
// participant. Already-reminded appointments are skipped, so rerunning a
// sweep on the same day is safe.
type Sweep struct {
	repo  booking.Repository
	store ReminderStore

	now func() time.Time
}

func NewSweep(repo booking.Repository, store ReminderStore) *Sweep {
	return &Sweep{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

func (s *Sweep) Run(ctx context.Context) error {
	now := s.now()
	tomorrow := now.AddDate(0, 0, 1)

	appointments, err := s.repo.ListConfirmedAppointmentsByDate(ctx, tomorrow)
	if err != nil {
		return err
	}

	sent := 0
	for i := range appointments {
		ap := &appointments[i]

		done, err := s.store.HasReminderToday(ap.ID, now)
		if err != nil {
			log.Error().Err(err).Uint("appointment_id", ap.ID).Msg("reminder dedupe check failed")
			continue
		}
		if done {
			continue
		}

		failed := false
		for _, ev := range notification.ReminderEvents(ap) {
			if err := s.store.Create(ev); err != nil {
				log.Error().Err(err).Uint("appointment_id", ap.ID).Msg("failed to create reminder")
				failed = true
			}
		}
		if !failed {
			sent++
		}
	}

	log.Info().
		Int("appointments", len(appointments)).
		Int("reminded", sent).
		Msg("reminder sweep finished")
	return nil
}
