package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

// UpdateAppointmentInput is a sparse change set: nil fields keep their prior
// values and are not re-validated.
type UpdateAppointmentInput struct {
	Status    *string
	Date      *string
	StartTime *string
	EndTime   *string
}

type UpdateAppointment struct {
	repo     booking.Repository
	notifier notification.Dispatcher
	now      func() time.Time
}

func NewUpdateAppointment(
	repo booking.Repository,
	notifier notification.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status(ap.Status)

	if in.Status != nil {
		newStatus, err := booking.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := booking.CanTransition(oldStatus, newStatus); err != nil {
			return nil, err
		}
		ap.Status = string(newStatus)
	}

	newDate := ap.Date
	newStart := ap.StartTime
	newEnd := ap.EndTime
	dateOrTimeChanged := false

	if in.Date != nil {
		newDate, err = time.ParseInLocation(dateLayout, *in.Date, uc.now().Location())
		if err != nil {
			return nil, httperr.ErrBadRequest("invalid_date", "The date is not a valid YYYY-MM-DD value.")
		}
		dateOrTimeChanged = true
	}
	if in.StartTime != nil {
		newStart = *in.StartTime
		dateOrTimeChanged = true
	}
	if in.EndTime != nil {
		newEnd = *in.EndTime
		dateOrTimeChanged = true
	}

	// Ordering is validated on the merged window even when unchanged.
	win, err := booking.NewWindow(newStart, newEnd)
	if err != nil {
		return nil, err
	}

	if dateOrTimeChanged {
		if booking.InPast(newDate, win, uc.now()) {
			return nil, httperr.ErrBadRequest(
				"appointment_in_past",
				"Appointments cannot be moved to a past date or time.",
			)
		}

		exceptions, err := uc.repo.ListExceptionsForDate(ctx, ap.StylistID, newDate)
		if err != nil {
			return nil, err
		}
		availabilities, err := uc.repo.ListAvailability(ctx, ap.StylistID, newDate.Weekday())
		if err != nil {
			return nil, err
		}
		if err := booking.CheckBookable(win, newDate.Weekday(), exceptions, availabilities); err != nil {
			return nil, err
		}
	}

	ap.Date = newDate
	ap.StartTime = win.StartClock()
	ap.EndTime = win.EndClock()

	err = uc.repo.InTransaction(ctx, func(tx booking.Repository) error {
		if dateOrTimeChanged {
			if err := tx.LockStylistDay(ctx, ap.StylistID, newDate); err != nil {
				return err
			}

			excludeID := ap.ID
			count, err := tx.CountOverlapping(ctx, ap.StylistID, newDate, ap.StartTime, ap.EndTime, &excludeID)
			if err != nil {
				return err
			}
			if count > 0 {
				return httperr.ErrConflict("slot_already_booked", "This slot is already booked.")
			}
		}

		return tx.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("appointment_id", ap.ID).
		Str("status", ap.Status).
		Msg("appointment updated")

	if booking.Status(ap.Status) == booking.StatusCancelled && oldStatus != booking.StatusCancelled {
		for _, ev := range notification.CancelledEvents(ap) {
			uc.notifier.Dispatch(ev)
		}
	}

	return ap, nil
}
