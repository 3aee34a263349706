package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

const dateLayout = "2006-01-02"

type CreateAppointmentInput struct {
	ClientID  uint
	StylistID uint

	Date      string
	StartTime string
	EndTime   string

	ClientPhone string

	// TotalPrice is only honored when ServiceIDs is empty; with services the
	// price is always computed from the catalog.
	TotalPrice *decimal.Decimal
	ServiceIDs []uint
}

type CreateAppointment struct {
	repo     booking.Repository
	notifier notification.Dispatcher

	// now is swappable for tests.
	now func() time.Time
}

func NewCreateAppointment(
	repo booking.Repository,
	notifier notification.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Identity resolution. Only a missing row is a business outcome; any
	// other repository failure surfaces as an internal error.
	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("client_not_found", "Client not found.")
	}
	if err != nil {
		return nil, err
	}
	if client.Role != models.RoleClient {
		return nil, httperr.ErrBadRequest("not_a_client", "The specified user is not a client.")
	}

	stylist, err := uc.repo.GetUser(ctx, in.StylistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("stylist_not_found", "Stylist not found.")
	}
	if err != nil {
		return nil, err
	}
	if stylist.Role != models.RoleStylist {
		return nil, httperr.ErrBadRequest("not_a_stylist", "The specified user is not a stylist.")
	}

	// 2. Temporal sanity.
	win, err := booking.NewWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(dateLayout, in.Date, uc.now().Location())
	if err != nil {
		return nil, httperr.ErrBadRequest("invalid_date", "The date is not a valid YYYY-MM-DD value.")
	}

	if booking.InPast(date, win, uc.now()) {
		return nil, httperr.ErrBadRequest("appointment_in_past", "Appointments cannot be created in the past.")
	}

	// 3. Availability resolution; exceptions override the weekly schedule.
	exceptions, err := uc.repo.ListExceptionsForDate(ctx, stylist.ID, date)
	if err != nil {
		return nil, err
	}
	availabilities, err := uc.repo.ListAvailability(ctx, stylist.ID, date.Weekday())
	if err != nil {
		return nil, err
	}
	if err := booking.CheckBookable(win, date.Weekday(), exceptions, availabilities); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:    client.ID,
		StylistID:   stylist.ID,
		Status:      string(booking.InitialStatus()),
		Date:        date,
		StartTime:   win.StartClock(),
		EndTime:     win.EndClock(),
		ClientPhone: in.ClientPhone,
	}

	// 4 + 5 + 6. Overlap check, pricing and insert share one transaction; the
	// stylist-day lock guarantees only one of two racing requests can win the
	// slot.
	err = uc.repo.InTransaction(ctx, func(tx booking.Repository) error {
		if err := tx.LockStylistDay(ctx, stylist.ID, date); err != nil {
			return err
		}

		count, err := tx.CountOverlapping(ctx, stylist.ID, date, ap.StartTime, ap.EndTime, nil)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrConflict("slot_already_booked", "This slot is already booked.")
		}

		if len(in.ServiceIDs) > 0 {
			services, err := tx.ListServicesByIDs(ctx, in.ServiceIDs)
			if err != nil {
				return err
			}
			if len(services) != len(in.ServiceIDs) {
				return httperr.ErrNotFound("services_not_found", "One or more services were not found.")
			}
			ap.Services = services
			ap.TotalPrice = booking.TotalPrice(services)
		} else {
			if in.TotalPrice == nil {
				return httperr.ErrBadRequest(
					"missing_price",
					"A total price or a list of services must be provided.",
				)
			}
			ap.TotalPrice = *in.TotalPrice
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	ap.Client = *client
	ap.Stylist = *stylist

	log.Info().
		Uint("appointment_id", ap.ID).
		Uint("client_id", client.ID).
		Uint("stylist_id", stylist.ID).
		Msg("appointment created")

	// 7. Best-effort notification side effect.
	for _, ev := range notification.ConfirmedEvents(ap) {
		uc.notifier.Dispatch(ev)
	}

	return ap, nil
}
