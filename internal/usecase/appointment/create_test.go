package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// Fixed clock: Tuesday 2026-03-10 08:00.
var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func newCreateFixture() (*fakeRepo, *recordingDispatcher, *CreateAppointment) {
	repo := newFakeRepo()
	repo.addUser(1, models.RoleClient)
	repo.addUser(2, models.RoleStylist)

	// Stylist works Tuesdays 09:00-18:00.
	repo.availability = []models.Availability{
		{StylistID: 2, Weekday: int(time.Tuesday), StartTime: "09:00", EndTime: "18:00"},
	}

	dispatcher := &recordingDispatcher{}
	uc := NewCreateAppointment(repo, dispatcher)
	uc.now = func() time.Time { return testNow }
	return repo, dispatcher, uc
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:   1,
		StylistID:  2,
		Date:       "2026-03-10",
		StartTime:  "10:00",
		EndTime:    "11:00",
		TotalPrice: price("30.00"),
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo, dispatcher, uc := newCreateFixture()

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "CONFIRMED" {
		t.Errorf("status = %s, want CONFIRMED", ap.Status)
	}
	if ap.StartTime != "10:00" || ap.EndTime != "11:00" {
		t.Errorf("window = %s-%s, want 10:00-11:00", ap.StartTime, ap.EndTime)
	}
	if !ap.TotalPrice.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("price = %s, want 30.00", ap.TotalPrice)
	}
	if len(repo.appointments) != 1 {
		t.Errorf("stored %d appointments, want 1", len(repo.appointments))
	}
	if repo.lockCalls != 1 {
		t.Errorf("lock taken %d times, want 1", repo.lockCalls)
	}

	// One notification for each side of the booking.
	if len(dispatcher.events) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(dispatcher.events))
	}
	if dispatcher.events[0].UserID != 1 || dispatcher.events[1].UserID != 2 {
		t.Errorf("events went to %d and %d, want client 1 and stylist 2",
			dispatcher.events[0].UserID, dispatcher.events[1].UserID)
	}
}

func TestCreateAppointmentIdentityChecks(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateAppointmentInput)
		wantCode string
	}{
		{
			name:     "unknown client",
			mutate:   func(in *CreateAppointmentInput) { in.ClientID = 99 },
			wantCode: "client_not_found",
		},
		{
			name:     "unknown stylist",
			mutate:   func(in *CreateAppointmentInput) { in.StylistID = 99 },
			wantCode: "stylist_not_found",
		},
		{
			name:     "client booked as stylist",
			mutate:   func(in *CreateAppointmentInput) { in.StylistID = 1 },
			wantCode: "not_a_stylist",
		},
		{
			name:     "stylist booked as client",
			mutate:   func(in *CreateAppointmentInput) { in.ClientID = 2 },
			wantCode: "not_a_client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dispatcher, uc := newCreateFixture()

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsCode(err, tt.wantCode) {
				t.Fatalf("got %v, want code %s", err, tt.wantCode)
			}
			if len(dispatcher.events) != 0 {
				t.Errorf("rejected booking dispatched %d events", len(dispatcher.events))
			}
		})
	}
}

// A database outage must surface as an internal error, never as a not-found
// business outcome.
func TestCreateAppointmentInfraErrorNotMasked(t *testing.T) {
	repo, dispatcher, uc := newCreateFixture()
	repo.failGetUser = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	_, err := uc.Execute(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := httperr.IsBusiness(err); ok {
		t.Fatalf("infrastructure error surfaced as business error: %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Errorf("failed booking dispatched %d events", len(dispatcher.events))
	}
}

func TestCreateAppointmentTemporalChecks(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateAppointmentInput)
		wantCode string
	}{
		{
			name: "end before start",
			mutate: func(in *CreateAppointmentInput) {
				in.StartTime = "11:00"
				in.EndTime = "10:00"
			},
			wantCode: "invalid_time_order",
		},
		{
			name:     "malformed date",
			mutate:   func(in *CreateAppointmentInput) { in.Date = "10/03/2026" },
			wantCode: "invalid_date",
		},
		{
			name:     "yesterday",
			mutate:   func(in *CreateAppointmentInput) { in.Date = "2026-03-09" },
			wantCode: "appointment_in_past",
		},
		{
			name: "earlier today",
			mutate: func(in *CreateAppointmentInput) {
				in.StartTime = "07:00"
				in.EndTime = "07:30"
			},
			wantCode: "appointment_in_past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, uc := newCreateFixture()

			in := validInput()
			tt.mutate(&in)

			if _, err := uc.Execute(context.Background(), in); !httperr.IsCode(err, tt.wantCode) {
				t.Fatalf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestCreateAppointmentAvailability(t *testing.T) {
	t.Run("day off exception wins", func(t *testing.T) {
		repo, _, uc := newCreateFixture()
		stylistID := uint(2)
		repo.exceptions = []models.ScheduleException{
			{
				StylistID: &stylistID,
				Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				Type:      models.ExceptionUnavailable,
				Reason:    "vacation",
			},
		}

		_, err := uc.Execute(context.Background(), validInput())
		if !httperr.IsCode(err, "stylist_unavailable_date") {
			t.Fatalf("got %v, want stylist_unavailable_date", err)
		}
	})

	t.Run("outside working hours", func(t *testing.T) {
		_, _, uc := newCreateFixture()

		in := validInput()
		in.StartTime = "18:00"
		in.EndTime = "19:00"

		if _, err := uc.Execute(context.Background(), in); !httperr.IsCode(err, "outside_available_hours") {
			t.Fatalf("got %v, want outside_available_hours", err)
		}
	})
}

func TestCreateAppointmentOverlap(t *testing.T) {
	repo, _, uc := newCreateFixture()

	repo.addAppointment(models.Appointment{
		ClientID:  1,
		StylistID: 2,
		Status:    "CONFIRMED",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:30",
		EndTime:   "11:30",
	})

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsCode(err, "slot_already_booked") {
		t.Fatalf("got %v, want slot_already_booked", err)
	}

	// Back to back with the existing booking is fine.
	in := validInput()
	in.StartTime = "11:30"
	in.EndTime = "12:30"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}

	// A cancelled booking does not block the slot.
	repo2, _, uc2 := newCreateFixture()
	repo2.addAppointment(models.Appointment{
		ClientID:  1,
		StylistID: 2,
		Status:    "CANCELLED",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	if _, err := uc2.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("cancelled booking still blocks the slot: %v", err)
	}
}

func TestCreateAppointmentPricing(t *testing.T) {
	t.Run("price computed from services", func(t *testing.T) {
		repo, _, uc := newCreateFixture()
		repo.services = []models.ServiceOffer{
			{ID: 10, Name: "Haircut", UnitPrice: decimal.RequireFromString("25.00")},
			{ID: 11, Name: "Beard trim", UnitPrice: decimal.RequireFromString("15.00")},
		}

		in := validInput()
		in.TotalPrice = price("1.00") // must be ignored
		in.ServiceIDs = []uint{10, 11}

		ap, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ap.TotalPrice.Equal(decimal.RequireFromString("40.00")) {
			t.Errorf("price = %s, want 40.00", ap.TotalPrice)
		}
		if len(ap.Services) != 2 {
			t.Errorf("attached %d services, want 2", len(ap.Services))
		}
	})

	t.Run("unknown service id", func(t *testing.T) {
		repo, _, uc := newCreateFixture()
		repo.services = []models.ServiceOffer{
			{ID: 10, Name: "Haircut", UnitPrice: decimal.RequireFromString("25.00")},
		}

		in := validInput()
		in.ServiceIDs = []uint{10, 99}

		if _, err := uc.Execute(context.Background(), in); !httperr.IsCode(err, "services_not_found") {
			t.Fatalf("got %v, want services_not_found", err)
		}
	})

	t.Run("no services and no price", func(t *testing.T) {
		_, _, uc := newCreateFixture()

		in := validInput()
		in.TotalPrice = nil

		if _, err := uc.Execute(context.Background(), in); !httperr.IsCode(err, "missing_price") {
			t.Fatalf("got %v, want missing_price", err)
		}
	})
}
