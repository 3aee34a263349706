package booking

import (
	"time"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// CheckBookable applies the availability rules for one stylist, date and
// requested window, as a pure function of the already-fetched exception and
// weekly availability rows. Exceptions take precedence over the weekly
// schedule.
func CheckBookable(
	req Window,
	weekday time.Weekday,
	exceptions []models.ScheduleException,
	availabilities []models.Availability,
) error {

	for _, exc := range exceptions {
		if exc.Type != models.ExceptionUnavailable {
			continue
		}

		// Whole-day exception: no window attached.
		if exc.StartTime == nil || exc.EndTime == nil {
			return httperr.ErrConflict(
				"stylist_unavailable_date",
				"The stylist is not available on this date ("+exc.Reason+").",
			)
		}

		excWin, err := NewWindow(*exc.StartTime, *exc.EndTime)
		if err != nil {
			// Malformed row; treat as whole-day to stay safe.
			return httperr.ErrConflict(
				"stylist_unavailable_date",
				"The stylist is not available on this date.",
			)
		}

		if req.Overlaps(excWin) {
			return httperr.ErrConflict(
				"stylist_unavailable_time",
				"The stylist is not available at this time.",
			)
		}
	}

	if len(availabilities) == 0 {
		return httperr.ErrBadRequest(
			"no_availability",
			"The stylist has no availability configured for "+weekday.String()+"s.",
		)
	}

	for _, a := range availabilities {
		avail, err := NewWindow(a.StartTime, a.EndTime)
		if err != nil {
			continue
		}
		if req.Within(avail) {
			return nil
		}
	}

	return httperr.ErrBadRequest(
		"outside_available_hours",
		"The appointment is outside the stylist's available hours.",
	)
}
