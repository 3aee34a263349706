package notification

import (
	"fmt"

	"github.com/bookmycut/salon-scheduler/internal/models"
)

const dateLayout = "02/01/2006"

// ConfirmedEvents builds the pair of confirmation notifications sent when an
// appointment is created.
func ConfirmedEvents(ap *models.Appointment) []Event {
	date := ap.Date.Format(dateLayout)
	id := ap.ID

	return []Event{
		{
			UserID: ap.ClientID,
			Title:  "Appointment confirmed",
			Message: fmt.Sprintf("Your appointment with %s has been confirmed for %s at %s.",
				ap.Stylist.Name, date, ap.StartTime),
			Type:                 models.NotificationAppointmentConfirmed,
			RelatedAppointmentID: &id,
		},
		{
			UserID: ap.StylistID,
			Title:  "New appointment assigned",
			Message: fmt.Sprintf("You have a new appointment with %s on %s at %s.",
				ap.Client.Name, date, ap.StartTime),
			Type:                 models.NotificationAppointmentConfirmed,
			RelatedAppointmentID: &id,
		},
	}
}

// CancelledEvents builds the pair of notifications sent on a transition into
// CANCELLED.
func CancelledEvents(ap *models.Appointment) []Event {
	date := ap.Date.Format(dateLayout)
	id := ap.ID

	return []Event{
		{
			UserID: ap.ClientID,
			Title:  "Appointment cancelled",
			Message: fmt.Sprintf("Your appointment with %s on %s at %s has been cancelled.",
				ap.Stylist.Name, date, ap.StartTime),
			Type:                 models.NotificationAppointmentCancelled,
			RelatedAppointmentID: &id,
		},
		{
			UserID: ap.StylistID,
			Title:  "Appointment cancelled",
			Message: fmt.Sprintf("The appointment with %s on %s at %s has been cancelled.",
				ap.Client.Name, date, ap.StartTime),
			Type:                 models.NotificationAppointmentCancelled,
			RelatedAppointmentID: &id,
		},
	}
}

// ReminderEvents builds the pair of day-before reminders for one confirmed
// appointment.
func ReminderEvents(ap *models.Appointment) []Event {
	date := ap.Date.Format(dateLayout)
	id := ap.ID

	services := "N/A"
	if len(ap.Services) > 0 {
		services = ap.Services[0].Name
		for _, s := range ap.Services[1:] {
			services += ", " + s.Name
		}
	}

	return []Event{
		{
			UserID: ap.ClientID,
			Title:  "Appointment reminder",
			Message: fmt.Sprintf("Reminder: you have an appointment tomorrow (%s) at %s with %s. Services: %s",
				date, ap.StartTime, ap.Stylist.Name, services),
			Type:                 models.NotificationAppointmentReminder,
			RelatedAppointmentID: &id,
		},
		{
			UserID: ap.StylistID,
			Title:  "Appointment reminder",
			Message: fmt.Sprintf("Reminder: you have an appointment tomorrow (%s) at %s with %s. Services: %s",
				date, ap.StartTime, ap.Client.Name, services),
			Type:                 models.NotificationAppointmentReminder,
			RelatedAppointmentID: &id,
		},
	}
}
