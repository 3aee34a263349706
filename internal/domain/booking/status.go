package booking

import "github.com/bookmycut/salon-scheduler/internal/httperr"

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBadRequest("invalid_status", "Unsupported appointment status: "+s)
}

// CanTransition validates a status change. CONFIRMED may move to CANCELLED or
// COMPLETED; both of those are terminal.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if from == StatusConfirmed {
		return nil
	}
	return httperr.ErrBadRequest(
		"invalid_status_transition",
		"An appointment in status "+string(from)+" can no longer be changed to "+string(to)+".",
	)
}

func InitialStatus() Status {
	return StatusConfirmed
}
