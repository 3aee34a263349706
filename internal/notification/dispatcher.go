package notification

import "github.com/rs/zerolog/log"

// Dispatcher delivers notification events without ever blocking or failing
// the caller. The booking pipeline treats delivery as fire-and-forget.
type Dispatcher interface {
	Dispatch(ev Event)
}

type AsyncDispatcher struct {
	store *Store
	queue chan Event
}

func NewDispatcher(store *Store) *AsyncDispatcher {
	d := &AsyncDispatcher{
		store: store,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *AsyncDispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Create(ev); err != nil {
			log.Warn().
				Err(err).
				Uint("user_id", ev.UserID).
				Str("type", ev.Type).
				Msg("failed to persist notification")
		}
	}
}

func (d *AsyncDispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Full queue: drop the event rather than block a booking.
		log.Warn().
			Uint("user_id", ev.UserID).
			Str("type", ev.Type).
			Msg("notification queue full, dropping event")
	}
}
