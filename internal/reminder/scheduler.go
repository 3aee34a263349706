package reminder

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the reminder sweep on a cron expression, by default once a
// day at 09:00 server time.
type Scheduler struct {
	cron  *cron.Cron
	sweep *Sweep
}

func NewScheduler(sweep *Sweep, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:  cron.New(),
		sweep: sweep,
	}

	_, err := s.cron.AddFunc(spec, func() {
		if err := s.sweep.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("reminder sweep failed")
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Msg("reminder scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
