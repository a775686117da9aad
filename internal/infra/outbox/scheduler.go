package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

// Scheduler runs the relay on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	relay    *Relay
	schedule string
	logger   *slog.Logger
}

func NewScheduler(relay *Relay, schedule string, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	return &Scheduler{
		cron:     c,
		relay:    relay,
		schedule: schedule,
		logger:   logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		s.logger.Error("failed to schedule outbox relay", "schedule", s.schedule, "error", err)
		return err
	}
	s.logger.Info("scheduled outbox relay", "schedule", s.schedule)
	s.cron.Start()
	return nil
}

// Stop waits for a running relay pass to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	sent, err := s.relay.RunOnce(ctx)
	if err != nil {
		s.logger.Error("outbox relay failed", "error", err.Error())
		return
	}
	if sent > 0 {
		s.logger.Info("outbox relay published events", "count", sent)
	}
}
