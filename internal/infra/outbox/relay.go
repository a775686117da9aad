// Package outbox moves queued notification jobs to the message broker.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"pet-adoption/internal/infra/events"
	"pet-adoption/internal/infra/metrics"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	baseRetryDelay = 30 * time.Second
	maxRetryDelay  = 30 * time.Minute
)

// ClaimLease is how long a claimed job stays hidden from other relay runs.
const ClaimLease = 5 * time.Minute

type Relay struct {
	uow       shared.UnitOfWork
	publisher events.Publisher
	clock     clock.Clock
	cfg       config.EventsConfig
	metrics   *metrics.Metrics
}

func NewRelay(uow shared.UnitOfWork, publisher events.Publisher, clock clock.Clock, cfg config.EventsConfig, m *metrics.Metrics) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
		metrics:   m,
	}
}

// RunOnce publishes one batch of due jobs and reports how many were sent.
// A failed publish is rescheduled with backoff until MaxAttempts is reached.
// Jobs are claimed and leased in one short transaction, published with no
// transaction open, and marked in a second one. A crash in between lets the
// lease expire and the job is sent again.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()

	jobs, err := r.claim(ctx, now)
	if err != nil || len(jobs) == 0 {
		return 0, err
	}

	results := make([]error, len(jobs))
	for i, job := range jobs {
		results[i] = r.publisher.Publish(ctx, job.Topic, job.Payload)
	}

	sent := 0
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		for i, job := range jobs {
			if err := r.record(ctx, tx, job, results[i], now); err != nil {
				return err
			}
			if results[i] == nil {
				sent++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i, job := range jobs {
		r.report(job, results[i])
	}
	return sent, nil
}

func (r *Relay) claim(ctx context.Context, now time.Time) ([]shared.NotificationJob, error) {
	var jobs []shared.NotificationJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, now, r.cfg.BatchSize)
		if err != nil || len(jobs) == 0 {
			return err
		}
		ids := make([]uuid.UUID, len(jobs))
		for i, job := range jobs {
			ids[i] = job.ID
		}
		return tx.Notifications().Lease(ctx, ids, now.Add(ClaimLease))
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Relay) record(ctx context.Context, tx shared.Tx, job shared.NotificationJob, pubErr error, now time.Time) error {
	if pubErr == nil {
		return tx.Notifications().MarkSent(ctx, job.ID)
	}
	attempts := job.Attempts + 1
	return tx.Notifications().MarkFailed(ctx, job.ID, pubErr.Error(), now.Add(RetryDelay(attempts)), r.givesUp(attempts))
}

func (r *Relay) givesUp(attempts int) bool {
	return r.cfg.MaxAttempts > 0 && attempts >= r.cfg.MaxAttempts
}

func (r *Relay) report(job shared.NotificationJob, pubErr error) {
	if pubErr == nil {
		r.observe(job.Topic, "sent")
		return
	}
	attempts := job.Attempts + 1
	giveUp := r.givesUp(attempts)
	outcome := "retry"
	if giveUp {
		outcome = "failed"
	}
	r.observe(job.Topic, outcome)
	slog.Warn("failed to publish event",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", attempts,
		"give_up", giveUp,
		"error", pubErr.Error())
}

func (r *Relay) observe(topic, outcome string) {
	if r.metrics == nil {
		return
	}
	r.metrics.EventsRelayed.WithLabelValues(topic, outcome).Inc()
}

// RetryDelay doubles from baseRetryDelay per attempt, capped at maxRetryDelay.
func RetryDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := baseRetryDelay
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
