//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/infra/memory"
	"pet-adoption/internal/infra/metrics"
	"pet-adoption/internal/infra/outbox"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu        sync.Mutex
	published []string
	failTopic string
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if routingKey == p.failTopic {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, routingKey)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// hookPublisher runs onPublish for every message.
type hookPublisher struct {
	onPublish func()
}

func (p hookPublisher) Publish(context.Context, string, []byte) error {
	p.onPublish()
	return nil
}

func (hookPublisher) Close() error { return nil }

func enqueue(t *testing.T, store *memory.Store, topics ...string) {
	t.Helper()
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, topic := range topics {
			if err := tx.Notifications().CreateJob(ctx, "event", topic, []byte(`{}`), now); err != nil {
				return err
			}
		}
		return nil
	}))
}

func due(t *testing.T, store *memory.Store, at time.Time) []shared.NotificationJob {
	t.Helper()
	var jobs []shared.NotificationJob
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, at, 0)
		return err
	}))
	return jobs
}

func TestRelayRunOnce(t *testing.T) {
	ctx := context.Background()
	cfg := config.EventsConfig{BatchSize: 10, MaxAttempts: 2}

	t.Run("送信済みは再送しない", func(t *testing.T) {
		store := memory.NewStore()
		enqueue(t, store, "adoption.request_created", "adoption.completed")
		pub := &recordingPublisher{}
		m := metrics.New()
		relay := outbox.NewRelay(store, pub, clock.NewMockClock(now), cfg, m)

		sent, err := relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.ElementsMatch(t, []string{"adoption.request_created", "adoption.completed"}, pub.published)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsRelayed.WithLabelValues("adoption.completed", "sent")))

		sent, err = relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("失敗はバックオフ後に再試行し上限で諦める", func(t *testing.T) {
		store := memory.NewStore()
		enqueue(t, store, "adoption.request_decided")
		pub := &recordingPublisher{failTopic: "adoption.request_decided"}
		clk := clock.NewMockClock(now)
		m := metrics.New()
		relay := outbox.NewRelay(store, pub, clk, cfg, m)

		sent, err := relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, due(t, store, now), "rescheduled into the future")

		retry := due(t, store, now.Add(outbox.RetryDelay(1)))
		require.Len(t, retry, 1)
		assert.Equal(t, 1, retry[0].Attempts)

		clk.Set(now.Add(outbox.RetryDelay(1)))
		_, err = relay.RunOnce(ctx)
		require.NoError(t, err)

		assert.Empty(t, due(t, store, now.Add(24*time.Hour)), "given up after max attempts")
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsRelayed.WithLabelValues("adoption.request_decided", "retry")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsRelayed.WithLabelValues("adoption.request_decided", "failed")))
	})
}

func TestRelayPublishesOutsideTransaction(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	enqueue(t, store, "adoption.completed")

	var storeFree bool
	var inFlight []shared.NotificationJob
	pub := hookPublisher{onPublish: func() {
		done := make(chan []shared.NotificationJob, 1)
		go func() {
			var jobs []shared.NotificationJob
			_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				var err error
				jobs, err = tx.Notifications().ClaimDue(ctx, now, 0)
				return err
			})
			done <- jobs
		}()
		select {
		case jobs := <-done:
			storeFree = true
			inFlight = jobs
		case <-time.After(time.Second):
		}
	}}
	relay := outbox.NewRelay(store, pub, clock.NewMockClock(now), config.EventsConfig{BatchSize: 10}, nil)

	sent, err := relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, storeFree, "store is writable while publishing")
	assert.Empty(t, inFlight, "a leased job is not claimed twice")
	assert.Empty(t, due(t, store, now.Add(outbox.ClaimLease)), "sent job stays sent")
}

func TestRelayLeaseExpires(t *testing.T) {
	store := memory.NewStore()
	enqueue(t, store, "adoption.completed")

	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Notifications().ClaimDue(ctx, now, 0)
		if err != nil {
			return err
		}
		require.Len(t, jobs, 1)
		return tx.Notifications().Lease(ctx, []uuid.UUID{jobs[0].ID}, now.Add(outbox.ClaimLease))
	}))

	assert.Empty(t, due(t, store, now))
	assert.Len(t, due(t, store, now.Add(outbox.ClaimLease)), 1, "an abandoned claim comes back")
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 30 * time.Second},
		{attempts: 1, want: 30 * time.Second},
		{attempts: 2, want: time.Minute},
		{attempts: 3, want: 2 * time.Minute},
		{attempts: 7, want: 30 * time.Minute},
		{attempts: 50, want: 30 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outbox.RetryDelay(tt.attempts), "attempts=%d", tt.attempts)
	}
}
