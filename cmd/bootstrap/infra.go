package bootstrap

import (
	"context"
	"log/slog"

	"pet-adoption/internal/infra/blob"
	"pet-adoption/internal/infra/events"
	"pet-adoption/internal/infra/metrics"
	"pet-adoption/internal/infra/outbox"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		metrics.New,
		NewImageStore,
		NewPublisher,
		NewRelay,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewImageStore(cfg config.Config) (commands.ImageStore, error) {
	return blob.Open(context.Background(), cfg.Upload)
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) events.Publisher {
	p := events.Open(cfg.Events)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewRelay(uow shared.UnitOfWork, p events.Publisher, clk clock.Clock, cfg config.Config, m *metrics.Metrics) *outbox.Relay {
	return outbox.NewRelay(uow, p, clk, cfg.Events, m)
}

func NewScheduler(relay *outbox.Relay, cfg config.Config, logger *slog.Logger) *outbox.Scheduler {
	return outbox.NewScheduler(relay, cfg.Events.RelaySchedule, logger)
}

func startScheduler(lc fx.Lifecycle, s *outbox.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
}
