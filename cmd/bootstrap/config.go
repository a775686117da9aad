package bootstrap

import (
	"log/slog"

	"pet-adoption/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the effective settings at startup. Secrets stay out.
func logConfig(cfg config.Config, logger *slog.Logger) {
	attrs := []any{
		"port", cfg.Server.Port,
		"db_driver", cfg.DB.Driver,
		"upload_driver", cfg.Upload.Driver,
		"cookie_secure", cfg.Cookie.Secure,
		"events_enabled", cfg.Events.AMQPURL != "",
	}
	if !cfg.DB.UsesMemory() {
		attrs = append(attrs, "db_host", cfg.DB.Host, "db_name", cfg.DB.DBName)
	}
	logger.Info("設定を読み込みました", attrs...)
}
