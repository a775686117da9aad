package bootstrap

import (
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if len(cfg.Session.Secret) < 16 {
		panic("SESSION_SECRET must be at least 16 characters")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.Duration)
}
