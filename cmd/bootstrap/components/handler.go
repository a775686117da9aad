package components

import (
	"pet-adoption/internal/handler"
	"pet-adoption/internal/handler/api"
	"pet-adoption/internal/handler/middleware"
	"pet-adoption/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewPetHandler,
		api.NewAdoptionHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
