package bootstrap

import (
	"pet-adoption/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	SessionModule,
	components.PersistenceModule,
	components.UseCaseModule,
	InfraModule,
	components.HandlerModule,
)
