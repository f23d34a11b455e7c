package bootstrap

import (
	"parkstay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
