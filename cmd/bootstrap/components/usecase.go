package components

import (
	"parkstay/internal/pkg/clock"
	"parkstay/internal/usecase/commands"
	"parkstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewWriteLock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewUnitUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSnapshotQueries,
		queries.NewReservationQueries,
		queries.NewDashboardQueries,
	),
)
