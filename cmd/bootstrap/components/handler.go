package components

import (
	"parkstay/internal/handler"
	"parkstay/internal/handler/api"
	"parkstay/internal/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewUnitHandler,
		api.NewUserHandler,
		api.NewDashboardHandler,
		handler.NewHandlers,
	),
	fx.Invoke(
		metrics.Init,
		handler.NewRouter,
	),
)
