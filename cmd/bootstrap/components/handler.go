package components

import (
	"clinic-scheduler/internal/handler"
	"clinic-scheduler/internal/handler/api"
	"clinic-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewSelectionHandler,
		api.NewBookingHandler,
		api.NewAppointmentHandler,
		api.NewDirectoryHandler,
		api.NewAdminHandler,
		api.NewWebSocketHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
