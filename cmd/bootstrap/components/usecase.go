package components

import (
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAvailabilityCommands,
		commands.NewBookingCommands,
		commands.NewAppointmentCommands,
		commands.NewDirectoryCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewDirectoryQueries,
		queries.NewAdminQueries,
		usecase.NewSelectionService,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
