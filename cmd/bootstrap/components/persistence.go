package components

import (
	"clinic-scheduler/internal/infra/readstore"
	"clinic-scheduler/internal/infra/uow"
	"clinic-scheduler/internal/usecase/queries"
	"clinic-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(shared.AvailabilityReader)),
		),
		// Appointment
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Directory
		fx.Annotate(
			readstore.NewDirectoryReadStore,
			fx.As(new(queries.DirectoryReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Stats
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
