package bootstrap

import (
	"clinic-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything the use cases need. CLI commands start only this.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	SchedulingModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	EventsModule,
	JobsModule,
	components.HandlerModule,
)
