package bootstrap

import (
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

// SchedulingModule provides the location every local date is read in and
// the slot generation policy.
var SchedulingModule = fx.Module("scheduling",
	fx.Provide(
		NewLocation,
		clock.NewRealClock,
		func(cfg config.Config) availability.Horizon {
			return availability.NewHorizon(cfg.Scheduling.HorizonMonths)
		},
		func(cfg config.Config) availability.Generator {
			return availability.NewGenerator(cfg.Scheduling.DefaultPriceCents)
		},
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return clock.LoadLocation(cfg.Scheduling.TimeZone)
}
