package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/infra/jobs"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(m commands.MaintenanceCommands, cfg config.Config, loc *time.Location, logger *slog.Logger) *jobs.Scheduler {
			return jobs.NewScheduler(m, cfg.Jobs, loc, logger)
		},
	),
	fx.Invoke(startJobs),
)

func startJobs(lc fx.Lifecycle, cfg config.Config, s *jobs.Scheduler, logger *slog.Logger) {
	if !cfg.Jobs.Enabled {
		logger.Info("maintenance jobs disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
}
