package bootstrap

import (
	"log/slog"

	"clinic-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the non-secret settings the process runs with.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("Configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"scheduling_timezone", cfg.Scheduling.TimeZone,
		"horizon_months", cfg.Scheduling.HorizonMonths,
		"jobs_enabled", cfg.Jobs.Enabled)
}
