package bootstrap

import (
	"log/slog"

	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default, which the use
// cases log through.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewSlogLogger(cfg.Log, nil)
	slog.SetDefault(logger)
	return logger
}
