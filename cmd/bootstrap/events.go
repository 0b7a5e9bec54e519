package bootstrap

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/infra/events"
	"clinic-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewHub,
		fx.Annotate(
			events.NewPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

// NewHub runs the websocket hub for the lifetime of the app.
func NewHub(lc fx.Lifecycle, logger *slog.Logger) *events.Hub {
	hub := events.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return hub
}
