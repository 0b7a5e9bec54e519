package commands

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/usecase/shared"
)

// MaintenanceCommands are run by the background scheduler.
type MaintenanceCommands interface {
	CompleteEndedAppointments(ctx context.Context) (int64, error)
	PruneExpiredSlots(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (uc *maintenanceCommandsImpl) CompleteEndedAppointments(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Appointments().CompleteEndedBefore(ctx, uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("Completed ended appointments", "count", n)
	}
	return n, nil
}

// PruneExpiredSlots deletes unbooked slots that have already ended.
// Booked slots are kept as the record of what was booked.
func (uc *maintenanceCommandsImpl) PruneExpiredSlots(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Slots().DeleteUnbookedEndedBefore(ctx, uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("Pruned expired slots", "count", n)
	}
	return n, nil
}
