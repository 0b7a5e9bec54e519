package readstore

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/usecase/queries"
)

type StatsReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewStatsReadStore(dbtx db.DBTX, logger *slog.Logger) *StatsReadStore {
	return &StatsReadStore{
		db:     dbtx,
		logger: logger,
	}
}

func (r *StatsReadStore) DashboardStats(ctx context.Context) (*queries.DashboardStats, error) {
	var s queries.DashboardStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM appointments),
			(SELECT COUNT(*) FROM appointments WHERE status = $1),
			(SELECT COUNT(*) FROM appointments WHERE status = $2),
			(SELECT COUNT(*) FROM appointments WHERE status = $3)`,
		appointment.StatusBooked.String(),
		appointment.StatusCompleted.String(),
		appointment.StatusCancelled.String(),
	).Scan(
		&s.TotalPatients,
		&s.TotalDoctors,
		&s.TotalAppointments,
		&s.PendingAppointments,
		&s.CompletedAppointments,
		&s.CancelledAppointments,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load dashboard stats", err)
	}
	return &s, nil
}
