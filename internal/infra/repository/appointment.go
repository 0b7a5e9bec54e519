package repository

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentRepository struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewAppointmentRepository(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (doctor_id, patient_id, slot_id, start_at, end_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.DoctorID(), a.PatientID(), pgconv.Int64PtrToPgtype(a.SlotID()), a.Start(), a.End(), a.Status().String(), a.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to create appointment", err, availability.ErrSlotAlreadyBooked, nil)
	}
	return id, nil
}

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, id int64) (*appointment.Appointment, error) {
	var (
		doctorID, patientID int64
		slotID              pgtype.Int8
		start, end, created pgtype.Timestamptz
		status              string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, doctor_id, patient_id, slot_id, start_at, end_at, status, created_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(&id, &doctorID, &patientID, &slotID, &start, &end, &status, &created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", appointment.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find appointment", err)
	}

	st, err := appointment.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored appointment status is invalid", err)
	}
	return appointment.Reconstruct(
		id,
		doctorID,
		patientID,
		pgconv.Int64PtrFromPgtype(slotID),
		pgconv.TimeFromPgtype(start, r.loc),
		pgconv.TimeFromPgtype(end, r.loc),
		st,
		pgconv.TimeFromPgtype(created, r.loc),
	), nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status appointment.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", appointment.ErrNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", appointment.ErrNotFound)
	}
	return nil
}

// CompleteEndedBefore moves every booked appointment that ended by t to
// COMPLETED.
func (r *AppointmentRepository) CompleteEndedBefore(ctx context.Context, t time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments SET status = $2
		WHERE status = $3 AND end_at <= $1`,
		t, appointment.StatusCompleted.String(), appointment.StatusBooked.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to complete appointments", err)
	}
	return tag.RowsAffected(), nil
}
