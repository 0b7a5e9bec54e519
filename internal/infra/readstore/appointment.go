package readstore

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentViewSelect = `
	SELECT a.id, a.doctor_id, d.name, a.patient_id, p.name, a.slot_id, a.start_at, a.end_at, a.status, a.created_at
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id
	JOIN patients p ON p.id = a.patient_id`

type AppointmentReadStore struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewAppointmentReadStore(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *AppointmentReadStore {
	return &AppointmentReadStore{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *AppointmentReadStore) List(ctx context.Context, filter queries.AppointmentFilter, after *queries.CursorPosition, limit int32) ([]*queries.AppointmentView, error) {
	var (
		status  pgtype.Text
		afterAt pgtype.Timestamptz
		afterID pgtype.Int8
	)
	if filter.Status != nil {
		status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	if after != nil {
		afterAt = pgconv.TimeToPgtype(after.Time)
		afterID = pgtype.Int8{Int64: after.ID, Valid: true}
	}

	rows, err := r.db.Query(ctx, appointmentViewSelect+`
		WHERE ($1::bigint IS NULL OR a.patient_id = $1)
		  AND ($2::bigint IS NULL OR a.doctor_id = $2)
		  AND ($3::text IS NULL OR a.status = $3)
		  AND ($4::timestamptz IS NULL OR (a.start_at, a.id) > ($4, $5))
		ORDER BY a.start_at, a.id
		LIMIT $6`,
		pgconv.Int64PtrToPgtype(filter.PatientID),
		pgconv.Int64PtrToPgtype(filter.DoctorID),
		status,
		afterAt,
		afterID,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list appointments", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AppointmentView, error) {
		return r.scanAppointment(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan appointments", err)
	}
	return views, nil
}

func (r *AppointmentReadStore) ByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	v, err := r.scanAppointment(r.db.QueryRow(ctx, appointmentViewSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "appointment not found", appointment.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find appointment", err)
	}
	return v, nil
}

func (r *AppointmentReadStore) scanAppointment(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		v                   queries.AppointmentView
		slotID              pgtype.Int8
		start, end, created pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.DoctorID, &v.DoctorName, &v.PatientID, &v.PatientName, &slotID, &start, &end, &v.Status, &created)
	if err != nil {
		return nil, err
	}
	v.SlotID = pgconv.Int64PtrFromPgtype(slotID)
	v.Start = pgconv.TimeFromPgtype(start, r.loc)
	v.End = pgconv.TimeFromPgtype(end, r.loc)
	v.CreatedAt = pgconv.TimeFromPgtype(created, r.loc)
	return &v, nil
}
