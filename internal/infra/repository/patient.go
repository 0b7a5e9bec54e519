package repository

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const patientColumns = `id, name, phone, email, user_id, created_at`

type PatientRepository struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewPatientRepository(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *PatientRepository {
	return &PatientRepository{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO patients (name, phone, email, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Name(),
		pgconv.StringPtrToPgtype(p.Phone()),
		p.Email().Value(),
		pgconv.UUIDPtrToPgtype(p.UserID()),
		p.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to create patient", err, patient.ErrEmailTaken, nil)
	}
	return id, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*patient.Patient, error) {
	return r.findOne(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
}

func (r *PatientRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*patient.Patient, error) {
	return r.findOne(ctx, `SELECT `+patientColumns+` FROM patients WHERE user_id = $1`, userID)
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	tag, err := r.db.Exec(ctx, `UPDATE patients SET name = $2, phone = $3, email = $4 WHERE id = $1`,
		p.ID(), p.Name(), pgconv.StringPtrToPgtype(p.Phone()), p.Email().Value(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update patient", err, patient.ErrEmailTaken, nil)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "patient not found", patient.ErrNotFound)
	}
	return nil
}

// Delete also removes the patient's appointments.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete patient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "patient not found", patient.ErrNotFound)
	}
	return nil
}

func (r *PatientRepository) findOne(ctx context.Context, query string, arg any) (*patient.Patient, error) {
	var (
		id          int64
		name, email string
		phone       pgtype.Text
		userID      pgtype.UUID
		createdAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&id, &name, &phone, &email, &userID, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "patient not found", patient.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find patient", err)
	}
	return patient.Reconstruct(
		id,
		name,
		pgconv.StringPtrFromPgtype(phone),
		email,
		pgconv.UUIDPtrFromPgtype(userID),
		pgconv.TimeFromPgtype(createdAt, r.loc),
	), nil
}
