package repository

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const doctorColumns = `id, name, specialization, contact_info, department_id, user_id`

type DoctorRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDoctorRepository(dbtx db.DBTX, logger *slog.Logger) *DoctorRepository {
	return &DoctorRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO doctors (name, specialization, contact_info, department_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		d.Name(),
		d.Specialization(),
		pgconv.StringPtrToPgtype(d.ContactInfo()),
		pgconv.Int64PtrToPgtype(d.DepartmentID()),
		pgconv.UUIDPtrToPgtype(d.UserID()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to create doctor", err, nil, department.ErrNotFound)
	}
	return id, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id int64) (*doctor.Doctor, error) {
	return r.findOne(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
}

func (r *DoctorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*doctor.Doctor, error) {
	return r.findOne(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE user_id = $1`, userID)
}

func (r *DoctorRepository) Update(ctx context.Context, d *doctor.Doctor) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE doctors
		SET name = $2, specialization = $3, contact_info = $4, department_id = $5
		WHERE id = $1`,
		d.ID(),
		d.Name(),
		d.Specialization(),
		pgconv.StringPtrToPgtype(d.ContactInfo()),
		pgconv.Int64PtrToPgtype(d.DepartmentID()),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update doctor", err, nil, department.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "doctor not found", doctor.ErrNotFound)
	}
	return nil
}

// Delete also removes the doctor's slots and appointments.
func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete doctor", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "doctor not found", doctor.ErrNotFound)
	}
	return nil
}

func (r *DoctorRepository) findOne(ctx context.Context, query string, arg any) (*doctor.Doctor, error) {
	var (
		id            int64
		name, special string
		contact       pgtype.Text
		departmentID  pgtype.Int8
		userID        pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&id, &name, &special, &contact, &departmentID, &userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "doctor not found", doctor.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find doctor", err)
	}
	return doctor.Reconstruct(id, doctor.Params{
		Name:           name,
		Specialization: special,
		ContactInfo:    pgconv.StringPtrFromPgtype(contact),
		DepartmentID:   pgconv.Int64PtrFromPgtype(departmentID),
		UserID:         pgconv.UUIDPtrFromPgtype(userID),
	}), nil
}
