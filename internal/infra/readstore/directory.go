package readstore

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const doctorViewSelect = `
	SELECT d.id, d.name, d.specialization, d.contact_info, d.department_id, dep.name, d.user_id
	FROM doctors d
	LEFT JOIN departments dep ON dep.id = d.department_id`

const patientViewSelect = `SELECT id, name, phone, email, user_id, created_at FROM patients`

type DirectoryReadStore struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewDirectoryReadStore(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *DirectoryReadStore {
	return &DirectoryReadStore{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *DirectoryReadStore) ListDepartments(ctx context.Context) ([]*queries.DepartmentView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM departments ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list departments", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.DepartmentView, error) {
		return scanDepartment(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan departments", err)
	}
	return views, nil
}

func (r *DirectoryReadStore) DepartmentByID(ctx context.Context, id int64) (*queries.DepartmentView, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description FROM departments WHERE id = $1`, id)
	v, err := scanDepartment(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "department not found", department.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find department", err)
	}
	return v, nil
}

// ListDoctors returns every doctor, or only those of one department.
func (r *DirectoryReadStore) ListDoctors(ctx context.Context, departmentID *int64) ([]*queries.DoctorView, error) {
	rows, err := r.db.Query(ctx, doctorViewSelect+`
		WHERE $1::bigint IS NULL OR d.department_id = $1
		ORDER BY d.name, d.id`,
		pgconv.Int64PtrToPgtype(departmentID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list doctors", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.DoctorView, error) {
		return scanDoctor(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan doctors", err)
	}
	return views, nil
}

func (r *DirectoryReadStore) DoctorByID(ctx context.Context, id int64) (*queries.DoctorView, error) {
	return r.findDoctor(ctx, doctorViewSelect+` WHERE d.id = $1`, id)
}

func (r *DirectoryReadStore) DoctorByUserID(ctx context.Context, userID uuid.UUID) (*queries.DoctorView, error) {
	return r.findDoctor(ctx, doctorViewSelect+` WHERE d.user_id = $1`, userID)
}

func (r *DirectoryReadStore) ListPatients(ctx context.Context) ([]*queries.PatientView, error) {
	rows, err := r.db.Query(ctx, patientViewSelect+` ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list patients", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.PatientView, error) {
		return r.scanPatient(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan patients", err)
	}
	return views, nil
}

func (r *DirectoryReadStore) PatientByID(ctx context.Context, id int64) (*queries.PatientView, error) {
	return r.findPatient(ctx, patientViewSelect+` WHERE id = $1`, id)
}

func (r *DirectoryReadStore) PatientByUserID(ctx context.Context, userID uuid.UUID) (*queries.PatientView, error) {
	return r.findPatient(ctx, patientViewSelect+` WHERE user_id = $1`, userID)
}

func (r *DirectoryReadStore) findDoctor(ctx context.Context, query string, arg any) (*queries.DoctorView, error) {
	v, err := scanDoctor(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "doctor not found", doctor.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find doctor", err)
	}
	return v, nil
}

func (r *DirectoryReadStore) findPatient(ctx context.Context, query string, arg any) (*queries.PatientView, error) {
	v, err := r.scanPatient(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "patient not found", patient.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find patient", err)
	}
	return v, nil
}

func scanDepartment(row pgx.Row) (*queries.DepartmentView, error) {
	var (
		v    queries.DepartmentView
		desc pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &desc); err != nil {
		return nil, err
	}
	v.Description = pgconv.StringPtrFromPgtype(desc)
	return &v, nil
}

func scanDoctor(row pgx.Row) (*queries.DoctorView, error) {
	var (
		v              queries.DoctorView
		contact        pgtype.Text
		departmentID   pgtype.Int8
		departmentName pgtype.Text
		userID         pgtype.UUID
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Specialization, &contact, &departmentID, &departmentName, &userID); err != nil {
		return nil, err
	}
	v.ContactInfo = pgconv.StringPtrFromPgtype(contact)
	v.DepartmentID = pgconv.Int64PtrFromPgtype(departmentID)
	v.DepartmentName = pgconv.StringPtrFromPgtype(departmentName)
	v.UserID = pgconv.UUIDPtrFromPgtype(userID)
	return &v, nil
}

func (r *DirectoryReadStore) scanPatient(row pgx.Row) (*queries.PatientView, error) {
	var (
		v         queries.PatientView
		phone     pgtype.Text
		userID    pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Name, &phone, &v.Email, &userID, &createdAt); err != nil {
		return nil, err
	}
	v.Phone = pgconv.StringPtrFromPgtype(phone)
	v.UserID = pgconv.UUIDPtrFromPgtype(userID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt, r.loc)
	return &v, nil
}
