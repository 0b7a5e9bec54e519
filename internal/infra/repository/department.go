package repository

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type DepartmentRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDepartmentRepository(dbtx db.DBTX, logger *slog.Logger) *DepartmentRepository {
	return &DepartmentRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id`,
		d.Name(), pgconv.StringPtrToPgtype(d.Description()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to create department", err, department.ErrNameTaken, nil)
	}
	return id, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*department.Department, error) {
	var (
		name        string
		description pgtype.Text
	)
	err := r.db.QueryRow(ctx, `SELECT name, description FROM departments WHERE id = $1`, id).
		Scan(&name, &description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "department not found", department.ErrNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find department", err)
	}
	return department.Reconstruct(id, name, pgconv.StringPtrFromPgtype(description)), nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	tag, err := r.db.Exec(ctx, `UPDATE departments SET name = $2, description = $3 WHERE id = $1`,
		d.ID(), d.Name(), pgconv.StringPtrToPgtype(d.Description()),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update department", err, department.ErrNameTaken, nil)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "department not found", department.ErrNotFound)
	}
	return nil
}

// Delete fails with department.ErrStillReferenced while doctors belong to it.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete department", err, nil, department.ErrStillReferenced)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "department not found", department.ErrNotFound)
	}
	return nil
}
