package readstore

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, role, is_active, last_login, created_at, password_hash`

type UserReadStore struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	view, _, err := r.scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", user.ErrUserNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	view, hash, err := r.scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", user.ErrUserNotFound)
		}
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by email", err)
	}
	return view, hash, nil
}

func (r *UserReadStore) List(ctx context.Context, role *user.Role) ([]*queries.AuthorizedUserView, error) {
	var roleFilter pgtype.Text
	if role != nil {
		roleFilter = pgtype.Text{String: role.String(), Valid: true}
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE $1::text IS NULL OR role = $1
		ORDER BY created_at, id`,
		roleFilter,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list users", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AuthorizedUserView, error) {
		v, _, err := r.scanUser(row)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan users", err)
	}
	return views, nil
}

func (r *UserReadStore) scanUser(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		hash      string
	)
	if err := row.Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin, &createdAt, &hash); err != nil {
		return nil, "", err
	}
	if lastLogin.Valid {
		t := pgconv.TimeFromPgtype(lastLogin, r.loc)
		v.LastLogin = &t
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt, r.loc)
	return &v, hash, nil
}
