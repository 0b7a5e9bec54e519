package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/infra/repository"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy decides how often a transaction is replayed after a
// serialization failure or deadlock.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) retryable(err error, attempt int) bool {
	return attempt < p.maxRetries && isTransient(err)
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	loc    *time.Location
	logger *slog.Logger
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, loc *time.Location, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		loc:    loc,
		logger: logger,
		policy: defaultRetryPolicy,
	}
}

// Within runs fn under READ COMMITTED. Slot writers rely on the advisory
// lock and row locks rather than a stricter isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.policy.retryable(err, attempt) {
			if isTransient(err) {
				u.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		u.logger.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// attempt owns exactly one transaction so the rollback never outlives it.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	slotRepo        shared.SlotRepository
	templateRepo    shared.TemplateRepository
	appointmentRepo shared.AppointmentRepository
	userRepo        shared.UserRepository
	departmentRepo  shared.DepartmentRepository
	doctorRepo      shared.DoctorRepository
	patientRepo     shared.PatientRepository
}

// LockProviderMonth takes a transaction scoped advisory lock keyed by the
// provider and the month label.
func (t *pgTx) LockProviderMonth(ctx context.Context, providerID int64, month string) error {
	_, err := t.dbtx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`, providerID, month)
	if err != nil {
		return infra.WrapRepoErr(t.uow.logger, infra.KindDBFailure, "failed to lock provider month", err)
	}
	return nil
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.dbtx, t.uow.loc, t.uow.logger)
	}
	return t.slotRepo
}

func (t *pgTx) Templates() shared.TemplateRepository {
	if t.templateRepo == nil {
		t.templateRepo = repository.NewTemplateRepository(t.dbtx, t.uow.logger)
	}
	return t.templateRepo
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.dbtx, t.uow.loc, t.uow.logger)
	}
	return t.appointmentRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx, t.uow.logger)
	}
	return t.userRepo
}

func (t *pgTx) Departments() shared.DepartmentRepository {
	if t.departmentRepo == nil {
		t.departmentRepo = repository.NewDepartmentRepository(t.dbtx, t.uow.logger)
	}
	return t.departmentRepo
}

func (t *pgTx) Doctors() shared.DoctorRepository {
	if t.doctorRepo == nil {
		t.doctorRepo = repository.NewDoctorRepository(t.dbtx, t.uow.logger)
	}
	return t.doctorRepo
}

func (t *pgTx) Patients() shared.PatientRepository {
	if t.patientRepo == nil {
		t.patientRepo = repository.NewPatientRepository(t.dbtx, t.uow.loc, t.uow.logger)
	}
	return t.patientRepo
}
