package infra

import (
	"context"
	"errors"
	"log/slog"

	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error or domain sentinel
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Is maps kinds onto the shared error categories.
func (e RepositoryError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == errs.ErrNotFound
	case KindDuplicateKey, KindForeignKeyViolated, KindConflict:
		return target == errs.ErrConflict
	case KindDBFailure:
		return target == errs.ErrDatabaseOperationFailed
	default:
		return false
	}
}

// WrapRepoErr logs and wraps a repository failure. Pass the domain sentinel
// as err for expected outcomes such as a missing row.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	if slogger == nil {
		slogger = slog.Default()
	}
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	level := slog.LevelWarn
	if kind == KindDBFailure {
		level = slog.LevelError
		if err != nil {
			logArgs = append(logArgs, slog.String("error", err.Error()))
		}
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// WrapPgErr classifies a driver error. A unique violation becomes onDuplicate
// and a foreign key violation onForeignKey when those are non-nil.
func WrapPgErr(slogger *slog.Logger, msg string, err error, onDuplicate, onForeignKey error) error {
	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		if onDuplicate != nil {
			return WrapRepoErr(slogger, KindDuplicateKey, msg, errors.Join(onDuplicate, err))
		}
		return WrapRepoErr(slogger, KindDuplicateKey, msg, err)
	case pgconv.CodeForeignKeyViolation:
		if onForeignKey != nil {
			return WrapRepoErr(slogger, KindForeignKeyViolated, msg, errors.Join(onForeignKey, err))
		}
		return WrapRepoErr(slogger, KindForeignKeyViolated, msg, err)
	default:
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
