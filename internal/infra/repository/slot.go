package repository

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SlotColumns is the column list ScanSlot expects.
const SlotColumns = `id, provider_id, start_at, end_at, price_cents, is_booked, calendar_month`

type SlotRepository struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewSlotRepository(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *SlotRepository {
	return &SlotRepository{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *SlotRepository) Insert(ctx context.Context, s availability.Slot) (availability.Slot, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO slots (provider_id, start_at, end_at, price_cents, is_booked, calendar_month)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		s.ProviderID(), s.Start(), s.End(), s.PriceCents(), s.IsBooked(), s.CalendarMonth(),
	).Scan(&id)
	if err != nil {
		return availability.Slot{}, infra.WrapPgErr(r.logger, "failed to insert slot", err, availability.ErrDuplicateSlot, nil)
	}
	return s.WithID(id), nil
}

func (r *SlotRepository) DeleteUnbookedInMonth(ctx context.Context, providerID int64, month string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM slots
		WHERE provider_id = $1 AND calendar_month = $2 AND NOT is_booked`,
		providerID, month,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete unbooked slots", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) ListInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+SlotColumns+`
		FROM slots
		WHERE provider_id = $1 AND calendar_month = $2
		ORDER BY start_at, id`,
		providerID, month,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list slots", err)
	}
	slots, err := CollectSlots(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan slots", err)
	}
	return slots, nil
}

func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, id int64) (availability.Slot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+SlotColumns+` FROM slots WHERE id = $1 FOR UPDATE`, id)
	s, err := ScanSlot(row, r.loc)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return availability.Slot{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "slot not found", availability.ErrSlotNotFound)
		}
		return availability.Slot{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find slot", err)
	}
	return s, nil
}

func (r *SlotRepository) MarkBooked(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE slots SET is_booked = TRUE WHERE id = $1 AND NOT is_booked`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark slot booked", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "slot already booked", availability.ErrSlotAlreadyBooked)
	}
	return nil
}

func (r *SlotRepository) DeleteUnbookedEndedBefore(ctx context.Context, t time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE NOT is_booked AND end_at <= $1`, t)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to prune slots", err)
	}
	return tag.RowsAffected(), nil
}

// ScanSlot reads one row selected with SlotColumns.
func ScanSlot(row pgx.Row, loc *time.Location) (availability.Slot, error) {
	var (
		id, providerID int64
		start, end     pgtype.Timestamptz
		priceCents     int32
		isBooked       bool
		month          string
	)
	if err := row.Scan(&id, &providerID, &start, &end, &priceCents, &isBooked, &month); err != nil {
		return availability.Slot{}, err
	}
	return availability.ReconstructSlot(
		id,
		providerID,
		pgconv.TimeFromPgtype(start, loc),
		pgconv.TimeFromPgtype(end, loc),
		int(priceCents),
		isBooked,
		month,
	), nil
}

func CollectSlots(rows pgx.Rows, loc *time.Location) ([]availability.Slot, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.Slot, error) {
		return ScanSlot(row, loc)
	})
}
