package readstore

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/infra/repository"
	"clinic-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewAvailabilityReadStore(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		db:     dbtx,
		loc:    loc,
		logger: logger,
	}
}

func (r *AvailabilityReadStore) DoctorExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check doctor", err)
	}
	return exists, nil
}

func (r *AvailabilityReadStore) SlotsInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+repository.SlotColumns+`
		FROM slots
		WHERE provider_id = $1 AND calendar_month = $2
		ORDER BY start_at, id`,
		providerID, month,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list slots", err)
	}
	slots, err := repository.CollectSlots(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan slots", err)
	}
	return slots, nil
}

func (r *AvailabilityReadStore) SlotsStartingIn(ctx context.Context, providerID int64, from, to time.Time) ([]availability.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+repository.SlotColumns+`
		FROM slots
		WHERE provider_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at, id`,
		providerID, from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list slots in range", err)
	}
	slots, err := repository.CollectSlots(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan slots", err)
	}
	return slots, nil
}

func (r *AvailabilityReadStore) SlotByID(ctx context.Context, id int64) (availability.Slot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+repository.SlotColumns+` FROM slots WHERE id = $1`, id)
	s, err := repository.ScanSlot(row, r.loc)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return availability.Slot{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "slot not found", availability.ErrSlotNotFound)
		}
		return availability.Slot{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find slot", err)
	}
	return s, nil
}

func (r *AvailabilityReadStore) TemplateFor(ctx context.Context, providerID int64, month string) (availability.MonthTemplate, error) {
	var (
		weekdays    []int32
		start, end  pgtype.Time
		slotMinutes int32
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT weekdays, start_time, end_time, slot_minutes, updated_at
		FROM availability_templates
		WHERE provider_id = $1 AND month = $2`,
		providerID, month,
	).Scan(&weekdays, &start, &end, &slotMinutes, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return availability.MonthTemplate{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "template not found", availability.ErrTemplateNotFound)
		}
		return availability.MonthTemplate{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find template", err)
	}

	tmpl, err := toTemplate(weekdays, start, end, int(slotMinutes))
	if err != nil {
		return availability.MonthTemplate{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored template is invalid", err)
	}
	return availability.MonthTemplate{
		ProviderID: providerID,
		Month:      month,
		Template:   tmpl,
		UpdatedAt:  pgconv.TimeFromPgtype(updatedAt, r.loc),
	}, nil
}

func toTemplate(weekdays []int32, start, end pgtype.Time, slotMinutes int) (availability.Template, error) {
	days := make([]int, len(weekdays))
	for i, d := range weekdays {
		days[i] = int(d)
	}
	s, err := availability.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(start))
	if err != nil {
		return availability.Template{}, err
	}
	e, err := availability.TimeOfDayFromMinutes(pgconv.MinutesFromPgTime(end))
	if err != nil {
		return availability.Template{}, err
	}
	return availability.NewTemplateFromParts(days, s, e, slotMinutes)
}
