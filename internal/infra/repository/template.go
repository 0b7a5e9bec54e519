package repository

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/db"
	"clinic-scheduler/internal/pkg/pgconv"
)

type TemplateRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTemplateRepository(dbtx db.DBTX, logger *slog.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     dbtx,
		logger: logger,
	}
}

// Upsert records the template a month was last generated with.
func (r *TemplateRepository) Upsert(ctx context.Context, t availability.MonthTemplate) error {
	tmpl := t.Template
	_, err := r.db.Exec(ctx, `
		INSERT INTO availability_templates (provider_id, month, weekdays, start_time, end_time, slot_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (provider_id, month) DO UPDATE SET
			weekdays = EXCLUDED.weekdays,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_minutes = EXCLUDED.slot_minutes,
			updated_at = EXCLUDED.updated_at`,
		t.ProviderID,
		t.Month,
		toInt32s(tmpl.WeekdayNumbers()),
		pgconv.MinutesToPgTime(tmpl.StartTime().Minutes()),
		pgconv.MinutesToPgTime(tmpl.EndTime().Minutes()),
		tmpl.SlotMinutes(),
		t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to save availability template", err, nil, nil)
	}
	return nil
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}
