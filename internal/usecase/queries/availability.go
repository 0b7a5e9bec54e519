package queries

import (
	"context"
	"slices"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/calendar"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
)

// MonthGrid is the 42 day calendar of one provider month with navigation.
type MonthGrid struct {
	ProviderID int64
	Month      availability.Month
	Prev       availability.Month
	Next       availability.Month
	Days       []calendar.Day
}

type AvailabilityQueries interface {
	ListSlots(ctx context.Context, providerID int64, month availability.Month) ([]availability.Slot, error)
	MonthGrid(ctx context.Context, providerID int64, month availability.Month) (*MonthGrid, error)
	GetTemplate(ctx context.Context, providerID int64, month availability.Month) (*availability.MonthTemplate, error)
	DefaultTemplate() availability.Template
	GetSlot(ctx context.Context, id int64) (availability.Slot, error)
}

type availabilityQueriesImpl struct {
	reads shared.AvailabilityReader
}

func NewAvailabilityQueries(reads shared.AvailabilityReader) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads}
}

func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, providerID int64, month availability.Month) ([]availability.Slot, error) {
	if err := q.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}
	slots, err := q.reads.SlotsInMonth(ctx, providerID, month.Label())
	if err != nil {
		return nil, err
	}
	out := make([]availability.Slot, len(slots))
	for i, s := range slots {
		out[i] = s.In(month.Location())
	}
	slices.SortFunc(out, availability.CompareByStart)
	return out, nil
}

func (q *availabilityQueriesImpl) MonthGrid(ctx context.Context, providerID int64, month availability.Month) (*MonthGrid, error) {
	if err := q.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}
	from, to := calendar.GridRange(month)
	slots, err := q.reads.SlotsStartingIn(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}
	return &MonthGrid{
		ProviderID: providerID,
		Month:      month,
		Prev:       month.AddMonths(-1),
		Next:       month.AddMonths(1),
		Days:       calendar.BuildGrid(month, providerID, slots),
	}, nil
}

func (q *availabilityQueriesImpl) GetTemplate(ctx context.Context, providerID int64, month availability.Month) (*availability.MonthTemplate, error) {
	if err := q.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}
	t, err := q.reads.TemplateFor(ctx, providerID, month.Label())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (q *availabilityQueriesImpl) DefaultTemplate() availability.Template {
	return availability.DefaultTemplate()
}

func (q *availabilityQueriesImpl) GetSlot(ctx context.Context, id int64) (availability.Slot, error) {
	return q.reads.SlotByID(ctx, id)
}

func (q *availabilityQueriesImpl) requireProvider(ctx context.Context, providerID int64) error {
	exists, err := q.reads.DoctorExists(ctx, providerID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Wrapf(doctor.ErrNotFound, "provider %d", providerID)
	}
	return nil
}
