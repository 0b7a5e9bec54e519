package shared

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/availability"
)

// AvailabilityReader is the read side of the slot collection and the
// template store. Both the PostgreSQL read store and the in-memory store
// implement it.
type AvailabilityReader interface {
	DoctorExists(ctx context.Context, id int64) (bool, error)
	SlotsInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error)
	// SlotsStartingIn returns slots with from <= start < to, ascending.
	SlotsStartingIn(ctx context.Context, providerID int64, from, to time.Time) ([]availability.Slot, error)
	SlotByID(ctx context.Context, id int64) (availability.Slot, error)
	TemplateFor(ctx context.Context, providerID int64, month string) (availability.MonthTemplate, error)
}
