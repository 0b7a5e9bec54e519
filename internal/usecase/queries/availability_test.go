//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/infra/memstore"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProvider(t *testing.T, store *memstore.Store, starts ...time.Time) int64 {
	t.Helper()
	ctx := context.Background()
	dir := commands.NewDirectoryCommands(store, clock.NewMockClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	id, err := dir.CreateDoctor(ctx, commands.DoctorInput{Name: "Dr. House", Specialization: "General"})
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range starts {
			if _, err := tx.Slots().Insert(ctx, availability.NewSlot(id, s, 30*time.Minute, 5000)); err != nil {
				return err
			}
		}
		return nil
	}))
	return id
}

func march(t *testing.T) availability.Month {
	t.Helper()
	m, err := availability.NewMonth(2024, time.March, time.UTC)
	require.NoError(t, err)
	return m
}

func TestListSlots_SortedWithinMonth(t *testing.T) {
	store := memstore.New(time.UTC)
	providerID := seedProvider(t, store,
		time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	)
	q := queries.NewAvailabilityQueries(store)

	slots, err := q.ListSlots(context.Background(), providerID, march(t))

	require.NoError(t, err)
	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start().Before(slots[i].Start()))
	}
}

func TestMonthGrid_IncludesAdjacentDays(t *testing.T) {
	store := memstore.New(time.UTC)
	providerID := seedProvider(t, store,
		time.Date(2024, 2, 26, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 8, 9, 0, 0, 0, time.UTC),
	)
	q := queries.NewAvailabilityQueries(store)

	grid, err := q.MonthGrid(context.Background(), providerID, march(t))

	require.NoError(t, err)
	require.Len(t, grid.Days, 42)
	assert.Equal(t, "2024-02", grid.Prev.Label())
	assert.Equal(t, "2024-04", grid.Next.Label())
	assert.True(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC).Equal(grid.Days[0].Date))
	assert.False(t, grid.Days[0].IsCurrentMonth)

	withSlots := 0
	for _, d := range grid.Days {
		withSlots += len(d.Slots)
	}
	// 2024-04-08 falls after the last grid day
	assert.Equal(t, 3, withSlots)
}

func TestAvailabilityQueries_UnknownProvider(t *testing.T) {
	q := queries.NewAvailabilityQueries(memstore.New(time.UTC))
	ctx := context.Background()

	_, err := q.ListSlots(ctx, 404, march(t))
	assert.True(t, errs.Is(err, doctor.ErrNotFound))

	_, err = q.MonthGrid(ctx, 404, march(t))
	assert.True(t, errs.Is(err, doctor.ErrNotFound))

	_, err = q.GetTemplate(ctx, 404, march(t))
	assert.True(t, errs.Is(err, doctor.ErrNotFound))
}

func TestGetTemplate_NotGenerated(t *testing.T) {
	store := memstore.New(time.UTC)
	providerID := seedProvider(t, store)
	q := queries.NewAvailabilityQueries(store)

	_, err := q.GetTemplate(context.Background(), providerID, march(t))

	assert.True(t, errs.Is(err, availability.ErrTemplateNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestDefaultTemplate(t *testing.T) {
	q := queries.NewAvailabilityQueries(memstore.New(time.UTC))

	assert.Equal(t, availability.DefaultTemplate(), q.DefaultTemplate())
}
