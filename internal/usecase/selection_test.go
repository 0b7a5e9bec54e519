//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/internal/usecase/shared"
	"clinic-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityReader struct {
	mock.Mock
}

func (m *MockAvailabilityReader) DoctorExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityReader) SlotsInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error) {
	args := m.Called(ctx, providerID, month)
	slots, _ := args.Get(0).([]availability.Slot)
	return slots, args.Error(1)
}

func (m *MockAvailabilityReader) SlotsStartingIn(ctx context.Context, providerID int64, from, to time.Time) ([]availability.Slot, error) {
	args := m.Called(ctx, providerID, from, to)
	slots, _ := args.Get(0).([]availability.Slot)
	return slots, args.Error(1)
}

func (m *MockAvailabilityReader) SlotByID(ctx context.Context, id int64) (availability.Slot, error) {
	args := m.Called(ctx, id)
	slot, _ := args.Get(0).(availability.Slot)
	return slot, args.Error(1)
}

func (m *MockAvailabilityReader) TemplateFor(ctx context.Context, providerID int64, month string) (availability.MonthTemplate, error) {
	args := m.Called(ctx, providerID, month)
	mt, _ := args.Get(0).(availability.MonthTemplate)
	return mt, args.Error(1)
}

func newPatient() shared.Principal {
	return shared.Principal{UserID: uuid.New(), Role: user.RolePatient}
}

func selectedID(t *testing.T, svc usecase.SelectionService, p shared.Principal) (int64, bool) {
	t.Helper()
	sel, err := svc.Current(context.Background(), p)
	require.NoError(t, err)
	slot, ok := sel.Current()
	return slot.ID(), ok
}

func TestSelectionService(t *testing.T) {
	ctx := context.Background()
	open := builder.NewSlotBuilder().WithID(1).Build()
	booked := builder.NewSlotBuilder().WithID(1).AsBooked().Build()
	other := builder.NewSlotBuilder().WithID(2).WithStart(time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)).Build()

	t.Run("nothing selected needs no read", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		svc := usecase.NewSelectionService(reads, time.UTC)

		sel, err := svc.Current(ctx, newPatient())

		require.NoError(t, err)
		assert.False(t, sel.HasSelection())
		reads.AssertNotCalled(t, "SlotByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown slot cannot be selected", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		reads.On("SlotByID", mock.Anything, int64(9)).Return(availability.Slot{}, availability.ErrSlotNotFound).Once()
		svc := usecase.NewSelectionService(reads, time.UTC)

		_, err := svc.Select(ctx, newPatient(), 9)

		assert.ErrorIs(t, err, availability.ErrSlotNotFound)
	})

	t.Run("current picks up a booking made elsewhere", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once()
		reads.On("SlotByID", mock.Anything, int64(1)).Return(booked, nil).Once()
		svc := usecase.NewSelectionService(reads, time.UTC)
		p := newPatient()

		sel, err := svc.Select(ctx, p, 1)
		require.NoError(t, err)
		assert.True(t, sel.CanBook())

		sel, err = svc.Current(ctx, p)
		require.NoError(t, err)
		assert.True(t, sel.HasSelection())
		assert.False(t, sel.CanBook())
		reads.AssertExpectations(t)
	})

	t.Run("a deleted slot clears the selection", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once()
		reads.On("SlotByID", mock.Anything, int64(1)).Return(availability.Slot{}, availability.ErrSlotNotFound).Once()
		svc := usecase.NewSelectionService(reads, time.UTC)
		p := newPatient()

		_, err := svc.Select(ctx, p, 1)
		require.NoError(t, err)

		sel, err := svc.Current(ctx, p)
		require.NoError(t, err)
		assert.False(t, sel.HasSelection())
	})

	t.Run("selections are kept per principal", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil)
		reads.On("SlotByID", mock.Anything, int64(2)).Return(other, nil)
		svc := usecase.NewSelectionService(reads, time.UTC)
		alice, bob := newPatient(), newPatient()

		_, err := svc.Select(ctx, alice, 1)
		require.NoError(t, err)
		_, err = svc.Select(ctx, bob, 2)
		require.NoError(t, err)
		svc.Clear(bob)

		id, ok := selectedID(t, svc, alice)
		assert.True(t, ok)
		assert.Equal(t, int64(1), id)
		_, ok = selectedID(t, svc, bob)
		assert.False(t, ok)
	})
}

func TestSelectionService_CurrentDoesNotOverwriteNewerChoice(t *testing.T) {
	ctx := context.Background()
	open := builder.NewSlotBuilder().WithID(1).Build()
	other := builder.NewSlotBuilder().WithID(2).WithStart(time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)).Build()

	t.Run("another slot selected during the re-read", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		svc := usecase.NewSelectionService(reads, time.UTC)
		p := newPatient()

		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once()
		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once().Run(func(mock.Arguments) {
			_, err := svc.Select(ctx, p, 2)
			require.NoError(t, err)
		})
		reads.On("SlotByID", mock.Anything, int64(2)).Return(other, nil)

		_, err := svc.Select(ctx, p, 1)
		require.NoError(t, err)

		sel, err := svc.Current(ctx, p)
		require.NoError(t, err)
		slot, ok := sel.Current()
		require.True(t, ok)
		assert.Equal(t, int64(2), slot.ID())

		id, ok := selectedID(t, svc, p)
		assert.True(t, ok)
		assert.Equal(t, int64(2), id)
	})

	t.Run("selection cleared during the re-read", func(t *testing.T) {
		reads := new(MockAvailabilityReader)
		svc := usecase.NewSelectionService(reads, time.UTC)
		p := newPatient()

		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once()
		reads.On("SlotByID", mock.Anything, int64(1)).Return(open, nil).Once().Run(func(mock.Arguments) {
			svc.Clear(p)
		})

		_, err := svc.Select(ctx, p, 1)
		require.NoError(t, err)

		sel, err := svc.Current(ctx, p)
		require.NoError(t, err)
		assert.False(t, sel.HasSelection())

		_, ok := selectedID(t, svc, p)
		assert.False(t, ok)
		reads.AssertExpectations(t)
	})
}
