//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingFixture(t *testing.T) (*fixture, []availability.Slot) {
	t.Helper()
	f := newFixture(t)
	providerID := f.createDoctor(t, "Dr. House", nil)
	res := f.regenerate(t, providerID, mustMonth(t, 2024, time.March), mustTemplate(t, []int{0}, "09:00", "10:00", 30))
	f.events = &recordingPublisher{}
	f.booking = commands.NewBookingCommands(f.store, f.events, f.clock)
	return f, res.Slots
}

func findAppointment(t *testing.T, f *fixture, id int64) *appointment.Appointment {
	t.Helper()
	var a *appointment.Appointment
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		a, err = tx.Appointments().FindByIDForUpdate(ctx, id)
		return err
	})
	require.NoError(t, err)
	return a
}

func TestBookSlot_PatientBooksForThemselves(t *testing.T) {
	f, slots := bookingFixture(t)
	principal := f.registerPatient(t, "jane@example.com")
	target := slots[0]

	res, err := f.booking.BookSlot(context.Background(), principal, commands.BookSlotInput{SlotID: target.ID()})

	require.NoError(t, err)
	assert.True(t, res.Slot.IsBooked())
	assert.Equal(t, target.ID(), res.Slot.ID())

	stored, err := f.store.SlotByID(context.Background(), target.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsBooked())

	a := findAppointment(t, f, res.AppointmentID)
	assert.Equal(t, appointment.StatusBooked, a.Status())
	assert.Equal(t, res.PatientID, a.PatientID())
	assert.Equal(t, target.ProviderID(), a.DoctorID())
	assert.True(t, target.Start().Equal(a.Start()))
	assert.True(t, target.End().Equal(a.End()))
	require.NotNil(t, a.SlotID())
	assert.Equal(t, target.ID(), *a.SlotID())

	require.Equal(t, []string{shared.EventSlotBooked}, f.events.Types())
	assert.Equal(t, shared.SlotBookedPayload{
		SlotID:        target.ID(),
		ProviderID:    target.ProviderID(),
		AppointmentID: res.AppointmentID,
		Month:         "2024-03",
	}, f.events.Last().Payload)
}

func TestBookSlot_StaffBooksForPatient(t *testing.T) {
	f, slots := bookingFixture(t)
	patientID := f.createPatient(t, "walkin@example.com")

	res, err := f.booking.BookSlot(context.Background(), staff(user.RoleDoctor), commands.BookSlotInput{
		SlotID:    slots[1].ID(),
		PatientID: &patientID,
	})

	require.NoError(t, err)
	assert.Equal(t, patientID, res.PatientID)
}

func TestBookSlot_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput)
		wantErr  error
		wantKind error
	}{
		{
			name: "slot already booked",
			setup: func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				p := f.registerPatient(t, "jane@example.com")
				_, err := f.booking.BookSlot(context.Background(), p, commands.BookSlotInput{SlotID: slots[0].ID()})
				require.NoError(t, err)
				return f.registerPatient(t, "john@example.com"), commands.BookSlotInput{SlotID: slots[0].ID()}
			},
			wantErr:  availability.ErrSlotAlreadyBooked,
			wantKind: errs.ErrConflict,
		},
		{
			name: "unknown slot",
			setup: func(t *testing.T, f *fixture, _ []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				return f.registerPatient(t, "jane@example.com"), commands.BookSlotInput{SlotID: 99999}
			},
			wantErr:  availability.ErrSlotNotFound,
			wantKind: errs.ErrNotFound,
		},
		{
			name: "patient books for someone else",
			setup: func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				other := f.createPatient(t, "other@example.com")
				return f.registerPatient(t, "jane@example.com"), commands.BookSlotInput{SlotID: slots[0].ID(), PatientID: &other}
			},
			wantErr:  commands.ErrBookForOthers,
			wantKind: errs.ErrForbidden,
		},
		{
			name: "patient account without profile",
			setup: func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				return shared.Principal{UserID: uuid.New(), Role: user.RolePatient}, commands.BookSlotInput{SlotID: slots[0].ID()}
			},
			wantErr:  patient.ErrNoProfile,
			wantKind: errs.ErrNotFound,
		},
		{
			name: "staff without patient",
			setup: func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				return staff(user.RoleAdmin), commands.BookSlotInput{SlotID: slots[0].ID()}
			},
			wantErr:  commands.ErrPatientRequired,
			wantKind: errs.ErrValidation,
		},
		{
			name: "staff names an unknown patient",
			setup: func(t *testing.T, f *fixture, slots []availability.Slot) (shared.Principal, commands.BookSlotInput) {
				missing := int64(99999)
				return staff(user.RoleAdmin), commands.BookSlotInput{SlotID: slots[0].ID(), PatientID: &missing}
			},
			wantErr:  patient.ErrNotFound,
			wantKind: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, slots := bookingFixture(t)
			principal, in := tt.setup(t, f, slots)
			published := len(f.events.Types())

			_, err := f.booking.BookSlot(context.Background(), principal, in)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errs.Is(err, tt.wantKind), "got %v", err)
			assert.Len(t, f.events.Types(), published, "failed booking must not publish")
		})
	}
}

func TestBookSlot_FailureLeavesSlotOpen(t *testing.T) {
	f, slots := bookingFixture(t)
	other := f.createPatient(t, "other@example.com")
	principal := f.registerPatient(t, "jane@example.com")

	_, err := f.booking.BookSlot(context.Background(), principal, commands.BookSlotInput{SlotID: slots[0].ID(), PatientID: &other})
	require.Error(t, err)

	stored, err := f.store.SlotByID(context.Background(), slots[0].ID())
	require.NoError(t, err)
	assert.False(t, stored.IsBooked())
}
