package commands

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
)

var (
	ErrPatientRequired = errs.NewKind("patient_id is required when staff books a slot", errs.ErrValidation)
	ErrBookForOthers   = errs.NewKind("can only book appointments for yourself", errs.ErrForbidden)
	ErrRoleCannotBook  = errs.NewKind("role cannot book appointments", errs.ErrForbidden)
)

type BookSlotInput struct {
	SlotID int64
	// PatientID is required for staff and must be the caller's own profile
	// (or nil) for patients.
	PatientID *int64
}

type BookSlotResult struct {
	AppointmentID int64
	PatientID     int64
	Slot          availability.Slot
}

type BookingCommands interface {
	BookSlot(ctx context.Context, principal shared.Principal, in BookSlotInput) (*BookSlotResult, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, events shared.EventPublisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, events: events, clock: clk}
}

// BookSlot flips the slot to booked and records a BOOKED appointment in
// one transaction.
func (uc *bookingCommandsImpl) BookSlot(ctx context.Context, principal shared.Principal, in BookSlotInput) (*BookSlotResult, error) {
	now := uc.clock.Now()

	var result *BookSlotResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		patientID, err := resolveBookingPatient(ctx, tx, principal, in.PatientID)
		if err != nil {
			return err
		}

		slot, err := tx.Slots().FindByIDForUpdate(ctx, in.SlotID)
		if err != nil {
			return err
		}
		booked, err := slot.Book()
		if err != nil {
			return err
		}
		if err := tx.Slots().MarkBooked(ctx, booked.ID()); err != nil {
			return err
		}

		appointmentID, err := tx.Appointments().Create(ctx, appointment.FromSlot(booked, patientID, now))
		if err != nil {
			return err
		}

		result = &BookSlotResult{
			AppointmentID: appointmentID,
			PatientID:     patientID,
			Slot:          booked,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Slot booked",
		"slot_id", result.Slot.ID(),
		"provider_id", result.Slot.ProviderID(),
		"appointment_id", result.AppointmentID)

	uc.events.Publish(ctx, shared.Event{
		Type:      shared.EventSlotBooked,
		Timestamp: now,
		Payload: shared.SlotBookedPayload{
			SlotID:        result.Slot.ID(),
			ProviderID:    result.Slot.ProviderID(),
			AppointmentID: result.AppointmentID,
			Month:         result.Slot.CalendarMonth(),
		},
	})
	return result, nil
}

func resolveBookingPatient(ctx context.Context, tx shared.Tx, principal shared.Principal, requested *int64) (int64, error) {
	switch {
	case principal.Role == user.RolePatient:
		own, err := tx.Patients().FindByUserID(ctx, principal.UserID)
		if err != nil {
			if errs.Is(err, patient.ErrNotFound) {
				return 0, patient.ErrNoProfile
			}
			return 0, err
		}
		if requested != nil && *requested != own.ID() {
			return 0, ErrBookForOthers
		}
		return own.ID(), nil
	case principal.IsStaff():
		if requested == nil {
			return 0, ErrPatientRequired
		}
		p, err := tx.Patients().FindByID(ctx, *requested)
		if err != nil {
			return 0, err
		}
		return p.ID(), nil
	default:
		return 0, ErrRoleCannotBook
	}
}
