package commands

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
)

type AppointmentCommands interface {
	ChangeStatus(ctx context.Context, principal shared.Principal, id int64, status appointment.Status) error
	Delete(ctx context.Context, principal shared.Principal, id int64) error
}

type appointmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentCommands(uow shared.UnitOfWork) AppointmentCommands {
	return &appointmentCommandsImpl{uow: uow}
}

func (uc *appointmentCommandsImpl) ChangeStatus(ctx context.Context, principal shared.Principal, id int64, status appointment.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Appointments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		actor, err := resolveActor(ctx, tx, principal)
		if err != nil {
			return err
		}
		from := a.Status()
		if err := a.TransitionTo(status, actor); err != nil {
			return err
		}
		if err := tx.Appointments().UpdateStatus(ctx, a.ID(), a.Status()); err != nil {
			return err
		}
		slog.Info("Appointment status changed",
			"appointment_id", a.ID(),
			"from", from.String(),
			"to", a.Status().String(),
			"user_id", principal.UserID.String())
		return nil
	})
}

// Delete removes an appointment for any staff member. The slot it was
// booked on stays booked.
func (uc *appointmentCommandsImpl) Delete(ctx context.Context, principal shared.Principal, id int64) error {
	if !principal.IsStaff() {
		return appointment.ErrAccessDenied
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Appointments().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		if err := tx.Appointments().Delete(ctx, id); err != nil {
			return err
		}
		slog.Info("Appointment deleted", "appointment_id", id, "user_id", principal.UserID.String())
		return nil
	})
}

// resolveActor loads the profile ids linked to the caller's account. A
// missing profile leaves the id nil, which only grants admin-level access
// to admins.
func resolveActor(ctx context.Context, tx shared.Tx, principal shared.Principal) (appointment.Actor, error) {
	actor := appointment.Actor{Role: principal.Role}
	switch principal.Role {
	case user.RolePatient:
		p, err := tx.Patients().FindByUserID(ctx, principal.UserID)
		if err != nil && !errs.Is(err, patient.ErrNotFound) {
			return actor, err
		}
		if p != nil {
			id := p.ID()
			actor.PatientID = &id
		}
	case user.RoleDoctor:
		d, err := tx.Doctors().FindByUserID(ctx, principal.UserID)
		if err != nil && !errs.Is(err, doctor.ErrNotFound) {
			return actor, err
		}
		if d != nil {
			id := d.ID()
			actor.DoctorID = &id
		}
	}
	return actor, nil
}
