package appointment

import (
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidStatus     = errs.NewKind("invalid appointment status", errs.ErrValidation)
	ErrInvalidTransition = errs.NewKind("appointment status change not allowed", errs.ErrConflict)
	ErrNotFound          = errs.NewKind("appointment not found", errs.ErrNotFound)
	ErrAccessDenied      = errs.NewKind("appointment belongs to someone else", errs.ErrForbidden)
)

// Actor is who acts on an appointment. PatientID and DoctorID are the
// profiles linked to the account, when it has one.
type Actor struct {
	Role      user.Role
	PatientID *int64
	DoctorID  *int64
}

type Appointment struct {
	id        int64
	doctorID  int64
	patientID int64
	slotID    *int64
	start     time.Time
	end       time.Time
	status    Status
	createdAt time.Time
}

// FromSlot books patientID into slot. The slot must already be marked
// booked by the caller.
func FromSlot(slot availability.Slot, patientID int64, now time.Time) *Appointment {
	slotID := slot.ID()
	return &Appointment{
		doctorID:  slot.ProviderID(),
		patientID: patientID,
		slotID:    &slotID,
		start:     slot.Start(),
		end:       slot.End(),
		status:    StatusBooked,
		createdAt: now,
	}
}

func Reconstruct(id, doctorID, patientID int64, slotID *int64, start, end time.Time, status Status, createdAt time.Time) *Appointment {
	return &Appointment{
		id:        id,
		doctorID:  doctorID,
		patientID: patientID,
		slotID:    slotID,
		start:     start,
		end:       end,
		status:    status,
		createdAt: createdAt,
	}
}

func (a *Appointment) ID() int64            { return a.id }
func (a *Appointment) DoctorID() int64      { return a.doctorID }
func (a *Appointment) PatientID() int64     { return a.patientID }
func (a *Appointment) SlotID() *int64       { return a.slotID }
func (a *Appointment) Start() time.Time     { return a.start }
func (a *Appointment) End() time.Time       { return a.end }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }

func (a *Appointment) HasEnded(now time.Time) bool {
	return !now.Before(a.end)
}

// VisibleTo: admins see everything, doctors their own schedule, patients
// their own bookings.
func (a *Appointment) VisibleTo(actor Actor) bool {
	switch {
	case actor.Role == user.RoleAdmin:
		return true
	case actor.Role == user.RoleDoctor:
		return actor.DoctorID != nil && *actor.DoctorID == a.doctorID
	case actor.Role == user.RolePatient:
		return actor.PatientID != nil && *actor.PatientID == a.patientID
	default:
		return false
	}
}

// TransitionTo moves a BOOKED appointment to CANCELLED (owner or staff) or
// COMPLETED (staff only).
func (a *Appointment) TransitionTo(target Status, actor Actor) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !a.VisibleTo(actor) {
		return ErrAccessDenied
	}
	if a.status != StatusBooked {
		return errs.Wrapf(ErrInvalidTransition, "%s to %s", a.status, target)
	}
	switch target {
	case StatusCancelled:
	case StatusCompleted:
		if !actor.Role.IsStaff() {
			return errs.Wrap(ErrAccessDenied, "only staff can complete an appointment")
		}
	default:
		return errs.Wrapf(ErrInvalidTransition, "%s to %s", a.status, target)
	}
	a.status = target
	return nil
}
