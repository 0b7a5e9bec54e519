package shared

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Any error rolls every write back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	// LockProviderMonth serialises writers of one provider month until the
	// transaction ends.
	LockProviderMonth(ctx context.Context, providerID int64, month string) error

	Slots() SlotRepository
	Templates() TemplateRepository
	Appointments() AppointmentRepository
	Users() UserRepository
	Departments() DepartmentRepository
	Doctors() DoctorRepository
	Patients() PatientRepository
}

type SlotRepository interface {
	// Insert stores a new slot and returns it with its id. A second slot
	// with the same provider and start fails with availability.ErrDuplicateSlot.
	Insert(ctx context.Context, s availability.Slot) (availability.Slot, error)
	DeleteUnbookedInMonth(ctx context.Context, providerID int64, month string) (int64, error)
	ListInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error)
	// FindByIDForUpdate locks the slot row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id int64) (availability.Slot, error)
	MarkBooked(ctx context.Context, id int64) error
	DeleteUnbookedEndedBefore(ctx context.Context, t time.Time) (int64, error)
}

type TemplateRepository interface {
	Upsert(ctx context.Context, t availability.MonthTemplate) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) (int64, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status appointment.Status) error
	Delete(ctx context.Context, id int64) error
	CompleteEndedBefore(ctx context.Context, t time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *department.Department) (int64, error)
	FindByID(ctx context.Context, id int64) (*department.Department, error)
	Update(ctx context.Context, d *department.Department) error
	Delete(ctx context.Context, id int64) error
}

type DoctorRepository interface {
	Create(ctx context.Context, d *doctor.Doctor) (int64, error)
	FindByID(ctx context.Context, id int64) (*doctor.Doctor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*doctor.Doctor, error)
	Update(ctx context.Context, d *doctor.Doctor) error
	Delete(ctx context.Context, id int64) error
}

type PatientRepository interface {
	Create(ctx context.Context, p *patient.Patient) (int64, error)
	FindByID(ctx context.Context, id int64) (*patient.Patient, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*patient.Patient, error)
	Update(ctx context.Context, p *patient.Patient) error
	Delete(ctx context.Context, id int64) error
}
