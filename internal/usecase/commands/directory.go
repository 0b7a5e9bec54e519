package commands

import (
	"context"

	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type DepartmentInput struct {
	Name        string
	Description *string
}

type DepartmentPatch struct {
	Name        *string
	Description *string
}

type DoctorInput struct {
	Name           string
	Specialization string
	ContactInfo    *string
	DepartmentID   *int64
	UserID         *uuid.UUID
}

type PatientInput struct {
	Name  string
	Phone *string
	Email string
}

type DirectoryCommands interface {
	CreateDepartment(ctx context.Context, in DepartmentInput) (int64, error)
	UpdateDepartment(ctx context.Context, id int64, patch DepartmentPatch) error
	DeleteDepartment(ctx context.Context, id int64) error

	CreateDoctor(ctx context.Context, in DoctorInput) (int64, error)
	UpdateDoctor(ctx context.Context, id int64, patch doctor.Update) error
	DeleteDoctor(ctx context.Context, id int64) error

	CreatePatient(ctx context.Context, in PatientInput) (int64, error)
	UpdatePatient(ctx context.Context, principal shared.Principal, id int64, patch patient.Update) error
	DeletePatient(ctx context.Context, id int64) error
}

type directoryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDirectoryCommands(uow shared.UnitOfWork, clk clock.Clock) DirectoryCommands {
	return &directoryCommandsImpl{uow: uow, clock: clk}
}

func (uc *directoryCommandsImpl) CreateDepartment(ctx context.Context, in DepartmentInput) (int64, error) {
	d, err := department.NewDepartment(in.Name, in.Description)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Departments().Create(ctx, d)
		return err
	})
	return id, err
}

func (uc *directoryCommandsImpl) UpdateDepartment(ctx context.Context, id int64, patch DepartmentPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Departments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := d.Update(patch.Name, patch.Description); err != nil {
			return err
		}
		return tx.Departments().Update(ctx, d)
	})
}

func (uc *directoryCommandsImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Departments().Delete(ctx, id)
	})
}

func (uc *directoryCommandsImpl) CreateDoctor(ctx context.Context, in DoctorInput) (int64, error) {
	d, err := doctor.NewDoctor(doctor.Params{
		Name:           in.Name,
		Specialization: in.Specialization,
		ContactInfo:    in.ContactInfo,
		DepartmentID:   in.DepartmentID,
		UserID:         in.UserID,
	})
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.DepartmentID != nil {
			if _, err := tx.Departments().FindByID(ctx, *in.DepartmentID); err != nil {
				return err
			}
		}
		id, err = tx.Doctors().Create(ctx, d)
		return err
	})
	return id, err
}

func (uc *directoryCommandsImpl) UpdateDoctor(ctx context.Context, id int64, patch doctor.Update) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Doctors().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.DepartmentID != nil && !patch.ClearDepartmentID {
			if _, err := tx.Departments().FindByID(ctx, *patch.DepartmentID); err != nil {
				return err
			}
		}
		if err := d.Apply(patch); err != nil {
			return err
		}
		return tx.Doctors().Update(ctx, d)
	})
}

func (uc *directoryCommandsImpl) DeleteDoctor(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Doctors().Delete(ctx, id)
	})
}

func (uc *directoryCommandsImpl) CreatePatient(ctx context.Context, in PatientInput) (int64, error) {
	p, err := patient.NewPatient(in.Name, in.Phone, in.Email, nil, uc.clock.Now())
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Patients().Create(ctx, p)
		return err
	})
	return id, err
}

// UpdatePatient lets staff edit any profile and patients edit their own.
func (uc *directoryCommandsImpl) UpdatePatient(ctx context.Context, principal shared.Principal, id int64, patch patient.Update) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Patients().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !principal.IsStaff() && !p.OwnedBy(principal.UserID) {
			return patient.ErrAccessDenied
		}
		if err := p.Apply(patch); err != nil {
			return err
		}
		return tx.Patients().Update(ctx, p)
	})
}

func (uc *directoryCommandsImpl) DeletePatient(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Patients().Delete(ctx, id)
	})
}
