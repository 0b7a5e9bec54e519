package request

import (
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) ToInput() commands.DepartmentInput {
	return commands.DepartmentInput{Name: r.Name, Description: r.Description}
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

func (r *UpdateDepartmentRequest) ToPatch() commands.DepartmentPatch {
	return commands.DepartmentPatch{Name: r.Name, Description: r.Description}
}

type CreateDoctorRequest struct {
	Name           string     `json:"name" binding:"required,max=255"`
	Specialization string     `json:"specialization" binding:"required,max=255"`
	ContactInfo    *string    `json:"contact_info"`
	DepartmentID   *int64     `json:"department_id" binding:"omitempty,gt=0"`
	UserID         *uuid.UUID `json:"user_id"`
}

func (r *CreateDoctorRequest) ToInput() commands.DoctorInput {
	return commands.DoctorInput{
		Name:           r.Name,
		Specialization: r.Specialization,
		ContactInfo:    r.ContactInfo,
		DepartmentID:   r.DepartmentID,
		UserID:         r.UserID,
	}
}

type UpdateDoctorRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	Specialization  *string `json:"specialization" binding:"omitempty,max=255"`
	ContactInfo     *string `json:"contact_info"`
	DepartmentID    *int64  `json:"department_id" binding:"omitempty,gt=0"`
	ClearDepartment bool    `json:"clear_department"`
}

func (r *UpdateDoctorRequest) ToPatch() doctor.Update {
	return doctor.Update{
		Name:              r.Name,
		Specialization:    r.Specialization,
		ContactInfo:       r.ContactInfo,
		DepartmentID:      r.DepartmentID,
		ClearDepartmentID: r.ClearDepartment,
	}
}

type CreatePatientRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Email string  `json:"email" binding:"required,email"`
}

func (r *CreatePatientRequest) ToInput() commands.PatientInput {
	return commands.PatientInput{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

type UpdatePatientRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r *UpdatePatientRequest) ToPatch() patient.Update {
	return patient.Update{Name: r.Name, Phone: r.Phone, Email: r.Email}
}
