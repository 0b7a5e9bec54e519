//go:build unit || e2e

package builder

import (
	"time"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type DepartmentBuilder struct {
	ID          int64
	Name        string
	Description *string
}

func NewDepartmentBuilder() *DepartmentBuilder {
	desc := "Heart and circulation"
	return &DepartmentBuilder{ID: 1, Name: "Cardiology", Description: &desc}
}

func (b *DepartmentBuilder) WithName(name string) *DepartmentBuilder {
	b.Name = name
	return b
}

func (b *DepartmentBuilder) BuildCreateRequestDTO() reqdto.CreateDepartmentRequest {
	return reqdto.CreateDepartmentRequest{Name: b.Name, Description: b.Description}
}

func (b *DepartmentBuilder) BuildView() *queries.DepartmentView {
	return &queries.DepartmentView{ID: b.ID, Name: b.Name, Description: b.Description}
}

type DoctorBuilder struct {
	ID             int64
	Name           string
	Specialization string
	ContactInfo    *string
	DepartmentID   *int64
	UserID         *uuid.UUID
}

func NewDoctorBuilder() *DoctorBuilder {
	contact := "dr.house@example.com"
	return &DoctorBuilder{
		ID:             1,
		Name:           "Dr. House",
		Specialization: "Diagnostics",
		ContactInfo:    &contact,
	}
}

func (b *DoctorBuilder) WithID(id int64) *DoctorBuilder {
	b.ID = id
	return b
}

func (b *DoctorBuilder) WithDepartment(id int64) *DoctorBuilder {
	b.DepartmentID = &id
	return b
}

func (b *DoctorBuilder) WithUser(id uuid.UUID) *DoctorBuilder {
	b.UserID = &id
	return b
}

func (b *DoctorBuilder) BuildCreateRequestDTO() reqdto.CreateDoctorRequest {
	return reqdto.CreateDoctorRequest{
		Name:           b.Name,
		Specialization: b.Specialization,
		ContactInfo:    b.ContactInfo,
		DepartmentID:   b.DepartmentID,
		UserID:         b.UserID,
	}
}

func (b *DoctorBuilder) BuildView() *queries.DoctorView {
	return &queries.DoctorView{
		ID:             b.ID,
		Name:           b.Name,
		Specialization: b.Specialization,
		ContactInfo:    b.ContactInfo,
		DepartmentID:   b.DepartmentID,
		UserID:         b.UserID,
	}
}

type PatientBuilder struct {
	ID     int64
	Name   string
	Phone  *string
	Email  string
	UserID *uuid.UUID
}

func NewPatientBuilder() *PatientBuilder {
	phone := "555-0100"
	return &PatientBuilder{
		ID:    1,
		Name:  "Jane Roe",
		Phone: &phone,
		Email: "jane@example.com",
	}
}

func (b *PatientBuilder) WithID(id int64) *PatientBuilder {
	b.ID = id
	return b
}

func (b *PatientBuilder) WithEmail(email string) *PatientBuilder {
	b.Email = email
	return b
}

func (b *PatientBuilder) WithUser(id uuid.UUID) *PatientBuilder {
	b.UserID = &id
	return b
}

func (b *PatientBuilder) BuildCreateRequestDTO() reqdto.CreatePatientRequest {
	return reqdto.CreatePatientRequest{Name: b.Name, Phone: b.Phone, Email: b.Email}
}

func (b *PatientBuilder) BuildView() *queries.PatientView {
	return &queries.PatientView{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		UserID:    b.UserID,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
