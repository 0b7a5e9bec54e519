package response

import (
	"time"

	"clinic-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type DoctorResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Specialization string     `json:"specialization"`
	ContactInfo    *string    `json:"contact_info,omitempty"`
	DepartmentID   *int64     `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
}

type PatientResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	Email     string     `json:"email"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// copyView copies same-named fields from a read view.
func copyView[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func copyViews[T any](src any) ([]T, error) {
	dst := []T{}
	if err := copier.Copy(&dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func FromDepartmentView(v *queries.DepartmentView) (*DepartmentResponse, error) {
	return copyView[DepartmentResponse](v)
}

func FromDepartmentViews(vs []*queries.DepartmentView) ([]DepartmentResponse, error) {
	return copyViews[DepartmentResponse](vs)
}

func FromDoctorView(v *queries.DoctorView) (*DoctorResponse, error) {
	return copyView[DoctorResponse](v)
}

func FromDoctorViews(vs []*queries.DoctorView) ([]DoctorResponse, error) {
	return copyViews[DoctorResponse](vs)
}

func FromPatientView(v *queries.PatientView) (*PatientResponse, error) {
	return copyView[PatientResponse](v)
}

func FromPatientViews(vs []*queries.PatientView) ([]PatientResponse, error) {
	return copyViews[PatientResponse](vs)
}
