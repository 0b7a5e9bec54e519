package queries

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type DepartmentView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type DoctorView struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Specialization string     `json:"specialization"`
	ContactInfo    *string    `json:"contact_info,omitempty"`
	DepartmentID   *int64     `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
}

type PatientView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	Email     string     `json:"email"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AppointmentView struct {
	ID          int64     `json:"id"`
	DoctorID    int64     `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	PatientID   int64     `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	SlotID      *int64    `json:"slot_id,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalPatients         int64 `json:"total_patients"`
	TotalDoctors          int64 `json:"total_doctors"`
	TotalAppointments     int64 `json:"total_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	CancelledAppointments int64 `json:"cancelled_appointments"`
}
