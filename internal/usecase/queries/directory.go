package queries

import (
	"context"

	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type DirectoryReadStore interface {
	ListDepartments(ctx context.Context) ([]*DepartmentView, error)
	DepartmentByID(ctx context.Context, id int64) (*DepartmentView, error)
	ListDoctors(ctx context.Context, departmentID *int64) ([]*DoctorView, error)
	DoctorByID(ctx context.Context, id int64) (*DoctorView, error)
	DoctorByUserID(ctx context.Context, userID uuid.UUID) (*DoctorView, error)
	ListPatients(ctx context.Context) ([]*PatientView, error)
	PatientByID(ctx context.Context, id int64) (*PatientView, error)
	PatientByUserID(ctx context.Context, userID uuid.UUID) (*PatientView, error)
}

type DirectoryQueries interface {
	ListDepartments(ctx context.Context) ([]*DepartmentView, error)
	GetDepartment(ctx context.Context, id int64) (*DepartmentView, error)
	ListDoctors(ctx context.Context, departmentID *int64) ([]*DoctorView, error)
	GetDoctor(ctx context.Context, id int64) (*DoctorView, error)
	ListPatients(ctx context.Context) ([]*PatientView, error)
	GetPatient(ctx context.Context, principal shared.Principal, id int64) (*PatientView, error)
	MyPatientProfile(ctx context.Context, principal shared.Principal) (*PatientView, error)
}

type directoryQueriesImpl struct {
	store DirectoryReadStore
}

func NewDirectoryQueries(store DirectoryReadStore) DirectoryQueries {
	return &directoryQueriesImpl{store: store}
}

func (q *directoryQueriesImpl) ListDepartments(ctx context.Context) ([]*DepartmentView, error) {
	return q.store.ListDepartments(ctx)
}

func (q *directoryQueriesImpl) GetDepartment(ctx context.Context, id int64) (*DepartmentView, error) {
	return q.store.DepartmentByID(ctx, id)
}

func (q *directoryQueriesImpl) ListDoctors(ctx context.Context, departmentID *int64) ([]*DoctorView, error) {
	return q.store.ListDoctors(ctx, departmentID)
}

func (q *directoryQueriesImpl) GetDoctor(ctx context.Context, id int64) (*DoctorView, error) {
	return q.store.DoctorByID(ctx, id)
}

func (q *directoryQueriesImpl) ListPatients(ctx context.Context) ([]*PatientView, error) {
	return q.store.ListPatients(ctx)
}

// GetPatient is open to staff and to the patient the profile belongs to.
func (q *directoryQueriesImpl) GetPatient(ctx context.Context, principal shared.Principal, id int64) (*PatientView, error) {
	p, err := q.store.PatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.IsStaff() {
		return p, nil
	}
	if p.UserID == nil || *p.UserID != principal.UserID {
		return nil, patient.ErrAccessDenied
	}
	return p, nil
}

func (q *directoryQueriesImpl) MyPatientProfile(ctx context.Context, principal shared.Principal) (*PatientView, error) {
	p, err := q.store.PatientByUserID(ctx, principal.UserID)
	if err != nil {
		if errs.Is(err, patient.ErrNotFound) {
			return nil, patient.ErrNoProfile
		}
		return nil, err
	}
	return p, nil
}
