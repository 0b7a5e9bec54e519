package queries

import (
	"context"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
)

type AppointmentFilter struct {
	PatientID *int64
	DoctorID  *int64
	Status    *appointment.Status
}

type AppointmentReadStore interface {
	// List returns at most limit rows ordered by (start, id), strictly
	// after the position when one is given.
	List(ctx context.Context, filter AppointmentFilter, after *CursorPosition, limit int32) ([]*AppointmentView, error)
	ByID(ctx context.Context, id int64) (*AppointmentView, error)
}

type AppointmentQueries interface {
	List(ctx context.Context, principal shared.Principal, status *appointment.Status, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
	Get(ctx context.Context, principal shared.Principal, id int64) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store     AppointmentReadStore
	directory DirectoryReadStore
}

func NewAppointmentQueries(store AppointmentReadStore, directory DirectoryReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store, directory: directory}
}

// List scopes rows by role: patients see their bookings, doctors their
// schedule and admins everything. A caller without the matching profile
// gets an empty list.
func (q *appointmentQueriesImpl) List(ctx context.Context, principal shared.Principal, status *appointment.Status, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	after, err := decodePosition(cursor)
	if err != nil {
		return nil, nil, err
	}

	filter, ok, err := q.scope(ctx, principal)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return []*AppointmentView{}, nil, nil
	}
	filter.Status = status

	limit = ValidateLimit(limit)
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.Start, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *appointmentQueriesImpl) Get(ctx context.Context, principal shared.Principal, id int64) (*AppointmentView, error) {
	view, err := q.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	filter, ok, err := q.scope(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !ok ||
		(filter.PatientID != nil && *filter.PatientID != view.PatientID) ||
		(filter.DoctorID != nil && *filter.DoctorID != view.DoctorID) {
		return nil, appointment.ErrAccessDenied
	}
	return view, nil
}

func (q *appointmentQueriesImpl) scope(ctx context.Context, principal shared.Principal) (AppointmentFilter, bool, error) {
	switch principal.Role {
	case user.RoleAdmin:
		return AppointmentFilter{}, true, nil
	case user.RoleDoctor:
		d, err := q.directory.DoctorByUserID(ctx, principal.UserID)
		if err != nil {
			if errs.Is(err, doctor.ErrNotFound) {
				return AppointmentFilter{}, false, nil
			}
			return AppointmentFilter{}, false, err
		}
		return AppointmentFilter{DoctorID: &d.ID}, true, nil
	case user.RolePatient:
		p, err := q.directory.PatientByUserID(ctx, principal.UserID)
		if err != nil {
			if errs.Is(err, patient.ErrNotFound) {
				return AppointmentFilter{}, false, nil
			}
			return AppointmentFilter{}, false, err
		}
		return AppointmentFilter{PatientID: &p.ID}, true, nil
	default:
		return AppointmentFilter{}, false, nil
	}
}
