package memstore

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/department"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type (
	userRecord struct {
		id           uuid.UUID
		email        string
		passwordHash string
		role         user.Role
		lastLogin    *time.Time
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	}
	departmentRecord struct {
		name        string
		description *string
	}
	doctorRecord struct {
		params doctor.Params
	}
	patientRecord struct {
		name      string
		phone     *string
		email     string
		userID    *uuid.UUID
		createdAt time.Time
	}
	appointmentRecord struct {
		doctorID  int64
		patientID int64
		slotID    *int64
		start     time.Time
		end       time.Time
		status    appointment.Status
		createdAt time.Time
	}
)

type slotRepo struct{ s *Store }

func (r slotRepo) Insert(_ context.Context, sl availability.Slot) (availability.Slot, error) {
	st := &r.s.state
	if _, dup := st.slotKeys[sl.Key()]; dup {
		return availability.Slot{}, errs.Wrapf(availability.ErrDuplicateSlot, "provider %d start %s", sl.ProviderID(), sl.Start().Format(time.RFC3339))
	}
	id := st.nextID()
	if _, taken := st.slots[id]; taken {
		return availability.Slot{}, errs.Wrapf(availability.ErrDuplicateSlot, "slot id %d", id)
	}
	saved := sl.WithID(id).In(r.s.loc)
	st.slots[id] = saved
	st.slotKeys[saved.Key()] = id
	return saved, nil
}

func (r slotRepo) DeleteUnbookedInMonth(_ context.Context, providerID int64, month string) (int64, error) {
	return r.deleteWhere(func(sl availability.Slot) bool {
		return sl.ProviderID() == providerID && sl.CalendarMonth() == month && !sl.IsBooked()
	}), nil
}

func (r slotRepo) ListInMonth(_ context.Context, providerID int64, month string) ([]availability.Slot, error) {
	return r.s.state.slotsWhere(func(sl availability.Slot) bool {
		return sl.ProviderID() == providerID && sl.CalendarMonth() == month
	}), nil
}

func (r slotRepo) FindByIDForUpdate(_ context.Context, id int64) (availability.Slot, error) {
	sl, ok := r.s.state.slots[id]
	if !ok {
		return availability.Slot{}, errs.Wrapf(availability.ErrSlotNotFound, "slot %d", id)
	}
	return sl, nil
}

func (r slotRepo) MarkBooked(_ context.Context, id int64) error {
	sl, ok := r.s.state.slots[id]
	if !ok {
		return errs.Wrapf(availability.ErrSlotNotFound, "slot %d", id)
	}
	booked, err := sl.Book()
	if err != nil {
		return err
	}
	r.s.state.slots[id] = booked
	return nil
}

func (r slotRepo) DeleteUnbookedEndedBefore(_ context.Context, t time.Time) (int64, error) {
	return r.deleteWhere(func(sl availability.Slot) bool {
		return !sl.IsBooked() && !sl.End().After(t)
	}), nil
}

func (r slotRepo) deleteWhere(match func(availability.Slot) bool) int64 {
	st := &r.s.state
	var n int64
	for id, sl := range st.slots {
		if match(sl) {
			delete(st.slots, id)
			delete(st.slotKeys, sl.Key())
			n++
		}
	}
	return n
}

type templateRepo struct{ s *Store }

func (r templateRepo) Upsert(_ context.Context, t availability.MonthTemplate) error {
	r.s.state.templates[templateKey{t.ProviderID, t.Month}] = t
	return nil
}

type appointmentRepo struct{ s *Store }

func (r appointmentRepo) Create(_ context.Context, a *appointment.Appointment) (int64, error) {
	st := &r.s.state
	if a.SlotID() != nil {
		for _, rec := range st.appointments {
			if rec.slotID != nil && *rec.slotID == *a.SlotID() {
				return 0, errs.Wrapf(availability.ErrSlotAlreadyBooked, "slot %d", *a.SlotID())
			}
		}
	}
	id := st.nextID()
	st.appointments[id] = appointmentRecord{
		doctorID:  a.DoctorID(),
		patientID: a.PatientID(),
		slotID:    a.SlotID(),
		start:     a.Start(),
		end:       a.End(),
		status:    a.Status(),
		createdAt: a.CreatedAt(),
	}
	return id, nil
}

func (r appointmentRepo) FindByIDForUpdate(_ context.Context, id int64) (*appointment.Appointment, error) {
	rec, ok := r.s.state.appointments[id]
	if !ok {
		return nil, errs.Wrapf(appointment.ErrNotFound, "appointment %d", id)
	}
	return appointment.Reconstruct(id, rec.doctorID, rec.patientID, rec.slotID, rec.start, rec.end, rec.status, rec.createdAt), nil
}

func (r appointmentRepo) UpdateStatus(_ context.Context, id int64, status appointment.Status) error {
	rec, ok := r.s.state.appointments[id]
	if !ok {
		return errs.Wrapf(appointment.ErrNotFound, "appointment %d", id)
	}
	rec.status = status
	r.s.state.appointments[id] = rec
	return nil
}

func (r appointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.state.appointments[id]; !ok {
		return errs.Wrapf(appointment.ErrNotFound, "appointment %d", id)
	}
	delete(r.s.state.appointments, id)
	return nil
}

func (r appointmentRepo) CompleteEndedBefore(_ context.Context, t time.Time) (int64, error) {
	var n int64
	for id, rec := range r.s.state.appointments {
		if rec.status == appointment.StatusBooked && !rec.end.After(t) {
			rec.status = appointment.StatusCompleted
			r.s.state.appointments[id] = rec
			n++
		}
	}
	return n, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, rec := range r.s.state.users {
		if rec.email == u.Email().Value() {
			return user.ErrEmailTaken
		}
	}
	r.s.state.users[u.ID()] = userRecord{
		id:           u.ID(),
		email:        u.Email().Value(),
		passwordHash: u.PasswordHash(),
		role:         u.Role(),
		lastLogin:    u.LastLogin(),
		isActive:     u.IsActive(),
		createdAt:    u.CreatedAt(),
		updatedAt:    u.UpdatedAt(),
	}
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	rec, ok := r.s.state.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	rec.lastLogin = &at
	rec.updatedAt = at
	r.s.state.users[id] = rec
	return nil
}

type departmentRepo struct{ s *Store }

func (r departmentRepo) Create(_ context.Context, d *department.Department) (int64, error) {
	if r.nameTaken(d.Name(), 0) {
		return 0, department.ErrNameTaken
	}
	id := r.s.state.nextID()
	r.s.state.departments[id] = departmentRecord{name: d.Name(), description: d.Description()}
	return id, nil
}

func (r departmentRepo) FindByID(_ context.Context, id int64) (*department.Department, error) {
	rec, ok := r.s.state.departments[id]
	if !ok {
		return nil, errs.Wrapf(department.ErrNotFound, "department %d", id)
	}
	return department.Reconstruct(id, rec.name, rec.description), nil
}

func (r departmentRepo) Update(_ context.Context, d *department.Department) error {
	if _, ok := r.s.state.departments[d.ID()]; !ok {
		return errs.Wrapf(department.ErrNotFound, "department %d", d.ID())
	}
	if r.nameTaken(d.Name(), d.ID()) {
		return department.ErrNameTaken
	}
	r.s.state.departments[d.ID()] = departmentRecord{name: d.Name(), description: d.Description()}
	return nil
}

func (r departmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.state.departments[id]; !ok {
		return errs.Wrapf(department.ErrNotFound, "department %d", id)
	}
	for _, d := range r.s.state.doctors {
		if d.params.DepartmentID != nil && *d.params.DepartmentID == id {
			return department.ErrStillReferenced
		}
	}
	delete(r.s.state.departments, id)
	return nil
}

func (r departmentRepo) nameTaken(name string, except int64) bool {
	for id, rec := range r.s.state.departments {
		if id != except && rec.name == name {
			return true
		}
	}
	return false
}

type doctorRepo struct{ s *Store }

func (r doctorRepo) Create(_ context.Context, d *doctor.Doctor) (int64, error) {
	p := paramsOf(d)
	if p.DepartmentID != nil {
		if _, ok := r.s.state.departments[*p.DepartmentID]; !ok {
			return 0, errs.Wrapf(department.ErrNotFound, "department %d", *p.DepartmentID)
		}
	}
	id := r.s.state.nextID()
	r.s.state.doctors[id] = doctorRecord{params: p}
	return id, nil
}

func (r doctorRepo) FindByID(_ context.Context, id int64) (*doctor.Doctor, error) {
	rec, ok := r.s.state.doctors[id]
	if !ok {
		return nil, errs.Wrapf(doctor.ErrNotFound, "doctor %d", id)
	}
	return doctor.Reconstruct(id, rec.params), nil
}

func (r doctorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*doctor.Doctor, error) {
	for id, rec := range r.s.state.doctors {
		if rec.params.UserID != nil && *rec.params.UserID == userID {
			return doctor.Reconstruct(id, rec.params), nil
		}
	}
	return nil, doctor.ErrNotFound
}

func (r doctorRepo) Update(_ context.Context, d *doctor.Doctor) error {
	if _, ok := r.s.state.doctors[d.ID()]; !ok {
		return errs.Wrapf(doctor.ErrNotFound, "doctor %d", d.ID())
	}
	r.s.state.doctors[d.ID()] = doctorRecord{params: paramsOf(d)}
	return nil
}

// Delete cascades to the doctor's slots, templates and appointments.
func (r doctorRepo) Delete(_ context.Context, id int64) error {
	st := &r.s.state
	if _, ok := st.doctors[id]; !ok {
		return errs.Wrapf(doctor.ErrNotFound, "doctor %d", id)
	}
	delete(st.doctors, id)
	slotRepo{r.s}.deleteWhere(func(sl availability.Slot) bool { return sl.ProviderID() == id })
	for k := range st.templates {
		if k.providerID == id {
			delete(st.templates, k)
		}
	}
	for aid, a := range st.appointments {
		if a.doctorID == id {
			delete(st.appointments, aid)
		}
	}
	return nil
}

func paramsOf(d *doctor.Doctor) doctor.Params {
	return doctor.Params{
		Name:           d.Name(),
		Specialization: d.Specialization(),
		ContactInfo:    d.ContactInfo(),
		DepartmentID:   d.DepartmentID(),
		UserID:         d.UserID(),
	}
}

type patientRepo struct{ s *Store }

func (r patientRepo) Create(_ context.Context, p *patient.Patient) (int64, error) {
	if r.emailTaken(p.Email().Value(), 0) {
		return 0, patient.ErrEmailTaken
	}
	id := r.s.state.nextID()
	r.s.state.patients[id] = patientRecord{
		name:      p.Name(),
		phone:     p.Phone(),
		email:     p.Email().Value(),
		userID:    p.UserID(),
		createdAt: p.CreatedAt(),
	}
	return id, nil
}

func (r patientRepo) FindByID(_ context.Context, id int64) (*patient.Patient, error) {
	rec, ok := r.s.state.patients[id]
	if !ok {
		return nil, errs.Wrapf(patient.ErrNotFound, "patient %d", id)
	}
	return rec.toDomain(id), nil
}

func (r patientRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*patient.Patient, error) {
	for id, rec := range r.s.state.patients {
		if rec.userID != nil && *rec.userID == userID {
			return rec.toDomain(id), nil
		}
	}
	return nil, patient.ErrNotFound
}

func (r patientRepo) Update(_ context.Context, p *patient.Patient) error {
	rec, ok := r.s.state.patients[p.ID()]
	if !ok {
		return errs.Wrapf(patient.ErrNotFound, "patient %d", p.ID())
	}
	if r.emailTaken(p.Email().Value(), p.ID()) {
		return patient.ErrEmailTaken
	}
	rec.name = p.Name()
	rec.phone = p.Phone()
	rec.email = p.Email().Value()
	r.s.state.patients[p.ID()] = rec
	return nil
}

func (r patientRepo) Delete(_ context.Context, id int64) error {
	st := &r.s.state
	if _, ok := st.patients[id]; !ok {
		return errs.Wrapf(patient.ErrNotFound, "patient %d", id)
	}
	delete(st.patients, id)
	for aid, a := range st.appointments {
		if a.patientID == id {
			delete(st.appointments, aid)
		}
	}
	return nil
}

func (r patientRepo) emailTaken(email string, except int64) bool {
	for id, rec := range r.s.state.patients {
		if id != except && rec.email == email {
			return true
		}
	}
	return false
}

func (rec patientRecord) toDomain(id int64) *patient.Patient {
	return patient.Reconstruct(id, rec.name, rec.phone, rec.email, rec.userID, rec.createdAt)
}
