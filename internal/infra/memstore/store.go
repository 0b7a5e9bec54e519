// Package memstore keeps the whole scheduling state in process memory. It
// backs unit tests and embedded use; every unit of work runs under one
// mutex and is rolled back by restoring a snapshot.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type templateKey struct {
	providerID int64
	month      string
}

type state struct {
	slots        map[int64]availability.Slot
	slotKeys     map[availability.SlotKey]int64
	templates    map[templateKey]availability.MonthTemplate
	users        map[uuid.UUID]userRecord
	departments  map[int64]departmentRecord
	doctors      map[int64]doctorRecord
	patients     map[int64]patientRecord
	appointments map[int64]appointmentRecord
	lastID       int64
}

func newState() state {
	return state{
		slots:        make(map[int64]availability.Slot),
		slotKeys:     make(map[availability.SlotKey]int64),
		templates:    make(map[templateKey]availability.MonthTemplate),
		users:        make(map[uuid.UUID]userRecord),
		departments:  make(map[int64]departmentRecord),
		doctors:      make(map[int64]doctorRecord),
		patients:     make(map[int64]patientRecord),
		appointments: make(map[int64]appointmentRecord),
	}
}

// clone copies every map; records are values so the copy is independent.
func (s state) clone() state {
	return state{
		slots:        maps.Clone(s.slots),
		slotKeys:     maps.Clone(s.slotKeys),
		templates:    maps.Clone(s.templates),
		users:        maps.Clone(s.users),
		departments:  maps.Clone(s.departments),
		doctors:      maps.Clone(s.doctors),
		patients:     maps.Clone(s.patients),
		appointments: maps.Clone(s.appointments),
		lastID:       s.lastID,
	}
}

func (s *state) nextID() int64 {
	s.lastID++
	return s.lastID
}

type Store struct {
	mu    sync.Mutex
	loc   *time.Location
	state state
}

func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{loc: loc, state: newState()}
}

// Within runs fn with exclusive access to the store. A returned error or a
// panic restores the state fn started from.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
		if err != nil {
			s.state = snapshot
		}
	}()

	return fn(ctx, &memTx{store: s})
}

func (s *Store) DoctorExists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.doctors[id]
	return ok, nil
}

func (s *Store) SlotsInMonth(ctx context.Context, providerID int64, month string) ([]availability.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.slotsWhere(func(sl availability.Slot) bool {
		return sl.ProviderID() == providerID && sl.CalendarMonth() == month
	}), nil
}

func (s *Store) SlotsStartingIn(ctx context.Context, providerID int64, from, to time.Time) ([]availability.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.slotsWhere(func(sl availability.Slot) bool {
		return sl.ProviderID() == providerID && !sl.Start().Before(from) && sl.Start().Before(to)
	}), nil
}

func (s *Store) SlotByID(ctx context.Context, id int64) (availability.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.state.slots[id]
	if !ok {
		return availability.Slot{}, errs.Wrapf(availability.ErrSlotNotFound, "slot %d", id)
	}
	return sl, nil
}

func (s *Store) TemplateFor(ctx context.Context, providerID int64, month string) (availability.MonthTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.templates[templateKey{providerID, month}]
	if !ok {
		return availability.MonthTemplate{}, errs.Wrapf(availability.ErrTemplateNotFound, "provider %d month %s", providerID, month)
	}
	return t, nil
}

func (s state) slotsWhere(keep func(availability.Slot) bool) []availability.Slot {
	out := make([]availability.Slot, 0)
	for _, sl := range s.slots {
		if keep(sl) {
			out = append(out, sl)
		}
	}
	slices.SortFunc(out, availability.CompareByStart)
	return out
}

type memTx struct {
	store *Store
}

// LockProviderMonth is a no-op: Within already holds the store mutex.
func (t *memTx) LockProviderMonth(context.Context, int64, string) error { return nil }

func (t *memTx) Slots() shared.SlotRepository               { return slotRepo{t.store} }
func (t *memTx) Templates() shared.TemplateRepository       { return templateRepo{t.store} }
func (t *memTx) Appointments() shared.AppointmentRepository { return appointmentRepo{t.store} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t.store} }
func (t *memTx) Departments() shared.DepartmentRepository   { return departmentRepo{t.store} }
func (t *memTx) Doctors() shared.DoctorRepository           { return doctorRepo{t.store} }
func (t *memTx) Patients() shared.PatientRepository         { return patientRepo{t.store} }
