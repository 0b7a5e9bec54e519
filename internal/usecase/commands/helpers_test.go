//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/infra/memstore"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/jwt"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e shared.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

func (p *recordingPublisher) Last() shared.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

// fixture wires every command onto one in-memory store.
type fixture struct {
	store     *memstore.Store
	clock     *clock.MockClock
	events    *recordingPublisher
	auth      commands.AuthCommands
	avail     commands.AvailabilityCommands
	booking   commands.BookingCommands
	appts     commands.AppointmentCommands
	directory commands.DirectoryCommands
	maint     commands.MaintenanceCommands
}

// 2024-03-01 is a Friday.
var fixtureNow = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New(time.UTC)
	clk := clock.NewMockClock(fixtureNow)
	pub := &recordingPublisher{}
	return &fixture{
		store:     store,
		clock:     clk,
		events:    pub,
		auth:      commands.NewAuthCommands(store, nil, jwt.NewService("test-secret", time.Hour), clk),
		avail:     commands.NewAvailabilityCommands(store, store, pub, clk, availability.NewHorizon(availability.DefaultHorizonMonths), availability.NewGenerator(5000)),
		booking:   commands.NewBookingCommands(store, pub, clk),
		appts:     commands.NewAppointmentCommands(store),
		directory: commands.NewDirectoryCommands(store, clk),
		maint:     commands.NewMaintenanceCommands(store, clk),
	}
}

func (f *fixture) createDoctor(t *testing.T, name string, userID *uuid.UUID) int64 {
	t.Helper()
	id, err := f.directory.CreateDoctor(context.Background(), commands.DoctorInput{
		Name:           name,
		Specialization: "General",
		UserID:         userID,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) createPatient(t *testing.T, email string) int64 {
	t.Helper()
	id, err := f.directory.CreatePatient(context.Background(), commands.PatientInput{
		Name:  "Patient " + email,
		Email: email,
	})
	require.NoError(t, err)
	return id
}

// registerPatient creates a PATIENT account with its profile.
func (f *fixture) registerPatient(t *testing.T, email string) shared.Principal {
	t.Helper()
	res, err := f.auth.Register(context.Background(), commands.RegisterInput{
		Email:    email,
		Password: "password123",
		Name:     "Patient " + email,
	})
	require.NoError(t, err)
	return shared.Principal{UserID: res.UserID, Role: user.RolePatient}
}

func (f *fixture) regenerate(t *testing.T, providerID int64, month availability.Month, tmpl availability.Template) *commands.RegenerateMonthResult {
	t.Helper()
	res, err := f.avail.RegenerateMonth(context.Background(), commands.RegenerateMonthInput{
		ProviderID: providerID,
		Month:      month,
		Template:   tmpl,
	})
	require.NoError(t, err)
	return res
}

func mustTemplate(t *testing.T, weekdays []int, start, end string, minutes int) availability.Template {
	t.Helper()
	tmpl, err := availability.NewTemplate(weekdays, start, end, minutes)
	require.NoError(t, err)
	return tmpl
}

func mustMonth(t *testing.T, year int, m time.Month) availability.Month {
	t.Helper()
	month, err := availability.NewMonth(year, m, time.UTC)
	require.NoError(t, err)
	return month
}

func staff(role user.Role) shared.Principal {
	return shared.Principal{UserID: uuid.New(), Role: role}
}
