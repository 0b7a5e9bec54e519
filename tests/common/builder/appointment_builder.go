//go:build unit || e2e

package builder

import (
	"time"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/usecase/queries"
)

type AppointmentBuilder struct {
	ID        int64
	DoctorID  int64
	PatientID int64
	SlotID    *int64
	Start     time.Time
	Duration  time.Duration
	Status    appointment.Status
}

func NewAppointmentBuilder() *AppointmentBuilder {
	slotID := int64(1)
	return &AppointmentBuilder{
		ID:        1,
		DoctorID:  1,
		PatientID: 1,
		SlotID:    &slotID,
		Start:     time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		Duration:  30 * time.Minute,
		Status:    appointment.StatusBooked,
	}
}

func (b *AppointmentBuilder) WithID(id int64) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) WithStart(t time.Time) *AppointmentBuilder {
	b.Start = t
	return b
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:          b.ID,
		DoctorID:    b.DoctorID,
		DoctorName:  "Dr. House",
		PatientID:   b.PatientID,
		PatientName: "Jane Roe",
		SlotID:      b.SlotID,
		Start:       b.Start,
		End:         b.Start.Add(b.Duration),
		Status:      b.Status.String(),
		CreatedAt:   b.Start.Add(-24 * time.Hour),
	}
}
