//go:build unit || e2e

package builder

import (
	"time"

	"clinic-scheduler/internal/domain/availability"
	reqdto "clinic-scheduler/internal/handler/dto/request"
)

type TemplateBuilder struct {
	Weekdays     []int
	StartTime    string
	EndTime      string
	SlotDuration int
}

// NewTemplateBuilder starts from Monday to Friday, 09:00-17:00 in 30 minute slots.
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		Weekdays:     []int{0, 1, 2, 3, 4},
		StartTime:    "09:00",
		EndTime:      "17:00",
		SlotDuration: 30,
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) WithWeekdays(days ...int) *TemplateBuilder {
	b.Weekdays = days
	return b
}

func (b *TemplateBuilder) WithHours(start, end string) *TemplateBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *TemplateBuilder) WithSlotDuration(minutes int) *TemplateBuilder {
	b.SlotDuration = minutes
	return b
}

func (b *TemplateBuilder) BuildRequestDTO() reqdto.TemplateRequest {
	return reqdto.TemplateRequest{
		Weekdays:     b.Weekdays,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		SlotDuration: b.SlotDuration,
	}
}

// BuildDomain panics on an invalid template; use the DTO for negative cases.
func (b *TemplateBuilder) BuildDomain() availability.Template {
	t, err := availability.NewTemplate(b.Weekdays, b.StartTime, b.EndTime, b.SlotDuration)
	if err != nil {
		panic(err)
	}
	return t
}

type SlotBuilder struct {
	ID         int64
	ProviderID int64
	Start      time.Time
	Duration   time.Duration
	PriceCents int
	IsBooked   bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:         1,
		ProviderID: 1,
		Start:      time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		Duration:   30 * time.Minute,
		PriceCents: 5000,
	}
}

func (b *SlotBuilder) WithID(id int64) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithProvider(id int64) *SlotBuilder {
	b.ProviderID = id
	return b
}

func (b *SlotBuilder) WithStart(t time.Time) *SlotBuilder {
	b.Start = t
	return b
}

func (b *SlotBuilder) AsBooked() *SlotBuilder {
	b.IsBooked = true
	return b
}

func (b *SlotBuilder) Build() availability.Slot {
	return availability.ReconstructSlot(
		b.ID,
		b.ProviderID,
		b.Start,
		b.Start.Add(b.Duration),
		b.PriceCents,
		b.IsBooked,
		availability.MonthOf(b.Start).Label(),
	)
}

// BuildNew is the slot before it has been stored.
func (b *SlotBuilder) BuildNew() availability.Slot {
	return availability.NewSlot(b.ProviderID, b.Start, b.Duration, b.PriceCents)
}
