package availability

import (
	"fmt"
	"slices"
	"time"
)

const (
	DefaultStartTime   = "09:00"
	DefaultEndTime     = "17:00"
	DefaultSlotMinutes = 30
)

// Template is the weekly rule a provider month is generated from.
// It is immutable; regenerating a month records a new value.
type Template struct {
	weekdays    []Weekday
	start       TimeOfDay
	end         TimeOfDay
	slotMinutes int
}

func NewTemplate(weekdays []int, startTime, endTime string, slotMinutes int) (Template, error) {
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return Template{}, invalid("start_time", "must be a time of day in HH:MM format")
	}
	end, err := ParseTimeOfDay(endTime)
	if err != nil {
		return Template{}, invalid("end_time", "must be a time of day in HH:MM format")
	}
	return NewTemplateFromParts(weekdays, start, end, slotMinutes)
}

func NewTemplateFromParts(weekdays []int, start, end TimeOfDay, slotMinutes int) (Template, error) {
	if len(weekdays) == 0 {
		return Template{}, invalid("weekdays", "must contain at least one day")
	}
	days := make([]Weekday, 0, len(weekdays))
	for _, v := range weekdays {
		w := Weekday(v)
		if !w.Valid() {
			return Template{}, invalid("weekdays", fmt.Sprintf("contains %d, expected 0 (Monday) to 6 (Sunday)", v))
		}
		if !slices.Contains(days, w) {
			days = append(days, w)
		}
	}
	slices.Sort(days)

	if !start.Before(end) {
		return Template{}, invalid("end_time", "must be after start_time")
	}
	if slotMinutes <= 0 {
		return Template{}, invalid("slot_duration", "must be a positive number of minutes")
	}
	if window := end.Minutes() - start.Minutes(); slotMinutes > window {
		return Template{}, invalid("slot_duration", fmt.Sprintf("must not exceed the %d minute window between start_time and end_time", window))
	}

	return Template{
		weekdays:    days,
		start:       start,
		end:         end,
		slotMinutes: slotMinutes,
	}, nil
}

// DefaultTemplate is Monday to Friday, 09:00-17:00, 30 minute slots.
func DefaultTemplate() Template {
	t, err := NewTemplate([]int{0, 1, 2, 3, 4}, DefaultStartTime, DefaultEndTime, DefaultSlotMinutes)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template) Weekdays() []Weekday {
	return slices.Clone(t.weekdays)
}

func (t Template) WeekdayNumbers() []int {
	out := make([]int, len(t.weekdays))
	for i, w := range t.weekdays {
		out[i] = int(w)
	}
	return out
}

func (t Template) Includes(w Weekday) bool {
	return slices.Contains(t.weekdays, w)
}

func (t Template) StartTime() TimeOfDay { return t.start }
func (t Template) EndTime() TimeOfDay   { return t.end }
func (t Template) SlotMinutes() int     { return t.slotMinutes }

func (t Template) SlotDuration() time.Duration {
	return time.Duration(t.slotMinutes) * time.Minute
}

func (t Template) IsZero() bool {
	return len(t.weekdays) == 0 && t.slotMinutes == 0
}

func (t Template) Equal(o Template) bool {
	return slices.Equal(t.weekdays, o.weekdays) &&
		t.start == o.start &&
		t.end == o.end &&
		t.slotMinutes == o.slotMinutes
}

// MonthTemplate is a template recorded for one provider month.
type MonthTemplate struct {
	ProviderID int64
	Month      string
	Template   Template
	UpdatedAt  time.Time
}
