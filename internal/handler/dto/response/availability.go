package response

import (
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/calendar"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"
)

type SlotResponse struct {
	ID            int64     `json:"id"`
	ProviderID    int64     `json:"provider_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	PriceCents    int       `json:"price_cents"`
	IsBooked      bool      `json:"is_booked"`
	CalendarMonth string    `json:"calendar_month"`
}

func FromSlot(s availability.Slot) SlotResponse {
	return SlotResponse{
		ID:            s.ID(),
		ProviderID:    s.ProviderID(),
		StartDatetime: s.Start(),
		EndDatetime:   s.End(),
		PriceCents:    s.PriceCents(),
		IsBooked:      s.IsBooked(),
		CalendarMonth: s.CalendarMonth(),
	}
}

func FromSlots(slots []availability.Slot) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = FromSlot(s)
	}
	return res
}

type RegenerateResponse struct {
	ProviderID      int64          `json:"provider_id"`
	Month           string         `json:"month"`
	Created         int            `json:"created"`
	PreservedBooked int            `json:"preserved_booked"`
	Slots           []SlotResponse `json:"slots"`
}

func FromRegenerateResult(r *commands.RegenerateMonthResult) *RegenerateResponse {
	return &RegenerateResponse{
		ProviderID:      r.ProviderID,
		Month:           r.Month,
		Created:         r.Created,
		PreservedBooked: r.PreservedBooked,
		Slots:           FromSlots(r.Slots),
	}
}

type GridDayResponse struct {
	Date           string         `json:"date"`
	DateNum        string         `json:"date_num"`
	IsCurrentMonth bool           `json:"is_current_month"`
	Slots          []SlotResponse `json:"slots"`
}

type MonthGridResponse struct {
	ProviderID     int64             `json:"provider_id"`
	Month          string            `json:"month"`
	Title          string            `json:"title"`
	PrevMonth      string            `json:"prev_month"`
	NextMonth      string            `json:"next_month"`
	WeekdayHeaders []string          `json:"weekday_headers"`
	Days           []GridDayResponse `json:"days"`
}

func FromMonthGrid(g *queries.MonthGrid) *MonthGridResponse {
	days := make([]GridDayResponse, len(g.Days))
	for i, d := range g.Days {
		days[i] = GridDayResponse{
			Date:           d.DateLabel(),
			DateNum:        d.DateNum(),
			IsCurrentMonth: d.IsCurrentMonth,
			Slots:          FromSlots(d.Slots),
		}
	}
	return &MonthGridResponse{
		ProviderID:     g.ProviderID,
		Month:          g.Month.Label(),
		Title:          calendar.MonthTitle(g.Month),
		PrevMonth:      g.Prev.Label(),
		NextMonth:      g.Next.Label(),
		WeekdayHeaders: calendar.WeekdayHeaders(),
		Days:           days,
	}
}

type TemplateResponse struct {
	ProviderID   *int64     `json:"provider_id,omitempty"`
	Month        string     `json:"month,omitempty"`
	Weekdays     []int      `json:"weekdays"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	SlotDuration int        `json:"slot_duration"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func FromTemplate(t availability.Template) *TemplateResponse {
	return &TemplateResponse{
		Weekdays:     t.WeekdayNumbers(),
		StartTime:    t.StartTime().String(),
		EndTime:      t.EndTime().String(),
		SlotDuration: t.SlotMinutes(),
	}
}

func FromMonthTemplate(mt *availability.MonthTemplate) *TemplateResponse {
	res := FromTemplate(mt.Template)
	providerID := mt.ProviderID
	updatedAt := mt.UpdatedAt
	res.ProviderID = &providerID
	res.Month = mt.Month
	res.UpdatedAt = &updatedAt
	return res
}

type SelectionResponse struct {
	Selected bool          `json:"selected"`
	Slot     *SlotResponse `json:"slot,omitempty"`
	DateText string        `json:"date_text,omitempty"`
	TimeText string        `json:"time_text,omitempty"`
	CanBook  bool          `json:"can_book"`
}

func FromSelection(sel calendar.Selection) *SelectionResponse {
	res := &SelectionResponse{
		Selected: sel.HasSelection(),
		DateText: sel.DateText(),
		TimeText: sel.TimeText(),
		CanBook:  sel.CanBook(),
	}
	if slot, ok := sel.Current(); ok {
		s := FromSlot(slot)
		res.Slot = &s
	}
	return res
}

type BookingResponse struct {
	AppointmentID int64        `json:"appointment_id"`
	PatientID     int64        `json:"patient_id"`
	Slot          SlotResponse `json:"slot"`
}

func FromBookSlotResult(r *commands.BookSlotResult) *BookingResponse {
	return &BookingResponse{
		AppointmentID: r.AppointmentID,
		PatientID:     r.PatientID,
		Slot:          FromSlot(r.Slot),
	}
}
