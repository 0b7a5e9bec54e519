package calendar

import (
	"time"

	"clinic-scheduler/internal/domain/availability"
)

const (
	slotDateLayout   = "Monday, January 02, 2006"
	slotTimeLayout   = "03:04 PM"
	monthTitleLayout = "January 2006"
)

// FormatSlotDate renders e.g. "Monday, March 04, 2024".
func FormatSlotDate(s availability.Slot) string {
	return s.Start().Format(slotDateLayout)
}

// FormatSlotTime renders e.g. "09:00 AM - 09:30 AM".
func FormatSlotTime(s availability.Slot) string {
	return s.Start().Format(slotTimeLayout) + " - " + s.End().Format(slotTimeLayout)
}

func MonthTitle(m availability.Month) string {
	return m.FirstDay().Format(monthTitleLayout)
}

// WeekdayHeaders are the column titles of a Sunday-start grid.
func WeekdayHeaders() []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = time.Weekday(i).String()[:3]
	}
	return out
}
