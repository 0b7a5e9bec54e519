package calendar

import (
	"slices"
	"time"

	"clinic-scheduler/internal/domain/availability"
)

// GridDays is six rendered weeks.
const GridDays = 42

const dateLayout = "2006-01-02"

// Day is one cell of the month grid.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	Slots          []availability.Slot
}

func (d Day) DateLabel() string {
	return d.Date.Format(dateLayout)
}

// DateNum is the two digit day of month.
func (d Day) DateNum() string {
	return d.Date.Format("02")
}

// GridStart returns the Sunday on or before the first day of m.
func GridStart(m availability.Month) time.Time {
	first := m.FirstDay()
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// GridRange is the half-open interval of instants the grid covers.
func GridRange(m availability.Month) (from, to time.Time) {
	from = GridStart(m)
	return from, from.AddDate(0, 0, GridDays)
}

// BuildGrid lays slots of providerID out over the 42 days starting at
// GridStart(m). Slots of other providers or outside the grid are ignored.
func BuildGrid(m availability.Month, providerID int64, slots []availability.Slot) []Day {
	loc := m.Location()
	start := GridStart(m)

	days := make([]Day, GridDays)
	index := make(map[string]int, GridDays)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = Day{
			Date:           date,
			IsCurrentMonth: m.Contains(date),
			Slots:          []availability.Slot{},
		}
		index[date.Format(dateLayout)] = i
	}

	for _, s := range slots {
		if s.ProviderID() != providerID {
			continue
		}
		local := s.In(loc)
		i, ok := index[local.Start().Format(dateLayout)]
		if !ok {
			continue
		}
		days[i].Slots = append(days[i].Slots, local)
	}
	for i := range days {
		slices.SortFunc(days[i].Slots, availability.CompareByStart)
	}
	return days
}
