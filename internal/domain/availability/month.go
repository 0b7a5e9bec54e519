package availability

import (
	"fmt"
	"iter"
	"time"
)

const monthLayout = "2006-01"

// Month identifies a calendar month in one location.
type Month struct {
	year  int
	month time.Month
	loc   *time.Location
}

func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month(), loc: t.Location()}
}

func NewMonth(year int, month time.Month, loc *time.Location) (Month, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return Month{}, ErrInvalidMonth
	}
	if loc == nil {
		loc = time.Local
	}
	return Month{year: year, month: month, loc: loc}, nil
}

// ParseMonth parses a YYYY-MM label.
func ParseMonth(label string, loc *time.Location) (Month, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(monthLayout, label, loc)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, label)
	}
	return MonthOf(t), nil
}

func (m Month) Year() int                { return m.year }
func (m Month) Month() time.Month        { return m.month }
func (m Month) Location() *time.Location { return m.location() }

func (m Month) IsZero() bool {
	return m.year == 0
}

func (m Month) Label() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

func (m Month) String() string {
	return m.Label()
}

// FirstDay is midnight on the 1st.
func (m Month) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, m.location())
}

// End is midnight on the 1st of the following month.
func (m Month) End() time.Time {
	return m.FirstDay().AddDate(0, 1, 0)
}

func (m Month) AddMonths(n int) Month {
	return MonthOf(m.FirstDay().AddDate(0, n, 0))
}

func (m Month) Contains(t time.Time) bool {
	t = t.In(m.location())
	return t.Year() == m.year && t.Month() == m.month
}

func (m Month) Compare(o Month) int {
	a, b := m.index(), o.index()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }
func (m Month) After(o Month) bool  { return m.Compare(o) > 0 }

// Days yields midnight of every date in the month, in order.
func (m Month) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := m.FirstDay(); d.Month() == m.month; d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (m Month) index() int {
	return m.year*12 + int(m.month) - 1
}

func (m Month) location() *time.Location {
	if m.loc == nil {
		return time.Local
	}
	return m.loc
}
