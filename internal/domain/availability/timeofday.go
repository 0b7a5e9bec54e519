package availability

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" with zero seconds.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Second() != 0 {
			return TimeOfDay{}, fmt.Errorf("time of day %q has seconds", s)
		}
		return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
	}
	return TimeOfDay{}, fmt.Errorf("time of day %q is not HH:MM", s)
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("minute of day %d out of range", m)
	}
	return TimeOfDay{minutes: m}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }
func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.minutes < o.minutes
}

// On combines the calendar date of day with t in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
