package availability

import (
	"time"

	"clinic-scheduler/internal/pkg/errs"
)

const DefaultHorizonMonths = 6

// Horizon caps how far ahead months may be generated. The month that is
// exactly Months after the current month is still allowed.
type Horizon struct {
	months int
}

func NewHorizon(months int) Horizon {
	if months < 0 {
		months = 0
	}
	return Horizon{months: months}
}

func (h Horizon) Months() int {
	return h.months
}

// LastMonth is the latest month that may be generated at now.
func (h Horizon) LastMonth(now time.Time) Month {
	return MonthOf(now).AddMonths(h.months)
}

func (h Horizon) Check(target Month, now time.Time) error {
	last := h.LastMonth(now.In(target.Location()))
	if target.After(last) {
		return errs.Wrapf(ErrHorizonExceeded, "%s is after %s", target.Label(), last.Label())
	}
	return nil
}
