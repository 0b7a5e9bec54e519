package availability

import (
	"iter"
	"time"
)

// Generator expands templates into candidate slots. It has no side effects.
type Generator struct {
	priceCents int
}

func NewGenerator(priceCents int) Generator {
	return Generator{priceCents: priceCents}
}

func (g Generator) PriceCents() int {
	return g.priceCents
}

// Day yields the slots of tmpl on the calendar date of day, in start order.
// A slot is yielded only when it ends at or before the template end time.
func (g Generator) Day(day time.Time, tmpl Template, providerID int64) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		dur := tmpl.SlotDuration()
		if dur <= 0 {
			return
		}
		end := tmpl.EndTime().On(day)
		for cursor := tmpl.StartTime().On(day); !cursor.Add(dur).After(end); cursor = cursor.Add(dur) {
			if !yield(NewSlot(providerID, cursor, dur, g.priceCents)) {
				return
			}
		}
	}
}

// Month yields the slots of every date in m whose weekday the template includes.
func (g Generator) Month(m Month, tmpl Template, providerID int64) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for day := range m.Days() {
			if !tmpl.Includes(WeekdayOf(day)) {
				continue
			}
			for s := range g.Day(day, tmpl, providerID) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
