package availability

import (
	"time"

	"clinic-scheduler/internal/pkg/errs"
)

// Slot is one bookable unit of provider time.
type Slot struct {
	id            int64
	providerID    int64
	start         time.Time
	end           time.Time
	priceCents    int
	isBooked      bool
	calendarMonth string
}

// NewSlot creates an unsaved, unbooked slot. The store assigns the id.
func NewSlot(providerID int64, start time.Time, duration time.Duration, priceCents int) Slot {
	return Slot{
		providerID:    providerID,
		start:         start,
		end:           start.Add(duration),
		priceCents:    priceCents,
		calendarMonth: MonthOf(start).Label(),
	}
}

func ReconstructSlot(id, providerID int64, start, end time.Time, priceCents int, isBooked bool, calendarMonth string) Slot {
	return Slot{
		id:            id,
		providerID:    providerID,
		start:         start,
		end:           end,
		priceCents:    priceCents,
		isBooked:      isBooked,
		calendarMonth: calendarMonth,
	}
}

func (s Slot) ID() int64             { return s.id }
func (s Slot) ProviderID() int64     { return s.providerID }
func (s Slot) Start() time.Time      { return s.start }
func (s Slot) End() time.Time        { return s.end }
func (s Slot) PriceCents() int       { return s.priceCents }
func (s Slot) IsBooked() bool        { return s.isBooked }
func (s Slot) CalendarMonth() string { return s.calendarMonth }

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

func (s Slot) Key() SlotKey {
	return KeyOf(s.providerID, s.start)
}

func (s Slot) WithID(id int64) Slot {
	s.id = id
	return s
}

// In returns the slot with its times expressed in loc.
func (s Slot) In(loc *time.Location) Slot {
	s.start = s.start.In(loc)
	s.end = s.end.In(loc)
	return s
}

// Book flips the booked flag. A slot is booked at most once.
func (s Slot) Book() (Slot, error) {
	if s.isBooked {
		return s, errs.Wrapf(ErrSlotAlreadyBooked, "slot %d", s.id)
	}
	s.isBooked = true
	return s, nil
}

// SlotKey is the dedup key: one slot per provider per start instant.
type SlotKey struct {
	ProviderID int64
	StartUnix  int64
}

func KeyOf(providerID int64, start time.Time) SlotKey {
	return SlotKey{ProviderID: providerID, StartUnix: start.Unix()}
}

func CompareByStart(a, b Slot) int {
	if c := a.start.Compare(b.start); c != 0 {
		return c
	}
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}
