package calendar

import "clinic-scheduler/internal/domain/availability"

// Selection is the slot a principal is about to book. The zero value is
// the no-selection state. Selecting never changes the slot itself.
type Selection struct {
	slot     availability.Slot
	selected bool
}

func (s Selection) Select(slot availability.Slot) Selection {
	return Selection{slot: slot, selected: true}
}

func (s Selection) Clear() Selection {
	return Selection{}
}

func (s Selection) HasSelection() bool {
	return s.selected
}

// Current returns the selected slot and whether there is one.
func (s Selection) Current() (availability.Slot, bool) {
	return s.slot, s.selected
}

// CanBook reports whether the book action should be enabled.
func (s Selection) CanBook() bool {
	return s.selected && !s.slot.IsBooked()
}

func (s Selection) DateText() string {
	if !s.selected {
		return ""
	}
	return FormatSlotDate(s.slot)
}

func (s Selection) TimeText() string {
	if !s.selected {
		return ""
	}
	return FormatSlotTime(s.slot)
}
