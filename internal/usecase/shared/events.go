package shared

import (
	"context"
	"time"
)

const (
	EventSlotsRegenerated = "slots.regenerated"
	EventSlotBooked       = "slot.booked"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// EventPublisher fans events out to live subscribers. Publishing never
// fails the caller; a slow or missing subscriber only loses events.
type EventPublisher interface {
	Publish(ctx context.Context, e Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

type SlotsRegeneratedPayload struct {
	ProviderID      int64  `json:"provider_id"`
	Month           string `json:"month"`
	Created         int    `json:"created"`
	PreservedBooked int    `json:"preserved_booked"`
}

type SlotBookedPayload struct {
	SlotID        int64  `json:"slot_id"`
	ProviderID    int64  `json:"provider_id"`
	AppointmentID int64  `json:"appointment_id"`
	Month         string `json:"month"`
}
