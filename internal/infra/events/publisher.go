package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"clinic-scheduler/internal/usecase/shared"
)

// Publisher encodes events as JSON and hands them to the hub.
type Publisher struct {
	hub    *Hub
	logger *slog.Logger
}

func NewPublisher(hub *Hub, logger *slog.Logger) *Publisher {
	return &Publisher{hub: hub, logger: logger}
}

func (p *Publisher) Publish(_ context.Context, e shared.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("failed to encode event", "type", e.Type, "error", err.Error())
		return
	}
	p.hub.Broadcast(data)
}
