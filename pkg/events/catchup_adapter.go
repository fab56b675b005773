package events

import (
	"context"
	"encoding/json"

	"github.com/autoanalyst/analyst/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup mechanism.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(events))
	for _, evt := range events {
		var payload map[string]any
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			// Skip unparseable rows rather than failing the whole replay
			continue
		}
		result = append(result, CatchupEvent{
			ID:      evt.ID,
			Payload: payload,
		})
	}
	return result, nil
}
