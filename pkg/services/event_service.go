package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/event"
)

// EventService reads the persisted event stream. Writes happen in
// pkg/events via raw SQL so the INSERT and pg_notify share a transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns up to limit events on a channel with ID greater
// than sinceID, in ID order. Used by the catchup mechanism when a client
// reconnects to a running report's progress stream.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for channel %s: %w", channel, err)
	}
	return events, nil
}

// DeleteEventsBefore removes events older than the cutoff. Called by the
// retention sweeper; progress events are only useful while a client might
// still reconnect.
func (s *EventService) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
