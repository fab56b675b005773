package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// replay. If more events were missed, the subscriber is told to fetch the
// report state over REST instead of paginating catchup requests.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when
// subscribing to a new PG channel. Without this, a stalled connection
// would block the subscribing request handler indefinitely.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls further behind than this drops events (and will recover via
// catchup on reconnect).
const subscriberBuffer = 64

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries events for catchup. Implemented by
// EventServiceAdapter over services.EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Broker fans NOTIFY payloads out to in-process subscribers. Each Go
// process (pod) has one Broker instance; the NDJSON streaming handlers
// subscribe here when a client attaches to a running report.
type Broker struct {
	// Channel subscriptions: channel → subscriber_id → delivery channel
	subs  map[string]map[string]chan []byte
	subMu sync.RWMutex

	// CatchupQuerier for catchup queries
	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// Subscription is one live attachment to a channel. Events arrives on
// Events in publish order; Close detaches and stops LISTEN if this was
// the channel's last subscriber.
type Subscription struct {
	ID      string
	Channel string
	Events  <-chan []byte

	broker *Broker
	once   sync.Once
}

// Close detaches the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.unsubscribe(s.Channel, s.ID)
	})
}

// NewBroker creates a new Broker.
func NewBroker(catchupQuerier CatchupQuerier) *Broker {
	return &Broker{
		subs:           make(map[string]map[string]chan []byte),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Broker and NotifyListener exist.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe attaches to a channel, starting LISTEN if this is the first
// subscriber. LISTEN completes before Subscribe returns, so a Catchup
// call issued afterwards cannot miss events published in between.
func (b *Broker) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	id := uuid.New().String()
	ch := make(chan []byte, subscriberBuffer)

	b.subMu.Lock()
	needsListen := false
	if _, exists := b.subs[channel]; !exists {
		b.subs[channel] = make(map[string]chan []byte)
		needsListen = true
	}
	b.subs[channel][id] = ch
	b.subMu.Unlock()

	if needsListen {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				b.unsubscribe(channel, id)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	return &Subscription{ID: id, Channel: channel, Events: ch, broker: b}, nil
}

// Broadcast delivers an event payload to all local subscribers of the
// given channel. Delivery is non-blocking: a full subscriber buffer
// drops the event rather than stalling the NOTIFY receive loop.
func (b *Broker) Broadcast(channel string, event []byte) {
	b.subMu.RLock()
	chans := make([]chan []byte, 0, len(b.subs[channel]))
	for _, ch := range b.subs[channel] {
		chans = append(chans, ch)
	}
	b.subMu.RUnlock()

	for _, ch := range chans {
		select {
		case ch <- event:
		default:
			slog.Warn("Dropping event for slow subscriber", "channel", channel)
		}
	}
}

// Catchup returns the events missed since lastEventID, each with
// db_event_id injected for position tracking, plus a flag indicating
// that more events exist beyond the replay limit.
func (b *Broker) Catchup(ctx context.Context, channel string, lastEventID int) ([][]byte, bool, error) {
	if b.catchupQuerier == nil {
		return nil, false, nil
	}

	// Query one past the limit to detect overflow
	events, err := b.catchupQuerier.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		return nil, false, fmt.Errorf("catchup query failed for %s: %w", channel, err)
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// The stored payload doesn't contain db_event_id (it's only added to
	// the NOTIFY payload at publish time), so add it here from the row ID.
	out := make([][]byte, 0, len(events))
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		out = append(out, payload)
	}
	return out, hasMore, nil
}

// SubscriberCount returns the number of local subscribers for a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.subMu.RLock()
	defer b.subMu.RUnlock()
	return len(b.subs[channel])
}

// unsubscribe removes a subscriber and stops LISTEN if it was the last
// one on its channel.
func (b *Broker) unsubscribe(channel, id string) {
	b.subMu.Lock()
	subs, exists := b.subs[channel]
	if !exists {
		b.subMu.Unlock()
		return
	}
	ch, ok := subs[id]
	if ok {
		delete(subs, id)
		close(ch)
	}
	last := len(subs) == 0
	if last {
		delete(b.subs, channel)
	}
	b.subMu.Unlock()

	if !last {
		return
	}

	// Last subscriber left — stop LISTEN. The goroutine re-checks
	// b.subs before issuing UNLISTEN to prevent a race where a rapid
	// detach/re-attach cycle would drop the LISTEN.
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		b.subMu.RLock()
		_, resubscribed := b.subs[channel]
		b.subMu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}
