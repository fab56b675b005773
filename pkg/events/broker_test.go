package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (f *fakeCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []CatchupEvent
	for _, evt := range f.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestBrokerSubscribeBroadcast(t *testing.T) {
	broker := NewBroker(nil)
	channel := ReportChannel("run-1")

	sub, err := broker.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, 1, broker.SubscriberCount(channel))

	broker.Broadcast(channel, []byte(`{"type":"stage.status"}`))

	select {
	case got := <-sub.Events:
		assert.JSONEq(t, `{"type":"stage.status"}`, string(got))
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	sub.Close()
	assert.Equal(t, 0, broker.SubscriberCount(channel))

	// Events channel is closed after detach
	_, open := <-sub.Events
	assert.False(t, open)
}

func TestBrokerBroadcastOtherChannel(t *testing.T) {
	broker := NewBroker(nil)

	sub, err := broker.Subscribe(context.Background(), ReportChannel("run-1"))
	require.NoError(t, err)
	defer sub.Close()

	broker.Broadcast(ReportChannel("run-2"), []byte(`{}`))

	select {
	case <-sub.Events:
		t.Fatal("received event for another channel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBrokerMultipleSubscribers(t *testing.T) {
	broker := NewBroker(nil)
	channel := ReportChannel("run-1")

	sub1, err := broker.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := broker.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	defer sub2.Close()

	broker.Broadcast(channel, []byte(`{"n":1}`))

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case got := <-sub.Events:
			assert.JSONEq(t, `{"n":1}`, string(got))
		case <-time.After(time.Second):
			t.Fatal("event not delivered to all subscribers")
		}
	}
}

func TestBrokerSlowSubscriberDropsEvents(t *testing.T) {
	broker := NewBroker(nil)
	channel := ReportChannel("run-1")

	sub, err := broker.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	defer sub.Close()

	// Overfill the subscriber buffer without reading
	for i := 0; i < subscriberBuffer+10; i++ {
		broker.Broadcast(channel, []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	// The buffered events are intact; the overflow was dropped
	received := 0
	for {
		select {
		case <-sub.Events:
			received++
		default:
			assert.Equal(t, subscriberBuffer, received)
			return
		}
	}
}

func TestBrokerCloseIsIdempotent(t *testing.T) {
	broker := NewBroker(nil)
	sub, err := broker.Subscribe(context.Background(), ReportChannel("run-1"))
	require.NoError(t, err)

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, broker.SubscriberCount(ReportChannel("run-1")))
}

func TestBrokerCatchup(t *testing.T) {
	t.Run("replays events after sinceID in order", func(t *testing.T) {
		querier := &fakeCatchupQuerier{events: []CatchupEvent{
			{ID: 1, Payload: map[string]any{"type": EventTypeStageStatus, "progress": float64(5)}},
			{ID: 2, Payload: map[string]any{"type": EventTypeStageStatus, "progress": float64(20)}},
			{ID: 3, Payload: map[string]any{"type": EventTypeReportCompleted}},
		}}
		broker := NewBroker(querier)

		replay, hasMore, err := broker.Catchup(context.Background(), ReportChannel("run-1"), 1)
		require.NoError(t, err)
		assert.False(t, hasMore)
		require.Len(t, replay, 2)
		assert.Contains(t, string(replay[0]), `"db_event_id":2`)
		assert.Contains(t, string(replay[1]), `"db_event_id":3`)
	})

	t.Run("reports overflow past the limit", func(t *testing.T) {
		querier := &fakeCatchupQuerier{}
		for i := 1; i <= catchupLimit+5; i++ {
			querier.events = append(querier.events, CatchupEvent{
				ID:      i,
				Payload: map[string]any{"type": EventTypeStageStatus},
			})
		}
		broker := NewBroker(querier)

		replay, hasMore, err := broker.Catchup(context.Background(), ReportChannel("run-1"), 0)
		require.NoError(t, err)
		assert.True(t, hasMore)
		assert.Len(t, replay, catchupLimit)
	})

	t.Run("nil querier returns nothing", func(t *testing.T) {
		broker := NewBroker(nil)
		replay, hasMore, err := broker.Catchup(context.Background(), ReportChannel("run-1"), 0)
		require.NoError(t, err)
		assert.False(t, hasMore)
		assert.Empty(t, replay)
	})
}
