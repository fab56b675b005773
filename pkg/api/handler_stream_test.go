package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/events"
)

// stubCatchup is an in-memory CatchupQuerier for stream handler tests.
type stubCatchup struct {
	mu      sync.Mutex
	events  []events.CatchupEvent
	sinceID int
}

func (s *stubCatchup) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]events.CatchupEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinceID = sinceID
	out := make([]events.CatchupEvent, 0, len(s.events))
	for _, evt := range s.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubCatchup) lastSinceID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sinceID
}

// streamLines decodes every NDJSON line of a finished stream response.
func streamLines(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(w.Body.String()), "\n") {
		if line == "" {
			continue
		}
		var frame map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &frame))
		out = append(out, frame)
	}
	return out
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestStreamProgressHandler(t *testing.T) {
	t.Run("replays missed events and ends on the terminal one", func(t *testing.T) {
		catchup := &stubCatchup{events: []events.CatchupEvent{
			{ID: 1, Payload: map[string]any{
				"type": events.EventTypeStageStatus, "report_uuid": "r-1",
				"step": "planning", "status": "completed",
			}},
			{ID: 2, Payload: map[string]any{
				"type": events.EventTypeReportCompleted, "report_uuid": "r-1",
			}},
		}}
		broker := events.NewBroker(catchup)
		s := NewServer(Deps{Broker: broker})

		w := doJSON(t, s.Router(), http.MethodGet, "/deep_analysis/r-1/stream", nil)
		require.Equal(t, http.StatusOK, w.Code)

		lines := streamLines(t, w)
		require.Len(t, lines, 2)
		assert.Equal(t, events.EventTypeStageStatus, lines[0]["type"])
		assert.Equal(t, float64(1), lines[0]["db_event_id"], "replayed events carry their position")
		assert.Equal(t, events.EventTypeReportCompleted, lines[1]["type"])

		assert.Equal(t, 0, broker.SubscriberCount(events.ReportChannel("r-1")),
			"subscription is released when the stream ends")
	})

	t.Run("resumes past last_event_id", func(t *testing.T) {
		catchup := &stubCatchup{events: []events.CatchupEvent{
			{ID: 3, Payload: map[string]any{"type": events.EventTypeStageStatus, "report_uuid": "r-2"}},
			{ID: 9, Payload: map[string]any{"type": events.EventTypeReportFailed, "report_uuid": "r-2", "error": "boom"}},
		}}
		broker := events.NewBroker(catchup)
		s := NewServer(Deps{Broker: broker})

		w := doJSON(t, s.Router(), http.MethodGet, "/deep_analysis/r-2/stream?last_event_id=7", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, catchup.lastSinceID())

		lines := streamLines(t, w)
		require.Len(t, lines, 1, "events at or before last_event_id are not replayed")
		assert.Equal(t, events.EventTypeReportFailed, lines[0]["type"])
	})

	t.Run("relays live events after catchup", func(t *testing.T) {
		broker := events.NewBroker(&stubCatchup{})
		s := NewServer(Deps{Broker: broker})
		channel := events.ReportChannel("r-3")

		stage := mustJSON(t, events.StageStatusPayload{
			Type: events.EventTypeStageStatus, ReportUUID: "r-3",
			Step: "synthesis", Status: "processing", Progress: 80,
		})
		done := mustJSON(t, events.ReportCompletedPayload{
			Type: events.EventTypeReportCompleted, ReportUUID: "r-3",
		})
		go func() {
			for broker.SubscriberCount(channel) == 0 {
				time.Sleep(time.Millisecond)
			}
			broker.Broadcast(channel, stage)
			broker.Broadcast(channel, done)
		}()

		w := doJSON(t, s.Router(), http.MethodGet, "/deep_analysis/r-3/stream", nil)
		require.Equal(t, http.StatusOK, w.Code)

		lines := streamLines(t, w)
		require.Len(t, lines, 2)
		assert.Equal(t, "synthesis", lines[0]["step"])
		assert.Equal(t, events.EventTypeReportCompleted, lines[1]["type"])
	})

	t.Run("unavailable without a broker", func(t *testing.T) {
		s := NewServer(Deps{})
		w := doJSON(t, s.Router(), http.MethodGet, "/deep_analysis/r-4/stream", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
