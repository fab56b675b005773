package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:       EventTypeStageStatus,
			ReportUUID: "abc-123",
			Step:       models.StepPlanning,
			Status:     models.StageStatusProcessing,
			Progress:   40,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeStageStatus)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:       EventTypeStageStatus,
			ReportUUID: "abc-123",
			Step:       models.StepAnalysis,
			Content:    strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:       EventTypeStageStatus,
			ReportUUID: "report-789",
			Content:    strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeStageStatus)
		assert.Contains(t, result, "report-789")
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ReportCompletedPayload{
			Type:       EventTypeReportCompleted,
			ReportUUID: "abc-123",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(42), m["db_event_id"])
		assert.Equal(t, EventTypeReportCompleted, m["type"])
	})

	t.Run("keeps db_event_id when truncating", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:       EventTypeStageStatus,
			ReportUUID: "abc-123",
			Content:    strings.Repeat("y", 9000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.Equal(t, true, m["truncated"])
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestReportChannel(t *testing.T) {
	assert.Equal(t, "report:abc-123", ReportChannel("abc-123"))
}
