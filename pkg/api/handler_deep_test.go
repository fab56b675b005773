package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

const deepHandlerCompletion = "Code:\n```python\nx = 1\n```\n\nSummary:\ndone"

func TestStreamDeepAnalysisHandler(t *testing.T) {
	t.Run("requires a dataset", func(t *testing.T) {
		s := testServer(llm.StaticText(deepHandlerCompletion))
		w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis_streaming", DeepAnalysisRequest{
			Goal:      "analyze churn",
			SessionID: "deep-1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("streams stage frames through to completion", func(t *testing.T) {
		s := testServer(llm.StaticText(deepHandlerCompletion))
		bindDataset(s, "deep-2")

		w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis_streaming", DeepAnalysisRequest{
			Goal:      "analyze churn drivers",
			SessionID: "deep-2",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.GreaterOrEqual(t, len(lines), 4)

		frames := make([]deepFrame, 0, len(lines))
		for _, line := range lines {
			var frame deepFrame
			require.NoError(t, json.Unmarshal([]byte(line), &frame))
			frames = append(frames, frame)
		}

		assert.Equal(t, models.StepInitialization, frames[0].Step)

		progress := 0
		for _, frame := range frames {
			assert.GreaterOrEqual(t, frame.Progress, progress, "progress never moves backwards")
			progress = frame.Progress
		}

		terminal := frames[len(frames)-1]
		assert.Equal(t, models.StepCompleted, terminal.Step)
		assert.Equal(t, 100, terminal.Progress)
		require.NotNil(t, terminal.FinalResult)
		assert.NotEmpty(t, terminal.FinalResult.HTMLReport)
		require.NotNil(t, terminal.FinalResult.Analysis)
		assert.Equal(t, "analyze churn drivers", terminal.FinalResult.Analysis.Goal)
	})
}

func TestSubmitDeepAnalysisHandler(t *testing.T) {
	s := testServer(llm.StaticText(deepHandlerCompletion))
	bindDataset(s, "deep-3")

	// Pool never started: the job stays queued.
	w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis", DeepAnalysisRequest{
		Goal:      "analyze churn",
		SessionID: "deep-3",
	})

	require.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "queued", body["status"])
	assert.NotEmpty(t, body["report_uuid"])
	assert.Equal(t, 1, s.pool.Stats().QueueDepth)

	// The session remembers the run it started.
	assert.Equal(t, body["report_uuid"], s.sessions.Get("deep-3").CurrentDeepAnalysis())
}

func TestCancelDeepAnalysisHandler(t *testing.T) {
	s := testServer(llm.StaticText(deepHandlerCompletion))
	w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis/unknown-uuid/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadReportHandler(t *testing.T) {
	sampleBundle := models.AnalysisBundle{
		Goal:            "why do customers churn",
		DeepQuestions:   "1. What drives churn?",
		DeepPlan:        "statistical_analytics_agent -> data_viz_agent",
		Summaries:       []string{"churn correlates with tenure"},
		Code:            "x = 1",
		Synthesis:       []string{"tenure is the main driver"},
		FinalConclusion: "**Conclusion** Churn concentrates in month one.",
	}

	t.Run("returns rendered HTML as an attachment", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis/download_report", DownloadReportRequest{
			AnalysisData: sampleBundle,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Body.String(), "why do customers churn")
	})

	t.Run("persists the HTML when report_uuid is given", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		reports := services.NewReportService(client.Client)
		ctx := context.Background()

		_, err := reports.CreatePending(ctx, "dl-report-1", nil, "why do customers churn")
		require.NoError(t, err)

		s := testServer(llm.StaticText("unused"))
		s.reports = reports

		w := doJSON(t, s.Router(), http.MethodPost, "/deep_analysis/download_report", DownloadReportRequest{
			AnalysisData: sampleBundle,
			ReportUUID:   "dl-report-1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		row, err := reports.GetByUUID(ctx, "dl-report-1")
		require.NoError(t, err)
		assert.Contains(t, row.HTMLReport, "why do customers churn")
	})
}
