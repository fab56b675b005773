package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/models"
)

func sampleBundle() *models.AnalysisBundle {
	return &models.AnalysisBundle{
		Goal:          "identify churn drivers",
		DeepQuestions: "1. What drives churn?\n2. Which cohorts churn most?",
		DeepPlan:      "preprocessing_agent -> statistical_analytics_agent -> data_viz_agent",
		Summaries:     []string{"Churn correlates with tenure.", "Monthly contracts churn 3x more."},
		Code:          "df.groupby('contract').churn.mean()",
		PlotlyFigs: [][]string{
			{`{"data":[{"x":[1,2],"y":[3,4],"type":"bar"}],"layout":{"title":"Churn"}}`},
		},
		Synthesis:       []string{"Tenure and contract type dominate."},
		FinalConclusion: "Focus retention on new monthly-contract customers.",
	}
}

func TestReport(t *testing.T) {
	t.Run("renders every section", func(t *testing.T) {
		html, err := Report(sampleBundle())
		require.NoError(t, err)
		assert.Contains(t, html, "identify churn drivers")
		assert.Contains(t, html, "What drives churn?")
		assert.Contains(t, html, "Monthly contracts churn 3x more.")
		assert.Contains(t, html, "Plotly.newPlot")
		assert.Contains(t, html, "fig-0-0")
		assert.Contains(t, html, "Focus retention on new monthly-contract customers.")
	})

	t.Run("figure JSON round-trips to identical HTML", func(t *testing.T) {
		var fig map[string]any
		require.NoError(t, json.Unmarshal([]byte(sampleBundle().PlotlyFigs[0][0]), &fig))
		canonical, err := json.Marshal(fig)
		require.NoError(t, err)

		bundle := sampleBundle()
		bundle.PlotlyFigs = [][]string{{string(canonical)}}
		first, err := Report(bundle)
		require.NoError(t, err)

		// Parse the transport form back and re-render
		var reparsedFig map[string]any
		require.NoError(t, json.Unmarshal(canonical, &reparsedFig))
		raw, err := json.Marshal(reparsedFig)
		require.NoError(t, err)
		reparsed := sampleBundle()
		reparsed.PlotlyFigs = [][]string{{string(raw)}}

		second, err := Report(reparsed)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalid figure JSON is skipped", func(t *testing.T) {
		bundle := sampleBundle()
		bundle.PlotlyFigs = [][]string{{"{not json"}}
		html, err := Report(bundle)
		require.NoError(t, err)
		assert.NotContains(t, html, "Plotly.newPlot")
	})

	t.Run("summary content is escaped", func(t *testing.T) {
		bundle := sampleBundle()
		bundle.Summaries = []string{"<script>alert(1)</script>"}
		html, err := Report(bundle)
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>alert(1)</script>")
	})
}
