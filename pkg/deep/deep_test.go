package deep

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
	"github.com/autoanalyst/analyst/pkg/services"
)

// fakeStore records lifecycle calls in memory.
type fakeStore struct {
	mu       sync.Mutex
	running  []int
	stages   []int
	updates  []*services.StageUpdate
	html     string
	tokens   int
	credits  int
	failMsg  string
	complete bool
}

func (f *fakeStore) MarkRunning(_ context.Context, _ string, progress int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = append(f.running, progress)
	return nil
}

func (f *fakeStore) RecordStage(_ context.Context, _ string, progress int, update *services.StageUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stages = append(f.stages, progress)
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeStore) Complete(_ context.Context, _ string, htmlReport string, tokens int, _ float64, credits int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.complete = true
	f.html = htmlReport
	f.tokens = tokens
	f.credits = credits
	return nil
}

func (f *fakeStore) Fail(_ context.Context, _ string, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failMsg = errorMessage
	return nil
}

// blockingClient parks every call until the context is cancelled.
type blockingClient struct{}

func (blockingClient) Provider() string { return "static" }

func (blockingClient) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func deepAgents() []*models.AgentSignature {
	return []*models.AgentSignature{
		{
			Name:   "statistical_analytics_agent",
			Prompt: "You run statistics.",
			Inputs: []string{models.FieldGoal, models.FieldDataset},
		},
		{
			Name:            "data_viz_agent",
			Prompt:          "You plot data.",
			Inputs:          []string{models.FieldGoal, models.FieldDataset, models.FieldStylingIndex},
			IsVisualization: true,
		},
	}
}

func deepRetrievers() *retriever.Set {
	return &retriever.Set{
		Dataset: retriever.NewStatic("df: tenure, contract, churn"),
		Style:   retriever.NewStatic("plotly_white"),
	}
}

const statCompletion = "Code:\n```python\ndf.churn.corr(df.tenure)\n```\n\nSummary:\nChurn correlates negatively with tenure."

const vizCompletion = "Code:\n```python\nfig = go.Figure({\"data\":[{\"x\":[1],\"y\":[2],\"type\":\"bar\"}],\"layout\":{\"title\":\"Churn\"}})\n```\n\nSummary:\nBar chart of churn by contract."

func scriptedClient() *llm.StaticClient {
	responses := []*llm.Response{
		{Text: "1. What drives churn?\n2. Which cohorts churn most?", PromptTokens: 50, CompletionTokens: 30},
		{Text: "Step 1: statistics. Step 2: visualization.", PromptTokens: 60, CompletionTokens: 20},
		{Text: statCompletion, PromptTokens: 80, CompletionTokens: 40},
		{Text: vizCompletion, PromptTokens: 90, CompletionTokens: 50},
		{Text: "Tenure dominates; contract type amplifies."},
		{Text: "**Conclusion**\nRetain new monthly-contract customers."},
	}
	return llm.NewStaticClient("openai", responses, make([]error, len(responses)))
}

func drain(ch <-chan models.StageEvent) []models.StageEvent {
	var out []models.StageEvent
	for evt := range ch {
		out = append(out, evt)
	}
	return out
}

func TestAnalyzer_Run(t *testing.T) {
	t.Run("streams stages in order with monotonic progress", func(t *testing.T) {
		a := NewAnalyzer(deepAgents(), scriptedClient(), models.ModelConfig{Model: "gpt-4o-mini"},
			deepRetrievers(), nil, nil)

		got := drain(a.Run(context.Background(), "r-1", "identify churn drivers"))
		require.NotEmpty(t, got)

		var steps []string
		last := 0
		for _, evt := range got {
			steps = append(steps, evt.Step)
			assert.GreaterOrEqual(t, evt.Progress, last, "progress must never decrease")
			last = evt.Progress
		}
		assert.Equal(t, []string{
			models.StepInitialization,
			models.StepQuestions,
			models.StepPlanning,
			models.StepAnalysis, // per-agent processing frames
			models.StepAnalysis,
			models.StepAnalysis, // stage completion
			models.StepSynthesis,
			models.StepConclusion,
			models.StepReport,
			models.StepCompleted,
		}, steps)

		terminal := got[len(got)-1]
		assert.Equal(t, models.StageStatusSuccess, terminal.Status)
		assert.Equal(t, 100, terminal.Progress)
		require.NotNil(t, terminal.Analysis)
		assert.Len(t, terminal.Analysis.Summaries, 2)
		assert.Contains(t, terminal.Analysis.Code, "df.churn.corr")
		require.Len(t, terminal.Analysis.PlotlyFigs, 1)
		assert.Contains(t, terminal.Analysis.PlotlyFigs[0][0], `"layout"`)
		assert.Contains(t, terminal.HTMLReport, "Plotly.newPlot")
	})

	t.Run("persists each stage and terminal success", func(t *testing.T) {
		store := &fakeStore{}
		a := NewAnalyzer(deepAgents(), scriptedClient(), models.ModelConfig{Model: "gpt-4o-mini"},
			deepRetrievers(), store, nil)

		drain(a.Run(context.Background(), "r-2", "identify churn drivers"))

		assert.Equal(t, []int{5}, store.running)
		assert.Equal(t, []int{20, 40, 85, 90, 95}, store.stages)
		assert.True(t, store.complete)
		assert.NotEmpty(t, store.html)
		assert.Positive(t, store.tokens)
		assert.Positive(t, store.credits)

		require.NotNil(t, store.updates[0].Questions)
		assert.Contains(t, *store.updates[0].Questions, "What drives churn?")
		require.NotNil(t, store.updates[4].Conclusion)
	})

	t.Run("provider failure writes a terminal failed row", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{nil}, []error{errors.New("provider unavailable")})
		store := &fakeStore{}
		a := NewAnalyzer(deepAgents(), client, models.ModelConfig{},
			deepRetrievers(), store, nil)

		got := drain(a.Run(context.Background(), "r-3", "goal"))
		terminal := got[len(got)-1]
		assert.Equal(t, models.StepError, terminal.Step)
		assert.Equal(t, models.StageStatusFailed, terminal.Status)
		assert.False(t, store.complete)
		assert.NotEmpty(t, store.failMsg)
	})

	t.Run("a panicking stage writes a terminal failed row", func(t *testing.T) {
		store := &fakeStore{}
		// A nil dataset retriever panics on the first stage.
		a := NewAnalyzer(deepAgents(), scriptedClient(), models.ModelConfig{},
			&retriever.Set{}, store, nil)

		got := drain(a.Run(context.Background(), "r-5", "goal"))
		require.NotEmpty(t, got)
		terminal := got[len(got)-1]
		assert.Equal(t, models.StepError, terminal.Step)
		assert.Equal(t, models.StageStatusFailed, terminal.Status)
		assert.Contains(t, terminal.Message, "internal error")
		assert.Contains(t, store.failMsg, "internal error")
		assert.False(t, store.complete)
	})

	t.Run("cancellation records the cancelled sentinel", func(t *testing.T) {
		store := &fakeStore{}
		a := NewAnalyzer(deepAgents(), blockingClient{}, models.ModelConfig{},
			deepRetrievers(), store, nil)

		ctx, cancel := context.WithCancel(context.Background())
		ch := a.Run(ctx, "r-4", "goal")

		first := <-ch // initialization frame arrives before the first LM call
		assert.Equal(t, models.StepInitialization, first.Step)
		cancel()

		got := drain(ch)
		require.NotEmpty(t, got)
		terminal := got[len(got)-1]
		assert.Equal(t, models.StepError, terminal.Step)
		assert.Equal(t, cancelledMessage, terminal.Message)
		assert.Equal(t, cancelledMessage, store.failMsg)
	})
}

func TestExtractFigures(t *testing.T) {
	t.Run("finds figure objects inside code", func(t *testing.T) {
		code := `fig = go.Figure({"data":[{"type":"bar"}],"layout":{"title":"T"}})`
		figs := extractFigures(code)
		require.Len(t, figs, 1)
		assert.Contains(t, figs[0], `"data"`)
	})

	t.Run("ignores objects missing layout", func(t *testing.T) {
		assert.Empty(t, extractFigures(`{"data":[1,2,3]}`))
	})

	t.Run("ignores unbalanced braces", func(t *testing.T) {
		assert.Empty(t, extractFigures(`{"data": {"layout":`))
	})

	t.Run("handles braces inside strings", func(t *testing.T) {
		code := `{"data":[{"name":"a{b}"}],"layout":{}}`
		require.Len(t, extractFigures(code), 1)
	})
}
