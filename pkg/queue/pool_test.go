package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxQueuedAnalyses:       2,
		AnalysisTimeout:         time.Minute,
		StageTimeout:            time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func quickAnalyzer(client llm.Client) *deep.Analyzer {
	agents := []*models.AgentSignature{{
		Name:   "statistical_analytics_agent",
		Prompt: "You run statistics.",
		Inputs: []string{models.FieldGoal, models.FieldDataset},
	}}
	rets := &retriever.Set{
		Dataset: retriever.NewStatic("df: a, b"),
		Style:   retriever.NewStatic("plotly_white"),
	}
	return deep.NewAnalyzer(agents, client, models.ModelConfig{Model: "gpt-4o-mini"}, rets, nil, nil)
}

func TestWorkerPool(t *testing.T) {
	t.Run("processes submitted jobs", func(t *testing.T) {
		pool := NewWorkerPool(testQueueConfig())
		pool.Start(context.Background())
		defer pool.Stop()

		completion := "Code:\n```python\nx=1\n```\n\nSummary:\ndone"
		require.NoError(t, pool.Submit(Job{
			ReportUUID: "r-1",
			Goal:       "analyze",
			Analyzer:   quickAnalyzer(llm.StaticText(completion)),
		}))

		require.Eventually(t, func() bool {
			return pool.Stats().Processed == 1
		}, 5*time.Second, 10*time.Millisecond)
		assert.Zero(t, pool.Stats().Active)
	})

	t.Run("workers survive a job whose analyzer panics", func(t *testing.T) {
		pool := NewWorkerPool(testQueueConfig())
		pool.Start(context.Background())
		defer pool.Stop()

		// Nil dataset retriever panics inside the run.
		broken := deep.NewAnalyzer(nil, llm.StaticText("unused"),
			models.ModelConfig{}, &retriever.Set{}, nil, nil)
		require.NoError(t, pool.Submit(Job{ReportUUID: "p-1", Goal: "goal", Analyzer: broken}))

		completion := "Code:\n```python\nx=1\n```\n\nSummary:\ndone"
		require.NoError(t, pool.Submit(Job{
			ReportUUID: "p-2",
			Goal:       "analyze",
			Analyzer:   quickAnalyzer(llm.StaticText(completion)),
		}))

		require.Eventually(t, func() bool {
			return pool.Stats().Processed == 2
		}, 5*time.Second, 10*time.Millisecond)
		assert.Zero(t, pool.Stats().Active)
	})

	t.Run("rejects submissions beyond capacity", func(t *testing.T) {
		// Pool never started: jobs stay queued
		pool := NewWorkerPool(testQueueConfig())

		a := quickAnalyzer(llm.StaticText("unused"))
		require.NoError(t, pool.Submit(Job{ReportUUID: "q-1", Analyzer: a}))
		require.NoError(t, pool.Submit(Job{ReportUUID: "q-2", Analyzer: a}))
		assert.ErrorIs(t, pool.Submit(Job{ReportUUID: "q-3", Analyzer: a}), ErrQueueFull)
		assert.Equal(t, 2, pool.Stats().QueueDepth)
	})

	t.Run("cancel aborts an active run", func(t *testing.T) {
		pool := NewWorkerPool(testQueueConfig())
		pool.Start(context.Background())
		defer pool.Stop()

		blocking := blockingClient{}
		require.NoError(t, pool.Submit(Job{
			ReportUUID: "r-2",
			Goal:       "long analysis",
			Analyzer:   quickAnalyzer(blocking),
		}))

		require.Eventually(t, func() bool {
			return pool.Stats().Active == 1
		}, 5*time.Second, 10*time.Millisecond)

		assert.True(t, pool.Cancel("r-2"))
		require.Eventually(t, func() bool {
			return pool.Stats().Processed == 1
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("cancel of unknown run reports false", func(t *testing.T) {
		pool := NewWorkerPool(testQueueConfig())
		assert.False(t, pool.Cancel("missing"))
	})
}

// blockingClient parks until cancelled.
type blockingClient struct{}

func (blockingClient) Provider() string { return "static" }

func (blockingClient) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
