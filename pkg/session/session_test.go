package session

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// fakeSignatures serves fixed per-user agent sets plus a core fallback.
type fakeSignatures struct {
	mu       sync.Mutex
	perUser  map[int][]*models.AgentSignature
	coreHits int
}

func (f *fakeSignatures) PlannerForUser(_ context.Context, userID int) []*models.AgentSignature {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.perUser[userID]
}

func (f *fakeSignatures) CoreSignatures() []*models.AgentSignature {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coreHits++
	return []*models.AgentSignature{
		{Name: "preprocessing_agent"},
		{Name: "statistical_analytics_agent"},
		{Name: "sk_learn_agent"},
		{Name: "data_viz_agent"},
	}
}

func testManager(sigs SignatureProvider) (*Manager, *int) {
	builds := 0
	factory := func(_ context.Context, agents []*models.AgentSignature, cfg models.ModelConfig, rets *retriever.Set) (*deep.Analyzer, error) {
		builds++
		return deep.NewAnalyzer(agents, llm.StaticText("ok"), cfg, rets, nil, nil), nil
	}
	return NewManager(sigs, factory, models.ModelConfig{Provider: "openai", Model: "gpt-4o-mini"}), &builds
}

// testEmbedding separates scatter-related text from everything else so
// styling lookups are deterministic without a provider.
func testEmbedding() chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		if strings.Contains(strings.ToLower(text), "scatter") {
			return []float32{1, 0}, nil
		}
		return []float32{0, 1}, nil
	}
}

func churnDataset() *models.Dataset {
	return &models.Dataset{
		Name: "churn",
		Columns: []models.Column{
			{Name: "tenure", Type: models.ColumnNumeric},
			{Name: "churn", Type: models.ColumnCategorical},
		},
	}
}

func TestManager_Get(t *testing.T) {
	m, _ := testManager(&fakeSignatures{})

	t.Run("creates lazily with defaults", func(t *testing.T) {
		s := m.Get("s-1")
		assert.Equal(t, "s-1", s.ID)
		assert.Equal(t, "gpt-4o-mini", s.ModelConfig().Model)
		assert.False(t, s.HasDataset())
		assert.Nil(t, s.UserID())
	})

	t.Run("returns the same session on re-reference", func(t *testing.T) {
		assert.Same(t, m.Get("s-1"), m.Get("s-1"))
	})

	t.Run("clear forgets the session", func(t *testing.T) {
		m.Get("s-2").SetCurrentDeepAnalysis("r-1")
		m.Clear("s-2")
		assert.Empty(t, m.Get("s-2").CurrentDeepAnalysis())
	})
}

func TestSession_UpdateDataset(t *testing.T) {
	m, _ := testManager(&fakeSignatures{})
	s := m.Get("s-ds")

	s.UpdateDataset(churnDataset())
	require.True(t, s.HasDataset())
	require.NotNil(t, s.Retrievers())

	desc, err := retriever.Top1(context.Background(), s.Retrievers().Dataset, "anything")
	require.NoError(t, err)
	assert.Contains(t, desc, "tenure")

	t.Run("embedding-backed sessions get a vector styling index", func(t *testing.T) {
		vm, _ := testManager(&fakeSignatures{})
		vm.SetEmbedding(testEmbedding())
		vs := vm.Get("s-vec")
		vs.UpdateDataset(churnDataset())

		hint, err := retriever.Top1(context.Background(), vs.Retrievers().Style, "scatter plot of churn")
		require.NoError(t, err)
		assert.Contains(t, hint, "Scatter plots")

		desc, err := retriever.Top1(context.Background(), vs.Retrievers().Dataset, "anything")
		require.NoError(t, err)
		assert.Contains(t, desc, "tenure")
	})

	t.Run("replacing the dataset rebuilds the retrievers", func(t *testing.T) {
		old := s.Retrievers()
		s.UpdateDataset(&models.Dataset{Name: "sales", Columns: []models.Column{
			{Name: "revenue", Type: models.ColumnNumeric},
		}})
		assert.NotSame(t, old, s.Retrievers())

		desc, err := retriever.Top1(context.Background(), s.Retrievers().Dataset, "anything")
		require.NoError(t, err)
		assert.Contains(t, desc, "revenue")
	})
}

func TestManager_GetDeepAnalyzer(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a dataset", func(t *testing.T) {
		m, _ := testManager(&fakeSignatures{})
		m.Get("s-a")
		_, err := m.GetDeepAnalyzer(ctx, "s-a")
		assert.ErrorIs(t, err, ErrNoDataset)
	})

	t.Run("caches per user", func(t *testing.T) {
		sigs := &fakeSignatures{perUser: map[int][]*models.AgentSignature{
			7: {{Name: "custom_agent"}},
		}}
		m, builds := testManager(sigs)
		s := m.Get("s-b")
		s.UpdateDataset(churnDataset())
		s.SetUser(7, nil)

		first, err := m.GetDeepAnalyzer(ctx, "s-b")
		require.NoError(t, err)
		second, err := m.GetDeepAnalyzer(ctx, "s-b")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, *builds)
	})

	t.Run("user change invalidates the cache", func(t *testing.T) {
		sigs := &fakeSignatures{perUser: map[int][]*models.AgentSignature{
			7: {{Name: "custom_agent"}},
			8: {{Name: "other_agent"}},
		}}
		m, builds := testManager(sigs)
		s := m.Get("s-c")
		s.UpdateDataset(churnDataset())

		s.SetUser(7, nil)
		first, err := m.GetDeepAnalyzer(ctx, "s-c")
		require.NoError(t, err)

		s.SetUser(8, nil)
		second, err := m.GetDeepAnalyzer(ctx, "s-c")
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, 2, *builds)

		// Rebinding the same user keeps the cached analyzer
		s.SetUser(8, nil)
		third, err := m.GetDeepAnalyzer(ctx, "s-c")
		require.NoError(t, err)
		assert.Same(t, second, third)
	})

	t.Run("anonymous sessions and empty preferences fall back to core agents", func(t *testing.T) {
		sigs := &fakeSignatures{perUser: map[int][]*models.AgentSignature{}}
		m, _ := testManager(sigs)

		s := m.Get("s-d")
		s.UpdateDataset(churnDataset())
		_, err := m.GetDeepAnalyzer(ctx, "s-d")
		require.NoError(t, err)
		assert.Equal(t, 1, sigs.coreHits)

		// User with nothing enabled also lands on the core four
		s.SetUser(99, nil)
		_, err = m.GetDeepAnalyzer(ctx, "s-d")
		require.NoError(t, err)
		assert.Equal(t, 2, sigs.coreHits)
	})

	t.Run("dataset replacement drops the cached analyzer", func(t *testing.T) {
		sigs := &fakeSignatures{}
		m, builds := testManager(sigs)
		s := m.Get("s-e")
		s.UpdateDataset(churnDataset())

		_, err := m.GetDeepAnalyzer(ctx, "s-e")
		require.NoError(t, err)
		s.UpdateDataset(churnDataset())
		_, err = m.GetDeepAnalyzer(ctx, "s-e")
		require.NoError(t, err)
		assert.Equal(t, 2, *builds)
	})
}
