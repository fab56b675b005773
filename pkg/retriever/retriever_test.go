package retriever

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chartEmbedding is a deterministic embedding for tests: one axis per
// chart-family keyword, normalized. Texts about the same chart family
// land close together without any network calls.
func chartEmbedding() chromem.EmbeddingFunc {
	keywords := []string{"line", "bar", "histogram", "pie", "heat", "scatter"}
	return func(_ context.Context, text string) ([]float32, error) {
		lower := strings.ToLower(text)
		vec := make([]float32, len(keywords)+1)
		var norm float64
		for i, kw := range keywords {
			if strings.Contains(lower, kw) {
				vec[i] = 1
				norm++
			}
		}
		if norm == 0 {
			vec[len(keywords)] = 1
			norm = 1
		}
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
		return vec, nil
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the fixed texts up to k", func(t *testing.T) {
		r := NewStatic("first", "second")
		got, err := r.Retrieve(ctx, "anything", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"first"}, got)

		got, err = r.Retrieve(ctx, "anything", 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, got)
	})

	t.Run("top1 of an empty index is empty", func(t *testing.T) {
		got, err := Top1(ctx, NewStatic(), "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestVector(t *testing.T) {
	ctx := context.Background()

	t.Run("retrieves the closest document", func(t *testing.T) {
		v, err := NewVector(ctx, "styling", DefaultStylingInstructions, chartEmbedding())
		require.NoError(t, err)

		got, err := Top1(ctx, v, "scatter plot of churn against tenure")
		require.NoError(t, err)
		assert.Contains(t, got, "Scatter plots")

		got, err = Top1(ctx, v, "pie breakdown by segment")
		require.NoError(t, err)
		assert.Contains(t, got, "Pie charts")
	})

	t.Run("k is clamped to the collection size", func(t *testing.T) {
		v, err := NewVector(ctx, "tiny", []string{"bar chart usage"}, chartEmbedding())
		require.NoError(t, err)

		got, err := v.Retrieve(ctx, "bar", 10)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty index retrieves nothing", func(t *testing.T) {
		v, err := NewVector(ctx, "empty", nil, chartEmbedding())
		require.NoError(t, err)

		got, err := v.Retrieve(ctx, "anything", 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSessionSets(t *testing.T) {
	ctx := context.Background()

	t.Run("static set serves the descriptor and all hints", func(t *testing.T) {
		set := NewSessionSet("df: month, churn_rate")

		desc, err := Top1(ctx, set.Dataset, "anything")
		require.NoError(t, err)
		assert.Equal(t, "df: month, churn_rate", desc)

		hints, err := set.Style.Retrieve(ctx, "anything", len(DefaultStylingInstructions))
		require.NoError(t, err)
		assert.Len(t, hints, len(DefaultStylingInstructions))
	})

	t.Run("vector set matches styling hints to the query", func(t *testing.T) {
		set, err := NewVectorSessionSet(ctx, "df: month, churn_rate", chartEmbedding())
		require.NoError(t, err)

		desc, err := Top1(ctx, set.Dataset, "anything")
		require.NoError(t, err)
		assert.Equal(t, "df: month, churn_rate", desc)

		hint, err := Top1(ctx, set.Style, "heat map of correlations")
		require.NoError(t, err)
		assert.Contains(t, hint, "Heat maps")
	})
}
