package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoanalyst/analyst/pkg/models"
)

func TestCost(t *testing.T) {
	t.Run("splits input and output rates", func(t *testing.T) {
		// gpt-4o-mini: 0.00015 in / 0.0006 out per 1K
		got := Cost("gpt-4o-mini", 1000, 1000)
		assert.InDelta(t, 0.00075, got, 1e-9)
	})

	t.Run("scales linearly with tokens", func(t *testing.T) {
		assert.InDelta(t, Cost("gpt-4o", 500, 250), Cost("gpt-4o", 1000, 500)/2, 1e-9)
	})

	t.Run("unpriced model costs zero", func(t *testing.T) {
		assert.Zero(t, Cost("totally-new-model", 1000, 1000))
	})

	t.Run("zero tokens cost nothing", func(t *testing.T) {
		assert.Zero(t, Cost("gpt-4o", 0, 0))
	})
}

func TestCredits(t *testing.T) {
	assert.Equal(t, 1, Credits("gpt-4o-mini"))
	assert.Equal(t, 3, Credits("o3-mini"))
	assert.Equal(t, 5, Credits("gpt-4o"))
	assert.Equal(t, 20, Credits("claude-sonnet-4-20250514"))
	assert.Equal(t, 1, Credits("unknown-model"), "unknown models bill at the floor tier")
}

func TestEstimateTokens(t *testing.T) {
	assert.Zero(t, EstimateTokens(""))
	assert.Equal(t, 3, EstimateTokens("two words"))
	assert.Equal(t, 5, EstimateTokens("three word phrase"), "1.5 per word, rounded up")
}

func TestBillable(t *testing.T) {
	for _, core := range models.CoreAgentNames {
		assert.False(t, Billable(core), core)
	}
	assert.False(t, Billable(models.BasicQAAgentName))
	assert.True(t, Billable("custom_forecasting_agent"))
}
