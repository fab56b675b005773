// Package usage accounts model invocations: token counts, dollar cost,
// and per-template usage counters. Accounting is always best-effort — a
// failed write never fails the request that produced it.
package usage

import "log/slog"

// modelRates are USD per 1K tokens, input and output priced separately.
type modelRates struct {
	Input  float64
	Output float64
}

// modelCosts is the pricing table, keyed by model name. Prices drift;
// entries are updated when providers change their published rates.
var modelCosts = map[string]modelRates{
	// OpenAI
	"gpt-4o":       {Input: 0.0025, Output: 0.01},
	"gpt-4o-mini":  {Input: 0.00015, Output: 0.0006},
	"gpt-4.1":      {Input: 0.002, Output: 0.008},
	"gpt-4.1-mini": {Input: 0.0004, Output: 0.0016},
	"o3-mini":      {Input: 0.0011, Output: 0.0044},

	// Anthropic
	"claude-sonnet-4-20250514":   {Input: 0.003, Output: 0.015},
	"claude-3-5-sonnet-latest":   {Input: 0.003, Output: 0.015},
	"claude-3-5-haiku-latest":    {Input: 0.0008, Output: 0.004},
	"claude-3-7-sonnet-20250219": {Input: 0.003, Output: 0.015},

	// Groq-hosted open models
	"llama-3.3-70b-versatile":       {Input: 0.00059, Output: 0.00079},
	"llama-3.1-8b-instant":          {Input: 0.00005, Output: 0.00008},
	"deepseek-r1-distill-llama-70b": {Input: 0.00075, Output: 0.00099},

	// Gemini
	"gemini-2.5-flash": {Input: 0.0003, Output: 0.0025},
	"gemini-2.5-pro":   {Input: 0.00125, Output: 0.01},
	"gemini-2.0-flash": {Input: 0.0001, Output: 0.0004},
}

// Cost returns the invocation's dollar cost from the pricing table. An
// unpriced model costs zero and logs a warning so the gap is visible.
func Cost(model string, promptTokens, completionTokens int) float64 {
	rates, ok := modelCosts[model]
	if !ok {
		slog.Warn("No pricing entry for model, recording zero cost", "model", model)
		return 0
	}
	return float64(promptTokens)/1000*rates.Input +
		float64(completionTokens)/1000*rates.Output
}
