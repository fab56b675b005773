// Package llm adapts the supported language-model providers (OpenAI,
// Anthropic, Groq, Gemini) behind one Generate capability. Provider
// routing happens here; everything above this package is provider-agnostic.
package llm

import (
	"context"
	"errors"
)

// Request is one generation call. Model/MaxTokens/Temperature come from
// the session's model configuration; zero values fall back to the
// provider defaults.
type Request struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Response carries the generated text and, when the provider reports
// them, exact token counts. Zero token counts mean "unknown" — the usage
// tracker falls back to estimation.
type Response struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// Client is the uniform provider capability. Implementations must honor
// context cancellation by aborting the in-flight provider call.
type Client interface {
	// Generate produces a completion for the request.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Provider returns the provider identifier for usage records.
	Provider() string
}

// ErrEmptyCompletion is returned when a provider responds without any
// usable text.
var ErrEmptyCompletion = errors.New("provider returned an empty completion")
