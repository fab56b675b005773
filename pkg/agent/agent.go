// Package agent executes one agent signature against a language model:
// it assembles the prompt from the signature's inputs, calls the
// provider, and parses the structured output.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
)

// Result is one agent invocation's outcome plus its accounting data.
type Result struct {
	Output models.AgentOutput

	PromptTokens     int
	CompletionTokens int
	Elapsed          time.Duration
}

// TotalTokens returns the combined token count of the invocation.
func (r *Result) TotalTokens() int {
	return r.PromptTokens + r.CompletionTokens
}

// Agent runs one signature. Transport errors (missing inputs, provider
// failures) are returned as errors; malformed model output is carried in
// Output.Error so plan execution can continue past a failed step.
type Agent interface {
	Name() string
	Signature() *models.AgentSignature
	Forward(ctx context.Context, inputs map[string]string) (*Result, error)
}

// TemplateAgent is an Agent driven by a stored template signature.
type TemplateAgent struct {
	sig    *models.AgentSignature
	client llm.Client
	cfg    models.ModelConfig
}

// NewTemplateAgent creates an agent for one signature bound to a provider
// client and model configuration.
func NewTemplateAgent(sig *models.AgentSignature, client llm.Client, cfg models.ModelConfig) *TemplateAgent {
	return &TemplateAgent{sig: sig, client: client, cfg: cfg}
}

// Name returns the agent's template name.
func (a *TemplateAgent) Name() string { return a.sig.Name }

// Signature returns the agent's signature.
func (a *TemplateAgent) Signature() *models.AgentSignature { return a.sig }

// Forward runs the agent once against its model.
func (a *TemplateAgent) Forward(ctx context.Context, inputs map[string]string) (*Result, error) {
	for _, field := range a.sig.Inputs {
		if _, ok := inputs[field]; !ok {
			return nil, fmt.Errorf("agent %s: missing required input %q", a.sig.Name, field)
		}
	}

	start := time.Now()
	resp, err := a.client.Generate(ctx, llm.Request{
		System:      buildSystemPrompt(a.sig),
		Prompt:      buildUserPrompt(a.sig, inputs),
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.sig.Name, err)
	}

	return &Result{
		Output:           parseOutput(a.sig, resp.Text),
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		Elapsed:          time.Since(start),
	}, nil
}

// parseOutput maps the raw completion to the signature's output shape.
func parseOutput(sig *models.AgentSignature, text string) models.AgentOutput {
	text = strings.TrimSpace(text)
	if sig.AnswerOnly {
		return models.AgentOutput{Answer: text}
	}

	code := extractCodeBlock(text)
	summary := extractSummary(text)
	if code == "" && summary == "" {
		return models.AgentOutput{
			Error: "model response contained neither code nor summary",
		}
	}
	return models.AgentOutput{Code: code, Summary: summary}
}
