// Package orchestrator runs agents against a session's dataset: either a
// user-named list of agents (individual mode) or a planner-produced
// sequence (planned mode). Both modes emit results as an ordered event
// stream that the API layer forwards frame by frame.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoanalyst/analyst/pkg/agent"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// SignatureSource resolves agent names to runtime signatures. The
// registry is the production implementation.
type SignatureSource interface {
	Individual(ctx context.Context) (map[string]*models.AgentSignature, error)
	PlannerForUser(ctx context.Context, userID int) []*models.AgentSignature
}

// UsageRecorder accounts one agent invocation. Implementations decide
// which agents are billable; the orchestrator reports every run.
type UsageRecorder interface {
	RecordAgentRun(ctx context.Context, userID int, agentName string, query string, res *agent.Result)
}

// UnknownAgentError reports an individual-mode request naming an agent
// that does not exist, together with the agents that do.
type UnknownAgentError struct {
	Name      string
	Available []string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent %q, available agents: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Orchestrator executes individual and planned agent runs.
type Orchestrator struct {
	signatures SignatureSource
	planner    *planner.Planner
	client     llm.Client
	cfg        models.ModelConfig
	usage      UsageRecorder
	logger     *slog.Logger
}

// New creates an orchestrator. usage may be nil when invocations should
// not be accounted (deep analysis runs its own accounting).
func New(signatures SignatureSource, pl *planner.Planner, client llm.Client, cfg models.ModelConfig, usage UsageRecorder) *Orchestrator {
	return &Orchestrator{
		signatures: signatures,
		planner:    pl,
		client:     client,
		cfg:        cfg,
		usage:      usage,
		logger:     slog.Default().With("component", "orchestrator"),
	}
}

// runAgent executes one signature and converts the outcome into an
// execution event. Provider failures are contained in the event rather
// than aborting the stream.
func (o *Orchestrator) runAgent(ctx context.Context, sig *models.AgentSignature, inputs map[string]string, query string, userID *int) models.ExecutionEvent {
	a := agent.NewTemplateAgent(sig, o.client, o.cfg)
	result, err := a.Forward(ctx, inputs)
	if err != nil {
		o.logger.Warn("Agent invocation failed", "agent", sig.Name, "error", err)
		return models.ExecutionEvent{
			Agent:  sig.Name,
			Inputs: inputs,
			Output: &models.AgentOutput{Error: err.Error()},
			Status: models.EventStatusError,
		}
	}

	if o.usage != nil && userID != nil {
		o.usage.RecordAgentRun(ctx, *userID, sig.Name, query, result)
	}

	status := models.EventStatusSuccess
	if result.Output.IsError() {
		status = models.EventStatusError
	}
	return models.ExecutionEvent{
		Agent:  sig.Name,
		Inputs: inputs,
		Output: &result.Output,
		Status: status,
	}
}

// errorEvent builds a stream event for an executor-level failure.
func errorEvent(agentName, message string) models.ExecutionEvent {
	return models.ExecutionEvent{
		Agent:  agentName,
		Output: &models.AgentOutput{Error: message},
		Status: models.EventStatusError,
	}
}

// emit sends an event unless the context is done. It reports whether the
// send happened.
func emit(ctx context.Context, ch chan<- models.ExecutionEvent, evt models.ExecutionEvent) bool {
	select {
	case ch <- evt:
		return true
	case <-ctx.Done():
		return false
	}
}

// buildInputs assembles the input map a signature requires. The goal is
// always the raw query; dataset and styling text come from the session's
// retrievers; plan instructions are passed through as given.
func buildInputs(ctx context.Context, sig *models.AgentSignature, query, planInstructions string, rets *retriever.Set) (map[string]string, error) {
	inputs := map[string]string{models.FieldGoal: query}

	if sig.Requires(models.FieldDataset) {
		desc, err := retriever.Top1(ctx, rets.Dataset, query)
		if err != nil {
			return nil, fmt.Errorf("retrieving dataset context: %w", err)
		}
		inputs[models.FieldDataset] = desc
	}
	if sig.Requires(models.FieldStylingIndex) {
		style, err := retriever.Top1(ctx, rets.Style, query)
		if err != nil {
			return nil, fmt.Errorf("retrieving styling context: %w", err)
		}
		inputs[models.FieldStylingIndex] = style
	}
	if sig.Requires(models.FieldPlanInstructions) {
		inputs[models.FieldPlanInstructions] = planInstructions
	}
	return inputs, nil
}
