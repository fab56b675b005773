// Package planner turns a user query into an ordered agent plan. A
// classifier call grades the query's complexity, then a tier-specific
// sub-planner chooses which agents run and in what order. The classifier
// is advisory only: a failed or unrecognized classification degrades to
// the intermediate tier instead of failing the request.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
)

// NoAgentsMessage is surfaced to the user when every agent is disabled
// in their template preferences.
const NoAgentsMessage = "No agents are currently enabled for analysis. Please enable at least one agent (preprocessing, statistical analysis, machine learning, or visualization) in your template preferences to proceed with data analysis."

// Step caps per complexity tier. The advanced tier is uncapped.
const (
	basicMaxSteps        = 1
	intermediateMaxSteps = 2
)

// Planner produces execution plans from user queries.
type Planner struct {
	client llm.Client
	cfg    models.ModelConfig
	logger *slog.Logger
}

// New creates a planner bound to a provider client and model configuration.
func New(client llm.Client, cfg models.ModelConfig) *Planner {
	return &Planner{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "planner"),
	}
}

// NoAgentsPlan is the sentinel plan produced when the user has no
// enabled agents. It carries no executable steps.
func NoAgentsPlan() *models.Plan {
	return &models.Plan{Steps: []string{models.PlanNoAgentsAvailable}}
}

// IsNoAgentsPlan reports whether plan is the no-agents sentinel.
func IsNoAgentsPlan(p *models.Plan) bool {
	return p != nil && len(p.Steps) == 1 && p.Steps[0] == models.PlanNoAgentsAvailable
}

// Plan classifies the query and builds an agent plan from the available
// signatures. An empty agent list short-circuits to the no-agents
// sentinel without any model call. Queries classified as unrelated to
// the dataset route to the basic QA agent as the sole step.
func (p *Planner) Plan(ctx context.Context, goal, datasetDesc string, agents []*models.AgentSignature) (*models.Plan, error) {
	if len(agents) == 0 {
		return NoAgentsPlan(), nil
	}

	complexity, reasoning := p.classify(ctx, goal, datasetDesc, agents)
	if complexity == models.ComplexityUnrelated {
		return &models.Plan{
			Complexity: complexity,
			Steps:      []string{models.BasicQAAgentName},
			Reasoning:  reasoning,
		}, nil
	}

	plan, err := p.subPlan(ctx, complexity, goal, datasetDesc, agents)
	if (err != nil || plan.IsEmpty()) && complexity != models.ComplexityIntermediate {
		p.logger.Warn("sub-planner produced no usable plan, falling back to intermediate",
			"complexity", complexity, "error", err)
		complexity = models.ComplexityIntermediate
		plan, err = p.subPlan(ctx, complexity, goal, datasetDesc, agents)
	}
	if err != nil {
		return nil, fmt.Errorf("planning query: %w", err)
	}

	plan.Complexity = complexity
	plan.Reasoning = reasoning
	return plan, nil
}

// classify grades the query's complexity. Classification is best-effort:
// provider errors and unrecognized answers both degrade to intermediate.
func (p *Planner) classify(ctx context.Context, goal, datasetDesc string, agents []*models.AgentSignature) (models.Complexity, string) {
	resp, err := p.client.Generate(ctx, llm.Request{
		System:      classifierSystemPrompt,
		Prompt:      buildClassifierPrompt(goal, datasetDesc, agents),
		Model:       p.cfg.Model,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		p.logger.Warn("complexity classifier failed, assuming intermediate", "error", err)
		return models.ComplexityIntermediate, ""
	}

	reasoning := parseReasoning(resp.Text)
	complexity, ok := parseComplexity(resp.Text)
	if !ok {
		p.logger.Warn("unrecognized complexity classification, assuming intermediate")
		return models.ComplexityIntermediate, reasoning
	}
	return complexity, reasoning
}

// subPlan runs the tier-specific sub-planner and validates its output
// against the available agents. Unknown and duplicate agent names are
// dropped; the basic and intermediate tiers are capped at their step
// limits. Only the advanced tier carries per-step instructions.
func (p *Planner) subPlan(ctx context.Context, complexity models.Complexity, goal, datasetDesc string, agents []*models.AgentSignature) (*models.Plan, error) {
	resp, err := p.client.Generate(ctx, llm.Request{
		System:      subPlannerSystemPrompt(complexity),
		Prompt:      buildPlanPrompt(goal, datasetDesc, agents),
		Model:       p.cfg.Model,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s planner: %w", complexity, err)
	}

	steps := validateSteps(parsePlanSteps(resp.Text), agents)
	switch complexity {
	case models.ComplexityBasic:
		if len(steps) > basicMaxSteps {
			steps = steps[:basicMaxSteps]
		}
	case models.ComplexityIntermediate:
		if len(steps) > intermediateMaxSteps {
			steps = steps[:intermediateMaxSteps]
		}
	}

	plan := &models.Plan{Steps: steps}
	if complexity == models.ComplexityAdvanced && len(steps) > 0 {
		plan.Instructions = instructionsForSteps(parseInstructions(resp.Text), steps)
	}
	return plan, nil
}

// validateSteps keeps only steps naming an available agent, preserving
// order and dropping duplicates. A plan never runs the same agent twice.
func validateSteps(steps []string, agents []*models.AgentSignature) []string {
	known := make(map[string]bool, len(agents))
	for _, a := range agents {
		known[a.Name] = true
	}

	seen := make(map[string]bool, len(steps))
	var out []string
	for _, step := range steps {
		if !known[step] || seen[step] {
			continue
		}
		seen[step] = true
		out = append(out, step)
	}
	return out
}

// instructionsForSteps filters the parsed instruction map down to the
// steps that survived validation.
func instructionsForSteps(all map[string]models.StepSpec, steps []string) map[string]models.StepSpec {
	kept := make(map[string]models.StepSpec, len(steps))
	for _, step := range steps {
		if spec, ok := all[step]; ok {
			kept[step] = spec
		}
	}
	return kept
}
