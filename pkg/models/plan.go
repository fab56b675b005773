// Package models defines the shared domain types passed between the
// planner, executor, session manager, services, and API layers.
package models

// Complexity is the planner's classification of a query.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
	ComplexityUnrelated    Complexity = "unrelated"
)

// Sentinel plan values. These appear in place of an agent list when the
// planner cannot or should not produce one.
const (
	// PlanNoAgentsAvailable is returned when the user has no enabled agents.
	PlanNoAgentsAvailable = "no_agents_available"

	// BasicQAAgentName handles queries unrelated to the loaded dataset.
	BasicQAAgentName = "basic_qa_agent"
)

// StepSpec is the per-agent I/O contract inside a plan: which variables
// the step creates, which it consumes, and the planner's instruction text.
type StepSpec struct {
	Create      []string `json:"create"`
	Use         []string `json:"use"`
	Instruction string   `json:"instruction"`
}

// Plan is the planner's structured output: an ordered agent sequence with
// per-step contracts. The arrow syntax ("a -> b -> c") and the instruction
// blob are parsed exactly once, at the planner boundary.
type Plan struct {
	Complexity   Complexity          `json:"complexity"`
	Steps        []string            `json:"steps"`
	Instructions map[string]StepSpec `json:"instructions,omitempty"`

	// Reasoning is the classifier's advisory rationale (logged, not acted on).
	Reasoning string `json:"reasoning,omitempty"`
}

// IsEmpty reports whether the plan has no executable steps.
func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.Steps) == 0
}

// IsBasicQA reports whether the plan is the single basic-QA sentinel step.
func (p *Plan) IsBasicQA() bool {
	return p != nil && len(p.Steps) == 1 && p.Steps[0] == BasicQAAgentName
}
