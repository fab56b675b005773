package models

// Input field names an agent signature may require.
const (
	FieldGoal             = "goal"
	FieldDataset          = "dataset"
	FieldStylingIndex     = "styling_index"
	FieldPlanInstructions = "plan_instructions"
)

// CoreAgentNames are the four default agents, enabled for every user
// unless a preference explicitly disables them. They are exempt from
// usage tracking.
var CoreAgentNames = []string{
	"preprocessing_agent",
	"statistical_analytics_agent",
	"sk_learn_agent",
	"data_viz_agent",
}

// IsCoreAgent reports whether name is one of the four core agents.
func IsCoreAgent(name string) bool {
	for _, core := range CoreAgentNames {
		if name == core {
			return true
		}
	}
	return false
}

// AgentSignature is the runtime view of an agent template: its required
// input fields and how its output is shaped.
type AgentSignature struct {
	Name        string
	Description string
	Prompt      string
	Category    string

	// Inputs lists the required input fields in a stable order.
	Inputs []string

	// IsVisualization marks agents that consume the styling index.
	IsVisualization bool

	// AnswerOnly marks agents (basic QA) that produce {answer} instead
	// of {code, summary}.
	AnswerOnly bool
}

// Requires reports whether the signature's input set contains field.
func (s *AgentSignature) Requires(field string) bool {
	for _, f := range s.Inputs {
		if f == field {
			return true
		}
	}
	return false
}
