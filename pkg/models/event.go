package models

// Event status values used in streamed frames.
const (
	EventStatusSuccess = "success"
	EventStatusError   = "error"
)

// Sentinel agent names for executor-level failures. They take the place
// of a real agent name in the emitted event.
const (
	EventPlanNotFound     = "plan_not_found"
	EventPlanNotFormatted = "plan_not_formatted_correctly"
)

// AgentOutput is the structured result of one agent invocation.
// Code/Summary are set for analysis agents, Answer for the basic QA agent.
type AgentOutput struct {
	Code    string `json:"code,omitempty"`
	Summary string `json:"summary,omitempty"`
	Answer  string `json:"answer,omitempty"`
	Error   string `json:"error,omitempty"`
}

// IsError reports whether the output carries an agent-level error.
func (o *AgentOutput) IsError() bool {
	return o != nil && o.Error != ""
}

// ExecutionEvent is one step result emitted during plan execution.
// Events are produced strictly in plan order; streaming consumers rely
// on that ordering for UI state.
type ExecutionEvent struct {
	Agent  string            `json:"agent"`
	Inputs map[string]string `json:"inputs,omitempty"`
	Output *AgentOutput      `json:"output,omitempty"`
	Status string            `json:"status"`
}

// StreamFrame is the NDJSON wire form of one streamed chat event.
type StreamFrame struct {
	Agent   string `json:"agent"`
	Content string `json:"content"`
	Status  string `json:"status"`
}
