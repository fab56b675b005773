package models

// ModelConfig is the per-session LM configuration. It travels explicitly
// through every agent invocation — there is no process-global model.
type ModelConfig struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	APIKey      string  `json:"-"`
}
