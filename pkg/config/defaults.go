package config

import "time"

// Defaults contains system-wide default configurations.
// These values apply when a session does not specify its own.
type Defaults struct {
	// LLMProvider is the provider registry key used when a session has no
	// explicit model configuration.
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// RequestTimeout is the hard cap for one interactive chat request,
	// including planning and all agent invocations.
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`

	// MaxRecentMessages is how many prior chat messages are folded into
	// the query as conversation context.
	MaxRecentMessages int `yaml:"max_recent_messages,omitempty" validate:"omitempty,min=0"`

	// DatasetDescription primes agents when a session's dataset carries
	// no description of its own.
	DatasetDescription string `yaml:"dataset_description,omitempty"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		LLMProvider:        "openai",
		RequestTimeout:     120 * time.Second,
		MaxRecentMessages:  10,
		DatasetDescription: "No dataset description provided.",
	}
}
