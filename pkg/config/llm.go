package config

import (
	"fmt"
	"sync"
)

// LLMProviderType identifies which provider SDK backs a configuration.
type LLMProviderType string

const (
	ProviderOpenAI    LLMProviderType = "openai"
	ProviderAnthropic LLMProviderType = "anthropic"
	ProviderGroq      LLMProviderType = "groq"
	ProviderGemini    LLMProviderType = "gemini"
)

// Valid reports whether the provider type is one of the supported values.
func (t LLMProviderType) Valid() bool {
	switch t {
	case ProviderOpenAI, ProviderAnthropic, ProviderGroq, ProviderGemini:
		return true
	}
	return false
}

// LLMProviderConfig defines an LM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type" validate:"required"`

	// Default model name (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL (used for Groq's
	// OpenAI-compatible endpoint)
	BaseURL string `yaml:"base_url,omitempty"`

	// Generation bounds applied to every call through this provider
	MaxTokens   int     `yaml:"max_tokens,omitempty" validate:"omitempty,min=1"`
	Temperature float64 `yaml:"temperature,omitempty" validate:"omitempty,min=0,max=2"`
}

// LLMProviderRegistry stores LM provider configurations in memory with
// thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetByModel finds the first provider configuration whose default model
// matches the given model name.
func (r *LLMProviderRegistry) GetByModel(model string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, provider := range r.providers {
		if provider.Model == model {
			return provider, nil
		}
	}
	return nil, fmt.Errorf("%w: no provider configured for model %s", ErrLLMProviderNotFound, model)
}

// GetAll returns all LM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
