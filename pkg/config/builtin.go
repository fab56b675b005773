package config

// BuiltinConfig holds the configuration that ships with the binary.
// User YAML overrides these entries key by key.
type BuiltinConfig struct {
	LLMProviders map[string]*LLMProviderConfig
}

// GetBuiltinConfig returns the built-in provider set. Every supported
// provider type gets a working default so a bare config directory still
// boots (API keys permitting).
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		LLMProviders: map[string]*LLMProviderConfig{
			"openai": {
				Type:        ProviderOpenAI,
				Model:       "gpt-4o-mini",
				APIKeyEnv:   "OPENAI_API_KEY",
				MaxTokens:   6000,
				Temperature: 1.0,
			},
			"anthropic": {
				Type:        ProviderAnthropic,
				Model:       "claude-sonnet-4-20250514",
				APIKeyEnv:   "ANTHROPIC_API_KEY",
				MaxTokens:   7000,
				Temperature: 0.5,
			},
			"groq": {
				Type:        ProviderGroq,
				Model:       "llama-3.3-70b-versatile",
				APIKeyEnv:   "GROQ_API_KEY",
				BaseURL:     "https://api.groq.com/openai/v1",
				MaxTokens:   6000,
				Temperature: 1.0,
			},
			"gemini": {
				Type:        ProviderGemini,
				Model:       "gemini-2.5-pro",
				APIKeyEnv:   "GEMINI_API_KEY",
				MaxTokens:   6000,
				Temperature: 1.0,
			},
		},
	}
}
