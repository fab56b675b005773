// Package config loads and validates the application configuration:
// system defaults, worker pool settings, retention policy, and the LM
// provider registry.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed to the components that need it.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Deep-analysis worker pool configuration
	Queue *QueueConfig

	// Data retention and cleanup configuration
	Retention *RetentionConfig

	// LM provider registry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}
