package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	v := validator.New()

	if cfg.LLMProviderRegistry.Len() == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	for name, provider := range cfg.LLMProviderRegistry.GetAll() {
		if err := v.Struct(provider); err != nil {
			return fmt.Errorf("llm_provider %q: %w", name, err)
		}
		if !provider.Type.Valid() {
			return fmt.Errorf("llm_provider %q: unsupported type %q", name, provider.Type)
		}
	}

	if !cfg.LLMProviderRegistry.Has(cfg.Defaults.LLMProvider) {
		return fmt.Errorf("defaults.llm_provider %q is not a configured provider", cfg.Defaults.LLMProvider)
	}

	if err := v.Struct(cfg.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	if cfg.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be at least 1")
	}

	return nil
}
