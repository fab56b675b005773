package llm

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/autoanalyst/analyst/pkg/config"
)

// Factory builds and caches one Client per configured provider name.
// Clients are safe for concurrent use, so caching is per-process.
type Factory struct {
	registry *config.LLMProviderRegistry

	mu      sync.Mutex
	clients map[string]Client
}

// NewFactory creates a factory over the provider registry.
func NewFactory(registry *config.LLMProviderRegistry) *Factory {
	return &Factory{
		registry: registry,
		clients:  make(map[string]Client),
	}
}

// ClientFor returns the cached client for a provider name, constructing
// it on first use.
func (f *Factory) ClientFor(ctx context.Context, name string) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[name]; ok {
		return client, nil
	}

	cfg, err := f.registry.Get(name)
	if err != nil {
		return nil, err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s client: %w", name, err)
	}
	f.clients[name] = client
	return client, nil
}

func newClient(ctx context.Context, cfg *config.LLMProviderConfig) (Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)

	switch cfg.Type {
	case config.ProviderOpenAI:
		return NewOpenAIClient(apiKey, cfg.Model), nil
	case config.ProviderGroq:
		return NewGroqClient(apiKey, cfg.BaseURL, cfg.Model), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(apiKey, cfg.Model), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Type)
	}
}
