package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_NoConfigFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	// Built-in providers are present
	assert.True(t, cfg.LLMProviderRegistry.Has("openai"))
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic"))
	assert.True(t, cfg.LLMProviderRegistry.Has("groq"))
	assert.True(t, cfg.LLMProviderRegistry.Has("gemini"))

	// Built-in defaults applied
	assert.Equal(t, "openai", cfg.Defaults.LLMProvider)
	assert.Equal(t, 120*time.Second, cfg.Defaults.RequestTimeout)
	assert.Equal(t, 10, cfg.Defaults.MaxRecentMessages)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
defaults:
  llm_provider: anthropic
  request_timeout: 60s
queue:
  worker_count: 7
llm_providers:
  anthropic:
    type: anthropic
    model: claude-sonnet-4-20250514
    api_key_env: ANTHROPIC_API_KEY
    max_tokens: 4000
    temperature: 0.2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyst.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Defaults.LLMProvider)
	assert.Equal(t, 60*time.Second, cfg.Defaults.RequestTimeout)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)

	p, err := cfg.GetLLMProvider("anthropic")
	require.NoError(t, err)
	assert.Equal(t, 4000, p.MaxTokens)
	assert.InDelta(t, 0.2, p.Temperature, 0.001)

	// Built-ins that were not overridden survive the merge
	assert.True(t, cfg.LLMProviderRegistry.Has("groq"))
}

func TestInitialize_EnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_GROQ_URL", "https://groq.example.com/openai/v1")
	yaml := `
llm_providers:
  groq:
    type: groq
    model: llama-3.3-70b-versatile
    base_url: ${TEST_GROQ_URL}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyst.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, err := cfg.GetLLMProvider("groq")
	require.NoError(t, err)
	assert.Equal(t, "https://groq.example.com/openai/v1", p.BaseURL)
}

func TestInitialize_InvalidProvider(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm_providers:
  broken:
    type: watsonx
    model: some-model
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyst.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestInitialize_UnknownDefaultProvider(t *testing.T) {
	dir := t.TempDir()
	yaml := `
defaults:
  llm_provider: missing
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyst.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestLLMProviderRegistry(t *testing.T) {
	reg := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openai": {Type: ProviderOpenAI, Model: "gpt-4o-mini"},
	})

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Has("openai"))
	assert.False(t, reg.Has("gemini"))

	p, err := reg.Get("openai")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.Model)

	_, err = reg.Get("nope")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)

	byModel, err := reg.GetByModel("gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, byModel.Type)
}
