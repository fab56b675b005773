package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AnalystYAMLConfig represents the complete analyst.yaml file structure
type AnalystYAMLConfig struct {
	Defaults     *Defaults                     `yaml:"defaults"`
	Queue        *QueueConfig                  `yaml:"queue"`
	Retention    *RetentionConfig              `yaml:"retention"`
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load analyst.yaml from configDir (missing file is fine — built-ins apply)
//  2. Expand ${VAR} environment references
//  3. Merge built-in + user-defined providers (user overrides built-in)
//  4. Apply defaults for unset values
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg, err := loadAnalystYAML(configDir)
	if err != nil {
		return nil, NewLoadError("analyst.yaml", err)
	}

	// Merge built-in + user-defined providers (user overrides built-in)
	builtin := GetBuiltinConfig()
	providers := make(map[string]*LLMProviderConfig, len(builtin.LLMProviders))
	for name, p := range builtin.LLMProviders {
		providers[name] = p
	}
	for name, p := range yamlCfg.LLMProviders {
		providers[name] = p
	}

	defaults := resolveDefaults(yamlCfg.Defaults)
	queue := resolveQueue(yamlCfg.Queue)
	retention := resolveRetention(yamlCfg.Retention)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queue,
		Retention:           retention,
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
	}, nil
}

func loadAnalystYAML(configDir string) (*AnalystYAMLConfig, error) {
	var cfg AnalystYAMLConfig
	cfg.LLMProviders = make(map[string]*LLMProviderConfig)

	path := filepath.Join(configDir, "analyst.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file — built-in defaults apply
			slog.Info("No analyst.yaml found, using built-in configuration", "path", path)
			return &cfg, nil
		}
		return nil, err
	}

	// Expand ${VAR} references before parsing so secrets stay out of YAML
	data = []byte(os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	}))

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &cfg, nil
}

// resolveDefaults applies built-in defaults for any unset values.
func resolveDefaults(user *Defaults) *Defaults {
	cfg := DefaultDefaults()
	if user == nil {
		return cfg
	}
	if user.LLMProvider != "" {
		cfg.LLMProvider = user.LLMProvider
	}
	if user.RequestTimeout > 0 {
		cfg.RequestTimeout = user.RequestTimeout
	}
	if user.MaxRecentMessages > 0 {
		cfg.MaxRecentMessages = user.MaxRecentMessages
	}
	if user.DatasetDescription != "" {
		cfg.DatasetDescription = user.DatasetDescription
	}
	return cfg
}

func resolveQueue(user *QueueConfig) *QueueConfig {
	cfg := DefaultQueueConfig()
	if user == nil {
		return cfg
	}
	if user.WorkerCount > 0 {
		cfg.WorkerCount = user.WorkerCount
	}
	if user.MaxQueuedAnalyses > 0 {
		cfg.MaxQueuedAnalyses = user.MaxQueuedAnalyses
	}
	if user.AnalysisTimeout > 0 {
		cfg.AnalysisTimeout = user.AnalysisTimeout
	}
	if user.StageTimeout > 0 {
		cfg.StageTimeout = user.StageTimeout
	}
	if user.GracefulShutdownTimeout > 0 {
		cfg.GracefulShutdownTimeout = user.GracefulShutdownTimeout
	}
	return cfg
}

func resolveRetention(user *RetentionConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if user == nil {
		return cfg
	}
	if user.ReportRetentionDays > 0 {
		cfg.ReportRetentionDays = user.ReportRetentionDays
	}
	if user.EventTTL > 0 {
		cfg.EventTTL = user.EventTTL
	}
	if user.CleanupInterval > 0 {
		cfg.CleanupInterval = user.CleanupInterval
	}
	return cfg
}
