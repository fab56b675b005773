package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ReportRetentionDays is how many days to keep failed deep-analysis
	// reports before deleting them. Completed reports are kept.
	ReportRetentionDays int `yaml:"report_retention_days"`

	// EventTTL is the maximum age of progress Event rows before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ReportRetentionDays: 90,
		EventTTL:            24 * time.Hour,
		CleanupInterval:     12 * time.Hour,
	}
}
