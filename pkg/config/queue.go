package config

import "time"

// QueueConfig contains deep-analysis worker pool configuration.
// These values control how analysis jobs are queued and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// MaxQueuedAnalyses is the submission queue depth; submissions beyond
	// this are rejected so callers can surface backpressure.
	MaxQueuedAnalyses int `yaml:"max_queued_analyses"`

	// AnalysisTimeout is the overall ceiling for one deep-analysis run.
	AnalysisTimeout time.Duration `yaml:"analysis_timeout"`

	// StageTimeout is the per-stage budget within a run.
	StageTimeout time.Duration `yaml:"stage_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active analyses
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxQueuedAnalyses:       20,
		AnalysisTimeout:         15 * time.Minute,
		StageTimeout:            5 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}
