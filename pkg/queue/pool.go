// Package queue runs deep analyses in the background: a bounded
// submission queue, a fixed worker pool, per-run cancellation, and a
// startup sweep for reports orphaned by a previous run.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
)

// ErrQueueFull is returned when the submission queue is at capacity.
// Callers surface it as backpressure rather than waiting.
var ErrQueueFull = errors.New("analysis queue is full")

// Job is one queued deep-analysis run. The analyzer carries its own
// persistence and publishing wiring; the pool only drives execution.
type Job struct {
	ReportUUID string
	Goal       string
	Analyzer   *deep.Analyzer
}

// WorkerPool processes queued analyses with a fixed number of workers.
type WorkerPool struct {
	cfg  *config.QueueConfig
	jobs chan Job

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.RWMutex
	active    map[string]context.CancelFunc
	processed int
	started   bool
}

// NewWorkerPool creates a pool sized by the queue configuration.
func NewWorkerPool(cfg *config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		cfg:    cfg,
		jobs:   make(chan Job, cfg.MaxQueuedAnalyses),
		stopCh: make(chan struct{}),
		active: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call once; duplicate
// calls are ignored.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	slog.Info("Starting analysis worker pool",
		"worker_count", p.cfg.WorkerCount,
		"queue_capacity", p.cfg.MaxQueuedAnalyses)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.runWorker(ctx, workerID)
		}()
	}
}

// Stop drains gracefully: workers finish their current runs, bounded by
// the graceful-shutdown timeout, after which active runs are cancelled.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping analysis worker pool")
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timed out, cancelling active analyses")
		p.cancelAll()
		<-done
	}
	slog.Info("Analysis worker pool stopped")
}

// Submit enqueues a run. Returns ErrQueueFull when the queue is at
// capacity.
func (p *WorkerPool) Submit(job Job) error {
	select {
	case p.jobs <- job:
		slog.Info("Deep analysis queued",
			"report_uuid", job.ReportUUID, "queue_depth", len(p.jobs))
		return nil
	default:
		return ErrQueueFull
	}
}

// Cancel aborts an active run. Returns false when the run is not active
// on this replica (finished, queued, or unknown).
func (p *WorkerPool) Cancel(reportUUID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[reportUUID]; ok {
		cancel()
		return true
	}
	return false
}

// Health is the pool's live state for the health endpoint.
type Health struct {
	Workers    int `json:"workers"`
	Active     int `json:"active"`
	QueueDepth int `json:"queue_depth"`
	Capacity   int `json:"capacity"`
	Processed  int `json:"processed"`
}

// Stats returns the pool's current health snapshot.
func (p *WorkerPool) Stats() Health {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Health{
		Workers:    p.cfg.WorkerCount,
		Active:     len(p.active),
		QueueDepth: len(p.jobs),
		Capacity:   p.cfg.MaxQueuedAnalyses,
		Processed:  p.processed,
	}
}

func (p *WorkerPool) runWorker(ctx context.Context, workerID string) {
	log := slog.Default().With("worker_id", workerID)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case job := <-p.jobs:
			p.runJob(ctx, log, job)
		}
	}
}

// runJob drives one analysis to its terminal state. The analyzer
// persists and publishes every stage itself; the pool consumes the
// stream for logging and enforces the overall timeout.
func (p *WorkerPool) runJob(ctx context.Context, log *slog.Logger, job Job) {
	runCtx, cancel := context.WithTimeout(ctx, p.cfg.AnalysisTimeout)
	defer cancel()

	p.mu.Lock()
	p.active[job.ReportUUID] = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.active, job.ReportUUID)
		p.processed++
		p.mu.Unlock()
	}()
	// A panicking job must not take the worker down with it.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Analysis job panicked",
				"report_uuid", job.ReportUUID, "panic", r)
		}
	}()

	log.Info("Deep analysis started", "report_uuid", job.ReportUUID)
	start := time.Now()

	var terminal models.StageEvent
	for evt := range job.Analyzer.Run(runCtx, job.ReportUUID, job.Goal) {
		terminal = evt
	}

	log.Info("Deep analysis finished",
		"report_uuid", job.ReportUUID,
		"step", terminal.Step,
		"status", terminal.Status,
		"elapsed", time.Since(start).Round(time.Millisecond))
}

func (p *WorkerPool) cancelAll() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, cancel := range p.active {
		cancel()
	}
}

// CleanupStartupOrphans marks reports left pending or running by a
// previous process as failed. Called once at startup, before the pool
// begins processing.
func CleanupStartupOrphans(ctx context.Context, reports *services.ReportService) error {
	n, err := reports.MarkStaleRunningFailed(ctx, "server restarted while analysis was running")
	if err != nil {
		return fmt.Errorf("failed to sweep orphaned reports: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered orphaned deep-analysis reports", "count", n)
	}
	return nil
}
