// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes failed deep-analysis reports past the retention window
//   - Removes progress Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config        *config.RetentionConfig
	reportService *services.ReportService
	eventService  *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	reportService *services.ReportService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:        cfg,
		reportService: reportService,
		eventService:  eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"report_retention_days", s.config.ReportRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldFailedReports(ctx)
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) deleteOldFailedReports(_ context.Context) {
	count, err := s.reportService.DeleteOldFailed(context.Background(), s.config.ReportRetentionDays)
	if err != nil {
		slog.Error("Retention: failed-report cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old failed reports", "count", count)
	}
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.DeleteEventsBefore(context.Background(), time.Now().Add(-s.config.EventTTL))
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}
