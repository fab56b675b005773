package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/pkg/models"
)

// reportSummaryLimit caps the derived report_summary length.
const reportSummaryLimit = 200

// ReportService manages deep-analysis report rows.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// CreatePending inserts the initial pending row for a new run.
func (s *ReportService) CreatePending(ctx context.Context, reportUUID string, userID *int, goal string) (*ent.DeepAnalysisReport, error) {
	if reportUUID == "" {
		return nil, NewValidationError("report_uuid", "required")
	}
	if goal == "" {
		return nil, NewValidationError("goal", "required")
	}

	create := s.client.DeepAnalysisReport.Create().
		SetReportUUID(reportUUID).
		SetGoal(goal).
		SetStatus(deepanalysisreport.StatusPending).
		SetStartTime(time.Now()).
		SetProgressPercentage(0)
	if userID != nil {
		create.SetUserID(*userID)
	}

	report, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// GetByUUID returns one report by its public UUID.
func (s *ReportService) GetByUUID(ctx context.Context, reportUUID string) (*ent.DeepAnalysisReport, error) {
	report, err := s.client.DeepAnalysisReport.Query().
		Where(deepanalysisreport.ReportUUIDEQ(reportUUID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report %s: %w", reportUUID, err)
	}
	return report, nil
}

// ListForUser returns a user's reports, newest first.
func (s *ReportService) ListForUser(ctx context.Context, userID, limit int) ([]*ent.DeepAnalysisReport, error) {
	if limit <= 0 {
		limit = 20
	}
	reports, err := s.client.DeepAnalysisReport.Query().
		Where(deepanalysisreport.UserIDEQ(userID)).
		Order(ent.Desc(deepanalysisreport.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for user %d: %w", userID, err)
	}
	return reports, nil
}

// StageUpdate carries the outputs of one completed pipeline stage.
// Nil fields are left untouched.
type StageUpdate struct {
	Questions  *string
	Plan       *string
	Summaries  []string
	Code       *string
	PlotlyFigs [][]string
	Synthesis  []string
	Conclusion *string
	Step       string
}

// MarkRunning transitions a pending report to running.
func (s *ReportService) MarkRunning(ctx context.Context, reportUUID string, progress int) error {
	return s.updateProgress(ctx, reportUUID, deepanalysisreport.StatusRunning, progress, nil)
}

// RecordStage persists one stage's outputs and advances progress.
// Progress never moves backwards: stale updates are clamped to the
// current persisted value.
func (s *ReportService) RecordStage(ctx context.Context, reportUUID string, progress int, update *StageUpdate) error {
	return s.updateProgress(ctx, reportUUID, deepanalysisreport.StatusRunning, progress, update)
}

// Complete marks the report completed at 100%, storing the rendered HTML
// and computing duration from start_time.
func (s *ReportService) Complete(ctx context.Context, reportUUID, htmlReport string, tokens int, cost float64, credits int) error {
	report, err := s.GetByUUID(ctx, reportUUID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = report.Update().
		SetStatus(deepanalysisreport.StatusCompleted).
		SetProgressPercentage(100).
		SetHTMLReport(htmlReport).
		SetEndTime(now).
		SetDurationSeconds(int(now.Sub(report.StartTime).Seconds())).
		SetTotalTokensUsed(tokens).
		SetEstimatedCost(cost).
		SetCreditsConsumed(credits).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete report %s: %w", reportUUID, err)
	}
	return nil
}

// Fail marks the report failed, recording the error and duration.
func (s *ReportService) Fail(ctx context.Context, reportUUID, errorMessage string) error {
	report, err := s.GetByUUID(ctx, reportUUID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = report.Update().
		SetStatus(deepanalysisreport.StatusFailed).
		SetErrorMessage(errorMessage).
		SetEndTime(now).
		SetDurationSeconds(int(now.Sub(report.StartTime).Seconds())).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark report %s failed: %w", reportUUID, err)
	}
	return nil
}

// SaveHTML stores re-rendered HTML onto an existing report row.
func (s *ReportService) SaveHTML(ctx context.Context, reportUUID, htmlReport string) error {
	report, err := s.GetByUUID(ctx, reportUUID)
	if err != nil {
		return err
	}
	if err := report.Update().SetHTMLReport(htmlReport).Exec(ctx); err != nil {
		return fmt.Errorf("failed to save HTML for report %s: %w", reportUUID, err)
	}
	return nil
}

// MarkStaleRunningFailed marks pending/running reports as failed. Called
// once at startup so rows orphaned by a crash reach a terminal state.
func (s *ReportService) MarkStaleRunningFailed(ctx context.Context, reason string) (int, error) {
	now := time.Now()
	n, err := s.client.DeepAnalysisReport.Update().
		Where(deepanalysisreport.StatusIn(
			deepanalysisreport.StatusPending,
			deepanalysisreport.StatusRunning,
		)).
		SetStatus(deepanalysisreport.StatusFailed).
		SetErrorMessage(reason).
		SetEndTime(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale reports: %w", err)
	}
	return n, nil
}

// DeleteOldFailed removes failed reports older than the retention
// window. Completed reports are kept indefinitely.
func (s *ReportService) DeleteOldFailed(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.client.DeepAnalysisReport.Delete().
		Where(
			deepanalysisreport.StatusEQ(deepanalysisreport.StatusFailed),
			deepanalysisreport.StartTimeLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old failed reports: %w", err)
	}
	return n, nil
}

func (s *ReportService) updateProgress(ctx context.Context, reportUUID string, status deepanalysisreport.Status, progress int, update *StageUpdate) error {
	report, err := s.GetByUUID(ctx, reportUUID)
	if err != nil {
		return err
	}

	// Monotonic progress: never move backwards
	if progress < report.ProgressPercentage {
		progress = report.ProgressPercentage
	}

	up := report.Update().
		SetStatus(status).
		SetProgressPercentage(progress)

	if update != nil {
		if update.Questions != nil {
			up.SetDeepQuestions(*update.Questions)
		}
		if update.Plan != nil {
			up.SetDeepPlan(*update.Plan)
		}
		if update.Summaries != nil {
			up.SetSummaries(update.Summaries)
		}
		if update.Code != nil {
			up.SetAnalysisCode(*update.Code)
		}
		if update.PlotlyFigs != nil {
			figs, err := json.Marshal(update.PlotlyFigs)
			if err != nil {
				return fmt.Errorf("failed to marshal figures: %w", err)
			}
			up.SetPlotlyFigures(figs)
		}
		if update.Synthesis != nil {
			up.SetSynthesis(update.Synthesis)
		}
		if update.Conclusion != nil {
			up.SetFinalConclusion(*update.Conclusion)
			up.SetReportSummary(summaryFromConclusion(*update.Conclusion))
		}
		if update.Step != "" {
			up.SetStepsCompleted(append(report.StepsCompleted, update.Step))
		}
	}

	if err := up.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update report %s: %w", reportUUID, err)
	}
	return nil
}

// summaryFromConclusion derives the short report_summary field.
func summaryFromConclusion(conclusion string) string {
	summary := strings.ReplaceAll(conclusion, "**Conclusion**", "")
	summary = strings.TrimSpace(summary)
	if len(summary) > reportSummaryLimit {
		return summary[:reportSummaryLimit] + "..."
	}
	return summary
}

// ModelSnapshot records which model ran the analysis.
func (s *ReportService) ModelSnapshot(ctx context.Context, reportUUID string, cfg models.ModelConfig) error {
	report, err := s.GetByUUID(ctx, reportUUID)
	if err != nil {
		return err
	}
	err = report.Update().
		SetModelProvider(cfg.Provider).
		SetModelName(cfg.Model).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot model for report %s: %w", reportUUID, err)
	}
	return nil
}
