// Package deep runs the multi-stage deep-analysis pipeline: analytical
// questions, an execution plan, agent runs, synthesis, a conclusion, and
// a rendered HTML report. Every stage persists its output and progress
// before the next begins, so an interrupted run leaves a usable record.
package deep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoanalyst/analyst/pkg/agent"
	"github.com/autoanalyst/analyst/pkg/events"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/render"
	"github.com/autoanalyst/analyst/pkg/retriever"
	"github.com/autoanalyst/analyst/pkg/services"
	"github.com/autoanalyst/analyst/pkg/usage"
)

// Stage progress checkpoints. Progress is monotonic within a run; the
// analysis stage interpolates between its start and end values as agents
// finish.
const (
	progressInitialization = 5
	progressQuestions      = 20
	progressPlanning       = 40
	progressAnalysisStart  = 70
	progressAnalysisEnd    = 85
	progressSynthesis      = 90
	progressConclusion     = 95
	progressReport         = 100
)

// cancelledMessage is the terminal error_message for cancelled runs.
const cancelledMessage = "cancelled"

// ReportStore persists a run's lifecycle. ReportService is the
// production implementation.
type ReportStore interface {
	MarkRunning(ctx context.Context, reportUUID string, progress int) error
	RecordStage(ctx context.Context, reportUUID string, progress int, update *services.StageUpdate) error
	Complete(ctx context.Context, reportUUID, htmlReport string, tokens int, cost float64, credits int) error
	Fail(ctx context.Context, reportUUID, errorMessage string) error
}

// ProgressSink publishes stage transitions for out-of-process consumers.
// ProgressPublisher is the production implementation.
type ProgressSink interface {
	PublishStageStatus(ctx context.Context, reportUUID string, payload events.StageStatusPayload) error
	PublishReportCompleted(ctx context.Context, reportUUID string, payload events.ReportCompletedPayload) error
	PublishReportFailed(ctx context.Context, reportUUID string, payload events.ReportFailedPayload) error
}

// Analyzer runs deep analyses for one session. It is built per user by
// the session manager from that user's planner-enabled agents.
type Analyzer struct {
	agents  []*models.AgentSignature
	client  llm.Client
	cfg     models.ModelConfig
	rets    *retriever.Set
	reports ReportStore
	sink    ProgressSink
	logger  *slog.Logger
}

// NewAnalyzer creates an analyzer. reports and sink may be nil for
// in-memory runs (tests); production always wires both.
func NewAnalyzer(agents []*models.AgentSignature, client llm.Client, cfg models.ModelConfig, rets *retriever.Set, reports ReportStore, sink ProgressSink) *Analyzer {
	return &Analyzer{
		agents:  agents,
		client:  client,
		cfg:     cfg,
		rets:    rets,
		reports: reports,
		sink:    sink,
		logger:  slog.Default().With("component", "deep"),
	}
}

// accounting accumulates a run's token and credit usage.
type accounting struct {
	promptTokens     int
	completionTokens int
	credits          int
}

func (ac *accounting) total() int { return ac.promptTokens + ac.completionTokens }

// Run executes the pipeline for a pending report and streams stage
// events. The terminal event is either step=completed carrying the full
// bundle and HTML, or step=error. Cancellation writes a terminal failed
// row with error_message "cancelled".
func (a *Analyzer) Run(ctx context.Context, reportUUID, goal string) <-chan models.StageEvent {
	// One slot of buffer so the terminal error frame can be delivered
	// even after the consumer's context is cancelled.
	out := make(chan models.StageEvent, 1)
	go func() {
		defer close(out)
		// A panicking stage must not leave the report stuck in running.
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("Deep-analysis run panicked",
					"report_uuid", reportUUID, "panic", r)
				a.finishFailed(ctx, reportUUID, fmt.Errorf("internal error: %v", r), out)
			}
		}()
		if err := a.run(ctx, reportUUID, goal, out); err != nil {
			a.finishFailed(ctx, reportUUID, err, out)
		}
	}()
	return out
}

func (a *Analyzer) run(ctx context.Context, reportUUID, goal string, out chan<- models.StageEvent) error {
	bundle := &models.AnalysisBundle{Goal: goal}
	acct := &accounting{}

	// initialization: bind the dataset and mark the report running
	datasetDesc, err := retriever.Top1(ctx, a.rets.Dataset, goal)
	if err != nil {
		return fmt.Errorf("binding dataset: %w", err)
	}
	if a.reports != nil {
		if err := a.reports.MarkRunning(ctx, reportUUID, progressInitialization); err != nil {
			return err
		}
	}
	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepInitialization,
		Status:   models.StageStatusCompleted,
		Message:  "analysis started",
		Progress: progressInitialization,
	}); err != nil {
		return err
	}

	// questions
	questions, err := a.generate(ctx, acct, questionsSystemPrompt, buildQuestionsPrompt(goal, datasetDesc))
	if err != nil {
		return fmt.Errorf("generating questions: %w", err)
	}
	bundle.DeepQuestions = questions
	if err := a.recordStage(ctx, reportUUID, progressQuestions, &services.StageUpdate{
		Step:      models.StepQuestions,
		Questions: &questions,
	}); err != nil {
		return err
	}
	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepQuestions,
		Status:   models.StageStatusCompleted,
		Progress: progressQuestions,
		Content:  questions,
	}); err != nil {
		return err
	}

	// planning
	plan, err := a.generate(ctx, acct, planningSystemPrompt, buildPlanningPrompt(goal, datasetDesc, questions, a.agents))
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}
	bundle.DeepPlan = plan
	if err := a.recordStage(ctx, reportUUID, progressPlanning, &services.StageUpdate{
		Step: models.StepPlanning,
		Plan: &plan,
	}); err != nil {
		return err
	}
	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepPlanning,
		Status:   models.StageStatusCompleted,
		Progress: progressPlanning,
		Content:  plan,
	}); err != nil {
		return err
	}

	// analysis: run each agent, collecting code, summaries, and figures
	if err := a.runAgents(ctx, reportUUID, goal, datasetDesc, questions, plan, bundle, acct, out); err != nil {
		return err
	}

	// synthesis
	synthesis, err := a.generate(ctx, acct, synthesisSystemPrompt, buildSynthesisPrompt(goal, bundle.Summaries))
	if err != nil {
		return fmt.Errorf("synthesizing findings: %w", err)
	}
	bundle.Synthesis = []string{synthesis}
	if err := a.recordStage(ctx, reportUUID, progressSynthesis, &services.StageUpdate{
		Step:      models.StepSynthesis,
		Synthesis: []string{synthesis},
	}); err != nil {
		return err
	}
	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepSynthesis,
		Status:   models.StageStatusCompleted,
		Progress: progressSynthesis,
		Content:  synthesis,
	}); err != nil {
		return err
	}

	// conclusion
	conclusion, err := a.generate(ctx, acct, conclusionSystemPrompt, buildConclusionPrompt(goal, synthesis))
	if err != nil {
		return fmt.Errorf("writing conclusion: %w", err)
	}
	bundle.FinalConclusion = conclusion
	if err := a.recordStage(ctx, reportUUID, progressConclusion, &services.StageUpdate{
		Step:       models.StepConclusion,
		Conclusion: &conclusion,
	}); err != nil {
		return err
	}
	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepConclusion,
		Status:   models.StageStatusCompleted,
		Progress: progressConclusion,
		Content:  conclusion,
	}); err != nil {
		return err
	}

	// report: render once, from the collected figure objects
	html, err := render.Report(bundle)
	if err != nil {
		return err
	}
	return a.finishCompleted(ctx, reportUUID, bundle, html, acct, out)
}

// runAgents executes the analyzer's agents sequentially, interpolating
// progress across the analysis band. Per-agent failures are contained as
// error summaries so the synthesis still has material to work with.
func (a *Analyzer) runAgents(ctx context.Context, reportUUID, goal, datasetDesc, questions, plan string, bundle *models.AnalysisBundle, acct *accounting, out chan<- models.StageEvent) error {
	var codeParts []string
	for i, sig := range a.agents {
		progress := analysisProgress(i, len(a.agents))

		inputs := map[string]string{models.FieldGoal: buildAgentGoal(goal, questions, plan)}
		if sig.Requires(models.FieldDataset) {
			inputs[models.FieldDataset] = datasetDesc
		}
		if sig.Requires(models.FieldStylingIndex) {
			style, err := retriever.Top1(ctx, a.rets.Style, goal)
			if err != nil {
				return fmt.Errorf("retrieving styling context: %w", err)
			}
			inputs[models.FieldStylingIndex] = style
		}
		if sig.Requires(models.FieldPlanInstructions) {
			inputs[models.FieldPlanInstructions] = ""
		}

		result, err := agent.NewTemplateAgent(sig, a.client, a.cfg).Forward(ctx, inputs)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Warn("Deep-analysis agent failed", "agent", sig.Name, "error", err)
			bundle.Summaries = append(bundle.Summaries, fmt.Sprintf("%s failed: %v", sig.Name, err))
		} else {
			acct.promptTokens += result.PromptTokens
			acct.completionTokens += result.CompletionTokens
			acct.credits += usage.Credits(a.cfg.Model)
			if result.Output.Summary != "" {
				bundle.Summaries = append(bundle.Summaries, result.Output.Summary)
			}
			if result.Output.Code != "" {
				codeParts = append(codeParts, fmt.Sprintf("# %s\n%s", sig.Name, result.Output.Code))
				if figs := extractFigures(result.Output.Code); len(figs) > 0 {
					bundle.PlotlyFigs = append(bundle.PlotlyFigs, figs)
				}
			}
		}

		if err := a.emit(ctx, reportUUID, out, models.StageEvent{
			Step:     models.StepAnalysis,
			Status:   models.StageStatusProcessing,
			Message:  sig.Name,
			Progress: progress,
		}); err != nil {
			return err
		}
	}

	bundle.Code = strings.Join(codeParts, "\n\n")
	if err := a.recordStage(ctx, reportUUID, progressAnalysisEnd, &services.StageUpdate{
		Step:       models.StepAnalysis,
		Summaries:  bundle.Summaries,
		Code:       &bundle.Code,
		PlotlyFigs: bundle.PlotlyFigs,
	}); err != nil {
		return err
	}
	return a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepAnalysis,
		Status:   models.StageStatusCompleted,
		Progress: progressAnalysisEnd,
	})
}

// analysisProgress maps agent index i of n onto the analysis band.
func analysisProgress(i, n int) int {
	if n <= 1 {
		return progressAnalysisEnd
	}
	span := progressAnalysisEnd - progressAnalysisStart
	return progressAnalysisStart + span*(i+1)/n
}

// generate runs one pipeline-level LM call and accounts its usage.
func (a *Analyzer) generate(ctx context.Context, acct *accounting, system, prompt string) (string, error) {
	resp, err := a.client.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	promptTokens := resp.PromptTokens
	if promptTokens == 0 {
		promptTokens = usage.EstimateTokens(prompt)
	}
	completionTokens := resp.CompletionTokens
	if completionTokens == 0 {
		completionTokens = usage.EstimateTokens(resp.Text)
	}
	acct.promptTokens += promptTokens
	acct.completionTokens += completionTokens
	acct.credits += usage.Credits(a.cfg.Model)

	return strings.TrimSpace(resp.Text), nil
}

func (a *Analyzer) recordStage(ctx context.Context, reportUUID string, progress int, update *services.StageUpdate) error {
	if a.reports == nil {
		return nil
	}
	return a.reports.RecordStage(ctx, reportUUID, progress, update)
}

// emit publishes the stage transition and sends it to the local stream.
func (a *Analyzer) emit(ctx context.Context, reportUUID string, out chan<- models.StageEvent, evt models.StageEvent) error {
	if a.sink != nil {
		err := a.sink.PublishStageStatus(ctx, reportUUID, events.StageStatusPayload{
			Step:     evt.Step,
			Status:   evt.Status,
			Message:  evt.Message,
			Progress: evt.Progress,
			Content:  evt.Content,
		})
		if err != nil {
			a.logger.Warn("Failed to publish stage status", "report_uuid", reportUUID, "error", err)
		}
	}

	select {
	case out <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finishCompleted persists terminal success and emits the final frame.
func (a *Analyzer) finishCompleted(ctx context.Context, reportUUID string, bundle *models.AnalysisBundle, html string, acct *accounting, out chan<- models.StageEvent) error {
	cost := usage.Cost(a.cfg.Model, acct.promptTokens, acct.completionTokens)
	if a.reports != nil {
		if err := a.reports.Complete(ctx, reportUUID, html, acct.total(), cost, acct.credits); err != nil {
			return err
		}
	}
	if a.sink != nil {
		err := a.sink.PublishReportCompleted(ctx, reportUUID, events.ReportCompletedPayload{
			ReportSummary: summarize(bundle.FinalConclusion),
		})
		if err != nil {
			a.logger.Warn("Failed to publish report completion", "report_uuid", reportUUID, "error", err)
		}
	}

	if err := a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:     models.StepReport,
		Status:   models.StageStatusCompleted,
		Progress: progressReport,
	}); err != nil {
		return err
	}
	return a.emit(ctx, reportUUID, out, models.StageEvent{
		Step:       models.StepCompleted,
		Status:     models.StageStatusSuccess,
		Progress:   progressReport,
		Analysis:   bundle,
		HTMLReport: html,
	})
}

// finishFailed persists terminal failure. Persistence uses a detached
// context so a cancelled run still writes its failed row.
func (a *Analyzer) finishFailed(ctx context.Context, reportUUID string, runErr error, out chan<- models.StageEvent) {
	msg := runErr.Error()
	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		msg = cancelledMessage
	}

	persistCtx := context.WithoutCancel(ctx)
	if a.reports != nil {
		if err := a.reports.Fail(persistCtx, reportUUID, msg); err != nil {
			a.logger.Error("Failed to persist deep-analysis failure",
				"report_uuid", reportUUID, "error", err)
		}
	}
	if a.sink != nil {
		err := a.sink.PublishReportFailed(persistCtx, reportUUID, events.ReportFailedPayload{Error: msg})
		if err != nil {
			a.logger.Warn("Failed to publish report failure", "report_uuid", reportUUID, "error", err)
		}
	}

	select {
	case out <- models.StageEvent{
		Step:    models.StepError,
		Status:  models.StageStatusFailed,
		Message: msg,
	}:
	default:
		// Consumer is gone and the buffer is full; the failure is
		// already persisted.
	}
}

// summarize truncates a conclusion for the completion notification.
func summarize(conclusion string) string {
	const limit = 200
	s := strings.TrimSpace(conclusion)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
