package usage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/autoanalyst/analyst/pkg/agent"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
)

// Billable reports whether an agent's runs count against the user's
// template usage. The four core agents and the QA fallback are exempt.
func Billable(agentName string) bool {
	return !models.IsCoreAgent(agentName) && agentName != models.BasicQAAgentName
}

// Tracker records agent invocations for one session's model
// configuration and chat. It satisfies the orchestrator's UsageRecorder.
type Tracker struct {
	usage  *services.UsageService
	cfg    models.ModelConfig
	chatID *int
	logger *slog.Logger
}

// NewTracker creates a tracker bound to the session's model config and
// chat. chatID may be nil for sessions without a chat binding.
func NewTracker(usage *services.UsageService, cfg models.ModelConfig, chatID *int) *Tracker {
	return &Tracker{
		usage:  usage,
		cfg:    cfg,
		chatID: chatID,
		logger: slog.Default().With("component", "usage"),
	}
}

// RecordAgentRun writes one model-usage row and, for billable agents,
// bumps the user's template usage counter. Exact token counts from the
// provider are preferred; missing counts fall back to local tokenization.
// Failures are logged and swallowed.
func (t *Tracker) RecordAgentRun(ctx context.Context, userID int, agentName, query string, res *agent.Result) {
	response := responseText(&res.Output)

	promptTokens := res.PromptTokens
	if promptTokens == 0 {
		promptTokens = CountTokens(t.cfg.Model, query)
	}
	completionTokens := res.CompletionTokens
	if completionTokens == 0 {
		completionTokens = CountTokens(t.cfg.Model, response)
	}

	rec := services.UsageRecord{
		UserID:           &userID,
		ChatID:           t.chatID,
		ModelName:        t.cfg.Model,
		Provider:         t.cfg.Provider,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		QuerySize:        len(query),
		ResponseSize:     len(response),
		Cost:             Cost(t.cfg.Model, promptTokens, completionTokens),
		RequestTimeMs:    int(res.Elapsed.Milliseconds()),
		IsStreaming:      true,
	}
	if err := t.usage.RecordUsage(ctx, rec); err != nil {
		t.logger.Warn("Failed to record model usage", "agent", agentName, "error", err)
	}

	if !Billable(agentName) {
		return
	}
	if err := t.usage.IncrementTemplateUsage(ctx, userID, agentName); err != nil {
		t.logger.Warn("Failed to increment template usage",
			"agent", agentName, "user_id", userID, "error", err)
	}
}

// responseText flattens an agent output for size accounting.
func responseText(out *models.AgentOutput) string {
	if out.Answer != "" {
		return out.Answer
	}
	var parts []string
	if out.Code != "" {
		parts = append(parts, out.Code)
	}
	if out.Summary != "" {
		parts = append(parts, out.Summary)
	}
	if out.Error != "" {
		parts = append(parts, out.Error)
	}
	return strings.Join(parts, "\n")
}
