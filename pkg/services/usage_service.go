package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// UsageService persists model usage records and template usage counters.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// UsageRecord is one model invocation's accounting data.
type UsageRecord struct {
	UserID           *int
	ChatID           *int
	ModelName        string
	Provider         string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	QuerySize        int
	ResponseSize     int
	Cost             float64
	RequestTimeMs    int
	IsStreaming      bool
}

// RecordUsage writes one usage row. Failures here must never fail the
// request that produced them — callers log and move on.
func (s *UsageService) RecordUsage(ctx context.Context, rec UsageRecord) error {
	if rec.ModelName == "" {
		return NewValidationError("model_name", "required")
	}

	create := s.client.ModelUsage.Create().
		SetModelName(rec.ModelName).
		SetProvider(rec.Provider).
		SetPromptTokens(rec.PromptTokens).
		SetCompletionTokens(rec.CompletionTokens).
		SetTotalTokens(rec.TotalTokens).
		SetQuerySize(rec.QuerySize).
		SetResponseSize(rec.ResponseSize).
		SetCost(rec.Cost).
		SetTimestamp(time.Now()).
		SetIsStreaming(rec.IsStreaming).
		SetRequestTimeMs(rec.RequestTimeMs)
	if rec.UserID != nil {
		create.SetUserID(*rec.UserID)
	}
	if rec.ChatID != nil {
		create.SetChatID(*rec.ChatID)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record model usage: %w", err)
	}
	return nil
}

// IncrementTemplateUsage bumps (user, template) usage_count and stamps
// last_used_at, creating the preference row (disabled) when missing.
func (s *UsageService) IncrementTemplateUsage(ctx context.Context, userID int, templateName string) error {
	template, err := s.client.AgentTemplate.Query().
		Where(agenttemplate.TemplateNameEQ(templateName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find template %q: %w", templateName, err)
	}

	now := time.Now()
	pref, err := s.client.UserTemplatePreference.Query().
		Where(
			usertemplatepreference.UserIDEQ(userID),
			usertemplatepreference.TemplateIDEQ(template.ID),
		).
		Only(ctx)
	switch {
	case err == nil:
		err = pref.Update().
			AddUsageCount(1).
			SetLastUsedAt(now).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to increment usage for %q: %w", templateName, err)
		}
	case ent.IsNotFound(err):
		// Usage of a template the user never toggled: record the counter
		// but leave it disabled for planner mode.
		_, err = s.client.UserTemplatePreference.Create().
			SetUserID(userID).
			SetTemplateID(template.ID).
			SetIsEnabled(false).
			SetUsageCount(1).
			SetLastUsedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create usage preference for %q: %w", templateName, err)
		}
	default:
		return fmt.Errorf("failed to query preference for %q: %w", templateName, err)
	}
	return nil
}
