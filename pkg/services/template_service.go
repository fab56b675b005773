// Package services contains the business logic layer over the Ent client.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
	"github.com/autoanalyst/analyst/pkg/models"
)

// PlannerTemplateLimit caps how many templates the planner sees per user.
// Enforced both at registry load time and at bulk-toggle time.
const PlannerTemplateLimit = 10

// TemplateService manages agent templates and per-user preferences.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// TemplateWithPreference pairs a template with one user's preference state.
type TemplateWithPreference struct {
	Template   *ent.AgentTemplate
	IsEnabled  bool
	UsageCount int
	LastUsedAt *time.Time
}

// ListAll returns every template, active or not.
func (s *TemplateService) ListAll(ctx context.Context) ([]*ent.AgentTemplate, error) {
	templates, err := s.client.AgentTemplate.Query().
		Order(ent.Asc(agenttemplate.FieldTemplateName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// GetByID returns one template by its ID.
func (s *TemplateService) GetByID(ctx context.Context, templateID int) (*ent.AgentTemplate, error) {
	template, err := s.client.AgentTemplate.Get(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template %d: %w", templateID, err)
	}
	return template, nil
}

// GetByName returns one template by its unique name.
func (s *TemplateService) GetByName(ctx context.Context, name string) (*ent.AgentTemplate, error) {
	template, err := s.client.AgentTemplate.Query().
		Where(agenttemplate.TemplateNameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template %q: %w", name, err)
	}
	return template, nil
}

// ListByCategory returns active templates in one category.
func (s *TemplateService) ListByCategory(ctx context.Context, category string) ([]*ent.AgentTemplate, error) {
	templates, err := s.client.AgentTemplate.Query().
		Where(
			agenttemplate.CategoryEqualFold(category),
			agenttemplate.IsActive(true),
		).
		Order(ent.Asc(agenttemplate.FieldTemplateName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for category %q: %w", category, err)
	}
	return templates, nil
}

// Categories returns the distinct categories of active templates.
func (s *TemplateService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.client.AgentTemplate.Query().
		Where(agenttemplate.IsActive(true)).
		Unique(true).
		Select(agenttemplate.FieldCategory).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	sort.Strings(categories)
	return categories, nil
}

// ListIndividual returns every active template usable in @agent mode
// (variant individual or both). User preferences are deliberately NOT
// consulted here — explicit invocation bypasses enablement.
func (s *TemplateService) ListIndividual(ctx context.Context) ([]*ent.AgentTemplate, error) {
	templates, err := s.client.AgentTemplate.Query().
		Where(
			agenttemplate.IsActive(true),
			agenttemplate.VariantTypeIn(
				agenttemplate.VariantTypeIndividual,
				agenttemplate.VariantTypeBoth,
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list individual templates: %w", err)
	}
	return templates, nil
}

// ListPlannerForUser returns the planner-visible templates for a user:
// active planner/both variants that are enabled for that user, ordered by
// (usage_count desc, last_used_at desc) and capped to PlannerTemplateLimit.
//
// Absence of a preference row means enabled for the four core agents and
// disabled for everything else.
func (s *TemplateService) ListPlannerForUser(ctx context.Context, userID int) ([]*TemplateWithPreference, error) {
	templates, err := s.client.AgentTemplate.Query().
		Where(
			agenttemplate.IsActive(true),
			agenttemplate.VariantTypeIn(
				agenttemplate.VariantTypePlanner,
				agenttemplate.VariantTypeBoth,
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planner templates: %w", err)
	}

	prefs, err := s.preferencesByTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var visible []*TemplateWithPreference
	for _, tpl := range templates {
		if tpl.TemplateName == models.BasicQAAgentName {
			// The QA sentinel never appears in the planner's agent list
			continue
		}
		twp := &TemplateWithPreference{Template: tpl}
		if pref, ok := prefs[tpl.ID]; ok {
			twp.IsEnabled = pref.IsEnabled
			twp.UsageCount = pref.UsageCount
			twp.LastUsedAt = pref.LastUsedAt
		} else {
			twp.IsEnabled = models.IsCoreAgent(tpl.TemplateName)
		}
		if twp.IsEnabled {
			visible = append(visible, twp)
		}
	}

	sortByUsage(visible)
	if len(visible) > PlannerTemplateLimit {
		visible = visible[:PlannerTemplateLimit]
	}
	return visible, nil
}

// ListPreferencesForUser returns every active template with the user's
// preference state resolved (default-enabled rule applied).
func (s *TemplateService) ListPreferencesForUser(ctx context.Context, userID int) ([]*TemplateWithPreference, error) {
	templates, err := s.client.AgentTemplate.Query().
		Where(agenttemplate.IsActive(true)).
		Order(ent.Asc(agenttemplate.FieldTemplateName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	prefs, err := s.preferencesByTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*TemplateWithPreference, 0, len(templates))
	for _, tpl := range templates {
		twp := &TemplateWithPreference{Template: tpl}
		if pref, ok := prefs[tpl.ID]; ok {
			twp.IsEnabled = pref.IsEnabled
			twp.UsageCount = pref.UsageCount
			twp.LastUsedAt = pref.LastUsedAt
		} else {
			twp.IsEnabled = models.IsCoreAgent(tpl.TemplateName)
		}
		out = append(out, twp)
	}
	return out, nil
}

// TogglePreference sets one user's enablement for one template,
// creating the preference row when missing. Toggling is idempotent:
// the final state equals the last write.
func (s *TemplateService) TogglePreference(ctx context.Context, userID, templateID int, enabled bool) error {
	if _, err := s.GetByID(ctx, templateID); err != nil {
		return err
	}

	pref, err := s.client.UserTemplatePreference.Query().
		Where(
			usertemplatepreference.UserIDEQ(userID),
			usertemplatepreference.TemplateIDEQ(templateID),
		).
		Only(ctx)
	switch {
	case err == nil:
		if err := pref.Update().SetIsEnabled(enabled).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update preference: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = s.client.UserTemplatePreference.Create().
			SetUserID(userID).
			SetTemplateID(templateID).
			SetIsEnabled(enabled).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create preference: %w", err)
		}
	default:
		return fmt.Errorf("failed to query preference: %w", err)
	}
	return nil
}

// BulkToggleResult reports the outcome of one entry in a bulk toggle.
type BulkToggleResult struct {
	TemplateID int    `json:"template_id"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	IsEnabled  bool   `json:"is_enabled"`
}

// BulkTogglePreferences applies several toggles, enforcing the planner
// cap: entries that would push the enabled count past the limit fail
// individually without aborting the rest.
func (s *TemplateService) BulkTogglePreferences(ctx context.Context, userID int, toggles map[int]bool) ([]BulkToggleResult, error) {
	enabledCount, err := s.client.UserTemplatePreference.Query().
		Where(
			usertemplatepreference.UserIDEQ(userID),
			usertemplatepreference.IsEnabled(true),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enabled preferences: %w", err)
	}

	ids := make([]int, 0, len(toggles))
	for id := range toggles {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	results := make([]BulkToggleResult, 0, len(toggles))
	for _, templateID := range ids {
		enabled := toggles[templateID]
		if enabled && enabledCount >= PlannerTemplateLimit {
			results = append(results, BulkToggleResult{
				TemplateID: templateID,
				Success:    false,
				Message:    ErrTemplateLimit.Error(),
				IsEnabled:  false,
			})
			continue
		}

		if err := s.TogglePreference(ctx, userID, templateID, enabled); err != nil {
			results = append(results, BulkToggleResult{
				TemplateID: templateID,
				Success:    false,
				Message:    err.Error(),
				IsEnabled:  false,
			})
			continue
		}

		if enabled {
			enabledCount++
		} else if enabledCount > 0 {
			enabledCount--
		}
		results = append(results, BulkToggleResult{
			TemplateID: templateID,
			Success:    true,
			Message:    "preference updated",
			IsEnabled:  enabled,
		})
	}
	return results, nil
}

// preferencesByTemplate loads the user's preference rows keyed by template ID.
func (s *TemplateService) preferencesByTemplate(ctx context.Context, userID int) (map[int]*ent.UserTemplatePreference, error) {
	prefs, err := s.client.UserTemplatePreference.Query().
		Where(usertemplatepreference.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences for user %d: %w", userID, err)
	}
	byTemplate := make(map[int]*ent.UserTemplatePreference, len(prefs))
	for _, p := range prefs {
		byTemplate[p.TemplateID] = p
	}
	return byTemplate, nil
}

// sortByUsage orders templates by usage_count desc, then last_used_at desc.
func sortByUsage(items []*TemplateWithPreference) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].UsageCount != items[j].UsageCount {
			return items[i].UsageCount > items[j].UsageCount
		}
		ti, tj := items[i].LastUsedAt, items[j].LastUsedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})
}
