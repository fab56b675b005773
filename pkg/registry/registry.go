package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
)

// Registry exposes the stored agent templates as runtime signatures.
//
// The two views differ deliberately:
//   - Individual: every active individual/both template, preferences
//     ignored. An agent the user explicitly names should always answer.
//   - Planner: only the user's enabled planner/both templates, ordered
//     by usage and capped, because the planner picks agents on the
//     user's behalf.
type Registry struct {
	templates *services.TemplateService
}

// New creates a Registry over the template service.
func New(templates *services.TemplateService) *Registry {
	return &Registry{templates: templates}
}

// Individual returns signatures for explicit @agent invocation, keyed by
// template name.
func (r *Registry) Individual(ctx context.Context) (map[string]*models.AgentSignature, error) {
	templates, err := r.templates.ListIndividual(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load individual signatures: %w", err)
	}

	out := make(map[string]*models.AgentSignature, len(templates))
	for _, tpl := range templates {
		out[tpl.TemplateName] = buildSignature(tpl)
	}
	return out, nil
}

// Lookup resolves one template name to an individual-mode signature.
func (r *Registry) Lookup(ctx context.Context, name string) (*models.AgentSignature, error) {
	tpl, err := r.templates.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return buildSignature(tpl), nil
}

// PlannerForUser returns the signatures the planner may schedule for a
// user, in preference order. When the template store fails, the built-in
// core four are returned so analysis stays available.
func (r *Registry) PlannerForUser(ctx context.Context, userID int) []*models.AgentSignature {
	visible, err := r.templates.ListPlannerForUser(ctx, userID)
	if err != nil {
		slog.Warn("Template store unavailable, falling back to core agents",
			"user_id", userID, "error", err)
		return coreFallbackSignatures()
	}

	out := make([]*models.AgentSignature, 0, len(visible))
	for _, twp := range visible {
		out = append(out, buildSignature(twp.Template))
	}
	return out
}

// CoreSignatures returns the built-in core-four signatures. Used by the
// deep-analysis pipeline, which always runs on the default agents.
func (r *Registry) CoreSignatures() []*models.AgentSignature {
	return coreFallbackSignatures()
}
