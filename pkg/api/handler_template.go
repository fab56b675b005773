package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
)

// templateView is the wire form of one agent template.
type templateView struct {
	TemplateID    int    `json:"template_id"`
	TemplateName  string `json:"template_name"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	VariantType   string `json:"variant_type"`
	IsPremiumOnly bool   `json:"is_premium_only"`
	IsActive      bool   `json:"is_active"`
	IconURL       string `json:"icon_url,omitempty"`
}

// preferenceView pairs a template with one user's preference state.
type preferenceView struct {
	templateView
	IsEnabled  bool       `json:"is_enabled"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

func toTemplateView(t *ent.AgentTemplate) templateView {
	v := templateView{
		TemplateID:    t.ID,
		TemplateName:  t.TemplateName,
		DisplayName:   t.DisplayName,
		Description:   t.Description,
		Category:      t.Category,
		VariantType:   string(t.VariantType),
		IsPremiumOnly: t.IsPremiumOnly,
		IsActive:      t.IsActive,
	}
	if t.IconURL != nil {
		v.IconURL = *t.IconURL
	}
	return v
}

func toPreferenceView(p *services.TemplateWithPreference) preferenceView {
	return preferenceView{
		templateView: toTemplateView(p.Template),
		IsEnabled:    p.IsEnabled,
		UsageCount:   p.UsageCount,
		LastUsedAt:   p.LastUsedAt,
	}
}

// listTemplatesHandler handles GET /templates.
func (s *Server) listTemplatesHandler(c *gin.Context) {
	templates, err := s.templates.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, toTemplateView(t))
	}
	c.JSON(http.StatusOK, gin.H{"templates": views})
}

// listCategoriesHandler handles GET /templates/categories.
func (s *Server) listCategoriesHandler(c *gin.Context) {
	categories, err := s.templates.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// listTemplatesByCategoryHandler handles GET /templates/category/:category.
func (s *Server) listTemplatesByCategoryHandler(c *gin.Context) {
	templates, err := s.templates.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, toTemplateView(t))
	}
	c.JSON(http.StatusOK, gin.H{"templates": views})
}

// listUserPreferencesHandler handles GET /templates/user/:user_id —
// every template with the user's enablement state resolved.
func (s *Server) listUserPreferencesHandler(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}
	prefs, err := s.templates.ListPreferencesForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]preferenceView, 0, len(prefs))
	for _, p := range prefs {
		views = append(views, toPreferenceView(p))
	}
	c.JSON(http.StatusOK, gin.H{"templates": views})
}

// listEnabledTemplatesHandler handles GET /templates/user/:user_id/enabled
// — the planner view: enabled templates capped to the usage-ranked top.
func (s *Server) listEnabledTemplatesHandler(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}
	prefs, err := s.templates.ListPlannerForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]preferenceView, 0, len(prefs))
	for _, p := range prefs {
		views = append(views, toPreferenceView(p))
	}
	c.JSON(http.StatusOK, gin.H{"templates": views, "limit": services.PlannerTemplateLimit})
}

// toggleTemplateHandler handles POST /templates/:template_id/toggle.
func (s *Server) toggleTemplateHandler(c *gin.Context) {
	templateID, ok := pathInt(c, "template_id")
	if !ok {
		return
	}
	var req ToggleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.templates.TogglePreference(c.Request.Context(), req.UserID, templateID, req.IsEnabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template_id": templateID, "is_enabled": req.IsEnabled})
}

// bulkToggleHandler handles POST /templates/bulk_toggle. Entries that
// would exceed the planner cap fail individually; the rest apply.
func (s *Server) bulkToggleHandler(c *gin.Context) {
	var req BulkToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	toggles := make(map[int]bool, len(req.Toggles))
	for _, entry := range req.Toggles {
		toggles[entry.TemplateID] = entry.IsEnabled
	}

	results, err := s.templates.BulkTogglePreferences(c.Request.Context(), req.UserID, toggles)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// listAgentsHandler handles GET /agents — every individually invocable
// agent, split into the standard set and template-provided ones. The QA
// fallback is internal routing, not a listed agent.
func (s *Server) listAgentsHandler(c *gin.Context) {
	templates, err := s.templates.ListIndividual(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	standard := make([]string, 0, len(models.CoreAgentNames))
	template := make([]string, 0, len(templates))
	for _, t := range templates {
		switch {
		case t.TemplateName == models.BasicQAAgentName:
		case models.IsCoreAgent(t.TemplateName):
			standard = append(standard, t.TemplateName)
		default:
			template = append(template, t.TemplateName)
		}
	}
	c.JSON(http.StatusOK, gin.H{"standard": standard, "template": template})
}

// pathInt parses an integer path parameter, writing the 400 itself on
// failure.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}
