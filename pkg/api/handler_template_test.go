package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

// seedHandlerTemplates inserts the five standard templates plus one
// custom template, mirroring the seed migration.
func seedHandlerTemplates(t *testing.T, client *ent.Client) map[string]*ent.AgentTemplate {
	t.Helper()
	categories := map[string]string{
		"preprocessing_agent":         "Data Manipulation",
		"statistical_analytics_agent": "Statistical Analysis",
		"sk_learn_agent":              "Data Modelling",
		"data_viz_agent":              "Data Visualization",
		models.BasicQAAgentName:       "General",
		"outlier_detection_agent":     "Statistical Analysis",
	}

	out := make(map[string]*ent.AgentTemplate)
	for name, category := range categories {
		tpl, err := client.AgentTemplate.Create().
			SetTemplateName(name).
			SetDisplayName(name).
			SetDescription("test template " + name).
			SetPromptTemplate("You are " + name + ".").
			SetCategory(category).
			SetVariantType(agenttemplate.VariantTypeBoth).
			Save(context.Background())
		require.NoError(t, err)
		out[name] = tpl
	}
	return out
}

func createHandlerUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetUsername(email).
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestTemplateHandlers(t *testing.T) {
	client := testdb.NewTestClient(t)
	seeded := seedHandlerTemplates(t, client.Client)
	user := createHandlerUser(t, client.Client, "carol@example.com")

	s := testServer(llm.StaticText("unused"))
	s.templates = services.NewTemplateService(client.Client)
	router := s.Router()

	t.Run("lists every template", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/templates", nil)
		require.Equal(t, http.StatusOK, w.Code)

		templates := decodeBody(t, w)["templates"].([]any)
		assert.Len(t, templates, len(seeded))
	})

	t.Run("lists categories", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/templates/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decodeBody(t, w)["categories"], "Data Visualization")
	})

	t.Run("filters by category", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/templates/category/Statistical%20Analysis", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["templates"].([]any), 2)
	})

	t.Run("user preferences default core to enabled", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/templates/user/"+itoa(user.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		enabled := map[string]bool{}
		for _, raw := range decodeBody(t, w)["templates"].([]any) {
			entry := raw.(map[string]any)
			enabled[entry["template_name"].(string)] = entry["is_enabled"].(bool)
		}
		assert.True(t, enabled["preprocessing_agent"])
		assert.False(t, enabled["outlier_detection_agent"],
			"non-core templates default to disabled")
	})

	t.Run("toggle flips one preference", func(t *testing.T) {
		tpl := seeded["outlier_detection_agent"]
		w := doJSON(t, router, http.MethodPost, "/templates/"+itoa(tpl.ID)+"/toggle", ToggleTemplateRequest{
			UserID:    user.ID,
			IsEnabled: true,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/templates/user/"+itoa(user.ID)+"/enabled", nil)
		require.Equal(t, http.StatusOK, w.Code)

		names := []string{}
		for _, raw := range decodeBody(t, w)["templates"].([]any) {
			names = append(names, raw.(map[string]any)["template_name"].(string))
		}
		assert.Contains(t, names, "outlier_detection_agent")
	})

	t.Run("bulk toggle reports per-entry results", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/templates/bulk_toggle", BulkToggleRequest{
			UserID: user.ID,
			Toggles: []ToggleEntry{
				{TemplateID: seeded["sk_learn_agent"].ID, IsEnabled: false},
				{TemplateID: seeded["data_viz_agent"].ID, IsEnabled: true},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["results"].([]any), 2)
	})

	t.Run("toggle of unknown template is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/templates/99999/toggle", ToggleTemplateRequest{
			UserID:    user.ID,
			IsEnabled: true,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("agents listing splits standard and template agents", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/agents", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Contains(t, body["standard"], "preprocessing_agent")
		assert.Contains(t, body["template"], "outlier_detection_agent")
		assert.NotContains(t, body["standard"], models.BasicQAAgentName,
			"the QA fallback is not a listed agent")
		assert.NotContains(t, body["template"], models.BasicQAAgentName)
	})
}
