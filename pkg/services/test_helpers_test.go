package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/pkg/models"
)

// createTestUser inserts one user and returns it.
func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetUsername(email).
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// seedCoreTemplates inserts the four core agent templates plus the QA
// sentinel, all active with variant "both", mirroring the seed migration.
func seedCoreTemplates(t *testing.T, client *ent.Client) map[string]*ent.AgentTemplate {
	t.Helper()
	categories := map[string]string{
		"preprocessing_agent":         "Data Manipulation",
		"statistical_analytics_agent": "Statistical Analysis",
		"sk_learn_agent":              "Data Modelling",
		"data_viz_agent":              "Data Visualization",
		models.BasicQAAgentName:       "General",
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

// createExtraTemplates inserts n active planner templates named extra_0..n-1.
func createExtraTemplates(t *testing.T, client *ent.Client, n int) []*ent.AgentTemplate {
	t.Helper()
	out := make([]*ent.AgentTemplate, 0, n)
	for i := 0; i < n; i++ {
		tpl, err := client.AgentTemplate.Create().
			SetTemplateName(fmt.Sprintf("extra_%d", i)).
			SetDisplayName(fmt.Sprintf("Extra %d", i)).
			SetDescription("extra template").
			SetPromptTemplate("You are an extra agent.").
			SetCategory("Custom").
			SetVariantType(agenttemplate.VariantTypePlanner).
			Save(context.Background())
		require.NoError(t, err)
		out = append(out, tpl)
	}
	return out
}
