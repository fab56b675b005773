package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func seedTemplate(t *testing.T, client *ent.Client, name, category string) *ent.AgentTemplate {
	t.Helper()
	tpl, err := client.AgentTemplate.Create().
		SetTemplateName(name).
		SetDisplayName(name).
		SetDescription("test " + name).
		SetPromptTemplate("You are " + name + ".").
		SetCategory(category).
		SetVariantType(agenttemplate.VariantTypeBoth).
		Save(context.Background())
	require.NoError(t, err)
	return tpl
}

func TestBuildSignature(t *testing.T) {
	t.Run("standard agent takes goal, dataset and plan instructions", func(t *testing.T) {
		tpl := &ent.AgentTemplate{TemplateName: "statistical_analytics_agent", Category: "Statistical Analysis"}
		sig := buildSignature(tpl)
		assert.Equal(t, []string{models.FieldGoal, models.FieldDataset, models.FieldPlanInstructions}, sig.Inputs)
		assert.False(t, sig.IsVisualization)
		assert.False(t, sig.AnswerOnly)
	})

	t.Run("visualization category adds styling index", func(t *testing.T) {
		tpl := &ent.AgentTemplate{TemplateName: "custom_charts", Category: "Data Visualization"}
		sig := buildSignature(tpl)
		assert.True(t, sig.IsVisualization)
		assert.True(t, sig.Requires(models.FieldStylingIndex))
	})

	t.Run("visualization detected from name fallback", func(t *testing.T) {
		tpl := &ent.AgentTemplate{TemplateName: "matplotlib_agent", Category: "Custom"}
		sig := buildSignature(tpl)
		assert.True(t, sig.IsVisualization)
	})

	t.Run("plan instructions always last so both modes share one shape", func(t *testing.T) {
		tpl := &ent.AgentTemplate{TemplateName: "custom_charts", Category: "Data Visualization"}
		sig := buildSignature(tpl)
		assert.Equal(t, models.FieldPlanInstructions, sig.Inputs[len(sig.Inputs)-1])
	})

	t.Run("basic QA agent answers only from the goal", func(t *testing.T) {
		tpl := &ent.AgentTemplate{TemplateName: models.BasicQAAgentName, Category: "General"}
		sig := buildSignature(tpl)
		assert.True(t, sig.AnswerOnly)
		assert.Equal(t, []string{models.FieldGoal}, sig.Inputs)
	})
}

func TestRegistry_Views(t *testing.T) {
	client := testdb.NewTestClient(t)
	templateSvc := services.NewTemplateService(client.Client)
	reg := New(templateSvc)
	ctx := context.Background()
	user, err := client.Client.User.Create().
		SetUsername("alice").
		SetEmail("alice@example.com").
		Save(ctx)
	require.NoError(t, err)

	for name, category := range map[string]string{
		"preprocessing_agent":         "Data Manipulation",
		"statistical_analytics_agent": "Statistical Analysis",
		"sk_learn_agent":              "Data Modelling",
		"data_viz_agent":              "Data Visualization",
		models.BasicQAAgentName:       "General",
	} {
		seedTemplate(t, client.Client, name, category)
	}

	t.Run("individual view includes everything active", func(t *testing.T) {
		sigs, err := reg.Individual(ctx)
		require.NoError(t, err)
		assert.Len(t, sigs, 5)
		assert.Contains(t, sigs, models.BasicQAAgentName)
		assert.True(t, sigs["statistical_analytics_agent"].Requires(models.FieldPlanInstructions))
	})

	t.Run("planner view excludes QA and honors preferences", func(t *testing.T) {
		sigs := reg.PlannerForUser(ctx, user.ID)
		require.Len(t, sigs, len(models.CoreAgentNames))
		for _, sig := range sigs {
			assert.NotEqual(t, models.BasicQAAgentName, sig.Name)
			assert.True(t, sig.Requires(models.FieldPlanInstructions))
		}
	})

	t.Run("lookup resolves one signature", func(t *testing.T) {
		sig, err := reg.Lookup(ctx, "data_viz_agent")
		require.NoError(t, err)
		assert.True(t, sig.IsVisualization)

		_, err = reg.Lookup(ctx, "missing_agent")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestCoreFallbackSignatures(t *testing.T) {
	sigs := coreFallbackSignatures()
	require.Len(t, sigs, len(models.CoreAgentNames))

	byName := make(map[string]*models.AgentSignature, len(sigs))
	for _, sig := range sigs {
		byName[sig.Name] = sig
		assert.NotEmpty(t, sig.Prompt)
		assert.True(t, sig.Requires(models.FieldPlanInstructions))
	}
	assert.True(t, byName["data_viz_agent"].IsVisualization)
	assert.False(t, byName["preprocessing_agent"].IsVisualization)
}
