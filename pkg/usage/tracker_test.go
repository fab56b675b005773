package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
	"github.com/autoanalyst/analyst/pkg/agent"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func seedTemplate(t *testing.T, client *ent.Client, name string) *ent.AgentTemplate {
	t.Helper()
	tpl, err := client.AgentTemplate.Create().
		SetTemplateName(name).
		SetDisplayName(name).
		SetDescription("test template").
		SetPromptTemplate("You are " + name + ".").
		SetCategory("Statistical Analysis").
		SetVariantType(agenttemplate.VariantTypeBoth).
		Save(context.Background())
	require.NoError(t, err)
	return tpl
}

func TestTracker_RecordAgentRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	user, err := client.Client.User.Create().
		SetUsername("carol@example.com").
		SetEmail("carol@example.com").
		Save(ctx)
	require.NoError(t, err)

	seedTemplate(t, client.Client, "preprocessing_agent")
	custom := seedTemplate(t, client.Client, "forecasting_agent")

	chat, err := client.Client.Chat.Create().
		SetUserID(user.ID).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := models.ModelConfig{Provider: "openai", Model: "gpt-4o-mini"}
	tracker := NewTracker(svc, cfg, &chat.ID)

	t.Run("records exact provider token counts", func(t *testing.T) {
		tracker.RecordAgentRun(ctx, user.ID, "forecasting_agent", "forecast churn", &agent.Result{
			Output:           models.AgentOutput{Code: "x = 1", Summary: "did it"},
			PromptTokens:     120,
			CompletionTokens: 80,
			Elapsed:          750 * time.Millisecond,
		})

		rows, err := client.Client.ModelUsage.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 200, rows[0].TotalTokens)
		assert.Equal(t, "gpt-4o-mini", rows[0].ModelName)
		require.NotNil(t, rows[0].RequestTimeMs)
		assert.Equal(t, 750, *rows[0].RequestTimeMs)
		require.NotNil(t, rows[0].ChatID, "usage is attributed to the session's chat")
		assert.Equal(t, chat.ID, *rows[0].ChatID)
		assert.InDelta(t, Cost("gpt-4o-mini", 120, 80), rows[0].Cost, 1e-9)

		pref, err := client.Client.UserTemplatePreference.Query().
			Where(
				usertemplatepreference.UserIDEQ(user.ID),
				usertemplatepreference.TemplateIDEQ(custom.ID),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, pref.UsageCount)
	})

	t.Run("core agent runs are not billed against templates", func(t *testing.T) {
		tracker.RecordAgentRun(ctx, user.ID, "preprocessing_agent", "clean data", &agent.Result{
			Output:           models.AgentOutput{Code: "y = 2", Summary: "cleaned"},
			PromptTokens:     50,
			CompletionTokens: 30,
		})

		count, err := client.Client.ModelUsage.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "model usage is still recorded")

		prefs, err := client.Client.UserTemplatePreference.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, prefs, "no preference row for the core agent")
	})

	t.Run("missing token counts fall back to local counting", func(t *testing.T) {
		tracker.RecordAgentRun(ctx, user.ID, "forecasting_agent", "short query", &agent.Result{
			Output: models.AgentOutput{Answer: "a short answer"},
		})

		rows, err := client.Client.ModelUsage.Query().
			Order(ent.Asc(modelusage.FieldID)).
			All(ctx)
		require.NoError(t, err)
		last := rows[len(rows)-1]
		assert.Positive(t, last.PromptTokens)
		assert.Positive(t, last.CompletionTokens)
	})
}
