package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/modelusage"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestUsageService_RecordUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUsageService(client.Client)
	ctx := context.Background()
	user := createTestUser(t, client.Client, "alice@example.com")

	t.Run("writes one usage row", func(t *testing.T) {
		err := svc.RecordUsage(ctx, UsageRecord{
			UserID:           &user.ID,
			ModelName:        "gpt-4o-mini",
			Provider:         "openai",
			PromptTokens:     120,
			CompletionTokens: 80,
			TotalTokens:      200,
			Cost:             0.0002,
			RequestTimeMs:    950,
			IsStreaming:      true,
		})
		require.NoError(t, err)

		rows, err := client.Client.ModelUsage.Query().
			Where(modelusage.ModelNameEQ("gpt-4o-mini")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 200, rows[0].TotalTokens)
		assert.True(t, rows[0].IsStreaming)
	})

	t.Run("rejects empty model name", func(t *testing.T) {
		err := svc.RecordUsage(ctx, UsageRecord{Provider: "openai"})
		assert.True(t, IsValidationError(err))
	})
}

func TestUsageService_IncrementTemplateUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUsageService(client.Client)
	templates := NewTemplateService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "bob@example.com")

	t.Run("creates disabled preference row on first use", func(t *testing.T) {
		createExtraTemplates(t, client.Client, 1)
		require.NoError(t, svc.IncrementTemplateUsage(ctx, user.ID, "extra_0"))
	})

	t.Run("unknown template returns ErrNotFound", func(t *testing.T) {
		err := svc.IncrementTemplateUsage(ctx, user.ID, "does_not_exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repeated use accumulates", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, svc.IncrementTemplateUsage(ctx, user.ID, "data_viz_agent"))
		}

		prefs, err := templates.ListPreferencesForUser(ctx, user.ID)
		require.NoError(t, err)
		for _, twp := range prefs {
			if twp.Template.TemplateName == "data_viz_agent" {
				assert.Equal(t, 3, twp.UsageCount)
				assert.False(t, twp.IsEnabled,
					"first-use preference rows start disabled")
			}
		}
	})
}
