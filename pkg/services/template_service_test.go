package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/models"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestTemplateService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seeded := seedCoreTemplates(t, client.Client)

	t.Run("get by name", func(t *testing.T) {
		tpl, err := svc.GetByName(ctx, "data_viz_agent")
		require.NoError(t, err)
		assert.Equal(t, seeded["data_viz_agent"].ID, tpl.ID)
	})

	t.Run("get by unknown name returns ErrNotFound", func(t *testing.T) {
		_, err := svc.GetByName(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("category lookup is case-insensitive", func(t *testing.T) {
		templates, err := svc.ListByCategory(ctx, "data visualization")
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, "data_viz_agent", templates[0].TemplateName)
	})

	t.Run("categories are distinct and sorted", func(t *testing.T) {
		categories, err := svc.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Data Manipulation",
			"Data Modelling",
			"Data Visualization",
			"General",
			"Statistical Analysis",
		}, categories)
	})
}

func TestTemplateService_ListIndividual(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "alice@example.com")

	// Disable a core agent for this user; individual mode must not care.
	tpl, err := svc.GetByName(ctx, "preprocessing_agent")
	require.NoError(t, err)
	require.NoError(t, svc.TogglePreference(ctx, user.ID, tpl.ID, false))

	templates, err := svc.ListIndividual(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(templates))
	for _, tpl := range templates {
		names = append(names, tpl.TemplateName)
	}
	assert.Contains(t, names, "preprocessing_agent",
		"explicit invocation ignores user preferences")
}

func TestTemplateService_ListPlannerForUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "bob@example.com")

	t.Run("core agents enabled by default, QA excluded", func(t *testing.T) {
		visible, err := svc.ListPlannerForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, visible, len(models.CoreAgentNames))
		for _, twp := range visible {
			assert.True(t, models.IsCoreAgent(twp.Template.TemplateName))
			assert.NotEqual(t, models.BasicQAAgentName, twp.Template.TemplateName)
		}
	})

	t.Run("disabled core agent disappears", func(t *testing.T) {
		tpl, err := svc.GetByName(ctx, "sk_learn_agent")
		require.NoError(t, err)
		require.NoError(t, svc.TogglePreference(ctx, user.ID, tpl.ID, false))

		visible, err := svc.ListPlannerForUser(ctx, user.ID)
		require.NoError(t, err)
		for _, twp := range visible {
			assert.NotEqual(t, "sk_learn_agent", twp.Template.TemplateName)
		}

		// Restore for the remaining subtests
		require.NoError(t, svc.TogglePreference(ctx, user.ID, tpl.ID, true))
	})

	t.Run("custom templates disabled until toggled on", func(t *testing.T) {
		extras := createExtraTemplates(t, client.Client, 2)

		visible, err := svc.ListPlannerForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, visible, len(models.CoreAgentNames))

		require.NoError(t, svc.TogglePreference(ctx, user.ID, extras[0].ID, true))
		visible, err = svc.ListPlannerForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, visible, len(models.CoreAgentNames)+1)
	})

	t.Run("ordered by usage count then recency", func(t *testing.T) {
		usage := NewUsageService(client.Client)
		require.NoError(t, usage.IncrementTemplateUsage(ctx, user.ID, "data_viz_agent"))
		require.NoError(t, usage.IncrementTemplateUsage(ctx, user.ID, "data_viz_agent"))
		require.NoError(t, usage.IncrementTemplateUsage(ctx, user.ID, "statistical_analytics_agent"))

		// IncrementTemplateUsage creates disabled rows for templates the
		// user never toggled; re-enable them to keep planner visibility.
		for _, name := range []string{"data_viz_agent", "statistical_analytics_agent"} {
			tpl, err := svc.GetByName(ctx, name)
			require.NoError(t, err)
			require.NoError(t, svc.TogglePreference(ctx, user.ID, tpl.ID, true))
		}

		visible, err := svc.ListPlannerForUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotEmpty(t, visible)
		assert.Equal(t, "data_viz_agent", visible[0].Template.TemplateName)
		assert.Equal(t, "statistical_analytics_agent", visible[1].Template.TemplateName)
	})
}

func TestTemplateService_PlannerCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "carol@example.com")
	extras := createExtraTemplates(t, client.Client, 12)

	// Enable everything the hard way, one by one.
	for _, tpl := range extras {
		require.NoError(t, svc.TogglePreference(ctx, user.ID, tpl.ID, true))
	}

	visible, err := svc.ListPlannerForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, visible, PlannerTemplateLimit,
		"planner view is capped even when more templates are enabled")
}

func TestTemplateService_TogglePreference(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seeded := seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "dave@example.com")

	t.Run("toggle is idempotent", func(t *testing.T) {
		id := seeded["preprocessing_agent"].ID
		require.NoError(t, svc.TogglePreference(ctx, user.ID, id, false))
		require.NoError(t, svc.TogglePreference(ctx, user.ID, id, false))

		prefs, err := svc.ListPreferencesForUser(ctx, user.ID)
		require.NoError(t, err)
		for _, twp := range prefs {
			if twp.Template.ID == id {
				assert.False(t, twp.IsEnabled)
			}
		}
	})

	t.Run("unknown template returns ErrNotFound", func(t *testing.T) {
		err := svc.TogglePreference(ctx, user.ID, 999999, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTemplateService_BulkTogglePreferences(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "erin@example.com")
	extras := createExtraTemplates(t, client.Client, 12)

	t.Run("entries past the cap fail individually", func(t *testing.T) {
		toggles := make(map[int]bool, len(extras))
		for _, tpl := range extras {
			toggles[tpl.ID] = true
		}

		results, err := svc.BulkTogglePreferences(ctx, user.ID, toggles)
		require.NoError(t, err)
		require.Len(t, results, len(extras))

		succeeded, failed := 0, 0
		for _, res := range results {
			if res.Success {
				succeeded++
			} else {
				failed++
				assert.Contains(t, res.Message, "cannot enable more than 10")
			}
		}
		assert.Equal(t, PlannerTemplateLimit, succeeded)
		assert.Equal(t, len(extras)-PlannerTemplateLimit, failed)
	})

	t.Run("disabling frees capacity", func(t *testing.T) {
		// Disable two, then enabling two more should succeed.
		results, err := svc.BulkTogglePreferences(ctx, user.ID, map[int]bool{
			extras[0].ID: false,
			extras[1].ID: false,
		})
		require.NoError(t, err)
		for _, res := range results {
			assert.True(t, res.Success)
		}

		results, err = svc.BulkTogglePreferences(ctx, user.ID, map[int]bool{
			extras[10].ID: true,
			extras[11].ID: true,
		})
		require.NoError(t, err)
		for _, res := range results {
			assert.True(t, res.Success, res.Message)
		}
	})
}

func TestTemplateService_UsageTimestamps(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTemplateService(client.Client)
	usage := NewUsageService(client.Client)
	ctx := context.Background()
	seedCoreTemplates(t, client.Client)
	user := createTestUser(t, client.Client, "frank@example.com")

	before := time.Now().Add(-time.Second)
	require.NoError(t, usage.IncrementTemplateUsage(ctx, user.ID, "preprocessing_agent"))

	prefs, err := svc.ListPreferencesForUser(ctx, user.ID)
	require.NoError(t, err)
	found := false
	for _, twp := range prefs {
		if twp.Template.TemplateName == "preprocessing_agent" {
			found = true
			assert.Equal(t, 1, twp.UsageCount)
			require.NotNil(t, twp.LastUsedAt)
			assert.True(t, twp.LastUsedAt.After(before))
		}
	}
	assert.True(t, found)
}
