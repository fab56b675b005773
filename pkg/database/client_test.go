package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/pkg/database"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestRawQueriesShareTheEntConnection(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	reportUUID := uuid.New().String()
	_, err := client.DeepAnalysisReport.Create().
		SetReportUUID(reportUUID).
		SetGoal("find churn drivers in the subscription data").
		SetStatus(deepanalysisreport.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	// Rows written through Ent must be visible to raw SQL on the same
	// *sql.DB — the event publisher depends on this.
	var goal string
	err = client.DB().QueryRowContext(ctx,
		`SELECT goal FROM deep_analysis_reports WHERE report_uuid = $1`,
		reportUUID,
	).Scan(&goal)
	require.NoError(t, err)
	assert.Equal(t, "find churn drivers in the subscription data", goal)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "analyst", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "not-a-port")

		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
