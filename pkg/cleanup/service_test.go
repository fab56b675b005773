package cleanup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func createReport(t *testing.T, client *ent.Client, status deepanalysisreport.Status, age time.Duration) *ent.DeepAnalysisReport {
	t.Helper()
	r, err := client.DeepAnalysisReport.Create().
		SetReportUUID(uuid.New().String()).
		SetGoal("old analysis").
		SetStatus(status).
		SetStartTime(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return r
}

func createEvent(t *testing.T, client *ent.Client, age time.Duration) {
	t.Helper()
	_, err := client.Event.Create().
		SetReportUUID(uuid.New().String()).
		SetChannel("report:test").
		SetPayload(json.RawMessage(`{"type":"stage.status"}`)).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestCleanupService(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	reports := services.NewReportService(client.Client)
	events := services.NewEventService(client.Client)
	svc := NewService(&config.RetentionConfig{
		ReportRetentionDays: 90,
		EventTTL:            24 * time.Hour,
		CleanupInterval:     time.Hour,
	}, reports, events)

	t.Run("deletes only old failed reports", func(t *testing.T) {
		old := createReport(t, client.Client, deepanalysisreport.StatusFailed, 91*24*time.Hour)
		recent := createReport(t, client.Client, deepanalysisreport.StatusFailed, time.Hour)
		completed := createReport(t, client.Client, deepanalysisreport.StatusCompleted, 365*24*time.Hour)

		svc.runAll(ctx)

		_, err := reports.GetByUUID(ctx, old.ReportUUID)
		assert.ErrorIs(t, err, services.ErrNotFound)

		_, err = reports.GetByUUID(ctx, recent.ReportUUID)
		assert.NoError(t, err)
		_, err = reports.GetByUUID(ctx, completed.ReportUUID)
		assert.NoError(t, err, "completed reports are kept regardless of age")
	})

	t.Run("deletes events past their TTL", func(t *testing.T) {
		createEvent(t, client.Client, 25*time.Hour)
		createEvent(t, client.Client, time.Minute)

		svc.runAll(ctx)

		remaining, err := client.Client.Event.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
	})

	t.Run("start and stop are clean", func(t *testing.T) {
		svc.Start(ctx)
		svc.Stop()
	})
}
