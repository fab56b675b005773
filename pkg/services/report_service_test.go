package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestReportService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client)
	ctx := context.Background()
	user := createTestUser(t, client.Client, "alice@example.com")

	reportUUID := uuid.New().String()

	t.Run("create pending", func(t *testing.T) {
		report, err := svc.CreatePending(ctx, reportUUID, &user.ID, "analyze churn")
		require.NoError(t, err)
		assert.Equal(t, deepanalysisreport.StatusPending, report.Status)
		assert.Equal(t, 0, report.ProgressPercentage)
	})

	t.Run("duplicate uuid rejected", func(t *testing.T) {
		_, err := svc.CreatePending(ctx, reportUUID, &user.ID, "again")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("stage updates persist outputs", func(t *testing.T) {
		require.NoError(t, svc.MarkRunning(ctx, reportUUID, 5))

		questions := "1. What drives churn?"
		require.NoError(t, svc.RecordStage(ctx, reportUUID, 20, &StageUpdate{
			Questions: &questions,
			Step:      "questions",
		}))

		report, err := svc.GetByUUID(ctx, reportUUID)
		require.NoError(t, err)
		assert.Equal(t, deepanalysisreport.StatusRunning, report.Status)
		assert.Equal(t, 20, report.ProgressPercentage)
		assert.Equal(t, questions, report.DeepQuestions)
		assert.Equal(t, []string{"questions"}, report.StepsCompleted)
	})

	t.Run("progress never moves backwards", func(t *testing.T) {
		require.NoError(t, svc.RecordStage(ctx, reportUUID, 10, nil))

		report, err := svc.GetByUUID(ctx, reportUUID)
		require.NoError(t, err)
		assert.Equal(t, 20, report.ProgressPercentage)
	})

	t.Run("conclusion derives report summary", func(t *testing.T) {
		conclusion := "**Conclusion**\n" + strings.Repeat("churn is seasonal. ", 30)
		require.NoError(t, svc.RecordStage(ctx, reportUUID, 95, &StageUpdate{
			Conclusion: &conclusion,
			Step:       "conclusion",
		}))

		report, err := svc.GetByUUID(ctx, reportUUID)
		require.NoError(t, err)
		assert.NotContains(t, report.ReportSummary, "**Conclusion**")
		assert.True(t, strings.HasSuffix(report.ReportSummary, "..."))
		assert.LessOrEqual(t, len(report.ReportSummary), reportSummaryLimit+3)
	})

	t.Run("complete sets terminal fields", func(t *testing.T) {
		require.NoError(t, svc.Complete(ctx, reportUUID, "<html>report</html>", 1234, 0.05, 3))

		report, err := svc.GetByUUID(ctx, reportUUID)
		require.NoError(t, err)
		assert.Equal(t, deepanalysisreport.StatusCompleted, report.Status)
		assert.Equal(t, 100, report.ProgressPercentage)
		assert.Equal(t, "<html>report</html>", report.HTMLReport)
		assert.Equal(t, 1234, report.TotalTokensUsed)
		assert.NotNil(t, report.EndTime)
		require.NotNil(t, report.DurationSeconds)
		assert.GreaterOrEqual(t, *report.DurationSeconds, 0)
	})
}

func TestReportService_Fail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	reportUUID := uuid.New().String()
	_, err := svc.CreatePending(ctx, reportUUID, nil, "goal")
	require.NoError(t, err)

	require.NoError(t, svc.Fail(ctx, reportUUID, "model unavailable"))

	report, err := svc.GetByUUID(ctx, reportUUID)
	require.NoError(t, err)
	assert.Equal(t, deepanalysisreport.StatusFailed, report.Status)
	require.NotNil(t, report.ErrorMessage)
	assert.Equal(t, "model unavailable", *report.ErrorMessage)
	assert.NotNil(t, report.EndTime)
}

func TestReportService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	_, err := svc.CreatePending(ctx, "", nil, "goal")
	assert.True(t, IsValidationError(err))

	_, err = svc.CreatePending(ctx, uuid.New().String(), nil, "")
	assert.True(t, IsValidationError(err))

	_, err = svc.GetByUUID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_MarkStaleRunningFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	pending := uuid.New().String()
	running := uuid.New().String()
	done := uuid.New().String()

	_, err := svc.CreatePending(ctx, pending, nil, "goal a")
	require.NoError(t, err)
	_, err = svc.CreatePending(ctx, running, nil, "goal b")
	require.NoError(t, err)
	require.NoError(t, svc.MarkRunning(ctx, running, 40))
	_, err = svc.CreatePending(ctx, done, nil, "goal c")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, done, "<html/>", 0, 0, 0))

	n, err := svc.MarkStaleRunningFailed(ctx, "server restarted during analysis")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{pending, running} {
		report, err := svc.GetByUUID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, deepanalysisreport.StatusFailed, report.Status)
		require.NotNil(t, report.ErrorMessage)
		assert.Equal(t, "server restarted during analysis", *report.ErrorMessage)
	}

	report, err := svc.GetByUUID(ctx, done)
	require.NoError(t, err)
	assert.Equal(t, deepanalysisreport.StatusCompleted, report.Status)
}
