package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/message"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func createTestMessage(t *testing.T, svc *ChatService) *ent.Message {
	t.Helper()
	ctx := context.Background()
	c, err := svc.CreateChat(ctx, nil)
	require.NoError(t, err)
	msg, err := svc.AddMessage(ctx, c.ID, message.SenderAi, "analysis result")
	require.NoError(t, err)
	return msg
}

func TestFeedbackService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	chats := NewChatService(client.Client)
	ctx := context.Background()
	msg := createTestMessage(t, chats)

	t.Run("creates feedback with model snapshot", func(t *testing.T) {
		temp := 0.5
		fb, err := svc.Upsert(ctx, FeedbackInput{
			MessageID:     msg.ID,
			Rating:        4,
			ModelName:     "gpt-4o-mini",
			ModelProvider: "openai",
			Temperature:   &temp,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, fb.Rating)
	})

	t.Run("second rating overwrites the first", func(t *testing.T) {
		fb, err := svc.Upsert(ctx, FeedbackInput{MessageID: msg.ID, Rating: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, fb.Rating)

		got, err := svc.GetByMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Rating)

		count, err := client.Client.MessageFeedback.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "one feedback row per message")
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		_, err := svc.Upsert(ctx, FeedbackInput{MessageID: msg.ID, Rating: 6})
		assert.True(t, IsValidationError(err))

		_, err = svc.Upsert(ctx, FeedbackInput{MessageID: msg.ID, Rating: 0})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing feedback returns ErrNotFound", func(t *testing.T) {
		_, err := svc.GetByMessage(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCodeExecutionService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCodeExecutionService(client.Client)
	chats := NewChatService(client.Client)
	ctx := context.Background()
	msg := createTestMessage(t, chats)

	t.Run("records initial code", func(t *testing.T) {
		exec, err := svc.RecordInitial(ctx, msg.ID, nil, "import pandas as pd")
		require.NoError(t, err)
		assert.Equal(t, "import pandas as pd", exec.InitialCode)
		assert.Equal(t, "import pandas as pd", exec.LatestCode)
	})

	t.Run("outcome updates latest code and failures", func(t *testing.T) {
		err := svc.RecordOutcome(ctx, msg.ID, "import pandas as pd # fixed", false,
			[]string{"data_viz_agent"},
			map[string]string{"data_viz_agent": "NameError: fig"})
		require.NoError(t, err)

		code, err := svc.GetLatestCode(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, "import pandas as pd # fixed", code)
	})

	t.Run("missing execution returns ErrNotFound", func(t *testing.T) {
		_, err := svc.GetLatestCode(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
