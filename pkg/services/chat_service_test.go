package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/message"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestChatService_CreateChat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	t.Run("creates chat with default title", func(t *testing.T) {
		c, err := svc.CreateChat(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "New Chat", c.Title)
		assert.Nil(t, c.UserID)
	})

	t.Run("creates chat owned by a user", func(t *testing.T) {
		user := createTestUser(t, client.Client, "alice@example.com")
		c, err := svc.CreateChat(ctx, &user.ID)
		require.NoError(t, err)
		require.NotNil(t, c.UserID)
		assert.Equal(t, user.ID, *c.UserID)
	})
}

func TestChatService_Messages(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateChat(ctx, nil)
	require.NoError(t, err)

	t.Run("adds and reads back messages in order", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			sender := message.SenderUser
			if i%2 == 1 {
				sender = message.SenderAi
			}
			_, err := svc.AddMessage(ctx, c.ID, sender, fmt.Sprintf("message %d", i))
			require.NoError(t, err)
		}

		msgs, err := svc.GetRecentMessages(ctx, c.ID, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 5)
		for i, msg := range msgs {
			assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
		}
	})

	t.Run("limit keeps only the newest messages", func(t *testing.T) {
		msgs, err := svc.GetRecentMessages(ctx, c.ID, 2)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "message 3", msgs[0].Content)
		assert.Equal(t, "message 4", msgs[1].Content)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := svc.AddMessage(ctx, c.ID, message.SenderUser, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestChatService_UpdateChatTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateChat(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateChatTitle(ctx, c.ID, "Churn analysis"))
	got, err := svc.GetChat(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Churn analysis", got.Title)

	assert.ErrorIs(t, svc.UpdateChatTitle(ctx, 999999, "x"), ErrNotFound)
	assert.True(t, IsValidationError(svc.UpdateChatTitle(ctx, c.ID, "")))
}

func TestChatService_DeleteChat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateChat(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddMessage(ctx, c.ID, message.SenderUser, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChat(ctx, c.ID))
	_, err = svc.GetChat(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormatChatContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateChat(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddMessage(ctx, c.ID, message.SenderUser, "show churn by month")
	require.NoError(t, err)
	_, err = svc.AddMessage(ctx, c.ID, message.SenderAi, "here is the chart")
	require.NoError(t, err)

	msgs, err := svc.GetRecentMessages(ctx, c.ID, 10)
	require.NoError(t, err)

	formatted := FormatChatContext("and by region?", msgs)
	assert.Contains(t, formatted, "### Current Query:\nand by region?")
	assert.Contains(t, formatted, "User: show churn by month")
	assert.Contains(t, formatted, "Assistant: here is the chart")

	t.Run("no history returns query unchanged", func(t *testing.T) {
		assert.Equal(t, "lone query", FormatChatContext("lone query", nil))
	})
}
