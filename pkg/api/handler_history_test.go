package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/message"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

func TestChatHistoryHandlers(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	s := testServer(llm.StaticText("unused"))
	s.chats = services.NewChatService(client.Client)
	s.feedback = services.NewFeedbackService(client.Client)
	router := s.Router()

	user := createHandlerUser(t, client.Client, "dave@example.com")

	var chatID int
	t.Run("creates a chat", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/chats", CreateChatRequest{UserID: &user.ID})
		require.Equal(t, http.StatusCreated, w.Code)
		chatID = int(decodeBody(t, w)["id"].(float64))
		assert.NotZero(t, chatID)
	})

	t.Run("lists messages in chronological order", func(t *testing.T) {
		_, err := s.chats.AddMessage(ctx, chatID, message.SenderUser, "what drives churn?")
		require.NoError(t, err)
		_, err = s.chats.AddMessage(ctx, chatID, message.SenderAi, "tenure does")
		require.NoError(t, err)

		w := doJSON(t, router, http.MethodGet, "/chats/"+itoa(chatID)+"/messages", nil)
		require.Equal(t, http.StatusOK, w.Code)

		messages := decodeBody(t, w)["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "what drives churn?", messages[0].(map[string]any)["content"])
	})

	t.Run("derives a chat title without an LM configured", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/chats/"+itoa(chatID)+"/name", NameChatRequest{
			Query: "what drives churn?",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "what drives churn?", decodeBody(t, w)["title"],
			"short queries become the title as-is")

		chat, err := s.chats.GetChat(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, "what drives churn?", chat.Title)
	})

	t.Run("records and returns message feedback", func(t *testing.T) {
		msg, err := s.chats.AddMessage(ctx, chatID, message.SenderAi, "rated answer")
		require.NoError(t, err)

		w := doJSON(t, router, http.MethodPost, "/feedback", FeedbackRequest{
			MessageID:     msg.ID,
			Rating:        5,
			ModelName:     "gpt-4o-mini",
			ModelProvider: "openai",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/feedback/"+itoa(msg.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(5), decodeBody(t, w)["rating"])
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/feedback", FeedbackRequest{
			MessageID: 1,
			Rating:    9,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetOrCreateUserHandler(t *testing.T) {
	client := testdb.NewTestClient(t)

	s := testServer(llm.StaticText("unused"))
	s.users = services.NewUserService(client.Client)
	router := s.Router()

	w := doJSON(t, router, http.MethodPost, "/users", GetOrCreateUserRequest{Email: "frank@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["id"]
	assert.NotNil(t, first)

	w = doJSON(t, router, http.MethodPost, "/users", GetOrCreateUserRequest{Email: "frank@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decodeBody(t, w)["id"],
		"resolution by email is idempotent")

	w = doJSON(t, router, http.MethodPost, "/users", GetOrCreateUserRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatExchangeRecordsGeneratedCode(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	s := testServer(llm.StaticText(handlerAgentCompletion))
	s.chats = services.NewChatService(client.Client)
	s.codeExec = services.NewCodeExecutionService(client.Client)
	router := s.Router()

	user := createHandlerUser(t, client.Client, "erin@example.com")
	chat, err := s.chats.CreateChat(ctx, &user.ID)
	require.NoError(t, err)

	bindDataset(s, "code-session")
	w := doJSON(t, router, http.MethodPost, "/chat/preprocessing_agent", ChatRequest{
		Query:     "clean the data",
		SessionID: "code-session",
		UserID:    &user.ID,
		ChatID:    &chat.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	recent, err := s.chats.GetRecentMessages(ctx, chat.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	code, err := s.codeExec.GetLatestCode(ctx, recent[1].ID)
	require.NoError(t, err)
	assert.Contains(t, code, "x = 1")
}
