package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
)

func TestBindDatasetHandler(t *testing.T) {
	t.Run("binds the dataset and rebuilds retrievers", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		w := doJSON(t, s.Router(), http.MethodPost, "/session/dataset", BindDatasetRequest{
			SessionID: "ds-1",
			Dataset: models.Dataset{
				Name: "sales",
				Columns: []models.Column{
					{Name: "region", Type: models.ColumnCategorical},
					{Name: "revenue", Type: models.ColumnNumeric},
				},
			},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decodeBody(t, w)["description"], "revenue")
		assert.True(t, s.sessions.Get("ds-1").HasDataset())
	})

	t.Run("rejects a dataset without columns", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		w := doJSON(t, s.Router(), http.MethodPost, "/session/dataset", BindDatasetRequest{
			SessionID: "ds-2",
			Dataset:   models.Dataset{Name: "empty"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBindUserHandler(t *testing.T) {
	s := testServer(llm.StaticText("unused"))
	chatID := 4
	w := doJSON(t, s.Router(), http.MethodPost, "/session/user", BindUserRequest{
		SessionID: "u-1",
		UserID:    7,
		ChatID:    &chatID,
	})

	require.Equal(t, http.StatusOK, w.Code)
	sess := s.sessions.Get("u-1")
	require.NotNil(t, sess.UserID())
	assert.Equal(t, 7, *sess.UserID())
	require.NotNil(t, sess.ChatID())
	assert.Equal(t, 4, *sess.ChatID())
}

func TestSetModelHandler(t *testing.T) {
	t.Run("switches the session model", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		w := doJSON(t, s.Router(), http.MethodPost, "/session/model", SetModelRequest{
			SessionID:   "m-1",
			Provider:    "anthropic",
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   2048,
			Temperature: 0.2,
		})

		require.Equal(t, http.StatusOK, w.Code)
		cfg := s.sessions.Get("m-1").ModelConfig()
		assert.Equal(t, "anthropic", cfg.Provider)
		assert.Equal(t, "claude-sonnet-4-20250514", cfg.Model)
		assert.Equal(t, 2048, cfg.MaxTokens)
	})

	t.Run("rejects a provider missing from the registry", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		s.cfg = &config.Config{
			LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
				"openai": {Type: "openai", Model: "gpt-4o-mini"},
			}),
		}

		w := doJSON(t, s.Router(), http.MethodPost, "/session/model", SetModelRequest{
			SessionID: "m-2",
			Provider:  "mystery",
			Model:     "mystery-1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClearSessionHandler(t *testing.T) {
	s := testServer(llm.StaticText("unused"))
	bindDataset(s, "c-1")
	require.True(t, s.sessions.Get("c-1").HasDataset())

	w := doJSON(t, s.Router(), http.MethodDelete, "/session/c-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, s.sessions.Get("c-1").HasDataset(), "cleared session starts fresh")
}
