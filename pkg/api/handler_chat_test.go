package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/planner"
)

const handlerAgentCompletion = "Code:\n```python\nx = 1\n```\n\nSummary:\ncleaned the data"

func TestIndividualChatHandler(t *testing.T) {
	t.Run("requires a dataset", func(t *testing.T) {
		s := testServer(llm.StaticText(handlerAgentCompletion))
		w := doJSON(t, s.Router(), http.MethodPost, "/chat/preprocessing_agent", ChatRequest{
			Query:     "clean the data",
			SessionID: "sess-1",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "dataset")
	})

	t.Run("unknown agent lists the available ones", func(t *testing.T) {
		s := testServer(llm.StaticText(handlerAgentCompletion))
		bindDataset(s, "sess-2")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat/quantum_agent", ChatRequest{
			Query:     "do something",
			SessionID: "sess-2",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "quantum_agent")
		assert.Contains(t, body["available_agents"], "preprocessing_agent")
	})

	t.Run("returns one output entry per agent", func(t *testing.T) {
		s := testServer(llm.StaticText(handlerAgentCompletion))
		bindDataset(s, "sess-3")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat/preprocessing_agent", ChatRequest{
			Query:     "clean the data",
			SessionID: "sess-3",
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "preprocessing_agent", body["agent_name"])
		assert.Equal(t, "sess-3", body["session_id"])

		response := body["response"].(map[string]any)
		output := response["preprocessing_agent"].(map[string]any)
		assert.Equal(t, "x = 1", output["code"])
		assert.Equal(t, "cleaned the data", output["summary"])
	})

	t.Run("answer-only agents return an answer field", func(t *testing.T) {
		s := testServer(llm.StaticText("The dataset has two columns."))
		bindDataset(s, "sess-4")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat/basic_qa_agent", ChatRequest{
			Query:     "what columns are there?",
			SessionID: "sess-4",
		})

		require.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)["response"].(map[string]any)
		output := response["basic_qa_agent"].(map[string]any)
		assert.Equal(t, "The dataset has two columns.", output["answer"])
	})
}

func TestPlannedChatHandler(t *testing.T) {
	t.Run("requires a dataset", func(t *testing.T) {
		s := testServer(llm.StaticText("unused"))
		w := doJSON(t, s.Router(), http.MethodPost, "/chat", ChatRequest{
			Query:     "what is churn?",
			SessionID: "sess-5",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("streams the planner description first, then step frames", func(t *testing.T) {
		client := llm.NewStaticClient("static", []*llm.Response{
			{Text: "Complexity: unrelated\nReasoning: general knowledge question"},
			{Text: "Churn is the rate at which customers leave."},
		}, []error{nil, nil})

		s := testServer(client)
		bindDataset(s, "sess-6")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat", ChatRequest{
			Query:     "what does churn mean?",
			SessionID: "sess-6",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
		assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"))

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Len(t, lines, 2)

		var first, second models.StreamFrame
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

		assert.Equal(t, "planner", first.Agent)
		assert.Equal(t, models.EventStatusSuccess, first.Status)
		assert.Contains(t, first.Content, models.BasicQAAgentName)

		assert.Equal(t, models.BasicQAAgentName, second.Agent)
		assert.Equal(t, models.EventStatusSuccess, second.Status)
		assert.Equal(t, "Churn is the rate at which customers leave.", second.Content)
	})

	t.Run("no enabled agents yields a single planner error frame", func(t *testing.T) {
		client := llm.StaticText("unused")
		s := testServerWithSignatures(client, &apiSignatures{agents: map[string]*models.AgentSignature{}})
		bindDataset(s, "sess-8")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat", ChatRequest{
			Query:     "analyze churn",
			SessionID: "sess-8",
		})

		require.Equal(t, http.StatusOK, w.Code)
		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Len(t, lines, 1, "nothing runs and no second frame follows")

		var frame models.StreamFrame
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &frame))
		assert.Equal(t, "planner", frame.Agent)
		assert.Equal(t, models.EventStatusError, frame.Status)
		assert.Equal(t, planner.NoAgentsMessage, frame.Content)
		assert.Empty(t, client.Calls(), "the planner short-circuits before any model call")
	})

	t.Run("contains per-step failures as error frames", func(t *testing.T) {
		client := llm.NewStaticClient("static", []*llm.Response{
			{Text: "Complexity: basic\nReasoning: single step"},
			{Text: "plan: preprocessing_agent"},
			nil,
		}, []error{nil, nil, errors.New("provider unavailable")})

		s := testServer(client)
		bindDataset(s, "sess-7")

		w := doJSON(t, s.Router(), http.MethodPost, "/chat", ChatRequest{
			Query:     "clean the data",
			SessionID: "sess-7",
		})

		require.Equal(t, http.StatusOK, w.Code)
		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Len(t, lines, 2)

		var step models.StreamFrame
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &step))
		assert.Equal(t, "preprocessing_agent", step.Agent)
		assert.Equal(t, models.EventStatusError, step.Status)
		assert.Contains(t, step.Content, "provider unavailable")
	})
}
