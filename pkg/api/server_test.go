package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/orchestrator"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/queue"
	"github.com/autoanalyst/analyst/pkg/retriever"
	"github.com/autoanalyst/analyst/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// apiSignatures serves both the session manager and the executors in
// handler tests.
type apiSignatures struct {
	agents map[string]*models.AgentSignature
}

func (s *apiSignatures) Individual(context.Context) (map[string]*models.AgentSignature, error) {
	return s.agents, nil
}

func (s *apiSignatures) PlannerForUser(context.Context, int) []*models.AgentSignature {
	names := make([]string, 0, len(s.agents))
	for name := range s.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*models.AgentSignature, 0, len(names))
	for _, name := range names {
		out = append(out, s.agents[name])
	}
	return out
}

func (s *apiSignatures) CoreSignatures() []*models.AgentSignature {
	return s.PlannerForUser(context.Background(), 0)
}

func handlerSignatures() *apiSignatures {
	return &apiSignatures{agents: map[string]*models.AgentSignature{
		"preprocessing_agent": {
			Name:   "preprocessing_agent",
			Prompt: "You clean data.",
			Inputs: []string{models.FieldGoal, models.FieldDataset, models.FieldPlanInstructions},
		},
		"statistical_analytics_agent": {
			Name:   "statistical_analytics_agent",
			Prompt: "You run statistics.",
			Inputs: []string{models.FieldGoal, models.FieldDataset, models.FieldPlanInstructions},
		},
		models.BasicQAAgentName: {
			Name:       models.BasicQAAgentName,
			Prompt:     "You answer general questions.",
			Inputs:     []string{models.FieldGoal},
			AnswerOnly: true,
		},
	}}
}

// testServer wires a server around one scripted LM client, with no
// database behind it.
func testServer(client llm.Client) *Server {
	return testServerWithSignatures(client, handlerSignatures())
}

func testServerWithSignatures(client llm.Client, sigs *apiSignatures) *Server {

	analyzerFactory := func(_ context.Context, agents []*models.AgentSignature, cfg models.ModelConfig, rets *retriever.Set) (*deep.Analyzer, error) {
		return deep.NewAnalyzer(agents, client, cfg, rets, nil, nil), nil
	}
	sessions := session.NewManager(sigs, analyzerFactory, models.ModelConfig{Provider: "static", Model: "gpt-4o-mini"})

	orchestrators := func(_ context.Context, cfg models.ModelConfig, _ *int) (*orchestrator.Orchestrator, error) {
		return orchestrator.New(sigs, planner.New(client, cfg), client, cfg, nil), nil
	}

	pool := queue.NewWorkerPool(&config.QueueConfig{
		WorkerCount:             1,
		MaxQueuedAnalyses:       2,
		AnalysisTimeout:         time.Minute,
		GracefulShutdownTimeout: time.Second,
	})

	return NewServer(Deps{
		Sessions:      sessions,
		Orchestrators: orchestrators,
		Pool:          pool,
	})
}

// bindDataset attaches a small dataset to the session under test.
func bindDataset(s *Server, sessionID string) {
	s.sessions.Get(sessionID).UpdateDataset(&models.Dataset{
		Name: "churn",
		Columns: []models.Column{
			{Name: "month", Type: models.ColumnTemporal},
			{Name: "churn_rate", Type: models.ColumnNumeric},
		},
	})
}

// doJSON runs one request against the router and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func itoa(v int) string { return strconv.Itoa(v) }

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	s := testServer(llm.StaticText("unused"))
	router := s.Router()

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "queue")
	assert.NotContains(t, body, "database", "no database wired in this test")
}

func TestSecurityHeaders(t *testing.T) {
	s := testServer(llm.StaticText("unused"))
	w := doJSON(t, s.Router(), http.MethodGet, "/health", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
