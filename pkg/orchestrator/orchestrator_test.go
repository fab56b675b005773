package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/pkg/agent"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/registry"
	"github.com/autoanalyst/analyst/pkg/retriever"
	"github.com/autoanalyst/analyst/pkg/services"
	testdb "github.com/autoanalyst/analyst/test/database"
)

// stubSignatures is a fixed SignatureSource for executor tests.
type stubSignatures struct {
	agents map[string]*models.AgentSignature
	err    error
}

func (s *stubSignatures) Individual(context.Context) (map[string]*models.AgentSignature, error) {
	return s.agents, s.err
}

func (s *stubSignatures) PlannerForUser(context.Context, int) []*models.AgentSignature {
	out := make([]*models.AgentSignature, 0, len(s.agents))
	for _, sig := range s.agents {
		out = append(out, sig)
	}
	return out
}

// recordingUsage captures every reported agent run.
type recordingUsage struct {
	mu   sync.Mutex
	runs []string
}

func (r *recordingUsage) RecordAgentRun(_ context.Context, _ int, agentName, _ string, _ *agent.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, agentName)
}

func testSignatures() *stubSignatures {
	return &stubSignatures{agents: map[string]*models.AgentSignature{
		"preprocessing_agent": {
			Name:   "preprocessing_agent",
			Prompt: "You clean data.",
			Inputs: []string{models.FieldGoal, models.FieldDataset, models.FieldPlanInstructions},
		},
		"data_viz_agent": {
			Name:            "data_viz_agent",
			Prompt:          "You plot data.",
			Inputs:          []string{models.FieldGoal, models.FieldDataset, models.FieldStylingIndex, models.FieldPlanInstructions},
			IsVisualization: true,
		},
		models.BasicQAAgentName: {
			Name:       models.BasicQAAgentName,
			Prompt:     "You answer general questions.",
			Inputs:     []string{models.FieldGoal},
			AnswerOnly: true,
		},
	}}
}

func testRetrievers() *retriever.Set {
	return &retriever.Set{
		Dataset: retriever.NewStatic("df: month, churn"),
		Style:   retriever.NewStatic("use plotly_white"),
	}
}

const agentCompletion = "Code:\n```python\nx = 1\n```\n\nSummary:\ndid the step"

func collect(t *testing.T, events <-chan models.ExecutionEvent) []models.ExecutionEvent {
	t.Helper()
	var out []models.ExecutionEvent
	for evt := range events {
		out = append(out, evt)
	}
	return out
}

func TestExecuteIndividual(t *testing.T) {
	ctx := context.Background()

	t.Run("runs a comma-separated list in order", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		usage := &recordingUsage{}
		o := New(testSignatures(), nil, client, models.ModelConfig{}, usage)

		userID := 7
		events, err := o.ExecuteIndividual(ctx, "preprocessing_agent, data_viz_agent", "clean and plot", testRetrievers(), &userID)
		require.NoError(t, err)

		got := collect(t, events)
		require.Len(t, got, 2)
		assert.Equal(t, "preprocessing_agent", got[0].Agent)
		assert.Equal(t, "data_viz_agent", got[1].Agent)
		assert.Equal(t, models.EventStatusSuccess, got[0].Status)
		assert.Equal(t, []string{"preprocessing_agent", "data_viz_agent"}, usage.runs)
	})

	t.Run("populates retriever-backed inputs", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		o := New(testSignatures(), nil, client, models.ModelConfig{}, nil)

		events, err := o.ExecuteIndividual(ctx, "data_viz_agent", "plot churn", testRetrievers(), nil)
		require.NoError(t, err)

		got := collect(t, events)
		require.Len(t, got, 1)
		assert.Equal(t, "plot churn", got[0].Inputs[models.FieldGoal])
		assert.Equal(t, "df: month, churn", got[0].Inputs[models.FieldDataset])
		assert.Equal(t, "use plotly_white", got[0].Inputs[models.FieldStylingIndex])
		assert.Equal(t, "", got[0].Inputs[models.FieldPlanInstructions],
			"individual mode passes the empty default")
	})

	t.Run("unknown agent fails before any event", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		o := New(testSignatures(), nil, client, models.ModelConfig{}, nil)

		_, err := o.ExecuteIndividual(ctx, "nonexistent_agent", "q", testRetrievers(), nil)
		var unknownErr *UnknownAgentError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "nonexistent_agent", unknownErr.Name)
		assert.Contains(t, unknownErr.Available, "preprocessing_agent")
		assert.Empty(t, client.Calls())
	})

	t.Run("provider failure is contained per agent", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{nil, {Text: agentCompletion}},
			[]error{errors.New("rate limited"), nil})
		o := New(testSignatures(), nil, client, models.ModelConfig{}, nil)

		events, err := o.ExecuteIndividual(ctx, "preprocessing_agent,data_viz_agent", "q", testRetrievers(), nil)
		require.NoError(t, err)

		got := collect(t, events)
		require.Len(t, got, 2, "second agent still runs after the first fails")
		assert.Equal(t, models.EventStatusError, got[0].Status)
		assert.Contains(t, got[0].Output.Error, "rate limited")
		assert.Equal(t, models.EventStatusSuccess, got[1].Status)
	})
}

func plannedOrchestrator(client llm.Client, usage UsageRecorder) *Orchestrator {
	pl := planner.New(client, models.ModelConfig{})
	return New(testSignatures(), pl, client, models.ModelConfig{}, usage)
}

func TestExecutePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("events are the projection of plan steps", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		o := plannedOrchestrator(client, nil)

		plan := &models.Plan{
			Complexity: models.ComplexityAdvanced,
			Steps:      []string{"preprocessing_agent", "data_viz_agent"},
			Instructions: map[string]models.StepSpec{
				"data_viz_agent": {Create: []string{"fig"}, Use: []string{"cleaned_df"}, Instruction: "plot it"},
			},
		}
		got := collect(t, o.ExecutePlan(ctx, plan, "analyze churn", testRetrievers(), nil))
		require.Len(t, got, 2)
		assert.Equal(t, "preprocessing_agent", got[0].Agent)
		assert.Equal(t, "data_viz_agent", got[1].Agent)
		assert.Equal(t, "", got[0].Inputs[models.FieldPlanInstructions],
			"steps without a contract get empty instructions")
		assert.JSONEq(t,
			`{"create":["fig"],"use":["cleaned_df"],"instruction":"plot it"}`,
			got[1].Inputs[models.FieldPlanInstructions])
	})

	t.Run("basic QA plan runs the QA agent alone", func(t *testing.T) {
		client := llm.StaticText("Paris is the capital of France.")
		o := plannedOrchestrator(client, nil)

		plan := &models.Plan{Complexity: models.ComplexityUnrelated, Steps: []string{models.BasicQAAgentName}}
		got := collect(t, o.ExecutePlan(ctx, plan, "capital of France?", testRetrievers(), nil))
		require.Len(t, got, 1)
		assert.Equal(t, models.BasicQAAgentName, got[0].Agent)
		assert.Equal(t, "Paris is the capital of France.", got[0].Output.Answer)
	})

	t.Run("no-agents sentinel yields the remediation message", func(t *testing.T) {
		o := plannedOrchestrator(llm.StaticText("unused"), nil)

		got := collect(t, o.ExecutePlan(ctx, planner.NoAgentsPlan(), "q", testRetrievers(), nil))
		require.Len(t, got, 1)
		assert.Equal(t, models.PlanNoAgentsAvailable, got[0].Agent)
		assert.Equal(t, models.EventStatusError, got[0].Status)
		assert.Equal(t, planner.NoAgentsMessage, got[0].Output.Error)
	})

	t.Run("nil plan yields plan_not_found", func(t *testing.T) {
		o := plannedOrchestrator(llm.StaticText("unused"), nil)

		got := collect(t, o.ExecutePlan(ctx, nil, "q", testRetrievers(), nil))
		require.Len(t, got, 1)
		assert.Equal(t, models.EventPlanNotFound, got[0].Agent)
	})

	t.Run("empty plan yields plan_not_formatted_correctly", func(t *testing.T) {
		o := plannedOrchestrator(llm.StaticText("unused"), nil)

		got := collect(t, o.ExecutePlan(ctx, &models.Plan{}, "q", testRetrievers(), nil))
		require.Len(t, got, 1)
		assert.Equal(t, models.EventPlanNotFormatted, got[0].Agent)
		assert.Equal(t, models.EventStatusError, got[0].Status)
	})

	t.Run("fully unresolvable plan yields one plan_not_found event", func(t *testing.T) {
		o := plannedOrchestrator(llm.StaticText("unused"), nil)

		plan := &models.Plan{Steps: []string{"ghost_agent", "phantom_agent"}}
		got := collect(t, o.ExecutePlan(ctx, plan, "q", testRetrievers(), nil))
		require.Len(t, got, 1)
		assert.Equal(t, models.EventPlanNotFound, got[0].Agent)
	})

	t.Run("partially unresolvable plan keeps the step slot", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		o := plannedOrchestrator(client, nil)

		plan := &models.Plan{Steps: []string{"ghost_agent", "preprocessing_agent"}}
		got := collect(t, o.ExecutePlan(ctx, plan, "q", testRetrievers(), nil))
		require.Len(t, got, 2)
		assert.Equal(t, "ghost_agent", got[0].Agent)
		assert.Equal(t, models.EventStatusError, got[0].Status)
		assert.Equal(t, "preprocessing_agent", got[1].Agent)
		assert.Equal(t, models.EventStatusSuccess, got[1].Status)
	})

	t.Run("every run is reported to the usage recorder", func(t *testing.T) {
		client := llm.StaticText(agentCompletion)
		usage := &recordingUsage{}
		o := plannedOrchestrator(client, usage)

		userID := 3
		plan := &models.Plan{Steps: []string{"preprocessing_agent", "data_viz_agent"}}
		collect(t, o.ExecutePlan(ctx, plan, "q", testRetrievers(), &userID))
		assert.Equal(t, []string{"preprocessing_agent", "data_viz_agent"}, usage.runs)
	})
}

// TestExecutePlan_RegistrySignatures runs a plan against signatures
// resolved from stored templates instead of hand-built stubs, so the
// full path from template row to agent prompt is covered.
func TestExecutePlan_RegistrySignatures(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	for name, category := range map[string]string{
		"statistical_analytics_agent": "Statistical Analysis",
		"data_viz_agent":              "Data Visualization",
	} {
		_, err := db.Client.AgentTemplate.Create().
			SetTemplateName(name).
			SetDisplayName(name).
			SetDescription("test " + name).
			SetPromptTemplate("You are " + name + ".").
			SetCategory(category).
			SetVariantType(agenttemplate.VariantTypeBoth).
			Save(ctx)
		require.NoError(t, err)
	}

	client := llm.StaticText(agentCompletion)
	reg := registry.New(services.NewTemplateService(db.Client))
	o := New(reg, planner.New(client, models.ModelConfig{}), client, models.ModelConfig{}, nil)

	plan := &models.Plan{
		Complexity: models.ComplexityAdvanced,
		Steps:      []string{"statistical_analytics_agent", "data_viz_agent"},
		Instructions: map[string]models.StepSpec{
			"statistical_analytics_agent": {Create: []string{"regression_results"}, Use: []string{"cleaned_data"}, Instruction: "fit an OLS model"},
			"data_viz_agent":              {Create: []string{"fig"}, Use: []string{"cleaned_data", "regression_results"}, Instruction: "plot the fitted line"},
		},
	}
	got := collect(t, o.ExecutePlan(ctx, plan, "regress churn on tenure and plot it", testRetrievers(), nil))
	require.Len(t, got, 2)
	assert.Equal(t, models.EventStatusSuccess, got[0].Status)
	assert.JSONEq(t,
		`{"create":["fig"],"use":["cleaned_data","regression_results"],"instruction":"plot the fitted line"}`,
		got[1].Inputs[models.FieldPlanInstructions])

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1].Prompt, "Plan instructions")
	assert.Contains(t, calls[1].Prompt, "regression_results",
		"the step contract must reach the agent prompt")
}

func TestGetPlan(t *testing.T) {
	t.Run("dataset description reaches the planner", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{
				{Text: "Complexity: basic\nReasoning: r"},
				{Text: "Plan: preprocessing_agent"},
			},
			[]error{nil, nil})
		o := plannedOrchestrator(client, nil)

		plan, err := o.GetPlan(context.Background(), "clean my data", testRetrievers(), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"preprocessing_agent"}, plan.Steps)

		calls := client.Calls()
		require.Len(t, calls, 2)
		assert.Contains(t, calls[0].Prompt, "df: month, churn")
	})
}
