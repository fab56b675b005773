package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
)

func testAgents() []*models.AgentSignature {
	return []*models.AgentSignature{
		{Name: "preprocessing_agent", Description: "cleans and reshapes data"},
		{Name: "statistical_analytics_agent", Description: "statistical tests and models"},
		{Name: "sk_learn_agent", Description: "machine learning with scikit-learn"},
		{Name: "data_viz_agent", Description: "plotly visualizations", IsVisualization: true},
	}
}

func ok(texts ...string) ([]*llm.Response, []error) {
	responses := make([]*llm.Response, len(texts))
	errs := make([]error, len(texts))
	for i, t := range texts {
		responses[i] = &llm.Response{Text: t}
	}
	return responses, errs
}

func TestPlanner_Plan(t *testing.T) {
	ctx := context.Background()

	t.Run("no enabled agents short-circuits without a model call", func(t *testing.T) {
		client := llm.StaticText("should never be called")
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "analyze my data", "df schema", nil)
		require.NoError(t, err)
		assert.True(t, IsNoAgentsPlan(plan))
		assert.Empty(t, client.Calls(), "planner must not reach the provider")
	})

	t.Run("unrelated query routes to basic QA", func(t *testing.T) {
		responses, errs := ok("Complexity: unrelated\nReasoning: not about the dataset")
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "what is the capital of France?", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityUnrelated, plan.Complexity)
		assert.Equal(t, []string{models.BasicQAAgentName}, plan.Steps)
		assert.True(t, plan.IsBasicQA())
		assert.Equal(t, "not about the dataset", plan.Reasoning)
		assert.Len(t, client.Calls(), 1, "no sub-planner call for unrelated queries")
	})

	t.Run("basic query plans a single agent", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: basic\nReasoning: one-step question",
			"Plan: statistical_analytics_agent",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "mean churn rate?", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityBasic, plan.Complexity)
		assert.Equal(t, []string{"statistical_analytics_agent"}, plan.Steps)
		assert.Empty(t, plan.Instructions)
	})

	t.Run("intermediate plan is capped at two steps", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: intermediate\nReasoning: needs prep then stats",
			"Plan: preprocessing_agent -> statistical_analytics_agent -> data_viz_agent",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "clean then test", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, []string{"preprocessing_agent", "statistical_analytics_agent"}, plan.Steps)
	})

	t.Run("advanced plan carries per-step instructions", func(t *testing.T) {
		planText := `Plan: preprocessing_agent -> sk_learn_agent -> data_viz_agent
Instructions:
{
  "preprocessing_agent": {"create": ["cleaned_df"], "use": ["df"], "instruction": "drop nulls and encode categoricals"},
  "sk_learn_agent": {"create": ["model", "predictions"], "use": ["cleaned_df"], "instruction": "fit a churn classifier"},
  "data_viz_agent": {"create": ["fig"], "use": ["predictions"], "instruction": "plot predicted vs actual"}
}`
		responses, errs := ok("Complexity: advanced\nReasoning: full pipeline", planText)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "predict churn and visualize", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityAdvanced, plan.Complexity)
		assert.Equal(t, []string{"preprocessing_agent", "sk_learn_agent", "data_viz_agent"}, plan.Steps)
		require.Contains(t, plan.Instructions, "sk_learn_agent")
		spec := plan.Instructions["sk_learn_agent"]
		assert.Equal(t, []string{"model", "predictions"}, spec.Create)
		assert.Equal(t, []string{"cleaned_df"}, spec.Use)
		assert.Equal(t, "fit a churn classifier", spec.Instruction)
	})

	t.Run("failed advanced planner falls back to intermediate", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{
				{Text: "Complexity: advanced\nReasoning: looks complex"},
				nil,
				{Text: "Plan: preprocessing_agent -> data_viz_agent"},
			},
			[]error{nil, errors.New("rate limited"), nil})
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "big pipeline", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityIntermediate, plan.Complexity)
		assert.Equal(t, []string{"preprocessing_agent", "data_viz_agent"}, plan.Steps)
		assert.Len(t, client.Calls(), 3)
	})

	t.Run("unparseable advanced plan falls back to intermediate", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: advanced\nReasoning: looks complex",
			"I would suggest starting with preprocessing.",
			"Plan: preprocessing_agent",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "big pipeline", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityIntermediate, plan.Complexity)
		assert.Equal(t, []string{"preprocessing_agent"}, plan.Steps)
	})

	t.Run("unrecognized classification degrades to intermediate", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: impossible to say",
			"Plan: statistical_analytics_agent",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "hmm", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityIntermediate, plan.Complexity)
		assert.Equal(t, []string{"statistical_analytics_agent"}, plan.Steps)
	})

	t.Run("classifier error degrades to intermediate", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{nil, {Text: "Plan: preprocessing_agent -> data_viz_agent"}},
			[]error{errors.New("timeout"), nil})
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "clean and plot", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, models.ComplexityIntermediate, plan.Complexity)
		assert.Len(t, plan.Steps, 2)
	})

	t.Run("unknown and duplicate agents are dropped", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: intermediate\nReasoning: r",
			"Plan: made_up_agent -> preprocessing_agent -> preprocessing_agent -> data_viz_agent",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "clean and plot", "df schema", testAgents())
		require.NoError(t, err)
		assert.Equal(t, []string{"preprocessing_agent", "data_viz_agent"}, plan.Steps)
	})

	t.Run("intermediate planner yielding nothing returns an empty plan", func(t *testing.T) {
		responses, errs := ok(
			"Complexity: intermediate\nReasoning: r",
			"no plan here",
		)
		client := llm.NewStaticClient("openai", responses, errs)
		p := New(client, models.ModelConfig{})

		plan, err := p.Plan(ctx, "q", "df schema", testAgents())
		require.NoError(t, err)
		assert.True(t, plan.IsEmpty())
	})
}

func TestParsePlanSteps(t *testing.T) {
	t.Run("arrow syntax with mixed case and spacing", func(t *testing.T) {
		steps := parsePlanSteps("Plan: Preprocessing_Agent ->  data_viz_agent\n")
		assert.Equal(t, []string{"preprocessing_agent", "data_viz_agent"}, steps)
	})

	t.Run("single agent without arrows", func(t *testing.T) {
		assert.Equal(t, []string{"sk_learn_agent"}, parsePlanSteps("plan: sk_learn_agent"))
	})

	t.Run("prefix found past leading chatter", func(t *testing.T) {
		text := "Here is my plan.\nPlan: preprocessing_agent -> data_viz_agent"
		assert.Len(t, parsePlanSteps(text), 2)
	})

	t.Run("missing prefix yields nil", func(t *testing.T) {
		assert.Nil(t, parsePlanSteps("preprocessing_agent -> data_viz_agent"))
	})

	t.Run("empty segments dropped", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, parsePlanSteps("plan: a -> -> b"))
	})
}

func TestParseInstructions(t *testing.T) {
	t.Run("extracts the JSON object", func(t *testing.T) {
		text := `Instructions:
{"Preprocessing_Agent": {"create": ["x"], "use": ["df"], "instruction": "do it"}}`
		specs := parseInstructions(text)
		require.Contains(t, specs, "preprocessing_agent", "keys are normalized to lowercase")
		assert.Equal(t, "do it", specs["preprocessing_agent"].Instruction)
	})

	t.Run("malformed JSON yields empty map", func(t *testing.T) {
		assert.Empty(t, parseInstructions("Instructions:\n{not json"))
	})

	t.Run("no braces yields empty map", func(t *testing.T) {
		assert.Empty(t, parseInstructions("nothing structured"))
	})
}

func TestParseComplexity(t *testing.T) {
	cases := []struct {
		text string
		want models.Complexity
		ok   bool
	}{
		{"Complexity: basic\nReasoning: r", models.ComplexityBasic, true},
		{"complexity: ADVANCED", models.ComplexityAdvanced, true},
		{"I'd call this intermediate overall.", models.ComplexityIntermediate, true},
		{"Complexity: unrelated", models.ComplexityUnrelated, true},
		{"no tier named", "", false},
	}
	for _, tc := range cases {
		got, ok := parseComplexity(tc.text)
		assert.Equal(t, tc.ok, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}
