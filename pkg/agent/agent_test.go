package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
)

func vizSignature() *models.AgentSignature {
	return &models.AgentSignature{
		Name:            "data_viz_agent",
		Prompt:          "You are a data visualization agent.",
		Category:        "Data Visualization",
		Inputs:          []string{models.FieldGoal, models.FieldDataset, models.FieldStylingIndex},
		IsVisualization: true,
	}
}

func qaSignature() *models.AgentSignature {
	return &models.AgentSignature{
		Name:       models.BasicQAAgentName,
		Prompt:     "You answer general questions about data analysis.",
		Inputs:     []string{models.FieldGoal},
		AnswerOnly: true,
	}
}

const vizCompletion = "Code:\n```python\nimport plotly.express as px\nfig = px.line(df, x='month', y='churn')\n```\n\nSummary:\nA monthly churn line chart."

func TestTemplateAgent_Forward(t *testing.T) {
	t.Run("parses code and summary", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{{Text: vizCompletion, PromptTokens: 100, CompletionTokens: 40}},
			[]error{nil})
		a := NewTemplateAgent(vizSignature(), client, models.ModelConfig{Model: "gpt-4o-mini"})

		result, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal:         "plot churn by month",
			models.FieldDataset:      "df: month, churn",
			models.FieldStylingIndex: "use plotly_white",
		})
		require.NoError(t, err)
		assert.Contains(t, result.Output.Code, "px.line")
		assert.Equal(t, "A monthly churn line chart.", result.Output.Summary)
		assert.False(t, result.Output.IsError())
		assert.Equal(t, 140, result.TotalTokens())
	})

	t.Run("prompt carries labeled inputs in signature order", func(t *testing.T) {
		client := llm.StaticText(vizCompletion)
		a := NewTemplateAgent(vizSignature(), client, models.ModelConfig{Model: "gpt-4o-mini"})

		_, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal:         "plot churn",
			models.FieldDataset:      "df schema",
			models.FieldStylingIndex: "styling hints",
		})
		require.NoError(t, err)

		calls := client.Calls()
		require.Len(t, calls, 1)
		prompt := calls[0].Prompt
		assert.Contains(t, prompt, "Goal:\nplot churn")
		assert.Contains(t, prompt, "Dataset:\ndf schema")
		assert.Contains(t, prompt, "Styling instructions:\nstyling hints")
		assert.Less(t, len(calls[0].System), 2000)
		assert.Contains(t, calls[0].System, "You are a data visualization agent.")
	})

	t.Run("missing required input fails before the provider call", func(t *testing.T) {
		client := llm.StaticText(vizCompletion)
		a := NewTemplateAgent(vizSignature(), client, models.ModelConfig{})

		_, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal: "plot churn",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required input")
		assert.Empty(t, client.Calls())
	})

	t.Run("provider error is wrapped with the agent name", func(t *testing.T) {
		client := llm.NewStaticClient("openai",
			[]*llm.Response{nil}, []error{errors.New("rate limited")})
		a := NewTemplateAgent(vizSignature(), client, models.ModelConfig{})

		_, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal:         "g",
			models.FieldDataset:      "d",
			models.FieldStylingIndex: "s",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_viz_agent")
	})

	t.Run("QA agent returns the whole completion as answer", func(t *testing.T) {
		client := llm.StaticText("The dataset has 12 monthly rows.")
		a := NewTemplateAgent(qaSignature(), client, models.ModelConfig{})

		result, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal: "how many rows?",
		})
		require.NoError(t, err)
		assert.Equal(t, "The dataset has 12 monthly rows.", result.Output.Answer)
		assert.Empty(t, result.Output.Code)
	})

	t.Run("unparseable completion becomes an agent-level error", func(t *testing.T) {
		client := llm.StaticText("I cannot help with that.")
		a := NewTemplateAgent(vizSignature(), client, models.ModelConfig{})

		result, err := a.Forward(context.Background(), map[string]string{
			models.FieldGoal:         "g",
			models.FieldDataset:      "d",
			models.FieldStylingIndex: "s",
		})
		require.NoError(t, err, "malformed output is not a transport error")
		assert.True(t, result.Output.IsError())
	})
}

func TestExtractCodeBlock(t *testing.T) {
	t.Run("python fence preferred", func(t *testing.T) {
		code := extractCodeBlock("```python\nx = 1\n```")
		assert.Equal(t, "x = 1", code)
	})

	t.Run("bare fence accepted", func(t *testing.T) {
		code := extractCodeBlock("```\ny = 2\n```")
		assert.Equal(t, "y = 2", code)
	})

	t.Run("unterminated fence takes the rest", func(t *testing.T) {
		code := extractCodeBlock("```python\nz = 3")
		assert.Equal(t, "z = 3", code)
	})

	t.Run("no fence yields empty", func(t *testing.T) {
		assert.Empty(t, extractCodeBlock("no code here"))
	})
}

func TestExtractSummary(t *testing.T) {
	t.Run("takes text after the last marker", func(t *testing.T) {
		text := "Summary:\nfirst\n\nCode:\n```python\nx\n```\n\nSummary:\nthe real one"
		assert.Equal(t, "the real one", extractSummary(text))
	})

	t.Run("strips trailing fence", func(t *testing.T) {
		text := "Summary:\nshort note\n```python\nleftover\n```"
		assert.Equal(t, "short note", extractSummary(text))
	})

	t.Run("missing marker yields empty", func(t *testing.T) {
		assert.Empty(t, extractSummary("no marker"))
	})
}
