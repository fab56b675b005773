// Package registry resolves stored agent templates into runtime agent
// signatures: the input fields each agent requires and how its output is
// shaped, for both explicit invocation and planner-driven execution.
package registry

import (
	"strings"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/pkg/models"
)

// visualizationCategory is the canonical category for chart-producing
// agents. Matching is case-insensitive.
const visualizationCategory = "data visualization"

// visualizationHints are name fragments used as a fallback when a
// template's category is missing or nonstandard.
var visualizationHints = []string{"viz", "visual", "plot", "chart", "matplotlib"}

// isVisualization reports whether a template produces charts and should
// receive the styling index as an input.
func isVisualization(tpl *ent.AgentTemplate) bool {
	if strings.EqualFold(tpl.Category, visualizationCategory) {
		return true
	}
	name := strings.ToLower(tpl.TemplateName)
	for _, hint := range visualizationHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// buildSignature converts a stored template into a runtime signature.
// Every standard signature takes plan_instructions: the executor fills
// it with the step's contract from the plan, and individual invocation
// passes an empty default, so both modes share one input shape.
func buildSignature(tpl *ent.AgentTemplate) *models.AgentSignature {
	sig := &models.AgentSignature{
		Name:        tpl.TemplateName,
		Description: tpl.Description,
		Prompt:      tpl.PromptTemplate,
		Category:    tpl.Category,
	}

	if tpl.TemplateName == models.BasicQAAgentName {
		sig.AnswerOnly = true
		sig.Inputs = []string{models.FieldGoal}
		return sig
	}

	sig.Inputs = []string{models.FieldGoal, models.FieldDataset}
	if isVisualization(tpl) {
		sig.IsVisualization = true
		sig.Inputs = append(sig.Inputs, models.FieldStylingIndex)
	}
	sig.Inputs = append(sig.Inputs, models.FieldPlanInstructions)
	return sig
}

// coreFallbackSignatures returns built-in signatures for the four core
// agents. Used when the template store is unreachable so planner-driven
// analysis can still run with defaults.
func coreFallbackSignatures() []*models.AgentSignature {
	prompts := map[string]string{
		"preprocessing_agent":         "You are a data preprocessing agent. Clean and prepare the dataset for the stated goal using pandas and numpy.",
		"statistical_analytics_agent": "You are a statistical analytics agent. Run the statistical analysis the goal asks for using statsmodels.",
		"sk_learn_agent":              "You are a machine learning agent. Train and evaluate scikit-learn models appropriate for the goal.",
		"data_viz_agent":              "You are a data visualization agent. Produce Plotly figures that answer the goal, following the styling instructions.",
	}
	categories := map[string]string{
		"preprocessing_agent":         "Data Manipulation",
		"statistical_analytics_agent": "Statistical Analysis",
		"sk_learn_agent":              "Data Modelling",
		"data_viz_agent":              "Data Visualization",
	}

	out := make([]*models.AgentSignature, 0, len(models.CoreAgentNames))
	for _, name := range models.CoreAgentNames {
		sig := &models.AgentSignature{
			Name:     name,
			Prompt:   prompts[name],
			Category: categories[name],
			Inputs:   []string{models.FieldGoal, models.FieldDataset},
		}
		if name == "data_viz_agent" {
			sig.IsVisualization = true
			sig.Inputs = append(sig.Inputs, models.FieldStylingIndex)
		}
		sig.Inputs = append(sig.Inputs, models.FieldPlanInstructions)
		out = append(out, sig)
	}
	return out
}
