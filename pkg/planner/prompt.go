package planner

import (
	"fmt"
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
)

const classifierSystemPrompt = `You route data analytics queries to a planning tier. Grade the query against the dataset and the available agents:

- basic: a single agent can answer it in one step
- intermediate: needs two agents working in sequence
- advanced: needs a longer multi-agent pipeline with data handed between steps
- unrelated: the query is not about analyzing the loaded dataset

Respond in exactly this format:

Complexity: <basic|intermediate|advanced|unrelated>
Reasoning: <one sentence>`

const basicPlannerSystemPrompt = `You pick exactly one agent to answer a data analytics query. Choose the single best-suited agent from the list.

Respond in exactly this format:

Plan: <agent_name>`

const intermediatePlannerSystemPrompt = `You plan a short data analytics pipeline of at most two agents. Choose the agents from the list and order them so each step's output feeds the next.

Respond in exactly this format:

Plan: <agent_name> -> <agent_name>`

const advancedPlannerSystemPrompt = `You plan a multi-step data analytics pipeline. Choose agents from the list, order them so each step's output feeds the next, and for every step state which variables it creates, which it uses, and what it should do.

Respond in exactly this format:

Plan: <agent_name> -> <agent_name> -> <agent_name>
Instructions:
{
  "<agent_name>": {"create": ["<variable>"], "use": ["<variable>"], "instruction": "<what this step should do>"}
}`

// subPlannerSystemPrompt returns the system prompt for a planning tier.
// Unknown tiers plan at the intermediate level.
func subPlannerSystemPrompt(complexity models.Complexity) string {
	switch complexity {
	case models.ComplexityBasic:
		return basicPlannerSystemPrompt
	case models.ComplexityAdvanced:
		return advancedPlannerSystemPrompt
	default:
		return intermediatePlannerSystemPrompt
	}
}

// buildClassifierPrompt renders the query, dataset, and agent catalog for
// the complexity classifier.
func buildClassifierPrompt(goal, datasetDesc string, agents []*models.AgentSignature) string {
	return fmt.Sprintf("Query:\n%s\n\nDataset:\n%s\n\nAvailable agents:\n%s",
		strings.TrimSpace(goal), strings.TrimSpace(datasetDesc), agentCatalog(agents))
}

// buildPlanPrompt renders the query, dataset, and agent catalog for a
// sub-planner. All tiers share the same input shape.
func buildPlanPrompt(goal, datasetDesc string, agents []*models.AgentSignature) string {
	return fmt.Sprintf("Query:\n%s\n\nDataset:\n%s\n\nAvailable agents:\n%s",
		strings.TrimSpace(goal), strings.TrimSpace(datasetDesc), agentCatalog(agents))
}

// agentCatalog renders the available agents as a name/description list.
func agentCatalog(agents []*models.AgentSignature) string {
	var b strings.Builder
	for _, a := range agents {
		b.WriteString("- ")
		b.WriteString(a.Name)
		if desc := strings.TrimSpace(a.Description); desc != "" {
			b.WriteString(": ")
			b.WriteString(desc)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
