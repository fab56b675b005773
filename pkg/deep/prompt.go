package deep

import (
	"fmt"
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
)

const questionsSystemPrompt = `You are preparing a deep data analysis. From the goal and the dataset, write 3 to 5 sharp analytical sub-questions that together answer the goal. Number them, one per line, nothing else.`

const planningSystemPrompt = `You are planning a deep data analysis. Given the goal, the dataset, the analytical questions, and the available agents, write a short ordered plan: which agent addresses which questions and what it should produce. Plain text, a few lines per step.`

const synthesisSystemPrompt = `You are synthesizing findings from a multi-step data analysis. Reconcile the step summaries into a coherent account: agreements, tensions, and what the evidence supports. A few paragraphs of plain prose.`

const conclusionSystemPrompt = `You are concluding a deep data analysis. From the synthesis, write the final narrative: the answer to the goal, the key evidence, and recommended next steps. Start with a "**Conclusion**" heading line.`

func buildQuestionsPrompt(goal, datasetDesc string) string {
	return fmt.Sprintf("Goal:\n%s\n\nDataset:\n%s", goal, datasetDesc)
}

func buildPlanningPrompt(goal, datasetDesc, questions string, agents []*models.AgentSignature) string {
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name)
	}
	return fmt.Sprintf("Goal:\n%s\n\nDataset:\n%s\n\nQuestions:\n%s\n\nAvailable agents: %s",
		goal, datasetDesc, questions, strings.Join(names, ", "))
}

func buildSynthesisPrompt(goal string, summaries []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal:\n%s\n\nStep summaries:\n", goal)
	for i, s := range summaries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

func buildConclusionPrompt(goal, synthesis string) string {
	return fmt.Sprintf("Goal:\n%s\n\nSynthesis:\n%s", goal, synthesis)
}

// buildAgentGoal frames one agent's task with the run's questions and
// plan so each step works toward the same analysis.
func buildAgentGoal(goal, questions, plan string) string {
	return fmt.Sprintf("%s\n\nAnalytical questions:\n%s\n\nAnalysis plan:\n%s", goal, questions, plan)
}
