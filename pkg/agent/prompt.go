package agent

import (
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
)

// Output format instructions appended to every system prompt. Standard
// agents reply with a fenced python block and a Summary section; the QA
// agent replies in plain prose.
const (
	codeFormatInstructions = `Respond in exactly this format:

Code:
` + "```python" + `
<the complete python code for this step>
` + "```" + `

Summary:
<a short plain-language summary of what the code does and why>`

	answerFormatInstructions = `Answer the question directly in plain language. Do not produce code.`
)

// Human-readable labels for the input fields in the user prompt.
var inputLabels = map[string]string{
	models.FieldGoal:             "Goal",
	models.FieldDataset:          "Dataset",
	models.FieldStylingIndex:     "Styling instructions",
	models.FieldPlanInstructions: "Plan instructions",
}

// buildSystemPrompt combines the template prompt with the output format
// contract for the signature's shape.
func buildSystemPrompt(sig *models.AgentSignature) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(sig.Prompt))
	b.WriteString("\n\n")
	if sig.AnswerOnly {
		b.WriteString(answerFormatInstructions)
	} else {
		b.WriteString(codeFormatInstructions)
	}
	return b.String()
}

// buildUserPrompt renders the signature's inputs as labeled sections, in
// the signature's input order.
func buildUserPrompt(sig *models.AgentSignature, inputs map[string]string) string {
	var b strings.Builder
	for _, field := range sig.Inputs {
		label, ok := inputLabels[field]
		if !ok {
			label = field
		}
		b.WriteString(label)
		b.WriteString(":\n")
		b.WriteString(strings.TrimSpace(inputs[field]))
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
