package agent

import "strings"

// extractCodeBlock returns the contents of the first fenced code block.
// A "```python" fence is preferred; a bare "```" fence is accepted so
// models that drop the language tag still parse.
func extractCodeBlock(text string) string {
	for _, fence := range []string{"```python", "```"} {
		start := strings.Index(text, fence)
		if start < 0 {
			continue
		}
		rest := text[start+len(fence):]
		end := strings.Index(rest, "```")
		if end < 0 {
			// Unterminated fence: take everything after it
			return strings.TrimSpace(rest)
		}
		return strings.TrimSpace(rest[:end])
	}
	return ""
}

// extractSummary returns the text following the last "Summary:" marker,
// stripped of any trailing fenced block the model may have appended.
func extractSummary(text string) string {
	idx := strings.LastIndex(text, "Summary:")
	if idx < 0 {
		return ""
	}
	summary := text[idx+len("Summary:"):]
	if fence := strings.Index(summary, "```"); fence >= 0 {
		summary = summary[:fence]
	}
	return strings.TrimSpace(summary)
}
