package deep

import "encoding/json"

// extractFigures pulls Plotly figure specs out of generated code: any
// balanced JSON object literal carrying both "data" and "layout" keys.
// The specs become the figure transport form streamed to consumers and
// embedded in the rendered report.
func extractFigures(text string) []string {
	var figs []string
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		end := matchBrace(text, i)
		if end < 0 {
			continue
		}
		candidate := text[i : end+1]
		if isFigureSpec(candidate) {
			figs = append(figs, candidate)
			i = end
		}
	}
	return figs
}

// matchBrace returns the index of the brace closing the one at start,
// skipping braces inside string literals, or -1 when unbalanced.
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isFigureSpec reports whether candidate parses as a figure object.
func isFigureSpec(candidate string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return false
	}
	_, hasData := obj["data"]
	_, hasLayout := obj["layout"]
	return hasData && hasLayout
}
