package planner

import (
	"encoding/json"
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
)

// parsePlanSteps extracts the ordered agent list from the model's plan
// line. The line is located by its "plan:" prefix (case-insensitive),
// lowercased, and split on the arrow syntax:
//
//	Plan: preprocessing_agent -> statistical_analytics_agent
//
// A single-name plan has no arrows. Parsing happens exactly once, here;
// downstream code only ever sees the structured steps.
func parsePlanSteps(text string) []string {
	var planLine string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := cutPrefixFold(trimmed, "plan:"); ok {
			planLine = rest
			break
		}
	}
	if planLine == "" {
		return nil
	}

	var steps []string
	for _, part := range strings.Split(strings.ToLower(planLine), "->") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		steps = append(steps, name)
	}
	return steps
}

// parseInstructions extracts the per-step instruction mapping from the
// model output: the outermost JSON object keyed by agent name. A missing
// or malformed blob yields an empty map — instructions are an enhancement,
// not a requirement.
func parseInstructions(text string) map[string]models.StepSpec {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return map[string]models.StepSpec{}
	}

	var instructions map[string]models.StepSpec
	if err := json.Unmarshal([]byte(text[start:end+1]), &instructions); err != nil {
		return map[string]models.StepSpec{}
	}

	// Normalize keys to match the lowercased step names
	normalized := make(map[string]models.StepSpec, len(instructions))
	for name, spec := range instructions {
		normalized[strings.ToLower(strings.TrimSpace(name))] = spec
	}
	return normalized
}

// parseComplexity extracts the classifier's grade. An explicit
// "complexity:" line is preferred; failing that, the whole response is
// scanned for a tier keyword so loosely formatted answers still route.
func parseComplexity(text string) (models.Complexity, bool) {
	haystack := strings.ToLower(text)
	for _, line := range strings.Split(haystack, "\n") {
		if rest, ok := cutPrefixFold(strings.TrimSpace(line), "complexity:"); ok {
			haystack = rest
			break
		}
	}

	for _, c := range []models.Complexity{
		models.ComplexityUnrelated,
		models.ComplexityAdvanced,
		models.ComplexityIntermediate,
		models.ComplexityBasic,
	} {
		if strings.Contains(haystack, string(c)) {
			return c, true
		}
	}
	return "", false
}

// parseReasoning returns the text after a "reasoning:" marker, if any.
func parseReasoning(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := cutPrefixFold(strings.TrimSpace(line), "reasoning:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// cutPrefixFold is strings.CutPrefix with case-insensitive matching.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}
