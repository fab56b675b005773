package usage

// Credit cost per model tier. Tier 1 is the floor: cheap or unknown
// models cost one credit per invocation.
var tierCredits = map[int]int{
	1: 1,
	2: 3,
	3: 5,
	4: 20,
	5: 50,
}

// modelTiers assigns each known model to a credit tier.
var modelTiers = map[string]int{
	"gpt-4o-mini":                   1,
	"gpt-4.1-mini":                  1,
	"llama-3.1-8b-instant":          1,
	"gemini-2.0-flash":              1,
	"o3-mini":                       2,
	"llama-3.3-70b-versatile":       2,
	"deepseek-r1-distill-llama-70b": 2,
	"gemini-2.5-flash":              2,
	"gpt-4o":                        3,
	"gpt-4.1":                       3,
	"claude-3-5-haiku-latest":       2,
	"claude-3-5-sonnet-latest":      3,
	"claude-3-7-sonnet-20250219":    3,
	"claude-sonnet-4-20250514":      4,
	"gemini-2.5-pro":                4,
}

// Credits returns the credit cost of one invocation of model. Unknown
// models bill at tier 1.
func Credits(model string) int {
	tier, ok := modelTiers[model]
	if !ok {
		tier = 1
	}
	return tierCredits[tier]
}
