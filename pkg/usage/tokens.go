package usage

import (
	"math"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding counts tokens for models tiktoken does not know.
const fallbackEncoding = "cl100k_base"

// CountTokens returns the token count of text under the model's
// tokenizer. Providers that report exact usage make this unnecessary;
// it exists for responses that arrive without usage data. When no
// tokenizer is available at all, the count degrades to a word-based
// estimate.
func CountTokens(model, text string) int {
	if text == "" {
		return 0
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		return EstimateTokens(text)
	}
	return len(enc.Encode(text, nil, nil))
}

// EstimateTokens approximates a token count as 1.5 tokens per word,
// rounded up.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) * 1.5))
}
