package retriever

import "context"

// Static is a fixed-text retriever: every query returns the same texts,
// in order, truncated to k. Used for dataset descriptors (one text) and
// as the styling fallback when no vector index is configured.
type Static struct {
	texts []string
}

// NewStatic creates a Static retriever over the given texts.
func NewStatic(texts ...string) *Static {
	return &Static{texts: texts}
}

// Retrieve returns up to k of the fixed texts.
func (s *Static) Retrieve(_ context.Context, _ string, k int) ([]string, error) {
	if k > len(s.texts) {
		k = len(s.texts)
	}
	out := make([]string, k)
	copy(out, s.texts[:k])
	return out, nil
}
