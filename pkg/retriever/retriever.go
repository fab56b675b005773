// Package retriever provides per-session text lookup: a dataset
// descriptor index and a styling-hint index. The core never depends on a
// particular backend — a vector store and a fixed-text stub are both
// valid implementations.
package retriever

import "context"

// Retriever returns the top-k most relevant texts for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]string, error)
}

// Top1 returns the single best match, or "" when the index is empty.
func Top1(ctx context.Context, r Retriever, query string) (string, error) {
	results, err := r.Retrieve(ctx, query, 1)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", nil
	}
	return results[0], nil
}

// Set bundles the two per-session retrievers.
type Set struct {
	// Dataset returns descriptor text priming agents with the schema.
	Dataset Retriever

	// Style returns styling hints for visualization agents.
	Style Retriever
}
