package retriever

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philippgille/chromem-go"
)

// Vector is a chromem-go backed retriever. Each session gets its own
// in-memory collection; nothing is persisted.
type Vector struct {
	collection *chromem.Collection
}

// NewVector builds an in-memory vector index over docs using the given
// embedding function (e.g. chromem.NewEmbeddingFuncOpenAI).
func NewVector(ctx context.Context, name string, docs []string, embed chromem.EmbeddingFunc) (*Vector, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(name, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection %q: %w", name, err)
	}

	documents := make([]chromem.Document, 0, len(docs))
	for i, doc := range docs {
		documents = append(documents, chromem.Document{
			ID:      fmt.Sprintf("%s-%d", name, i),
			Content: doc,
		})
	}
	if len(documents) > 0 {
		if err := collection.AddDocuments(ctx, documents, runtime.NumCPU()); err != nil {
			return nil, fmt.Errorf("failed to index documents for %q: %w", name, err)
		}
	}

	return &Vector{collection: collection}, nil
}

// Retrieve returns the top-k documents by similarity.
func (v *Vector) Retrieve(ctx context.Context, query string, k int) ([]string, error) {
	if count := v.collection.Count(); k > count {
		k = count
	}
	if k == 0 {
		return nil, nil
	}

	results, err := v.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, res := range results {
		texts = append(texts, res.Content)
	}
	return texts, nil
}
