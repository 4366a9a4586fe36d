// Package embedding generates text embeddings for vector storage and
// retrieval queries.
package embedding

import "context"

// Engine turns text into embedding vectors. Implementations must be safe for
// concurrent use.
type Engine interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Name identifies the engine and model for logs.
	Name() string
}
