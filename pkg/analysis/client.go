// Package analysis invokes the compliance LLM for one chunk and its context
// bundle, and validates the response into a NormalizedAnalysis.
package analysis

import (
	"context"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

// Client analyzes one chunk against its context bundle.
type Client interface {
	Analyze(ctx context.Context, chunk *models.ChunkRecord, bundle *retrieval.Bundle) (*models.NormalizedAnalysis, error)
}
