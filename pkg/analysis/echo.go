package analysis

import (
	"context"
	"fmt"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

// EchoClient is the no-LLM stand-in used when no API key is configured and
// in tests. It returns a deterministic GREEN analysis describing the context
// it was given.
type EchoClient struct{}

var _ Client = (*EchoClient)(nil)

// NewEchoClient creates an EchoClient.
func NewEchoClient() *EchoClient {
	return &EchoClient{}
}

// Analyze returns a GREEN placeholder analysis.
func (c *EchoClient) Analyze(_ context.Context, chunk *models.ChunkRecord, bundle *retrieval.Bundle) (*models.NormalizedAnalysis, error) {
	return &models.NormalizedAnalysis{
		Flag:          models.FlagGreen,
		SeverityScore: 0,
		Findings: fmt.Sprintf(
			"No LLM configured. Section %q reviewed against %d regulation and %d guidance slices without automated assessment.",
			chunk.HeadingPath(), len(bundle.Regulation), len(bundle.Guidance)),
	}, nil
}
