// Package vectorstore provides persistent keyed vector collections with
// metadata-filtered similarity queries. The production backend is
// PostgreSQL with pgvector; a deterministic in-memory backend exists for
// tests.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
)

// Collection names by semantic class.
const (
	CollectionManual     = "manual_chunks"
	CollectionRegulation = "regulation_chunks"
	CollectionAMC        = "amc_chunks"
	CollectionGM         = "gm_chunks"
	CollectionEvidence   = "evidence_chunks"
)

// Collections lists every known collection.
var Collections = []string{
	CollectionManual,
	CollectionRegulation,
	CollectionAMC,
	CollectionGM,
	CollectionEvidence,
}

// Record is one stored vector with its source text and metadata
// back-references (chunk_id, document_id).
type Record struct {
	ID        string
	Embedding []float32
	Text      string
	Metadata  map[string]any
}

// Match is one similarity query hit. Distance is Euclidean-like: smaller is
// better.
type Match struct {
	ID       string
	Text     string
	Metadata map[string]any
	Distance float64
}

// Filter is an AND of equality predicates on metadata keys.
type Filter map[string]string

// Store is the vector collection interface.
type Store interface {
	// Upsert inserts or replaces records. Every vector's dimension must
	// match the collection's established dimension; a mismatch fails the
	// whole batch with a DimensionError.
	Upsert(ctx context.Context, collection string, records []Record) error

	// Query returns the topK nearest records, optionally filtered.
	// A missing collection yields an empty result, not an error.
	Query(ctx context.Context, collection string, vector []float32, topK int, filter Filter) ([]Match, error)

	// Peek returns the collection's established embedding dimension, or 0
	// when the collection is empty or missing.
	Peek(ctx context.Context, collection string) (int, error)
}

// DimensionError reports a vector dimension mismatch against a collection's
// established dimension.
type DimensionError struct {
	Collection string
	Want       int
	Got        int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("collection %s: embedding dimension mismatch: want %d, got %d",
		e.Collection, e.Want, e.Got)
}

// IsDimensionError reports whether err is a DimensionError.
func IsDimensionError(err error) bool {
	var de *DimensionError
	return errors.As(err, &de)
}

// validCollection guards dynamic table names against unknown input.
func validCollection(name string) error {
	for _, c := range Collections {
		if c == name {
			return nil
		}
	}
	return fmt.Errorf("unknown vector collection: %s", name)
}
