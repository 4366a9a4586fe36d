package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// vectorCollections are the semantic collections backed by pgvector tables.
// The set must match the vector_collections migration.
var vectorCollections = []string{
	"manual_chunks",
	"regulation_chunks",
	"amc_chunks",
	"gm_chunks",
	"evidence_chunks",
}

// CreateVectorIndexes creates ivfflat approximate nearest-neighbour indexes
// on the vector collection tables, plus expression indexes on the
// document_id metadata key used by filtered similarity queries. IVFFlat
// index creation is idempotent and re-run on every startup rather than
// frozen into a migration.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, collection := range vectorCollections {
		stmt := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_vector_%s_embedding
			ON vector_%s USING ivfflat (embedding vector_l2_ops) WITH (lists = 100)`,
			collection, collection)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create embedding index for %s: %w", collection, err)
		}

		stmt = fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_vector_%s_document_id
			ON vector_%s ((metadata->>'document_id'))`,
			collection, collection)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create document_id index for %s: %w", collection, err)
		}
	}

	return nil
}
