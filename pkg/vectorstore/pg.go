package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

const pgUndefinedTable = "42P01"

// PGStore backs vector collections with one pgvector table per collection
// (table name "vector_" + collection).
type PGStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPGStore creates a PGStore over databaseURL.
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vector store database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping vector store database: %w", err)
	}

	return &PGStore{
		pool:   pool,
		logger: slog.Default().With("component", "vectorstore"),
	}, nil
}

// NewPGStoreFromPool wraps an existing pool. The caller retains ownership of
// the pool's lifecycle.
func NewPGStoreFromPool(pool *pgxpool.Pool) *PGStore {
	return &PGStore{
		pool:   pool,
		logger: slog.Default().With("component", "vectorstore"),
	}
}

// Close releases the underlying pool.
func (s *PGStore) Close() {
	s.pool.Close()
}

func tableName(collection string) string {
	return "vector_" + collection
}

// Upsert inserts or replaces records in one batch. The batch is rejected as a
// whole when any vector's dimension differs from the collection's established
// dimension.
func (s *PGStore) Upsert(ctx context.Context, collection string, records []Record) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	dim, err := s.Peek(ctx, collection)
	if err != nil {
		return err
	}
	if dim == 0 {
		dim = len(records[0].Embedding)
	}
	for _, r := range records {
		if len(r.Embedding) != dim {
			return &DimensionError{Collection: collection, Want: dim, Got: len(r.Embedding)}
		}
	}

	table := tableName(collection)
	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(fmt.Sprintf(`
			INSERT INTO %s (id, embedding, document_text, metadata)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				embedding = EXCLUDED.embedding,
				document_text = EXCLUDED.document_text,
				metadata = EXCLUDED.metadata`, table),
			r.ID, pgvector.NewVector(r.Embedding), r.Text, r.Metadata,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for i := range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to upsert record %d into %s: %w", i, table, err)
		}
	}

	s.logger.Debug("Upserted vector records", "collection", collection, "count", len(records))
	return nil
}

// Query returns the topK nearest records by L2 distance, smaller first.
// A missing collection table yields an empty result.
func (s *PGStore) Query(ctx context.Context, collection string, vector []float32, topK int, filter Filter) ([]Match, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, document_text, metadata, embedding <-> $1 AS distance
		FROM %s`, tableName(collection))

	args := []any{pgvector.NewVector(vector)}
	var preds []string
	for key, value := range filter {
		args = append(args, key, value)
		preds = append(preds, fmt.Sprintf("metadata->>$%d = $%d", len(args)-1, len(args)))
	}
	if len(preds) > 0 {
		query += " WHERE " + strings.Join(preds, " AND ")
	}
	args = append(args, topK)
	query += fmt.Sprintf(" ORDER BY distance LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		if isDimensionMismatch(err) {
			dim, _ := s.Peek(ctx, collection)
			return nil, &DimensionError{Collection: collection, Want: dim, Got: len(vector)}
		}
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Text, &m.Metadata, &m.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan match from %s: %w", collection, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches from %s: %w", collection, err)
	}
	return matches, nil
}

// Peek returns the collection's established embedding dimension, or 0 when
// the collection is empty or its table does not exist.
func (s *PGStore) Peek(ctx context.Context, collection string) (int, error) {
	if err := validCollection(collection); err != nil {
		return 0, err
	}

	var dim int
	query := fmt.Sprintf("SELECT vector_dims(embedding) FROM %s LIMIT 1", tableName(collection))
	err := s.pool.QueryRow(ctx, query).Scan(&dim)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to peek collection %s: %w", collection, err)
	}
	return dim, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

// pgvector raises a data exception mentioning "different vector dimensions"
// when the query vector's dimension differs from the column's.
func isDimensionMismatch(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.Contains(pgErr.Message, "different vector dimensions")
}
