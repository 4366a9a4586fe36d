package services

import (
	"context"
	"fmt"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	entchunk "github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/pkg/chunker"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

// ChunkService persists and serves document chunks. It implements
// retrieval.ChunkSource for context assembly.
type ChunkService struct {
	client *ent.Client
}

var _ retrieval.ChunkSource = (*ChunkService)(nil)

// NewChunkService creates a new ChunkService.
func NewChunkService(client *ent.Client) *ChunkService {
	return &ChunkService{client: client}
}

// CreateChunks persists a chunker output in one transaction with
// embedding_status=pending.
func (s *ChunkService) CreateChunks(ctx context.Context, documentID int, chunks []chunker.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.ChunkCreate, len(chunks))
	for i, c := range chunks {
		builders[i] = tx.Chunk.Create().
			SetChunkID(c.ChunkID).
			SetDocumentID(documentID).
			SetChunkIndex(c.ChunkIndex).
			SetSectionPath(c.SectionPath).
			SetParentHeading(c.ParentHeading).
			SetContent(c.Content).
			SetTokenCount(c.TokenCount).
			SetMetadata(c.Metadata)
	}
	if _, err := tx.Chunk.CreateBulk(builders...).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create chunks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunks: %w", err)
	}
	return nil
}

// ByChunkID resolves a chunk by its external chunk id.
func (s *ChunkService) ByChunkID(ctx context.Context, chunkID string) (*models.ChunkRecord, error) {
	c, err := s.client.Chunk.Query().
		Where(entchunk.ChunkIDEQ(chunkID)).
		WithDocument().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chunk %s: %w", chunkID, err)
	}
	return chunkRecord(c), nil
}

// Neighbors returns the document's chunks with chunk_index within the window
// around centerIndex, excluding the center, ordered by index.
func (s *ChunkService) Neighbors(ctx context.Context, documentID, centerIndex, window int) ([]*models.ChunkRecord, error) {
	if window <= 0 {
		return nil, nil
	}

	chunks, err := s.client.Chunk.Query().
		Where(
			entchunk.DocumentIDEQ(documentID),
			entchunk.ChunkIndexGTE(centerIndex-window),
			entchunk.ChunkIndexLTE(centerIndex+window),
			entchunk.ChunkIndexNEQ(centerIndex),
		).
		WithDocument().
		Order(ent.Asc(entchunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get neighbor chunks: %w", err)
	}

	out := make([]*models.ChunkRecord, len(chunks))
	for i, c := range chunks {
		out[i] = chunkRecord(c)
	}
	return out, nil
}

// CountChunks returns the number of chunks of a document.
func (s *ChunkService) CountChunks(ctx context.Context, documentID int) (int, error) {
	n, err := s.client.Chunk.Query().
		Where(entchunk.DocumentIDEQ(documentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return n, nil
}

// PendingChunks returns the document's chunks that have no AuditChunkResult
// for the audit, ordered by chunk_index ascending. limit <= 0 means
// unbounded.
func (s *ChunkService) PendingChunks(ctx context.Context, auditID, documentID, limit int) ([]*models.ChunkRecord, error) {
	processed, err := s.client.AuditChunkResult.Query().
		Where(auditchunkresult.AuditIDEQ(auditID)).
		Select(auditchunkresult.FieldChunkID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processed chunk ids: %w", err)
	}

	query := s.client.Chunk.Query().
		Where(entchunk.DocumentIDEQ(documentID))
	if len(processed) > 0 {
		query = query.Where(entchunk.ChunkIDNotIn(processed...))
	}
	query = query.
		WithDocument().
		Order(ent.Asc(entchunk.FieldChunkIndex))
	if limit > 0 {
		query = query.Limit(limit)
	}

	chunks, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending chunks: %w", err)
	}

	out := make([]*models.ChunkRecord, len(chunks))
	for i, c := range chunks {
		out[i] = chunkRecord(c)
	}
	return out, nil
}

// CountPending returns the number of unprocessed chunks for an audit.
func (s *ChunkService) CountPending(ctx context.Context, auditID, documentID int) (int, error) {
	pending, err := s.PendingChunks(ctx, auditID, documentID, 0)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// SetEmbeddingStatus flips the embedding status of the given chunk ids.
func (s *ChunkService) SetEmbeddingStatus(ctx context.Context, chunkIDs []string, status entchunk.EmbeddingStatus) error {
	if len(chunkIDs) == 0 {
		return nil
	}
	_, err := s.client.Chunk.Update().
		Where(entchunk.ChunkIDIn(chunkIDs...)).
		SetEmbeddingStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update embedding status: %w", err)
	}
	return nil
}

// chunkRecord converts an ent row (with its document edge loaded) into the
// storage-independent record used by retrieval and the runner.
func chunkRecord(c *ent.Chunk) *models.ChunkRecord {
	record := &models.ChunkRecord{
		ID:            c.ID,
		ChunkID:       c.ChunkID,
		DocumentID:    c.DocumentID,
		ChunkIndex:    c.ChunkIndex,
		SectionPath:   c.SectionPath,
		ParentHeading: c.ParentHeading,
		Content:       c.Content,
		TokenCount:    c.TokenCount,
		Metadata:      c.Metadata,
	}
	if c.Edges.Document != nil {
		record.DocumentExternalID = c.Edges.Document.ExternalID
	}
	return record
}
