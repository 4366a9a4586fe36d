package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regsentry/regsentry/ent"
	entchunk "github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/pkg/chunker"
	"github.com/regsentry/regsentry/pkg/embedding"
	"github.com/regsentry/regsentry/pkg/services"
	"github.com/regsentry/regsentry/pkg/vectorstore"
)

// embedBatchSize bounds one embedding API call.
const embedBatchSize = 64

// Pipeline turns an uploaded document into indexed, auditable chunks:
// extract sections, chunk, embed, upsert into the document's vector
// collection. Runs off the request path; failures mark the document failed
// rather than surfacing to the uploader.
type Pipeline struct {
	layout   *Layout
	docs     *services.DocumentService
	chunks   *services.ChunkService
	splitter *chunker.Chunker
	embedder embedding.Engine
	store    vectorstore.Store
	logger   *slog.Logger
}

// NewPipeline creates the ingest pipeline.
func NewPipeline(layout *Layout, docs *services.DocumentService, chunks *services.ChunkService,
	splitter *chunker.Chunker, embedder embedding.Engine, store vectorstore.Store) *Pipeline {

	return &Pipeline{
		layout:   layout,
		docs:     docs,
		chunks:   chunks,
		splitter: splitter,
		embedder: embedder,
		store:    store,
		logger:   slog.Default().With("component", "ingest"),
	}
}

// Process runs the full ingest for one document. filename selects the
// extraction format; content is the raw upload.
func (p *Pipeline) Process(ctx context.Context, doc *ent.Document, filename string, content []byte) error {
	logger := p.logger.With("document_id", doc.ExternalID)

	if err := p.docs.UpdateStatus(ctx, doc.ID, document.StatusProcessing); err != nil {
		return err
	}

	if err := p.process(ctx, doc, filename, content, logger); err != nil {
		logger.Error("Document ingest failed", "error", err)
		if failErr := p.docs.UpdateStatus(ctx, doc.ID, document.StatusFailed); failErr != nil {
			logger.Error("Failed to mark document failed", "error", failErr)
		}
		return err
	}

	if err := p.docs.UpdateStatus(ctx, doc.ID, document.StatusProcessed); err != nil {
		return err
	}
	logger.Info("Document ingest complete")
	return nil
}

func (p *Pipeline) process(ctx context.Context, doc *ent.Document, filename string, content []byte, logger *slog.Logger) error {
	sections, cached := p.layout.LoadExtraction(doc.ExternalID)
	if !cached {
		sections = ExtractSections(filename, string(content))
		if err := p.layout.SaveExtraction(doc.ExternalID, sections); err != nil {
			logger.Warn("Failed to cache extraction", "error", err)
		}
	}
	logger.Info("Sections extracted", "count", len(sections), "cached", cached)

	pieces := p.splitter.Chunk(doc.ExternalID, sections, chunkMode(doc.SourceType))
	if len(pieces) == 0 {
		logger.Info("Document produced no chunks")
		return nil
	}

	if err := p.chunks.CreateChunks(ctx, doc.ID, pieces); err != nil {
		return fmt.Errorf("failed to persist chunks: %w", err)
	}

	if err := p.embed(ctx, doc, pieces); err != nil {
		ids := chunkIDs(pieces)
		if statusErr := p.chunks.SetEmbeddingStatus(ctx, ids, entchunk.EmbeddingStatusFailed); statusErr != nil {
			logger.Error("Failed to mark chunks failed", "error", statusErr)
		}
		return err
	}

	if err := p.chunks.SetEmbeddingStatus(ctx, chunkIDs(pieces), entchunk.EmbeddingStatusCompleted); err != nil {
		return fmt.Errorf("failed to mark chunks embedded: %w", err)
	}

	logger.Info("Chunks embedded and indexed", "count", len(pieces))
	return nil
}

// embed generates embeddings batch-wise and upserts them into the
// document's collection with the metadata the retrieval layer expects.
func (p *Pipeline) embed(ctx context.Context, doc *ent.Document, pieces []chunker.Chunk) error {
	ids := chunkIDs(pieces)
	if err := p.chunks.SetEmbeddingStatus(ctx, ids, entchunk.EmbeddingStatusInProgress); err != nil {
		return fmt.Errorf("failed to mark chunks in progress: %w", err)
	}

	collection := CollectionFor(doc.SourceType)
	for start := 0; start < len(pieces); start += embedBatchSize {
		batch := pieces[start:min(start+embedBatchSize, len(pieces))]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Content
		}
		vectors, err := p.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed chunk batch at %d: %w", start, err)
		}

		records := make([]vectorstore.Record, len(batch))
		for i, c := range batch {
			records[i] = vectorstore.Record{
				ID:        c.ChunkID,
				Embedding: vectors[i],
				Text:      c.Content,
				Metadata: map[string]any{
					"chunk_id":       c.ChunkID,
					"document_id":    doc.ExternalID,
					"chunk_index":    c.ChunkIndex,
					"parent_heading": c.ParentHeading,
					"token_count":    c.TokenCount,
				},
			}
		}
		if err := p.store.Upsert(ctx, collection, records); err != nil {
			return fmt.Errorf("failed to index chunk batch at %d: %w", start, err)
		}
	}
	return nil
}

// CollectionFor maps a document source type to its vector collection.
func CollectionFor(sourceType document.SourceType) string {
	switch sourceType {
	case document.SourceTypeRegulation:
		return vectorstore.CollectionRegulation
	case document.SourceTypeAmc:
		return vectorstore.CollectionAMC
	case document.SourceTypeGm:
		return vectorstore.CollectionGM
	case document.SourceTypeEvidence:
		return vectorstore.CollectionEvidence
	default:
		return vectorstore.CollectionManual
	}
}

// chunkMode selects the chunking strategy per source type. Evidence files
// are free-form, so they get the sliding token window; everything else is
// structured and chunks section by section.
func chunkMode(sourceType document.SourceType) chunker.Mode {
	if sourceType == document.SourceTypeEvidence {
		return chunker.ModeTokenWindow
	}
	return chunker.ModeSectionAware
}

func chunkIDs(pieces []chunker.Chunk) []string {
	ids := make([]string, len(pieces))
	for i, c := range pieces {
		ids[i] = c.ChunkID
	}
	return ids
}
