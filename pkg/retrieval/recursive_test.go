package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/tokenizer"
	"github.com/regsentry/regsentry/pkg/vectorstore"
)

func TestRecursiveBuilder_FollowsSectionReference(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "Quality control is described in Section 4.2 of this manual.")
	target := chunkRecord("D", 1, 4, "Tool calibration shall be performed annually by approved staff.")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{
		focus.ChunkID:  focus,
		target.ChunkID: target,
	}}

	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionManual,
		[]vectorstore.Record{
			{ID: target.ChunkID, Embedding: []float32{1, 0, 0}, Text: target.Content,
				Metadata: map[string]any{"document_id": "D", "parent_heading": "4.2 Tooling"}},
		}))

	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		"Section 4.2": {1, 0, 0},
	}}

	cfg := testContextConfig()
	cfg.ManualWindow = 0
	rb := NewRecursiveBuilder(NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), cfg))

	bundle, err := rb.Build(context.Background(), focus.ChunkID, BuildOptions{})
	require.NoError(t, err)

	require.Len(t, bundle.Manual, 1)
	assert.Equal(t, target.ChunkID, bundle.Manual[0].ChunkID)
	assert.Equal(t, "Section 4.2", bundle.Manual[0].Metadata["reference_source"])
	assert.Equal(t, 1, bundle.Manual[0].Metadata["depth"])
	assert.Positive(t, bundle.TotalTokens)
}

func TestRecursiveBuilder_DeduplicatesAcrossLevels(t *testing.T) {
	// Both chunks reference Section 4.2; the target must appear once.
	focus := chunkRecord("D", 1, 0, "See Section 4.2. Also see Section 4.3 for storage.")
	other := chunkRecord("D", 1, 3, "Storage rules defer to Section 4.2 as well.")
	target := chunkRecord("D", 1, 4, "Tool calibration shall be performed annually by approved staff.")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{
		focus.ChunkID:  focus,
		other.ChunkID:  other,
		target.ChunkID: target,
	}}

	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionManual,
		[]vectorstore.Record{
			{ID: target.ChunkID, Embedding: []float32{1, 0, 0}, Text: target.Content,
				Metadata: map[string]any{"document_id": "D"}},
			{ID: other.ChunkID, Embedding: []float32{0, 1, 0}, Text: other.Content,
				Metadata: map[string]any{"document_id": "D"}},
		}))

	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		"Section 4.2": {1, 0, 0},
		"Section 4.3": {0, 1, 0},
	}}

	cfg := testContextConfig()
	cfg.ManualWindow = 0
	rb := NewRecursiveBuilder(NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), cfg))

	bundle, err := rb.Build(context.Background(), focus.ChunkID, BuildOptions{})
	require.NoError(t, err)

	ids := map[string]int{}
	for _, s := range bundle.Manual {
		ids[s.ChunkID]++
	}
	assert.Equal(t, 1, ids[target.ChunkID])
	assert.Equal(t, 1, ids[other.ChunkID])
}

func TestRecursiveBuilder_ConceptSearchOnContextQuery(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "This section has no cross references at all.")
	extra := chunkRecord("D", 1, 9, "A critical part is any part whose failure endangers the aircraft.")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{
		focus.ChunkID: focus,
		extra.ChunkID: extra,
	}}

	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionManual,
		[]vectorstore.Record{
			{ID: extra.ChunkID, Embedding: []float32{0, 1, 0}, Text: extra.Content,
				Metadata: map[string]any{"document_id": "D"}},
		}))
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionRegulation,
		[]vectorstore.Record{
			{ID: "R_0_0", Embedding: []float32{0, 1, 0}, Text: "critical parts require traceability records",
				Metadata: map[string]any{"document_id": "REG"}},
		}))

	query := "definition of critical part"
	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		query: {0, 1, 0},
	}}

	cfg := testContextConfig()
	cfg.ManualWindow = 0
	rb := NewRecursiveBuilder(NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), cfg))

	bundle, err := rb.Build(context.Background(), focus.ChunkID, BuildOptions{ContextQuery: query})
	require.NoError(t, err)

	manualIDs := map[string]bool{}
	for _, s := range bundle.Manual {
		manualIDs[s.ChunkID] = true
	}
	regulationIDs := map[string]bool{}
	for _, s := range bundle.Regulation {
		regulationIDs[s.ChunkID] = true
	}
	assert.True(t, manualIDs[extra.ChunkID])
	assert.True(t, regulationIDs["R_0_0"])
}

func TestRecursiveBuilder_EvidenceCap(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "General statement with no references here.")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{focus.ChunkID: focus}}

	bundle := &Bundle{
		Focus:        Slice{ChunkID: focus.ChunkID, Content: focus.Content},
		BucketTokens: map[Bucket]int{},
	}
	for i := 0; i < maxEvidenceSlices+7; i++ {
		bundle.Evidence = append(bundle.Evidence, Slice{
			ChunkID: chunkRecord("E", 2, i, "evidence").ChunkID,
			Content: "supporting evidence content body",
		})
	}

	rb := NewRecursiveBuilder(NewBuilder(chunks, vectorstore.NewMemoryStore(),
		&scriptedEmbedder{}, tokenizer.NewHeuristic(), testContextConfig()))
	rb.finalize(bundle)

	assert.Len(t, bundle.Evidence, maxEvidenceSlices)
	assert.Equal(t, bundle.BucketTokens[BucketEvidence],
		maxEvidenceSlices*tokenizer.NewHeuristic().Count("supporting evidence content body"))
}
