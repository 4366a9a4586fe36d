package retrieval

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/tokenizer"
	"github.com/regsentry/regsentry/pkg/vectorstore"
)

// fakeChunks serves chunk records from memory.
type fakeChunks struct {
	byID map[string]*models.ChunkRecord
}

func (f *fakeChunks) ByChunkID(_ context.Context, chunkID string) (*models.ChunkRecord, error) {
	c, ok := f.byID[chunkID]
	if !ok {
		return nil, fmt.Errorf("chunk not found: %s", chunkID)
	}
	return c, nil
}

func (f *fakeChunks) Neighbors(_ context.Context, documentID, centerIndex, window int) ([]*models.ChunkRecord, error) {
	var out []*models.ChunkRecord
	for idx := centerIndex - window; idx <= centerIndex+window; idx++ {
		if idx == centerIndex {
			continue
		}
		for _, c := range f.byID {
			if c.DocumentID == documentID && c.ChunkIndex == idx {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// scriptedEmbedder returns pre-assigned vectors, with a far-off default so
// unscripted texts never match anything within the distance gate.
type scriptedEmbedder struct {
	vectors map[string][]float32
}

func (e *scriptedEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 100}, nil
}

func (e *scriptedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *scriptedEmbedder) Name() string { return "scripted" }

func testContextConfig() config.ContextConfig {
	return config.ContextConfig{
		ManualWindow:         1,
		ManualTokenLimit:     2000,
		RegulationTokenLimit: 2000,
		GuidanceTokenLimit:   2000,
		EvidenceTokenLimit:   1000,
		RegulationTopK:       3,
		GuidanceTopK:         3,
		EvidenceTopK:         3,
		TotalTokenLimit:      6000,
	}
}

func chunkRecord(doc string, docID, index int, content string) *models.ChunkRecord {
	return &models.ChunkRecord{
		ID:                 docID*1000 + index,
		ChunkID:            fmt.Sprintf("%s_%d_0", doc, index),
		DocumentID:         docID,
		DocumentExternalID: doc,
		ChunkIndex:         index,
		ParentHeading:      fmt.Sprintf("section %d", index),
		Content:            content,
	}
}

func TestBuilder_NeighborsAndFocus(t *testing.T) {
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{}}
	for i := 0; i < 3; i++ {
		c := chunkRecord("D", 1, i, fmt.Sprintf("content of manual section number %d", i))
		chunks.byID[c.ChunkID] = c
	}

	b := NewBuilder(chunks, vectorstore.NewMemoryStore(), &scriptedEmbedder{},
		tokenizer.NewHeuristic(), testContextConfig())

	bundle, err := b.Build(context.Background(), "D_1_0", BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, "D_1_0", bundle.Focus.ChunkID)
	require.Len(t, bundle.Manual, 2)
	assert.Equal(t, "D_0_0", bundle.Manual[0].ChunkID)
	assert.Equal(t, "D_2_0", bundle.Manual[1].ChunkID)
	assert.False(t, bundle.Truncated)
	assert.Positive(t, bundle.TotalTokens)
	assert.Empty(t, bundle.Regulation)
	assert.Empty(t, bundle.Evidence)
}

func TestBuilder_ZeroWindowSkipsNeighbors(t *testing.T) {
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{}}
	for i := 0; i < 3; i++ {
		c := chunkRecord("D", 1, i, fmt.Sprintf("content of manual section number %d", i))
		chunks.byID[c.ChunkID] = c
	}

	b := NewBuilder(chunks, vectorstore.NewMemoryStore(), &scriptedEmbedder{},
		tokenizer.NewHeuristic(), testContextConfig())

	zero := 0
	bundle, err := b.Build(context.Background(), "D_1_0", BuildOptions{NeighborWindow: &zero})
	require.NoError(t, err)
	assert.Empty(t, bundle.Manual)
}

func TestBuilder_BucketBudgetTruncation(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "the focus section content here")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{focus.ChunkID: focus}}

	store := vectorstore.NewMemoryStore()
	// Two regulation candidates of 6 heuristic tokens each (24 chars).
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionRegulation,
		[]vectorstore.Record{
			{ID: "R_0_0", Embedding: []float32{1, 0, 0}, Text: "abcdefgh abcdefgh abcdef"},
			{ID: "R_1_0", Embedding: []float32{1, 0.1, 0}, Text: "abcdefgh abcdefgh abcdef"},
		}))

	cfg := testContextConfig()
	cfg.RegulationTokenLimit = 8

	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		focus.Content: {1, 0, 0},
	}}
	b := NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), cfg)

	bundle, err := b.Build(context.Background(), "D_0_0", BuildOptions{})
	require.NoError(t, err)

	require.Len(t, bundle.Regulation, 1)
	assert.Equal(t, "R_0_0", bundle.Regulation[0].ChunkID)
	assert.True(t, bundle.Truncated)
	assert.Equal(t, 6, bundle.BucketTokens[BucketRegulation])
}

func TestBuilder_QualityFilters(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "the focus section content here")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{focus.ChunkID: focus}}

	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionRegulation,
		[]vectorstore.Record{
			// Distance 0 from the query, but corrupt content.
			{ID: "R_short", Embedding: []float32{1, 0, 0}, Text: "short"},
			{ID: "R_numeric", Embedding: []float32{1, 0, 0}, Text: "12.4 / 18.0 -- 33,1"},
			// Good content but too far away.
			{ID: "R_far", Embedding: []float32{0, 50, 0}, Text: "relevant regulation text body"},
			// Admitted.
			{ID: "R_good", Embedding: []float32{1, 0.2, 0}, Text: "the operator shall establish a quality system"},
		}))

	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		focus.Content: {1, 0, 0},
	}}
	b := NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), testContextConfig())

	bundle, err := b.Build(context.Background(), "D_0_0", BuildOptions{})
	require.NoError(t, err)

	require.Len(t, bundle.Regulation, 1)
	assert.Equal(t, "R_good", bundle.Regulation[0].ChunkID)
	assert.InDelta(t, 1.0/(1.0+bundle.Regulation[0].Distance), bundle.Regulation[0].Score, 1e-9)
	// Quality drops happen before budget accounting, so nothing was truncated.
	assert.False(t, bundle.Truncated)
}

func TestBuilder_ContextQueryOverridesFocusContent(t *testing.T) {
	focus := chunkRecord("D", 1, 0, "the focus section content here")
	chunks := &fakeChunks{byID: map[string]*models.ChunkRecord{focus.ChunkID: focus}}

	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.CollectionRegulation,
		[]vectorstore.Record{
			{ID: "R_target", Embedding: []float32{0, 1, 0}, Text: "definition of critical part in the regulation"},
		}))

	embedder := &scriptedEmbedder{vectors: map[string][]float32{
		"definition of critical part": {0, 1, 0},
		focus.Content:                 {1, 0, 0},
	}}
	b := NewBuilder(chunks, store, embedder, tokenizer.NewHeuristic(), testContextConfig())

	bundle, err := b.Build(context.Background(), "D_0_0",
		BuildOptions{ContextQuery: "definition of critical part"})
	require.NoError(t, err)

	require.Len(t, bundle.Regulation, 1)
	assert.Equal(t, "R_target", bundle.Regulation[0].ChunkID)
}

func TestBundle_RenderTextOmitsEmptyBuckets(t *testing.T) {
	bundle := &Bundle{
		Focus:  Slice{ChunkID: "D_0_0", Heading: "Scope", Content: "focus text"},
		Manual: []Slice{{ChunkID: "D_1_0", Heading: "Definitions", Content: "manual text", Score: 0.8}},
	}

	text := bundle.RenderText()
	assert.Contains(t, text, "SECTION UNDER REVIEW: Scope")
	assert.Contains(t, text, "MANUAL CONTEXT")
	assert.Contains(t, text, "manual text")
	assert.NotContains(t, text, "REGULATION CONTEXT")
	assert.NotContains(t, text, "EVIDENCE CONTEXT")
}
