package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	err := s.Upsert(context.Background(), CollectionManual, []Record{
		{ID: "D_0_0", Embedding: []float32{1, 0, 0}, Text: "scope of the manual", Metadata: map[string]any{"document_id": "D"}},
		{ID: "D_1_0", Embedding: []float32{0, 1, 0}, Text: "responsibilities", Metadata: map[string]any{"document_id": "D"}},
		{ID: "E_0_0", Embedding: []float32{0.9, 0.1, 0}, Text: "other manual scope", Metadata: map[string]any{"document_id": "E"}},
	})
	require.NoError(t, err)
	return s
}

func TestMemoryStore_QueryOrdersByDistance(t *testing.T) {
	s := seedStore(t)

	matches, err := s.Query(context.Background(), CollectionManual, []float32{1, 0, 0}, 3, nil)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "D_0_0", matches[0].ID)
	assert.Zero(t, matches[0].Distance)
	assert.Equal(t, "E_0_0", matches[1].ID)
	assert.Less(t, matches[1].Distance, matches[2].Distance)
}

func TestMemoryStore_QueryTopKLimits(t *testing.T) {
	s := seedStore(t)

	matches, err := s.Query(context.Background(), CollectionManual, []float32{1, 0, 0}, 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "D_0_0", matches[0].ID)
}

func TestMemoryStore_MetadataFilter(t *testing.T) {
	s := seedStore(t)

	matches, err := s.Query(context.Background(), CollectionManual, []float32{1, 0, 0}, 10,
		Filter{"document_id": "E"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "E_0_0", matches[0].ID)
}

func TestMemoryStore_MissingCollectionIsEmpty(t *testing.T) {
	s := NewMemoryStore()

	matches, err := s.Query(context.Background(), CollectionEvidence, []float32{1, 0, 0}, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)

	dim, err := s.Peek(context.Background(), CollectionEvidence)
	require.NoError(t, err)
	assert.Zero(t, dim)
}

func TestMemoryStore_UnknownCollectionRejected(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Query(context.Background(), "not_a_collection", []float32{1}, 5, nil)
	assert.Error(t, err)
}

func TestMemoryStore_UpsertReplacesByID(t *testing.T) {
	s := seedStore(t)

	err := s.Upsert(context.Background(), CollectionManual, []Record{
		{ID: "D_0_0", Embedding: []float32{0, 0, 1}, Text: "replaced"},
	})
	require.NoError(t, err)

	matches, err := s.Query(context.Background(), CollectionManual, []float32{0, 0, 1}, 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "D_0_0", matches[0].ID)
	assert.Equal(t, "replaced", matches[0].Text)

	dim, err := s.Peek(context.Background(), CollectionManual)
	require.NoError(t, err)
	assert.Equal(t, 3, dim)
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	s := seedStore(t)

	err := s.Upsert(context.Background(), CollectionManual, []Record{
		{ID: "bad", Embedding: []float32{1, 2}},
	})
	require.Error(t, err)
	assert.True(t, IsDimensionError(err))

	_, err = s.Query(context.Background(), CollectionManual, []float32{1, 2}, 5, nil)
	require.Error(t, err)
	var de *DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Want)
	assert.Equal(t, 2, de.Got)
}
