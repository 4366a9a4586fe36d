package embedding

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEngine returns a fixed vector and counts calls.
type countingEngine struct {
	calls atomic.Int64
}

func (e *countingEngine) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls.Add(1)
	return []float32{float32(len(text)), 1, 2}, nil
}

func (e *countingEngine) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (e *countingEngine) Name() string { return "counting" }

func TestCachedEngine_EmbedHitsCacheOnSecondCall(t *testing.T) {
	inner := &countingEngine{}
	cached := NewCachedEngine(inner, t.TempDir())

	first, err := cached.Embed(context.Background(), "quality system")
	require.NoError(t, err)
	second, err := cached.Embed(context.Background(), "quality system")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), inner.calls.Load())
}

func TestCachedEngine_BatchOnlyFetchesMisses(t *testing.T) {
	inner := &countingEngine{}
	cached := NewCachedEngine(inner, t.TempDir())

	_, err := cached.Embed(context.Background(), "alpha")
	require.NoError(t, err)

	vectors, err := cached.EmbedBatch(context.Background(), []string{"alpha", "beta", "gamma"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	for _, v := range vectors {
		assert.NotEmpty(t, v)
	}
	// alpha was cached; only beta and gamma hit the inner engine.
	assert.Equal(t, int64(3), inner.calls.Load())
}

func TestCachedEngine_DifferentTextsGetDifferentKeys(t *testing.T) {
	cached := NewCachedEngine(&countingEngine{}, t.TempDir())
	assert.NotEqual(t, cached.key("a"), cached.key("b"))
}
