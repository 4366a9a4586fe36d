package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// CachedEngine wraps an Engine with a content-addressed file cache. Cache
// keys are SHA-256 of model name plus text, so switching models never reuses
// stale vectors.
type CachedEngine struct {
	inner  Engine
	dir    string
	logger *slog.Logger
}

// NewCachedEngine creates a cache over inner rooted at dir. The directory is
// created on first write.
func NewCachedEngine(inner Engine, dir string) *CachedEngine {
	return &CachedEngine{
		inner:  inner,
		dir:    dir,
		logger: slog.Default().With("component", "embedding_cache"),
	}
}

// Embed returns a cached vector when present, otherwise delegates and caches.
func (e *CachedEngine) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := e.load(text); ok {
		return vec, nil
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	e.store(text, vec)
	return vec, nil
}

// EmbedBatch serves cached entries and delegates only the misses, preserving
// input order.
func (e *CachedEngine) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	for i, text := range texts {
		if vec, ok := e.load(text); ok {
			vectors[i] = vec
			continue
		}
		missTexts = append(missTexts, text)
		missIdx = append(missIdx, i)
	}
	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := e.inner.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	for j, vec := range fresh {
		vectors[missIdx[j]] = vec
		e.store(missTexts[j], vec)
	}
	return vectors, nil
}

// Name returns the inner engine's identifier.
func (e *CachedEngine) Name() string {
	return e.inner.Name()
}

func (e *CachedEngine) key(text string) string {
	sum := sha256.Sum256([]byte(e.inner.Name() + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

func (e *CachedEngine) path(text string) string {
	key := e.key(text)
	return filepath.Join(e.dir, key[:2], key+".json")
}

func (e *CachedEngine) load(text string) ([]float32, bool) {
	data, err := os.ReadFile(e.path(text))
	if err != nil {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal(data, &vec); err != nil || len(vec) == 0 {
		return nil, false
	}
	return vec, true
}

// store writes through a temp file so concurrent readers never see a partial
// entry. Cache write failures are logged, not fatal.
func (e *CachedEngine) store(text string, vec []float32) {
	path := e.path(text)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.logger.Warn("Failed to create embedding cache directory", "error", err)
		return
	}

	data, err := json.Marshal(vec)
	if err != nil {
		e.logger.Warn("Failed to encode embedding cache entry", "error", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".embed-*")
	if err != nil {
		e.logger.Warn("Failed to create embedding cache temp file", "error", err)
		return
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		e.logger.Warn("Failed to write embedding cache entry", "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		e.logger.Warn("Failed to publish embedding cache entry", "error", err)
	}
}
