package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/embedding"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/tokenizer"
	"github.com/regsentry/regsentry/pkg/vectorstore"
)

const (
	// siblingTopK is the fixed breadth of the same-document semantic search.
	siblingTopK = 5

	// maxMatchDistance drops low-quality matches before budget accounting.
	maxMatchDistance = 1.5

	// queryCacheLimit bounds the per-builder query cache.
	queryCacheLimit = 256
)

// ChunkSource loads persisted chunks for context assembly.
type ChunkSource interface {
	// ByChunkID resolves a chunk by its external chunk id.
	ByChunkID(ctx context.Context, chunkID string) (*models.ChunkRecord, error)

	// Neighbors returns the document's chunks with chunk_index in
	// [center-window, center+window], excluding the center, ordered by index.
	Neighbors(ctx context.Context, documentID int, centerIndex, window int) ([]*models.ChunkRecord, error)
}

// BuildOptions tune one context assembly.
type BuildOptions struct {
	// IncludeEvidence enables the evidence bucket.
	IncludeEvidence bool

	// NeighborWindow overrides the configured manual window when non-nil.
	// Zero disables sequential neighbors (draft audits).
	NeighborWindow *int

	// BudgetMultiplier scales the global and per-bucket token budgets.
	// Values <= 0 mean 1.0.
	BudgetMultiplier float64

	// ContextQuery replaces the focus content as the semantic query text and
	// seeds the recursive builder's concept search.
	ContextQuery string
}

// Builder assembles a budgeted Bundle for a focus chunk.
type Builder struct {
	chunks    ChunkSource
	store     vectorstore.Store
	embedder  embedding.Engine
	estimator tokenizer.Estimator
	cfg       config.ContextConfig
	logger    *slog.Logger

	cacheMu sync.Mutex
	cache   map[string][]vectorstore.Match
}

// NewBuilder creates a Builder. The estimator must be the instance shared
// with the chunker so token accounting cannot drift.
func NewBuilder(chunks ChunkSource, store vectorstore.Store, embedder embedding.Engine,
	estimator tokenizer.Estimator, cfg config.ContextConfig) *Builder {
	return &Builder{
		chunks:    chunks,
		store:     store,
		embedder:  embedder,
		estimator: estimator,
		cfg:       cfg,
		logger:    slog.Default().With("component", "context_builder"),
		cache:     make(map[string][]vectorstore.Match),
	}
}

// Build assembles the context bundle for chunkID.
func (b *Builder) Build(ctx context.Context, chunkID string, opts BuildOptions) (*Bundle, error) {
	focus, err := b.chunks.ByChunkID(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus chunk %s: %w", chunkID, err)
	}

	multiplier := opts.BudgetMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}

	bundle := &Bundle{
		Focus:        b.focusSlice(focus),
		BucketTokens: make(map[Bucket]int),
	}
	acct := &budgetAccount{
		bundle:    bundle,
		global:    scale(b.cfg.TotalTokenLimit, multiplier),
		remaining: scale(b.cfg.TotalTokenLimit, multiplier),
	}
	acct.remaining -= bundle.Focus.TokenCount
	bundle.TotalTokens = bundle.Focus.TokenCount

	queryText := opts.ContextQuery
	if strings.TrimSpace(queryText) == "" {
		queryText = focus.Content
	}

	seen := map[string]bool{focus.ChunkID: true}

	// Manual bucket: sequential neighbors first, then semantic siblings from
	// the same document.
	manualBudget := scale(b.cfg.ManualTokenLimit, multiplier)
	window := b.cfg.ManualWindow
	if opts.NeighborWindow != nil {
		window = *opts.NeighborWindow
	}
	var manual []Slice
	if window > 0 {
		neighbors, err := b.chunks.Neighbors(ctx, focus.DocumentID, focus.ChunkIndex, window)
		if err != nil {
			return nil, fmt.Errorf("failed to load neighbors of %s: %w", chunkID, err)
		}
		for _, n := range neighbors {
			seen[n.ChunkID] = true
			manual = append(manual, b.chunkSlice(n))
		}
	}
	for _, m := range b.search(ctx, vectorstore.CollectionManual, queryText, siblingTopK,
		vectorstore.Filter{"document_id": focus.DocumentExternalID}) {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		manual = append(manual, b.matchSlice(m))
	}
	acct.admit(BucketManual, manual, manualBudget)

	// Regulation bucket, corpus-wide.
	var regulation []Slice
	for _, m := range b.search(ctx, vectorstore.CollectionRegulation, queryText, b.cfg.RegulationTopK, nil) {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		regulation = append(regulation, b.matchSlice(m))
	}
	acct.admit(BucketRegulation, regulation, scale(b.cfg.RegulationTokenLimit, multiplier))

	// Guidance bucket: AMC then GM, concatenated.
	var guidance []Slice
	for _, coll := range []string{vectorstore.CollectionAMC, vectorstore.CollectionGM} {
		for _, m := range b.search(ctx, coll, queryText, b.cfg.GuidanceTopK, nil) {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			guidance = append(guidance, b.matchSlice(m))
		}
	}
	acct.admit(BucketGuidance, guidance, scale(b.cfg.GuidanceTokenLimit, multiplier))

	if opts.IncludeEvidence {
		var evidence []Slice
		for _, m := range b.search(ctx, vectorstore.CollectionEvidence, queryText, b.cfg.EvidenceTopK, nil) {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			evidence = append(evidence, b.matchSlice(m))
		}
		acct.admit(BucketEvidence, evidence, scale(b.cfg.EvidenceTokenLimit, multiplier))
	}

	return bundle, nil
}

// search embeds the query and runs a cached similarity search. Quality
// filters (distance, corrupt content) are applied here, before budget
// accounting. Failures degrade to an empty result so retrieval gaps never
// fail the audit.
func (b *Builder) search(ctx context.Context, collection, queryText string, topK int, filter vectorstore.Filter) []vectorstore.Match {
	if topK <= 0 {
		return nil
	}

	key := cacheKey(collection, queryText, topK, filter)
	b.cacheMu.Lock()
	cached, ok := b.cache[key]
	b.cacheMu.Unlock()
	if ok {
		return cached
	}

	vec, err := b.embedder.Embed(ctx, queryText)
	if err != nil {
		b.logger.Error("Failed to embed context query", "collection", collection, "error", err)
		return nil
	}

	matches, err := b.store.Query(ctx, collection, vec, topK, filter)
	if err != nil {
		if vectorstore.IsDimensionError(err) {
			b.logger.Error("Query embedding dimension mismatch, skipping collection",
				"collection", collection, "error", err)
		} else {
			b.logger.Error("Vector query failed", "collection", collection, "error", err)
		}
		return nil
	}

	filtered := matches[:0]
	for _, m := range matches {
		if m.Distance > maxMatchDistance {
			continue
		}
		if isCorruptContent(m.Text) {
			continue
		}
		filtered = append(filtered, m)
	}

	b.cacheMu.Lock()
	if len(b.cache) >= queryCacheLimit {
		// Full cache is dropped wholesale; entries are cheap to recompute.
		b.cache = make(map[string][]vectorstore.Match)
	}
	b.cache[key] = filtered
	b.cacheMu.Unlock()
	return filtered
}

func cacheKey(collection, queryText string, topK int, filter vectorstore.Filter) string {
	return fmt.Sprintf("%s\x00%s\x00%d\x00%s", collection, queryText, topK, filter["document_id"])
}

func (b *Builder) focusSlice(c *models.ChunkRecord) Slice {
	return Slice{
		ChunkID:    c.ChunkID,
		Heading:    c.HeadingPath(),
		Content:    c.Content,
		TokenCount: b.chunkTokens(c),
		Score:      1.0,
		Metadata:   c.Metadata,
	}
}

// chunkSlice wraps a sequential neighbor; neighbors carry no distance and
// display full relevance.
func (b *Builder) chunkSlice(c *models.ChunkRecord) Slice {
	return Slice{
		ChunkID:    c.ChunkID,
		Heading:    c.HeadingPath(),
		Content:    c.Content,
		TokenCount: b.chunkTokens(c),
		Score:      1.0,
		Metadata:   c.Metadata,
	}
}

func (b *Builder) matchSlice(m vectorstore.Match) Slice {
	return Slice{
		ChunkID:    m.ID,
		Heading:    matchHeading(m.Metadata),
		Content:    m.Text,
		TokenCount: matchTokens(m.Metadata, b.estimator, m.Text),
		Distance:   m.Distance,
		Score:      1.0 / (1.0 + m.Distance),
		Metadata:   m.Metadata,
	}
}

// chunkTokens prefers the persisted token count, re-estimating only when the
// row predates token accounting.
func (b *Builder) chunkTokens(c *models.ChunkRecord) int {
	if c.TokenCount > 0 {
		return c.TokenCount
	}
	return b.estimator.Count(c.Content)
}

func matchHeading(metadata map[string]any) string {
	if h, ok := metadata["parent_heading"].(string); ok {
		return h
	}
	return ""
}

func matchTokens(metadata map[string]any, estimator tokenizer.Estimator, text string) int {
	switch v := metadata["token_count"].(type) {
	case int:
		if v > 0 {
			return v
		}
	case float64:
		if v > 0 {
			return int(v)
		}
	}
	return estimator.Count(text)
}

func scale(budget int, multiplier float64) int {
	return int(float64(budget) * multiplier)
}

// budgetAccount enforces the per-bucket and global token gates with strict,
// order-preserving admission: the first candidate that would breach either
// budget stops that bucket and marks the bundle truncated.
type budgetAccount struct {
	bundle    *Bundle
	global    int
	remaining int
}

func (a *budgetAccount) admit(bucket Bucket, candidates []Slice, bucketBudget int) {
	var admitted []Slice
	used := 0
	for _, s := range candidates {
		if used+s.TokenCount > bucketBudget || s.TokenCount > a.remaining {
			a.bundle.Truncated = true
			break
		}
		used += s.TokenCount
		a.remaining -= s.TokenCount
		admitted = append(admitted, s)
	}

	a.bundle.BucketTokens[bucket] = used
	a.bundle.TotalTokens += used
	switch bucket {
	case BucketManual:
		a.bundle.Manual = admitted
	case BucketRegulation:
		a.bundle.Regulation = admitted
	case BucketGuidance:
		a.bundle.Guidance = admitted
	case BucketEvidence:
		a.bundle.Evidence = admitted
	}
}

var (
	numericPunctRe = regexp.MustCompile(`^[\d\s\p{P}\p{S}]+$`)

	// extractionFailureSentinels mark text emitted by broken format
	// extractors upstream.
	extractionFailureSentinels = []string{
		"[extraction failed]",
		"[no text content]",
		"%pdf-",
	}
)

// isCorruptContent flags text that would poison the prompt: too short, pure
// numbers and punctuation, or known extraction-failure markers.
func isCorruptContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 10 {
		return true
	}
	if numericPunctRe.MatchString(trimmed) {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, sentinel := range extractionFailureSentinels {
		if strings.Contains(lower, sentinel) {
			return true
		}
	}
	return false
}
