package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/regsentry/regsentry/pkg/vectorstore"
)

const (
	// MaxDepth bounds reference following.
	MaxDepth = 3

	// MaxReferencesPerChunk bounds extraction breadth per visited chunk.
	MaxReferencesPerChunk = 10

	// Per-bucket entry caps after recursion.
	maxManualSlices     = 50
	maxRegulationSlices = 50
	maxGuidanceSlices   = 50
	maxEvidenceSlices   = 20

	// Concept-search breadth for an agent-supplied context query.
	conceptManualTopK     = 10
	conceptRegulationTopK = 5

	// Per-reference search breadth.
	referenceManualTopK     = 5
	referenceRegulationTopK = 3
)

// RecursiveBuilder wraps Builder with breadth-first reference following:
// section references found in visited chunks pull in the chunks they point
// at, up to MaxDepth levels deep.
type RecursiveBuilder struct {
	builder *Builder
	logger  *slog.Logger
}

// NewRecursiveBuilder creates a RecursiveBuilder over builder.
func NewRecursiveBuilder(builder *Builder) *RecursiveBuilder {
	return &RecursiveBuilder{
		builder: builder,
		logger:  slog.Default().With("component", "recursive_context_builder"),
	}
}

type queueItem struct {
	chunkID string
	depth   int
}

// Build seeds a bundle via the wrapped Builder, then follows extracted
// references breadth-first. Every reference at depth d is processed before
// any at d+1, which keeps the traversal deterministic.
func (r *RecursiveBuilder) Build(ctx context.Context, chunkID string, opts BuildOptions) (*Bundle, error) {
	bundle, err := r.builder.Build(ctx, chunkID, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	seen[bundle.Focus.ChunkID] = true
	for _, bucket := range []Bucket{BucketManual, BucketRegulation, BucketGuidance, BucketEvidence} {
		for _, s := range bundle.Slices(bucket) {
			seen[s.ChunkID] = true
		}
	}

	queue := []queueItem{{chunkID: chunkID, depth: 0}}
	processed := make(map[string]bool)

	enqueue := func(id string, depth int) {
		if !processed[id] {
			queue = append(queue, queueItem{chunkID: id, depth: depth})
		}
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= MaxDepth || processed[item.chunkID] {
			continue
		}
		processed[item.chunkID] = true

		chunk, err := r.builder.chunks.ByChunkID(ctx, item.chunkID)
		if err != nil {
			r.logger.Debug("Skipping unresolvable referenced chunk",
				"chunk_id", item.chunkID, "depth", item.depth, "error", err)
			continue
		}

		refs := ExtractReferences(chunk.Content)

		// An agent-supplied context query acts as a synthetic reference at
		// the focus chunk and seeds a wider concept search.
		contextQueryActive := strings.TrimSpace(opts.ContextQuery) != ""
		if item.depth == 0 && contextQueryActive {
			refs = append([]Reference{{Text: opts.ContextQuery, Synthetic: true}}, refs...)

			for _, m := range r.builder.search(ctx, vectorstore.CollectionManual, opts.ContextQuery,
				conceptManualTopK, vectorstore.Filter{"document_id": chunk.DocumentExternalID}) {
				if r.addSlice(bundle, BucketManual, m, opts.ContextQuery, item.depth+1, seen) {
					enqueue(m.ID, item.depth+1)
				}
			}
			for _, m := range r.builder.search(ctx, vectorstore.CollectionRegulation, opts.ContextQuery,
				conceptRegulationTopK, nil) {
				if r.addSlice(bundle, BucketRegulation, m, opts.ContextQuery, item.depth+1, seen) {
					enqueue(m.ID, item.depth+1)
				}
			}
		}

		if len(refs) > MaxReferencesPerChunk {
			refs = refs[:MaxReferencesPerChunk]
		}

		for _, ref := range refs {
			for _, m := range r.builder.search(ctx, vectorstore.CollectionManual, ref.Text,
				referenceManualTopK, vectorstore.Filter{"document_id": chunk.DocumentExternalID}) {
				if r.addSlice(bundle, BucketManual, m, ref.Text, item.depth+1, seen) {
					enqueue(m.ID, item.depth+1)
				}
			}
			if ref.MentionsRegulation() || contextQueryActive {
				for _, m := range r.builder.search(ctx, vectorstore.CollectionRegulation, ref.Text,
					referenceRegulationTopK, nil) {
					if r.addSlice(bundle, BucketRegulation, m, ref.Text, item.depth+1, seen) {
						enqueue(m.ID, item.depth+1)
					}
				}
			}
		}

		// Litigation step: pull supporting evidence for the visited chunk.
		if opts.IncludeEvidence {
			for _, m := range r.builder.search(ctx, vectorstore.CollectionEvidence, chunk.Content,
				r.builder.cfg.EvidenceTopK, nil) {
				if r.addSlice(bundle, BucketEvidence, m, "", item.depth+1, seen) {
					enqueue(m.ID, item.depth+1)
				}
			}
		}
	}

	r.finalize(bundle)
	return bundle, nil
}

// addSlice appends a match to the bundle bucket unless its chunk id is
// already present. Returns true when the slice was new.
func (r *RecursiveBuilder) addSlice(bundle *Bundle, bucket Bucket, m vectorstore.Match,
	referenceSource string, depth int, seen map[string]bool) bool {
	if seen[m.ID] {
		return false
	}
	seen[m.ID] = true

	slice := r.builder.matchSlice(m)
	md := make(map[string]any, len(slice.Metadata)+2)
	for k, v := range slice.Metadata {
		md[k] = v
	}
	if referenceSource != "" {
		md["reference_source"] = referenceSource
	}
	md["depth"] = depth
	slice.Metadata = md

	switch bucket {
	case BucketManual:
		bundle.Manual = append(bundle.Manual, slice)
	case BucketRegulation:
		bundle.Regulation = append(bundle.Regulation, slice)
	case BucketGuidance:
		bundle.Guidance = append(bundle.Guidance, slice)
	case BucketEvidence:
		bundle.Evidence = append(bundle.Evidence, slice)
	}
	return true
}

// finalize caps each bucket and recomputes token accounting across focus
// plus all retained slices.
func (r *RecursiveBuilder) finalize(bundle *Bundle) {
	bundle.Manual = capSlices(bundle.Manual, maxManualSlices)
	bundle.Regulation = capSlices(bundle.Regulation, maxRegulationSlices)
	bundle.Guidance = capSlices(bundle.Guidance, maxGuidanceSlices)
	bundle.Evidence = capSlices(bundle.Evidence, maxEvidenceSlices)

	total := r.recount(&bundle.Focus)
	for _, bucket := range []Bucket{BucketManual, BucketRegulation, BucketGuidance, BucketEvidence} {
		used := 0
		slices := bundle.Slices(bucket)
		for i := range slices {
			used += r.recount(&slices[i])
		}
		bundle.BucketTokens[bucket] = used
		total += used
	}
	bundle.TotalTokens = total
}

func (r *RecursiveBuilder) recount(s *Slice) int {
	s.TokenCount = r.builder.estimator.Count(s.Content)
	return s.TokenCount
}

func capSlices(slices []Slice, limit int) []Slice {
	if len(slices) > limit {
		return slices[:limit]
	}
	return slices
}
