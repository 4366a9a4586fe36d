package runner

import "github.com/regsentry/regsentry/pkg/retrieval"

const (
	// summaryPreviewChars caps each slice preview in the context summary.
	summaryPreviewChars = 200

	// summaryMaxSlices caps previewed slices per bucket.
	summaryMaxSlices = 20
)

// contextSummary snapshots the bundle actually used for an analysis: token
// totals, per-bucket counts, and short content previews. Persisted next to
// the analysis so reviewers can see what the model saw.
func contextSummary(bundle *retrieval.Bundle) map[string]any {
	buckets := map[string]any{}
	for _, bucket := range []retrieval.Bucket{
		retrieval.BucketManual, retrieval.BucketRegulation,
		retrieval.BucketGuidance, retrieval.BucketEvidence,
	} {
		slices := bundle.Slices(bucket)
		if len(slices) == 0 {
			continue
		}

		previews := make([]map[string]any, 0, min(len(slices), summaryMaxSlices))
		for _, s := range slices[:min(len(slices), summaryMaxSlices)] {
			previews = append(previews, map[string]any{
				"chunk_id": s.ChunkID,
				"heading":  s.Heading,
				"score":    s.Score,
				"tokens":   s.TokenCount,
				"preview":  preview(s.Content),
			})
		}
		buckets[string(bucket)] = map[string]any{
			"count":  len(slices),
			"tokens": bundle.BucketTokens[bucket],
			"slices": previews,
		}
	}

	return map[string]any{
		"focus_chunk_id": bundle.Focus.ChunkID,
		"total_tokens":   bundle.TotalTokens,
		"truncated":      bundle.Truncated,
		"buckets":        buckets,
	}
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryPreviewChars {
		return content
	}
	return string(runes[:summaryPreviewChars]) + "..."
}
