package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/retrieval"
)

func TestContextSummary(t *testing.T) {
	long := strings.Repeat("x", 500)
	bundle := &retrieval.Bundle{
		Focus: retrieval.Slice{ChunkID: "D_0_0", Content: "focus"},
		Manual: []retrieval.Slice{
			{ChunkID: "D_1_0", Heading: "Definitions", Content: long, TokenCount: 125, Score: 0.9},
		},
		BucketTokens: map[retrieval.Bucket]int{retrieval.BucketManual: 125},
		TotalTokens:  160,
		Truncated:    true,
	}

	summary := contextSummary(bundle)
	assert.Equal(t, "D_0_0", summary["focus_chunk_id"])
	assert.Equal(t, 160, summary["total_tokens"])
	assert.Equal(t, true, summary["truncated"])

	buckets := summary["buckets"].(map[string]any)
	require.Contains(t, buckets, "manual")
	assert.NotContains(t, buckets, "regulation")

	manual := buckets["manual"].(map[string]any)
	assert.Equal(t, 1, manual["count"])
	assert.Equal(t, 125, manual["tokens"])

	slices := manual["slices"].([]map[string]any)
	require.Len(t, slices, 1)
	previewText := slices[0]["preview"].(string)
	assert.LessOrEqual(t, len(previewText), summaryPreviewChars+3)
	assert.True(t, strings.HasSuffix(previewText, "..."))
}

func TestContextSummary_CapsSlicesPerBucket(t *testing.T) {
	bundle := &retrieval.Bundle{
		Focus:        retrieval.Slice{ChunkID: "D_0_0"},
		BucketTokens: map[retrieval.Bucket]int{},
	}
	for i := 0; i < summaryMaxSlices+10; i++ {
		bundle.Evidence = append(bundle.Evidence, retrieval.Slice{
			ChunkID: "E", Content: "evidence body",
		})
	}

	summary := contextSummary(bundle)
	evidence := summary["buckets"].(map[string]any)["evidence"].(map[string]any)
	assert.Equal(t, summaryMaxSlices+10, evidence["count"])
	assert.Len(t, evidence["slices"].([]map[string]any), summaryMaxSlices)
}
