// Package retrieval assembles budgeted context bundles for audit chunks from
// the vector collections, with optional recursive reference following.
package retrieval

import (
	"fmt"
	"strings"
)

// Bucket names a context category.
type Bucket string

const (
	BucketManual     Bucket = "manual"
	BucketRegulation Bucket = "regulation"
	BucketGuidance   Bucket = "guidance"
	BucketEvidence   Bucket = "evidence"
)

// Slice is one admitted context piece.
type Slice struct {
	ChunkID    string         `json:"chunk_id"`
	Heading    string         `json:"heading,omitempty"`
	Content    string         `json:"content"`
	TokenCount int            `json:"token_count"`
	Distance   float64        `json:"distance"`
	Score      float64        `json:"score"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Bundle is the prompt-input package for one focus chunk: the focus slice
// plus budgeted slices per category, with token accounting.
type Bundle struct {
	Focus        Slice          `json:"focus"`
	Manual       []Slice        `json:"manual"`
	Regulation   []Slice        `json:"regulation"`
	Guidance     []Slice        `json:"guidance"`
	Evidence     []Slice        `json:"evidence"`
	BucketTokens map[Bucket]int `json:"bucket_tokens"`
	TotalTokens  int            `json:"total_tokens"`
	Truncated    bool           `json:"truncated"`
}

// Slices returns the non-focus slice list for a bucket.
func (b *Bundle) Slices(bucket Bucket) []Slice {
	switch bucket {
	case BucketManual:
		return b.Manual
	case BucketRegulation:
		return b.Regulation
	case BucketGuidance:
		return b.Guidance
	case BucketEvidence:
		return b.Evidence
	}
	return nil
}

// RenderText produces prompt-ready text grouped by category. Empty
// categories emit no heading.
func (b *Bundle) RenderText() string {
	var sb strings.Builder

	sb.WriteString("=== SECTION UNDER REVIEW")
	if b.Focus.Heading != "" {
		sb.WriteString(": ")
		sb.WriteString(b.Focus.Heading)
	}
	sb.WriteString(" ===\n")
	sb.WriteString(b.Focus.Content)
	sb.WriteString("\n")

	renderBucket(&sb, "MANUAL CONTEXT", b.Manual)
	renderBucket(&sb, "REGULATION CONTEXT", b.Regulation)
	renderBucket(&sb, "GUIDANCE CONTEXT (AMC/GM)", b.Guidance)
	renderBucket(&sb, "EVIDENCE CONTEXT", b.Evidence)

	return sb.String()
}

func renderBucket(sb *strings.Builder, title string, slices []Slice) {
	if len(slices) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n=== %s ===\n", title)
	for i, s := range slices {
		fmt.Fprintf(sb, "[%d]", i+1)
		if s.Heading != "" {
			fmt.Fprintf(sb, " %s", s.Heading)
		}
		if s.Score > 0 {
			fmt.Fprintf(sb, " (relevance %.2f)", s.Score)
		}
		sb.WriteString("\n")
		sb.WriteString(s.Content)
		sb.WriteString("\n")
	}
}
