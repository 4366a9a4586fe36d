package chunker

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/tokenizer"
)

func newTestChunker() *Chunker {
	return New(Config{Size: 50, Overlap: 10, MaxSectionTokens: 100}, tokenizer.NewHeuristic())
}

func TestChunk_SectionAware_OneChunkPerSection(t *testing.T) {
	c := newTestChunker()

	sections := []models.Section{
		{Index: 0, Title: "§1 Scope", Content: "This manual covers maintenance.", SectionPath: []string{"§1 Scope"}},
		{Index: 1, Title: "§2 Responsibilities", Content: "The accountable manager is responsible.", SectionPath: []string{"§2 Responsibilities"}},
	}

	chunks := c.Chunk("D", sections, ModeSectionAware)
	require.Len(t, chunks, 2)

	assert.Equal(t, "D_0_0", chunks[0].ChunkID)
	assert.Equal(t, "D_1_0", chunks[1].ChunkID)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
	assert.Equal(t, 1, chunks[1].ChunkIndex)
	assert.Equal(t, "§1 Scope", chunks[0].ParentHeading)
	assert.Equal(t, []string{"§2 Responsibilities"}, chunks[1].SectionPath)
	assert.Positive(t, chunks[0].TokenCount)
}

func TestChunk_PrevNextLinkingCrossesSections(t *testing.T) {
	c := newTestChunker()

	sections := []models.Section{
		{Index: 0, Content: "first section text"},
		{Index: 1, Content: "second section text"},
		{Index: 2, Content: "third section text"},
	}

	chunks := c.Chunk("D", sections, ModeSectionAware)
	require.Len(t, chunks, 3)

	_, hasPrev := chunks[0].Metadata["prev_chunk_id"]
	assert.False(t, hasPrev)
	assert.Equal(t, "D_1_0", chunks[0].Metadata["next_chunk_id"])
	assert.Equal(t, "D_0_0", chunks[1].Metadata["prev_chunk_id"])
	assert.Equal(t, "D_2_0", chunks[1].Metadata["next_chunk_id"])
	assert.Equal(t, "D_1_0", chunks[2].Metadata["prev_chunk_id"])
	_, hasNext := chunks[2].Metadata["next_chunk_id"]
	assert.False(t, hasNext)
}

func TestChunk_SkipsEmptySections(t *testing.T) {
	c := newTestChunker()

	sections := []models.Section{
		{Index: 0, Content: "   \n\t  "},
		{Index: 1, Content: "real content"},
	}

	chunks := c.Chunk("D", sections, ModeSectionAware)
	require.Len(t, chunks, 1)
	assert.Equal(t, "D_1_0", chunks[0].ChunkID)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
}

func TestChunk_SynthesizedHeading(t *testing.T) {
	c := newTestChunker()

	chunks := c.Chunk("D", []models.Section{{Index: 7, Content: "untitled"}}, ModeSectionAware)
	require.Len(t, chunks, 1)
	assert.Equal(t, "section_0007", chunks[0].ParentHeading)
}

func TestChunk_OversizedSectionIsSplit(t *testing.T) {
	c := newTestChunker()

	// 200 five-char words ≈ 300 heuristic tokens, over the 100 token cap.
	big := strings.TrimSpace(strings.Repeat("lorem ", 200))
	chunks := c.Chunk("D", []models.Section{{Index: 0, Title: "Big", Content: big}}, ModeSectionAware)

	require.Greater(t, len(chunks), 1)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.ChunkIndex)
		assert.LessOrEqual(t, ch.TokenCount, 50+2)
		assert.Equal(t, "Big", ch.ParentHeading)
		assert.Equal(t, string(ModeSectionAware), ch.Metadata["chunking_mode"])
	}
	// Truncation before windowing caps total content near MaxSectionTokens.
	total := 0
	for _, ch := range chunks {
		total += c.estimator.Count(ch.Content)
	}
	assert.LessOrEqual(t, total, 100+50)
}

func TestChunk_TokenWindowMode(t *testing.T) {
	c := newTestChunker()

	big := strings.TrimSpace(strings.Repeat("word ", 300))
	chunks := c.Chunk("D", []models.Section{{Index: 0, Content: big}}, ModeTokenWindow)

	require.Greater(t, len(chunks), 2)
	for i, ch := range chunks {
		assert.Equal(t, "D_0_"+strconv.Itoa(i), ch.ChunkID)
		assert.Equal(t, i, ch.Metadata["chunk_in_section"])
	}
	// No overall truncation in token-window mode: every input word appears.
	joined := ""
	for _, ch := range chunks {
		joined += " " + ch.Content
	}
	assert.Contains(t, joined, "word")
	assert.GreaterOrEqual(t, len(strings.Fields(joined)), 300)
}

func TestChunk_Deterministic(t *testing.T) {
	c := newTestChunker()

	sections := []models.Section{
		{Index: 0, Title: "A", Content: strings.Repeat("alpha beta gamma ", 40)},
		{Index: 1, Title: "B", Content: "short"},
	}

	first := c.Chunk("D", sections, ModeSectionAware)
	second := c.Chunk("D", sections, ModeSectionAware)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ChunkID, second[i].ChunkID)
		assert.Equal(t, first[i].Content, second[i].Content)
		assert.Equal(t, first[i].Metadata, second[i].Metadata)
	}
}

func TestChunk_RoundTripNonSplitSection(t *testing.T) {
	c := newTestChunker()

	content := "The quality manager shall maintain the audit programme."
	chunks := c.Chunk("D", []models.Section{{Index: 0, Content: content}}, ModeSectionAware)
	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Content)
}

func TestChunk_CallerMetadataCarried(t *testing.T) {
	c := newTestChunker()

	sections := []models.Section{{
		Index:    3,
		Content:  "content",
		Metadata: map[string]any{"source_page": 12},
	}}

	chunks := c.Chunk("D", sections, ModeSectionAware)
	require.Len(t, chunks, 1)
	assert.Equal(t, 12, chunks[0].Metadata["source_page"])
	assert.Equal(t, 3, chunks[0].Metadata["section_index"])
}
