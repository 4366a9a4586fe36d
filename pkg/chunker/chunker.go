// Package chunker splits ordered document sections into ordered chunks with
// stable ids, token counts, section paths, and prev/next back-references.
package chunker

import (
	"fmt"
	"strings"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/tokenizer"
)

// Mode selects the chunking strategy.
type Mode string

const (
	// ModeSectionAware emits one chunk per non-empty section, splitting a
	// section with the token-window algorithm only when it exceeds
	// MaxSectionTokens. Default for manuals, regulations, AMC and GM.
	ModeSectionAware Mode = "section_aware"

	// ModeTokenWindow slides a fixed token window with overlap across each
	// section's text.
	ModeTokenWindow Mode = "token_window"
)

// Chunk is one emitted unit of analysis. ChunkID is globally unique:
// "{doc_id}_{section_index}_{chunk_in_section}".
type Chunk struct {
	ChunkID       string
	ChunkIndex    int
	SectionPath   []string
	ParentHeading string
	Content       string
	TokenCount    int
	Metadata      map[string]any
}

// Config controls window size, overlap, and the section split threshold.
type Config struct {
	Size             int
	Overlap          int
	MaxSectionTokens int
}

// Chunker produces deterministic chunk sequences: identical input yields
// identical ids, texts, metadata, and ordering.
type Chunker struct {
	cfg       Config
	estimator tokenizer.Estimator
}

// New creates a Chunker. The estimator must be the same instance used for
// context budgeting to avoid token-count drift.
func New(cfg Config, estimator tokenizer.Estimator) *Chunker {
	return &Chunker{cfg: cfg, estimator: estimator}
}

// Chunk splits the ordered sections of a document into chunks. docID is the
// document's external id and becomes the chunk id prefix.
func (c *Chunker) Chunk(docID string, sections []models.Section, mode Mode) []Chunk {
	var chunks []Chunk

	for _, section := range sections {
		content := strings.TrimSpace(section.Content)
		if content == "" {
			continue
		}

		var texts []string
		switch mode {
		case ModeTokenWindow:
			texts = c.windows(content)
		default:
			tokens := c.estimator.Count(content)
			if tokens > c.cfg.MaxSectionTokens {
				// Oversized sections are truncated before windowing.
				content = c.truncate(content, c.cfg.MaxSectionTokens)
				texts = c.windows(content)
			} else {
				texts = []string{content}
			}
		}

		for local, text := range texts {
			chunk := Chunk{
				ChunkID:       fmt.Sprintf("%s_%d_%d", docID, section.Index, local),
				SectionPath:   section.SectionPath,
				ParentHeading: heading(section),
				Content:       text,
				TokenCount:    c.estimator.Count(text),
				Metadata:      buildMetadata(section, local, mode),
			}
			chunk.ChunkIndex = len(chunks)

			// Prev/next linking crosses section boundaries.
			if len(chunks) > 0 {
				prev := &chunks[len(chunks)-1]
				prev.Metadata["next_chunk_id"] = chunk.ChunkID
				chunk.Metadata["prev_chunk_id"] = prev.ChunkID
			}

			chunks = append(chunks, chunk)
		}
	}

	return chunks
}

// heading returns the section title, or a synthesized "section_NNNN" heading
// when the section is untitled.
func heading(section models.Section) string {
	if section.Title != "" {
		return section.Title
	}
	return fmt.Sprintf("section_%04d", section.Index)
}

func buildMetadata(section models.Section, local int, mode Mode) map[string]any {
	md := map[string]any{
		"section_index":    section.Index,
		"chunk_in_section": local,
		"chunking_mode":    string(mode),
	}
	for k, v := range section.Metadata {
		md[k] = v
	}
	return md
}

// windows slides a window of Size tokens with Overlap tokens of carry-over
// across text, splitting on whitespace word boundaries.
func (c *Chunker) windows(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var out []string
	start := 0
	for start < len(words) {
		end := start
		tokens := 0
		for end < len(words) {
			next := c.estimator.Count(words[end])
			if end > start && tokens+next > c.cfg.Size {
				break
			}
			tokens += next
			end++
		}

		out = append(out, strings.Join(words[start:end], " "))
		if end >= len(words) {
			break
		}

		// Carry trailing words worth up to Overlap tokens into the next window.
		carry := end
		carried := 0
		for carry > start {
			w := c.estimator.Count(words[carry-1])
			if carried+w > c.cfg.Overlap {
				break
			}
			carried += w
			carry--
		}
		if carry == end {
			// Overlap smaller than one word; advance without carry.
			carry = end
		}
		if carry <= start {
			carry = start + 1
		}
		start = carry
	}

	return out
}

// truncate cuts text at a rune boundary so that the result counts at most
// maxTokens. Binary search keeps the cut deterministic.
func (c *Chunker) truncate(text string, maxTokens int) string {
	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.estimator.Count(string(runes[:mid])) <= maxTokens {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimSpace(string(runes[:lo]))
}
