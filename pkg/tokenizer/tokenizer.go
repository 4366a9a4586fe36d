// Package tokenizer provides token counting for chunking, budgeting, and
// context rendering. All three must share one Estimator instance so their
// counts cannot drift.
package tokenizer

import (
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

// Estimator counts tokens for a byte string under a named tokenizer.
type Estimator interface {
	// Count returns the token count of text. Non-empty text counts at least 1.
	Count(text string) int

	// Name identifies the underlying tokenizer.
	Name() string
}

// New returns an Estimator for the named encoding, degrading to the char/4
// heuristic when the encoding is unavailable.
func New(encoding string) Estimator {
	if encoding == "" {
		return NewHeuristic()
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		slog.Warn("Tokenizer encoding unavailable, using char/4 heuristic",
			"encoding", encoding, "error", err)
		return NewHeuristic()
	}
	return &BPEEstimator{name: encoding, enc: enc}
}

// BPEEstimator counts tokens with a real BPE tokenizer.
type BPEEstimator struct {
	name string
	enc  *tiktoken.Tiktoken
}

// Count returns the exact BPE token count.
func (e *BPEEstimator) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}

// Name returns the encoding name.
func (e *BPEEstimator) Name() string {
	return e.name
}

// HeuristicEstimator approximates token counts as ceil(len/4) with a floor
// of 1 for non-empty strings.
type HeuristicEstimator struct{}

// NewHeuristic returns the char/4 fallback estimator.
func NewHeuristic() *HeuristicEstimator {
	return &HeuristicEstimator{}
}

// Count returns ceil(len(text)/4), at least 1 for non-empty text.
func (e *HeuristicEstimator) Count(text string) int {
	if text == "" {
		return 0
	}
	n := (len(text) + 3) / 4
	if n < 1 {
		n = 1
	}
	return n
}

// Name returns the heuristic identifier.
func (e *HeuristicEstimator) Name() string {
	return "heuristic"
}
