package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicEstimator_Count(t *testing.T) {
	e := NewHeuristic()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "single char floors to one", text: "a", want: 1},
		{name: "exactly four chars", text: "abcd", want: 1},
		{name: "five chars rounds up", text: "abcde", want: 2},
		{name: "long text", text: strings.Repeat("x", 400), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Count(tt.text))
		})
	}
}

func TestNew_FallsBackOnUnknownEncoding(t *testing.T) {
	e := New("no-such-encoding")
	assert.Equal(t, "heuristic", e.Name())
	assert.Equal(t, 1, e.Count("ab"))
}

func TestNew_EmptyNameUsesHeuristic(t *testing.T) {
	e := New("")
	assert.Equal(t, "heuristic", e.Name())
}
