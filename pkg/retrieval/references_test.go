package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refTexts(refs []Reference) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Text
	}
	return out
}

func TestExtractReferences_Patterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "section with subsections",
			text: "As required by Section 4.2.1 the operator shall record findings.",
			want: []string{"Section 4.2.1"},
		},
		{
			name: "chapter",
			text: "See Chapter 7 for the training syllabus.",
			want: []string{"Chapter 7"},
		},
		{
			name: "part reference",
			text: "Compliance with Part-145.A.30 is mandatory.",
			want: []string{"Part-145.A.30"},
		},
		{
			name: "finnish osa and kohdassa",
			text: "Katso OSA 3.1 ja kohdassa 2.5 annetut ohjeet.",
			want: []string{"OSA 3.1", "kohdassa 2.5"},
		},
		{
			name: "generic number with nearby keyword",
			text: "described in clause 4.7 of this manual",
			want: []string{"4.7"},
		},
		{
			name: "generic number without keyword is ignored",
			text: "the ratio was 4.7 during the trial",
			want: nil,
		},
		{
			name: "deduplicated case-insensitively",
			text: "Section 4.2 repeats. section 4.2 again.",
			want: []string{"Section 4.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refTexts(ExtractReferences(tt.text)))
		})
	}
}

func TestExtractReferences_Exclusions(t *testing.T) {
	text := "effective on 3.11.2025, per FI.145.9999, see kohdassa 3.4"
	refs := ExtractReferences(text)
	require.Len(t, refs, 1)
	assert.Equal(t, "kohdassa 3.4", refs[0].Text)
}

func TestExtractReferences_IPLikeExcluded(t *testing.T) {
	refs := ExtractReferences("the server at section 10.0.0.1 responded")
	assert.Empty(t, refs)
}

func TestExtractReferences_GenericDoesNotDuplicateKeywordMatch(t *testing.T) {
	refs := ExtractReferences("see kohdassa 3.4 for details")
	require.Len(t, refs, 1)
	assert.Equal(t, "kohdassa 3.4", refs[0].Text)
}

func TestReference_MentionsRegulation(t *testing.T) {
	assert.True(t, Reference{Text: "Part-145.A.30"}.MentionsRegulation())
	assert.True(t, Reference{Text: "AMC 20-8"}.MentionsRegulation())
	assert.False(t, Reference{Text: "Section 4.2"}.MentionsRegulation())
}
