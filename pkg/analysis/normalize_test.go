package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/models"
)

const validResponse = `{
	"flag": "green",
	"severity_score": 5,
	"regulation_references": [" Part-145.A.30 ", ""],
	"findings": "Compliant.",
	"gaps": [],
	"citations": {"manual_section": "4.2", "regulation_sections": ["145.A.30", " 145.A.30", "145.A.35"]},
	"recommendations": ["  keep records current ", ""],
	"needs_additional_context": false,
	"context_query": null
}`

func TestParseAnalysis_NormalizesValidResponse(t *testing.T) {
	a, err := parseAnalysis(validResponse)
	require.NoError(t, err)

	assert.Equal(t, models.FlagGreen, a.Flag)
	assert.Equal(t, 5, a.SeverityScore)
	assert.Equal(t, []string{"Part-145.A.30"}, a.RegulationReferences)
	assert.Equal(t, "Compliant.", a.Findings)
	assert.Empty(t, a.Gaps)
	require.NotNil(t, a.Citations.ManualSection)
	assert.Equal(t, "4.2", *a.Citations.ManualSection)
	assert.Equal(t, []string{"145.A.30", "145.A.35"}, a.Citations.RegulationSections)
	assert.Equal(t, []string{"keep records current"}, a.Recommendations)
	assert.False(t, a.NeedsAdditionalContext)
	assert.Empty(t, a.ContextQuery)
}

func TestParseAnalysis_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	a, err := parseAnalysis(fenced)
	require.NoError(t, err)
	assert.Equal(t, models.FlagGreen, a.Flag)
}

func TestParseAnalysis_GapObjects(t *testing.T) {
	raw := `{
		"flag": "YELLOW",
		"severity_score": 55,
		"regulation_references": [],
		"findings": "Partial coverage.",
		"gaps": [
			"plain gap",
			{"gap_name": "missing recurrency training"},
			{"gap_item": "", "description": "no record retention period"},
			{"unrelated": 1},
			""
		],
		"citations": {"manual_section": null, "regulation_sections": []},
		"recommendations": []
	}`

	a, err := parseAnalysis(raw)
	require.NoError(t, err)
	require.Len(t, a.Gaps, 4)
	assert.Equal(t, "plain gap", a.Gaps[0])
	assert.Equal(t, "missing recurrency training", a.Gaps[1])
	assert.Equal(t, "no record retention period", a.Gaps[2])
	assert.JSONEq(t, `{"unrelated": 1}`, a.Gaps[3])
}

func TestParseAnalysis_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "the section looks fine to me"},
		{name: "unknown top-level field", raw: `{
			"flag": "GREEN", "severity_score": 1, "regulation_references": [],
			"findings": "ok", "gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": [], "confidence": 0.9}`},
		{name: "missing findings", raw: `{
			"flag": "GREEN", "severity_score": 1, "regulation_references": [],
			"gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": []}`},
		{name: "empty findings", raw: `{
			"flag": "GREEN", "severity_score": 1, "regulation_references": [],
			"findings": "  ", "gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": []}`},
		{name: "bad flag", raw: `{
			"flag": "BLUE", "severity_score": 1, "regulation_references": [],
			"findings": "ok", "gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": []}`},
		{name: "severity out of range", raw: `{
			"flag": "RED", "severity_score": 150, "regulation_references": [],
			"findings": "ok", "gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": []}`},
		{name: "fractional severity", raw: `{
			"flag": "RED", "severity_score": 80.5, "regulation_references": [],
			"findings": "ok", "gaps": [], "citations": {"manual_section": null, "regulation_sections": []},
			"recommendations": []}`},
		{name: "unknown citations field", raw: `{
			"flag": "GREEN", "severity_score": 1, "regulation_references": [],
			"findings": "ok", "gaps": [],
			"citations": {"manual_section": null, "regulation_sections": [], "extra": true},
			"recommendations": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysis(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseAnalysis_ContextQuery(t *testing.T) {
	raw := `{
		"flag": "YELLOW", "severity_score": 50, "regulation_references": [],
		"findings": "Needs more context.", "gaps": [],
		"citations": {"manual_section": null, "regulation_sections": []},
		"recommendations": [],
		"needs_additional_context": true,
		"context_query": " definition of critical part "
	}`

	a, err := parseAnalysis(raw)
	require.NoError(t, err)
	assert.True(t, a.NeedsAdditionalContext)
	assert.Equal(t, "definition of critical part", a.ContextQuery)
}
