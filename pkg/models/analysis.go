package models

import "encoding/json"

// Flag classes, ordered by severity.
const (
	FlagRed    = "RED"
	FlagYellow = "YELLOW"
	FlagGreen  = "GREEN"
)

// AnalysisCitations carries the citation block of an analysis. The manual
// section is at most one reference; regulation sections may be many.
type AnalysisCitations struct {
	ManualSection      *string  `json:"manual_section"`
	RegulationSections []string `json:"regulation_sections"`
}

// NormalizedAnalysis is the validated, normalized result of one LLM
// compliance analysis. Untyped JSON from the model never crosses this
// boundary: the analysis client rejects responses that do not fit.
type NormalizedAnalysis struct {
	Flag                   string            `json:"flag"`
	SeverityScore          int               `json:"severity_score"`
	RegulationReferences   []string          `json:"regulation_references"`
	Findings               string            `json:"findings"`
	Gaps                   []string          `json:"gaps"`
	Citations              AnalysisCitations `json:"citations"`
	Recommendations        []string          `json:"recommendations"`
	NeedsAdditionalContext bool              `json:"needs_additional_context"`
	ContextQuery           string            `json:"context_query,omitempty"`

	// Refinement bookkeeping, attached by the runner.
	Refined            bool `json:"refined,omitempty"`
	RefinementAttempts int  `json:"refinement_attempts,omitempty"`
}

// AsMap renders the analysis as a generic map for JSONB persistence.
func (a *NormalizedAnalysis) AsMap() map[string]any {
	raw, err := json.Marshal(a)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}
