package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/regsentry/regsentry/pkg/models"
)

// allowedFields is the exact top-level schema; unknown fields are rejected.
var allowedFields = map[string]bool{
	"flag":                     true,
	"severity_score":           true,
	"regulation_references":    true,
	"findings":                 true,
	"gaps":                     true,
	"citations":                true,
	"recommendations":          true,
	"needs_additional_context": true,
	"context_query":            true,
}

// requiredFields must be present; needs_additional_context and context_query
// default when absent.
var requiredFields = []string{
	"flag", "severity_score", "regulation_references",
	"findings", "gaps", "citations", "recommendations",
}

// parseAnalysis strips code fences, parses the raw LLM output, and validates
// it against the fixed schema.
func parseAnalysis(raw string) (*models.NormalizedAnalysis, error) {
	cleaned := stripCodeFences(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	for key := range payload {
		if !allowedFields[key] {
			return nil, fmt.Errorf("unknown field %q in response", key)
		}
	}
	for _, key := range requiredFields {
		if _, ok := payload[key]; !ok {
			return nil, fmt.Errorf("missing required field %q", key)
		}
	}

	out := &models.NormalizedAnalysis{}

	flag, ok := payload["flag"].(string)
	if !ok {
		return nil, fmt.Errorf("field flag must be a string")
	}
	out.Flag = strings.ToUpper(strings.TrimSpace(flag))
	switch out.Flag {
	case models.FlagRed, models.FlagYellow, models.FlagGreen:
	default:
		return nil, fmt.Errorf("field flag must be RED, YELLOW or GREEN, got %q", flag)
	}

	severity, err := intField(payload["severity_score"])
	if err != nil {
		return nil, fmt.Errorf("field severity_score: %w", err)
	}
	if severity < 0 || severity > 100 {
		return nil, fmt.Errorf("field severity_score must be 0-100, got %d", severity)
	}
	out.SeverityScore = severity

	out.RegulationReferences, err = stringList(payload["regulation_references"])
	if err != nil {
		return nil, fmt.Errorf("field regulation_references: %w", err)
	}

	findings, ok := payload["findings"].(string)
	if !ok || strings.TrimSpace(findings) == "" {
		return nil, fmt.Errorf("field findings must be a non-empty string")
	}
	out.Findings = strings.TrimSpace(findings)

	out.Gaps, err = gapList(payload["gaps"])
	if err != nil {
		return nil, fmt.Errorf("field gaps: %w", err)
	}

	out.Citations, err = citationsObject(payload["citations"])
	if err != nil {
		return nil, fmt.Errorf("field citations: %w", err)
	}

	out.Recommendations, err = stringList(payload["recommendations"])
	if err != nil {
		return nil, fmt.Errorf("field recommendations: %w", err)
	}

	if v, ok := payload["needs_additional_context"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("field needs_additional_context must be a bool")
		}
		out.NeedsAdditionalContext = b
	}

	if v, ok := payload["context_query"]; ok && v != nil {
		q, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field context_query must be a string or null")
		}
		out.ContextQuery = strings.TrimSpace(q)
	}

	return out, nil
}

// stripCodeFences removes a leading and trailing markdown fence, tolerating a
// language tag after the opening backticks.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func intField(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("must be an integer")
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("must be an integer, got %v", f)
	}
	return int(f), nil
}

// stringList validates a list of strings, stripping entries and dropping
// empties.
func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list")
	}
	var out []string
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("entry %d must be a string", i)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// gapList accepts strings or gap objects. For objects the first non-empty of
// gap_name, gap_item, gap_description, description wins; otherwise the object
// is stringified. Empties are dropped.
func gapList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list")
	}
	var out []string
	for _, item := range items {
		var text string
		switch g := item.(type) {
		case string:
			text = g
		case map[string]any:
			for _, key := range []string{"gap_name", "gap_item", "gap_description", "description"} {
				if s, ok := g[key].(string); ok && strings.TrimSpace(s) != "" {
					text = s
					break
				}
			}
			if text == "" {
				raw, err := json.Marshal(g)
				if err == nil {
					text = string(raw)
				}
			}
		default:
			text = fmt.Sprint(item)
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// citationsObject validates the citations block: exactly manual_section
// (string or null) and regulation_sections (list of strings, deduplicated
// after stripping).
func citationsObject(v any) (models.AnalysisCitations, error) {
	var c models.AnalysisCitations

	obj, ok := v.(map[string]any)
	if !ok {
		return c, fmt.Errorf("must be an object")
	}
	for key := range obj {
		if key != "manual_section" && key != "regulation_sections" {
			return c, fmt.Errorf("unknown field %q", key)
		}
	}

	if v, ok := obj["manual_section"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return c, fmt.Errorf("manual_section must be a string or null")
		}
		if s = strings.TrimSpace(s); s != "" {
			c.ManualSection = &s
		}
	}

	if v, ok := obj["regulation_sections"]; ok && v != nil {
		sections, err := stringList(v)
		if err != nil {
			return c, fmt.Errorf("regulation_sections: %w", err)
		}
		seen := make(map[string]bool, len(sections))
		for _, s := range sections {
			if !seen[s] {
				seen[s] = true
				c.RegulationSections = append(c.RegulationSections, s)
			}
		}
	}

	return c, nil
}
