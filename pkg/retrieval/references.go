package retrieval

import (
	"regexp"
	"strings"
)

// Reference is one cross-reference extracted from chunk text.
type Reference struct {
	// Text is the full matched reference, e.g. "Section 4.2".
	Text string

	// Synthetic marks a reference injected from an agent-supplied context
	// query rather than extracted from text.
	Synthetic bool
}

// MentionsRegulation reports whether the reference points at regulatory
// material rather than the manual itself.
func (r Reference) MentionsRegulation() bool {
	lower := strings.ToLower(r.Text)
	for _, kw := range []string{"part", "amc", "gm", "regulation"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Extraction patterns, in priority order. A generic numeric match whose span
// overlaps a higher-priority match is discarded so "kohdassa 3.4" does not
// also yield a bare "3.4".
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsection\s+\d+(?:\.\d+){0,2}\b`),
	regexp.MustCompile(`(?i)\bchapter\s+\d+\b`),
	regexp.MustCompile(`(?i)\bpart-\d+\.[A-Za-z]\.\d+\b`),
	regexp.MustCompile(`(?i)\bosa\s+\d+(?:\.\d+)?\b`),
	regexp.MustCompile(`(?i)\bkohdassa\s+\d+(?:\.\d+)?\b`),
}

// genericNumberRe matches bare N.N[.N] references, accepted only with a
// section-related keyword nearby.
var genericNumberRe = regexp.MustCompile(`\b\d+(?:\.\d+){1,2}\b`)

// genericContextKeywords qualify a bare numeric reference when found within
// genericContextRadius chars on either side of the match.
var genericContextKeywords = []string{
	"section", "chapter", "clause", "paragraph", "part",
	"kohta", "kohdassa", "luku", "liite", "§",
}

const genericContextRadius = 20

// Exclusion patterns: spans matching these never yield references, and
// generic matches inside them are discarded.
var exclusionPatterns = []*regexp.Regexp{
	// Dates d.m.yyyy.
	regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`),
	// Organization approval ids like FI.145.9999.
	regexp.MustCompile(`\b[A-Z]{2}\.\d+\.\d+\b`),
	// IP-like dotted quads.
	regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`),
}

// bareYearRe excludes four-digit years matched on their own.
var bareYearRe = regexp.MustCompile(`^(?:19|20)\d{2}$`)

type span struct{ start, end int }

func (s span) overlaps(other span) bool {
	return s.start < other.end && other.start < s.end
}

// ExtractReferences scans text for section references, applying the
// exclusion rules and de-duplicating by lowercased match text. Order follows
// first appearance per pattern priority.
func ExtractReferences(text string) []Reference {
	var excluded []span
	for _, re := range exclusionPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			excluded = append(excluded, span{loc[0], loc[1]})
		}
	}

	var refs []Reference
	var taken []span
	seen := make(map[string]bool)

	add := func(s span) {
		match := text[s.start:s.end]
		key := strings.ToLower(match)
		if seen[key] || bareYearRe.MatchString(match) {
			return
		}
		seen[key] = true
		taken = append(taken, s)
		refs = append(refs, Reference{Text: match})
	}

	overlapsAny := func(s span, spans []span) bool {
		for _, other := range spans {
			if s.overlaps(other) {
				return true
			}
		}
		return false
	}

	for _, re := range referencePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			s := span{loc[0], loc[1]}
			if overlapsAny(s, excluded) {
				continue
			}
			add(s)
		}
	}

	for _, loc := range genericNumberRe.FindAllStringIndex(text, -1) {
		s := span{loc[0], loc[1]}
		if overlapsAny(s, excluded) || overlapsAny(s, taken) {
			continue
		}
		if !hasContextKeyword(text, s) {
			continue
		}
		add(s)
	}

	return refs
}

func hasContextKeyword(text string, s span) bool {
	start := s.start - genericContextRadius
	if start < 0 {
		start = 0
	}
	end := s.end + genericContextRadius
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])
	for _, kw := range genericContextKeywords {
		if strings.Contains(window, kw) {
			return true
		}
	}
	return false
}
