// Package models contains plain domain types shared across packages:
// extracted sections, the normalized analysis record, and API
// request/response shapes.
package models

// Section is one extracted document section, the chunker's unit of input.
type Section struct {
	Index       int            `json:"index"`
	Title       string         `json:"title,omitempty"`
	Content     string         `json:"content"`
	SectionPath []string       `json:"section_path,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
