package models

// GeneratedQuestion is one reviewer question produced for a cited regulation
// reference, before persistence.
type GeneratedQuestion struct {
	Question  string `json:"question"`
	Priority  int    `json:"priority"` // 1 highest ... 10 lowest
	Rationale string `json:"rationale,omitempty"`
}
