package models

// CreateAuditRequest is the body of POST /api/audits.
type CreateAuditRequest struct {
	DocumentID string `json:"document_id"`
	IsDraft    bool   `json:"is_draft,omitempty"`
}

// AuditFilters contains filtering options for listing audits.
type AuditFilters struct {
	Status  string `json:"status,omitempty"`
	IsDraft *bool  `json:"is_draft,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// FlagFilters contains filtering and pagination options for listing flags.
type FlagFilters struct {
	Severity         string `json:"severity,omitempty"`   // flag class: RED, YELLOW, GREEN
	Regulation       string `json:"regulation,omitempty"` // regulation citation reference
	IncludeQuestions bool   `json:"include_questions,omitempty"`
	Limit            int    `json:"limit,omitempty"`
	Offset           int    `json:"offset,omitempty"`
}

// RunOptions controls a single runner invocation.
type RunOptions struct {
	// MaxChunks caps the number of chunks processed this run. Zero means
	// no caller cap (draft audits still apply their own limit of 5).
	MaxChunks int

	// IncludeEvidence adds the evidence collection to context retrieval.
	IncludeEvidence bool
}
