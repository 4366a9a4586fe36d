package api

import (
	"time"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/citation"
)

// DocumentResponse is the external representation of a document.
type DocumentResponse struct {
	ExternalID   string    `json:"external_id"`
	Filename     string    `json:"filename"`
	SizeBytes    int64     `json:"size_bytes"`
	SourceType   string    `json:"source_type"`
	Organization string    `json:"organization,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditResponse is the external representation of an audit.
type AuditResponse struct {
	ExternalID     string     `json:"external_id"`
	Status         string     `json:"status"`
	IsDraft        bool       `json:"is_draft"`
	ChunkTotal     int        `json:"chunk_total"`
	ChunkCompleted int        `json:"chunk_completed"`
	CreatedAt      time.Time  `json:"created_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	FailedAt       *time.Time `json:"failed_at,omitempty"`
	FailureReason  string     `json:"failure_reason,omitempty"`
}

// FlagResponse is the external representation of a compliance flag.
type FlagResponse struct {
	ID                 int            `json:"id"`
	ChunkID            string         `json:"chunk_id"`
	FlagType           string         `json:"flag_type"`
	SeverityScore      int            `json:"severity_score"`
	Findings           string         `json:"findings"`
	Gaps               []string       `json:"gaps"`
	Recommendations    []string       `json:"recommendations"`
	ManualSection      string         `json:"manual_section,omitempty"`
	RegulationSections []string       `json:"regulation_sections"`
	AnalysisMetadata   map[string]any `json:"analysis_metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// QuestionResponse is the external representation of an auditor question.
type QuestionResponse struct {
	RegulationReference string `json:"regulation_reference"`
	Question            string `json:"question"`
	Priority            int    `json:"priority"`
	Rationale           string `json:"rationale,omitempty"`
	RelatedFlagIDs      []int  `json:"related_flag_ids,omitempty"`
}

func documentResponse(d *ent.Document) DocumentResponse {
	return DocumentResponse{
		ExternalID:   d.ExternalID,
		Filename:     d.Filename,
		SizeBytes:    d.SizeBytes,
		SourceType:   string(d.SourceType),
		Organization: d.Organization,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

func auditResponse(a *ent.Audit) AuditResponse {
	resp := AuditResponse{
		ExternalID:     a.ExternalID,
		Status:         string(a.Status),
		IsDraft:        a.IsDraft,
		ChunkTotal:     a.ChunkTotal,
		ChunkCompleted: a.ChunkCompleted,
		CreatedAt:      a.CreatedAt,
		StartedAt:      a.StartedAt,
		CompletedAt:    a.CompletedAt,
		FailedAt:       a.FailedAt,
	}
	if a.FailureReason != nil {
		resp.FailureReason = *a.FailureReason
	}
	return resp
}

// flagResponse flattens a flag and its loaded citations.
func flagResponse(f *ent.Flag) FlagResponse {
	resp := FlagResponse{
		ID:                 f.ID,
		ChunkID:            f.ChunkID,
		FlagType:           string(f.FlagType),
		SeverityScore:      f.SeverityScore,
		Findings:           f.Findings,
		Gaps:               f.Gaps,
		Recommendations:    f.Recommendations,
		RegulationSections: []string{},
		AnalysisMetadata:   f.AnalysisMetadata,
		CreatedAt:          f.CreatedAt,
	}
	for _, c := range f.Edges.Citations {
		switch c.CitationType {
		case citation.CitationTypeManual:
			resp.ManualSection = c.Reference
		case citation.CitationTypeRegulation:
			resp.RegulationSections = append(resp.RegulationSections, c.Reference)
		}
	}
	return resp
}

func questionResponse(q *ent.AuditorQuestion) QuestionResponse {
	return QuestionResponse{
		RegulationReference: q.RegulationReference,
		Question:            q.Question,
		Priority:            q.Priority,
		Rationale:           q.Rationale,
		RelatedFlagIDs:      q.RelatedFlagIds,
	}
}
