package models

import "time"

// AuditStatusResponse is the lightweight poll payload of
// GET /api/audits/{id}/status.
type AuditStatusResponse struct {
	ExternalID      string     `json:"external_id"`
	Status          string     `json:"status"`
	ChunkTotal      int        `json:"chunk_total"`
	ChunkCompleted  int        `json:"chunk_completed"`
	PercentComplete float64    `json:"percent_complete"`
	CurrentActivity string     `json:"current_activity"`
	ETA             string     `json:"eta,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	FailedAt        *time.Time `json:"failed_at,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
}

// ScoreSnapshot is one entry of the score history listing.
type ScoreSnapshot struct {
	AuditExternalID string    `json:"audit_external_id"`
	Organization    string    `json:"organization,omitempty"`
	OverallScore    float64   `json:"overall_score"`
	RedCount        int       `json:"red_count"`
	YellowCount     int       `json:"yellow_count"`
	GreenCount      int       `json:"green_count"`
	TotalFlags      int       `json:"total_flags"`
	RecordedAt      time.Time `json:"recorded_at"`
}
