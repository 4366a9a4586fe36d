package services

import (
	"context"
	"fmt"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
)

// ResultService persists per-chunk analysis results. The presence of a row
// is what marks a chunk as processed for an audit.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// SaveResult commits the analysis of one (audit, chunk) pair.
func (s *ResultService) SaveResult(ctx context.Context, auditID int, chunkID string,
	analysis, contextSummary map[string]any) (*ent.AuditChunkResult, error) {
	result, err := s.client.AuditChunkResult.Create().
		SetAuditID(auditID).
		SetChunkID(chunkID).
		SetStatus(auditchunkresult.StatusCompleted).
		SetAnalysis(analysis).
		SetContextSummary(contextSummary).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save chunk result: %w", err)
	}
	return result, nil
}

// ResultsForAudit returns the audit's committed results ordered by creation.
func (s *ResultService) ResultsForAudit(ctx context.Context, auditID int) ([]*ent.AuditChunkResult, error) {
	results, err := s.client.AuditChunkResult.Query().
		Where(auditchunkresult.AuditIDEQ(auditID)).
		Order(ent.Asc(auditchunkresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunk results: %w", err)
	}
	return results, nil
}
