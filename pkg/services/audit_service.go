package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/pkg/models"
)

// AuditService manages the audit lifecycle and its observable state.
type AuditService struct {
	client *ent.Client
	chunks *ChunkService
	docs   *DocumentService
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{
		client: client,
		chunks: NewChunkService(client),
		docs:   NewDocumentService(client),
	}
}

// CreateAudit creates a queued audit for a document referenced by numeric or
// external id.
func (s *AuditService) CreateAudit(ctx context.Context, req models.CreateAuditRequest) (*ent.Audit, error) {
	if req.DocumentID == "" {
		return nil, NewValidationError("document_id", "required")
	}

	doc, err := s.docs.GetDocument(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}

	total, err := s.chunks.CountChunks(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	a, err := s.client.Audit.Create().
		SetExternalID(uuid.New().String()).
		SetDocumentID(doc.ID).
		SetIsDraft(req.IsDraft).
		SetChunkTotal(total).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit: %w", err)
	}
	return a, nil
}

// GetAudit resolves an audit by numeric id or external id.
func (s *AuditService) GetAudit(ctx context.Context, ref string) (*ent.Audit, error) {
	query := s.client.Audit.Query()
	if id, err := strconv.Atoi(ref); err == nil {
		query = query.Where(audit.IDEQ(id))
	} else {
		query = query.Where(audit.ExternalIDEQ(ref))
	}

	a, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}
	return a, nil
}

// ListAudits returns audits newest first with optional status and draft
// filters.
func (s *AuditService) ListAudits(ctx context.Context, filters models.AuditFilters) ([]*ent.Audit, error) {
	query := s.client.Audit.Query()

	if filters.Status != "" {
		st := audit.Status(filters.Status)
		if err := audit.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(audit.StatusEQ(st))
	}
	if filters.IsDraft != nil {
		query = query.Where(audit.IsDraftEQ(*filters.IsDraft))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	audits, err := query.
		Order(ent.Desc(audit.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	return audits, nil
}

// EnsureChunkTotal populates chunk_total from the document's chunk count when
// it is still zero, so observers see progress bounds before the first chunk
// commits.
func (s *AuditService) EnsureChunkTotal(ctx context.Context, a *ent.Audit) (*ent.Audit, error) {
	if a.ChunkTotal > 0 {
		return a, nil
	}
	total, err := s.chunks.CountChunks(ctx, a.DocumentID)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.Audit.UpdateOneID(a.ID).
		SetChunkTotal(total).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set chunk total: %w", err)
	}
	return updated, nil
}

// Start transitions the audit to running, setting started_at on the first
// start only.
func (s *AuditService) Start(ctx context.Context, a *ent.Audit) (*ent.Audit, error) {
	builder := s.client.Audit.UpdateOneID(a.ID).
		SetStatus(audit.StatusRunning)
	if a.StartedAt == nil {
		builder.SetStartedAt(time.Now())
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start audit: %w", err)
	}
	return updated, nil
}

// AdvanceProgress commits one processed chunk: increments chunk_completed and
// records the last committed chunk id.
func (s *AuditService) AdvanceProgress(ctx context.Context, auditID int, lastChunkID string) (*ent.Audit, error) {
	updated, err := s.client.Audit.UpdateOneID(auditID).
		AddChunkCompleted(1).
		SetLastChunkID(lastChunkID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to advance audit progress: %w", err)
	}
	return updated, nil
}

// Complete transitions the audit to completed.
func (s *AuditService) Complete(ctx context.Context, auditID int) (*ent.Audit, error) {
	updated, err := s.client.Audit.UpdateOneID(auditID).
		SetStatus(audit.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete audit: %w", err)
	}
	return updated, nil
}

// Fail transitions the audit to failed with a reason truncated to the
// column's 500 char limit.
func (s *AuditService) Fail(ctx context.Context, auditID int, reason string) (*ent.Audit, error) {
	if len(reason) > 500 {
		reason = reason[:500]
	}
	updated, err := s.client.Audit.UpdateOneID(auditID).
		SetStatus(audit.StatusFailed).
		SetFailedAt(time.Now()).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark audit failed: %w", err)
	}
	return updated, nil
}

// Resume puts a failed audit back in the queue so a worker can pick it up.
// Completed audits cannot be resumed; queued and running audits pass through
// unchanged.
func (s *AuditService) Resume(ctx context.Context, ref string) (*ent.Audit, error) {
	a, err := s.GetAudit(ctx, ref)
	if err != nil {
		return nil, err
	}
	switch a.Status {
	case audit.StatusCompleted:
		return nil, ErrAuditCompleted
	case audit.StatusFailed:
		updated, err := s.client.Audit.UpdateOneID(a.ID).
			SetStatus(audit.StatusQueued).
			ClearFailureReason().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resume audit: %w", err)
		}
		return updated, nil
	default:
		return a, nil
	}
}

// StatusResponse builds the lightweight poll payload for an audit.
func (s *AuditService) StatusResponse(ctx context.Context, ref string) (*models.AuditStatusResponse, error) {
	a, err := s.GetAudit(ctx, ref)
	if err != nil {
		return nil, err
	}

	resp := &models.AuditStatusResponse{
		ExternalID:     a.ExternalID,
		Status:         string(a.Status),
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
	if a.ChunkTotal > 0 {
		resp.PercentComplete = 100 * float64(a.ChunkCompleted) / float64(a.ChunkTotal)
	}
	resp.CurrentActivity = currentActivity(a)
	resp.ETA = estimateETA(a)
	return resp, nil
}

// currentActivity renders the human-readable progress line shown by the poll
// endpoint.
func currentActivity(a *ent.Audit) string {
	switch a.Status {
	case audit.StatusQueued:
		return "Waiting for an available worker"
	case audit.StatusRunning:
		return fmt.Sprintf("Analyzing chunk %d of %d", a.ChunkCompleted+1, a.ChunkTotal)
	case audit.StatusCompleted:
		return "Audit completed"
	case audit.StatusFailed:
		reason := ""
		if a.FailureReason != nil {
			reason = *a.FailureReason
		}
		if len(reason) > 200 {
			reason = reason[:200]
		}
		return "Audit failed: " + reason
	}
	return ""
}

// estimateETA projects remaining time from the observed chunks-per-second
// rate, formatted as Ns, Nm Ms, or Nh Mm.
func estimateETA(a *ent.Audit) string {
	if a.Status != audit.StatusRunning || a.StartedAt == nil || a.ChunkCompleted == 0 {
		return ""
	}
	remaining := a.ChunkTotal - a.ChunkCompleted
	if remaining <= 0 {
		return ""
	}

	elapsed := time.Since(*a.StartedAt).Seconds()
	if elapsed <= 0 {
		return ""
	}
	rate := float64(a.ChunkCompleted) / elapsed
	if rate <= 0 {
		return ""
	}

	eta := time.Duration(float64(remaining)/rate) * time.Second
	return formatETA(eta)
}

func formatETA(d time.Duration) string {
	secs := int(d.Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	}
}
