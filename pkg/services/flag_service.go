package services

import (
	"context"
	"fmt"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/citation"
	entflag "github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/pkg/models"
)

// FlagService upserts and lists compliance flags.
type FlagService struct {
	client *ent.Client
}

// NewFlagService creates a new FlagService.
func NewFlagService(client *ent.Client) *FlagService {
	return &FlagService{client: client}
}

// UpsertFlag writes the flag for (audit, chunk) from a normalized analysis.
// An existing flag is updated in place and its citations are replaced
// atomically.
func (s *FlagService) UpsertFlag(ctx context.Context, auditID int, chunkID string, analysis *models.NormalizedAnalysis) (*ent.Flag, error) {
	if analysis == nil {
		return nil, NewValidationError("analysis", "required")
	}
	if analysis.Findings == "" {
		return nil, NewValidationError("findings", "required")
	}

	flagType := resolveFlagType(analysis)
	severity := analysis.SeverityScore
	if severity < 0 {
		severity = 0
	}

	metadata := map[string]any{
		"needs_additional_context": analysis.NeedsAdditionalContext,
		"refined":                  analysis.Refined,
		"refinement_attempts":      analysis.RefinementAttempts,
	}
	if analysis.ContextQuery != "" {
		metadata["context_query"] = analysis.ContextQuery
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.Flag.Query().
		Where(entflag.AuditIDEQ(auditID), entflag.ChunkIDEQ(chunkID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query existing flag: %w", err)
	}

	var f *ent.Flag
	if existing != nil {
		f, err = tx.Flag.UpdateOneID(existing.ID).
			SetFlagType(flagType).
			SetSeverityScore(severity).
			SetFindings(analysis.Findings).
			SetGaps(analysis.Gaps).
			SetRecommendations(analysis.Recommendations).
			SetAnalysisMetadata(metadata).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update flag: %w", err)
		}
		if _, err := tx.Citation.Delete().
			Where(citation.FlagIDEQ(f.ID)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear citations: %w", err)
		}
	} else {
		f, err = tx.Flag.Create().
			SetAuditID(auditID).
			SetChunkID(chunkID).
			SetFlagType(flagType).
			SetSeverityScore(severity).
			SetFindings(analysis.Findings).
			SetGaps(analysis.Gaps).
			SetRecommendations(analysis.Recommendations).
			SetAnalysisMetadata(metadata).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create flag: %w", err)
		}
	}

	var citations []*ent.CitationCreate
	if analysis.Citations.ManualSection != nil && *analysis.Citations.ManualSection != "" {
		citations = append(citations, tx.Citation.Create().
			SetFlagID(f.ID).
			SetCitationType(citation.CitationTypeManual).
			SetReference(*analysis.Citations.ManualSection))
	}
	for _, ref := range analysis.Citations.RegulationSections {
		if ref == "" {
			continue
		}
		citations = append(citations, tx.Citation.Create().
			SetFlagID(f.ID).
			SetCitationType(citation.CitationTypeRegulation).
			SetReference(ref))
	}
	if len(citations) > 0 {
		if _, err := tx.Citation.CreateBulk(citations...).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create citations: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit flag upsert: %w", err)
	}
	return f, nil
}

// resolveFlagType prefers the analysis flag and derives from severity when
// absent or invalid: >=80 RED, >=50 YELLOW, else GREEN.
func resolveFlagType(analysis *models.NormalizedAnalysis) entflag.FlagType {
	switch analysis.Flag {
	case models.FlagRed:
		return entflag.FlagTypeRED
	case models.FlagYellow:
		return entflag.FlagTypeYELLOW
	case models.FlagGreen:
		return entflag.FlagTypeGREEN
	}
	switch {
	case analysis.SeverityScore >= 80:
		return entflag.FlagTypeRED
	case analysis.SeverityScore >= 50:
		return entflag.FlagTypeYELLOW
	default:
		return entflag.FlagTypeGREEN
	}
}

// ListFlags returns the audit's flags with citations loaded, optionally
// filtered by class and regulation citation, paginated.
func (s *FlagService) ListFlags(ctx context.Context, auditID int, filters models.FlagFilters) ([]*ent.Flag, error) {
	query := s.client.Flag.Query().
		Where(entflag.AuditIDEQ(auditID)).
		WithCitations()

	if filters.Severity != "" {
		ft := entflag.FlagType(filters.Severity)
		if err := entflag.FlagTypeValidator(ft); err != nil {
			return nil, NewValidationError("severity", err.Error())
		}
		query = query.Where(entflag.FlagTypeEQ(ft))
	}
	if filters.Regulation != "" {
		query = query.Where(entflag.HasCitationsWith(
			citation.CitationTypeEQ(citation.CitationTypeRegulation),
			citation.ReferenceEQ(filters.Regulation),
		))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	flags, err := query.
		Order(ent.Asc(entflag.FieldCreatedAt), ent.Asc(entflag.FieldID)).
		Offset(filters.Offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}
	return flags, nil
}

// AllFlags returns every flag of the audit in scoring order.
func (s *FlagService) AllFlags(ctx context.Context, auditID int) ([]*ent.Flag, error) {
	flags, err := s.client.Flag.Query().
		Where(entflag.AuditIDEQ(auditID)).
		Order(ent.Asc(entflag.FieldCreatedAt), ent.Asc(entflag.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}
	return flags, nil
}
