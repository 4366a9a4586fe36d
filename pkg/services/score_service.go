package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/document"
	entflag "github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/pkg/models"
)

// ScoreService computes and snapshots compliance scores.
type ScoreService struct {
	client *ent.Client
	flags  *FlagService
}

// NewScoreService creates a new ScoreService.
func NewScoreService(client *ent.Client) *ScoreService {
	return &ScoreService{
		client: client,
		flags:  NewFlagService(client),
	}
}

// ScoredFlag is the minimal view of a flag needed by the score function.
type ScoredFlag struct {
	ID        int
	Class     string
	CreatedAt time.Time
}

// CalculateScore computes the 0-100 compliance score of a flag set.
//
// An empty set scores 100. A set that is entirely RED or entirely GREEN
// scores 0: an all-one-extreme outcome is treated as unbalanced rather than
// meaningful. Any other set, all-YELLOW included, walks from 100 applying
// decaying penalties per consecutive run: RED costs 20*0.9^(run-1), YELLOW
// costs 10*0.9^(run-1), GREEN costs nothing but breaks RED/YELLOW runs.
func CalculateScore(flags []ScoredFlag) float64 {
	if len(flags) == 0 {
		return 100
	}

	var red, green int
	for _, f := range flags {
		switch f.Class {
		case models.FlagRed:
			red++
		case models.FlagGreen:
			green++
		}
	}
	if red == len(flags) || green == len(flags) {
		return 0
	}

	ordered := make([]ScoredFlag, len(flags))
	copy(ordered, flags)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	score := 100.0
	runs := map[string]int{}
	for _, f := range ordered {
		for class := range runs {
			if class != f.Class {
				runs[class] = 0
			}
		}
		runs[f.Class]++

		decay := math.Pow(0.9, float64(runs[f.Class]-1))
		switch f.Class {
		case models.FlagRed:
			score -= 20 * decay
		case models.FlagYellow:
			score -= 10 * decay
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RecordScore computes the audit's current counts and overall score and
// upserts its ComplianceScore row. Idempotent per audit.
func (s *ScoreService) RecordScore(ctx context.Context, auditID int) (*ent.ComplianceScore, error) {
	flags, err := s.flags.AllFlags(ctx, auditID)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredFlag, len(flags))
	var red, yellow, green int
	for i, f := range flags {
		scored[i] = ScoredFlag{ID: f.ID, Class: string(f.FlagType), CreatedAt: f.CreatedAt}
		switch f.FlagType {
		case entflag.FlagTypeRED:
			red++
		case entflag.FlagTypeYELLOW:
			yellow++
		case entflag.FlagTypeGREEN:
			green++
		}
	}
	overall := CalculateScore(scored)

	existing, err := s.client.ComplianceScore.Query().
		Where(compliancescore.AuditIDEQ(auditID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query score snapshot: %w", err)
	}

	if existing != nil {
		updated, err := s.client.ComplianceScore.UpdateOneID(existing.ID).
			SetOverallScore(overall).
			SetRedCount(red).
			SetYellowCount(yellow).
			SetGreenCount(green).
			SetTotalFlags(len(flags)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update score snapshot: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.ComplianceScore.Create().
		SetAuditID(auditID).
		SetOverallScore(overall).
		SetRedCount(red).
		SetYellowCount(yellow).
		SetGreenCount(green).
		SetTotalFlags(len(flags)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create score snapshot: %w", err)
	}
	return created, nil
}

// GetScoreHistory returns score snapshots newest first, optionally filtered
// by the owning document's organization. limit is capped at 100.
func (s *ScoreService) GetScoreHistory(ctx context.Context, organization string, limit int) ([]models.ScoreSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := s.client.ComplianceScore.Query().
		WithAudit(func(q *ent.AuditQuery) {
			q.WithDocument()
		})
	if organization != "" {
		query = query.Where(compliancescore.HasAuditWith(
			audit.HasDocumentWith(document.OrganizationEQ(organization)),
		))
	}

	scores, err := query.
		Order(ent.Desc(compliancescore.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load score history: %w", err)
	}

	out := make([]models.ScoreSnapshot, 0, len(scores))
	for _, sc := range scores {
		snapshot := models.ScoreSnapshot{
			OverallScore: sc.OverallScore,
			RedCount:     sc.RedCount,
			YellowCount:  sc.YellowCount,
			GreenCount:   sc.GreenCount,
			TotalFlags:   sc.TotalFlags,
			RecordedAt:   sc.UpdatedAt,
		}
		if sc.Edges.Audit != nil {
			snapshot.AuditExternalID = sc.Edges.Audit.ExternalID
			if doc := sc.Edges.Audit.Edges.Document; doc != nil {
				snapshot.Organization = doc.Organization
			}
		}
		out = append(out, snapshot)
	}
	return out, nil
}
