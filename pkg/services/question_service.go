package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/citation"
	entflag "github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/pkg/models"
)

// maxQuestionsPerReference caps persisted questions for one regulation
// reference.
const maxQuestionsPerReference = 10

// QuestionGenerator produces prioritized reviewer questions for one cited
// regulation reference. Implementations: an LLM-backed generator and the
// built-in heuristic fallback.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, reference string, findings []string) ([]models.GeneratedQuestion, error)
}

// QuestionService generates and persists auditor questions per cited
// regulation reference.
type QuestionService struct {
	client    *ent.Client
	generator QuestionGenerator
	logger    *slog.Logger
}

// NewQuestionService creates a QuestionService. generator may be nil, in
// which case only the heuristic fallback is used.
func NewQuestionService(client *ent.Client, generator QuestionGenerator) *QuestionService {
	return &QuestionService{
		client:    client,
		generator: generator,
		logger:    slog.Default().With("component", "question_service"),
	}
}

// GenerateForAudit produces questions for every regulation reference cited
// by the audit's flags. References that already have questions are skipped,
// which makes re-runs idempotent per (audit, reference).
func (s *QuestionService) GenerateForAudit(ctx context.Context, auditID int) error {
	flags, err := s.client.Flag.Query().
		Where(entflag.AuditIDEQ(auditID)).
		WithCitations(func(q *ent.CitationQuery) {
			q.Where(citation.CitationTypeEQ(citation.CitationTypeRegulation))
		}).
		Order(ent.Asc(entflag.FieldCreatedAt), ent.Asc(entflag.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load flags for question generation: %w", err)
	}

	type refGroup struct {
		flagIDs  []int
		findings []string
	}
	groups := make(map[string]*refGroup)
	var order []string
	for _, f := range flags {
		for _, c := range f.Edges.Citations {
			g, ok := groups[c.Reference]
			if !ok {
				g = &refGroup{}
				groups[c.Reference] = g
				order = append(order, c.Reference)
			}
			g.flagIDs = append(g.flagIDs, f.ID)
			g.findings = append(g.findings, f.Findings)
		}
	}

	for _, reference := range order {
		group := groups[reference]

		exists, err := s.client.AuditorQuestion.Query().
			Where(
				auditorquestion.AuditIDEQ(auditID),
				auditorquestion.RegulationReferenceEQ(reference),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing questions: %w", err)
		}
		if exists {
			continue
		}

		questions := s.generate(ctx, reference, group.findings)
		if len(questions) > maxQuestionsPerReference {
			questions = questions[:maxQuestionsPerReference]
		}

		builders := make([]*ent.AuditorQuestionCreate, 0, len(questions))
		for _, q := range questions {
			priority := q.Priority
			if priority < 1 {
				priority = 1
			}
			if priority > 10 {
				priority = 10
			}
			builders = append(builders, s.client.AuditorQuestion.Create().
				SetAuditID(auditID).
				SetRegulationReference(reference).
				SetQuestion(q.Question).
				SetPriority(priority).
				SetRationale(q.Rationale).
				SetRelatedFlagIds(group.flagIDs))
		}
		if len(builders) == 0 {
			continue
		}
		if _, err := s.client.AuditorQuestion.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("failed to persist questions for %s: %w", reference, err)
		}
	}
	return nil
}

// generate tries the configured generator and falls back to heuristic
// questions when it is absent or unreachable.
func (s *QuestionService) generate(ctx context.Context, reference string, findings []string) []models.GeneratedQuestion {
	if s.generator != nil {
		questions, err := s.generator.GenerateQuestions(ctx, reference, findings)
		if err == nil && len(questions) > 0 {
			return questions
		}
		if err != nil {
			s.logger.Warn("Question generator unavailable, using heuristic fallback",
				"reference", reference, "error", err)
		}
	}
	return HeuristicQuestions(reference, findings)
}

// HeuristicQuestions emits generic reviewer questions seeded by the flag
// findings, used when no LLM is reachable.
func HeuristicQuestions(reference string, findings []string) []models.GeneratedQuestion {
	questions := []models.GeneratedQuestion{
		{
			Question: fmt.Sprintf("How does the organization demonstrate compliance with %s in day-to-day operations?", reference),
			Priority: 3,
			Rationale: "Generic verification question generated without LLM support because " +
				"the reference was cited by at least one flag.",
		},
		{
			Question: fmt.Sprintf("Which records evidence that the procedures required by %s are followed and kept current?", reference),
			Priority: 4,
			Rationale: "Record-keeping is the most common audit trail for the cited " +
				"requirement.",
		},
		{
			Question: fmt.Sprintf("Who is responsible for maintaining conformity with %s, and how are changes to it tracked?", reference),
			Priority: 5,
			Rationale: "Accountability and change management follow-up for the cited " +
				"requirement.",
		},
	}
	if len(findings) > 0 {
		questions = append(questions, models.GeneratedQuestion{
			Question: fmt.Sprintf("The audit noted: %q. What corrective action addresses this against %s?",
				truncateFinding(findings[0]), reference),
			Priority:  2,
			Rationale: "Directly follows from the first finding citing this reference.",
		})
	}
	return questions
}

func truncateFinding(finding string) string {
	if len(finding) > 160 {
		return finding[:160] + "..."
	}
	return finding
}

// ListQuestions returns the audit's questions ordered by priority.
func (s *QuestionService) ListQuestions(ctx context.Context, auditID int) ([]*ent.AuditorQuestion, error) {
	questions, err := s.client.AuditorQuestion.Query().
		Where(auditorquestion.AuditIDEQ(auditID)).
		Order(ent.Asc(auditorquestion.FieldPriority), ent.Asc(auditorquestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
