// Package runner drives audit execution: per pending chunk it assembles
// context, calls the analysis client with bounded refinement, commits the
// result and flag, and maintains the audit state machine.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/pkg/analysis"
	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
	"github.com/regsentry/regsentry/pkg/services"
)

// draftChunkLimit caps chunk processing for draft audits when the caller
// supplies no explicit limit.
const draftChunkLimit = 5

// draftBudgetMultiplier halves context budgets for draft audits.
const draftBudgetMultiplier = 0.5

// recursiveRefinementFloor is the minimum refinement attempt budget when the
// recursive context builder is active.
const recursiveRefinementFloor = 5

// sameQueryBreakAfter is the attempt count after which an unchanged context
// query stops refinement.
const sameQueryBreakAfter = 3

// ContextBuilder assembles a context bundle for a chunk.
type ContextBuilder interface {
	Build(ctx context.Context, chunkID string, opts retrieval.BuildOptions) (*retrieval.Bundle, error)
}

// RunResult reports one runner invocation.
type RunResult struct {
	Processed int
	Remaining int
	Failed    bool
}

// Runner executes audits chunk by chunk.
type Runner struct {
	cfg       *config.Config
	audits    *services.AuditService
	chunks    *services.ChunkService
	results   *services.ResultService
	flags     *services.FlagService
	scores    *services.ScoreService
	questions *services.QuestionService
	builder   ContextBuilder
	analyzer  analysis.Client
	logger    *slog.Logger

	// recursive raises the refinement floor when the builder follows
	// references.
	recursive bool

	// sleep is swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Deps bundles the runner's collaborators.
type Deps struct {
	Config    *config.Config
	Audits    *services.AuditService
	Chunks    *services.ChunkService
	Results   *services.ResultService
	Flags     *services.FlagService
	Scores    *services.ScoreService
	Questions *services.QuestionService
	Builder   ContextBuilder
	Analyzer  analysis.Client
	Recursive bool
}

// New creates a Runner.
func New(deps Deps) *Runner {
	return &Runner{
		cfg:       deps.Config,
		audits:    deps.Audits,
		chunks:    deps.Chunks,
		results:   deps.Results,
		flags:     deps.Flags,
		scores:    deps.Scores,
		questions: deps.Questions,
		builder:   deps.Builder,
		analyzer:  deps.Analyzer,
		recursive: deps.Recursive,
		logger:    slog.Default().With("component", "audit_runner"),
		sleep:     sleepCtx,
	}
}

// Run executes pending chunks of the audit referenced by numeric or external
// id. It returns how many chunks it processed and how many remain.
func (r *Runner) Run(ctx context.Context, auditRef string, opts models.RunOptions) (*RunResult, error) {
	a, err := r.audits.GetAudit(ctx, auditRef)
	if err != nil {
		return nil, err
	}

	logger := r.logger.With("audit_id", a.ExternalID)

	if a.Status != audit.StatusQueued && a.Status != audit.StatusRunning {
		pending, err := r.chunks.CountPending(ctx, a.ID, a.DocumentID)
		if err != nil {
			return nil, err
		}
		logger.Info("Audit not runnable, skipping", "status", a.Status, "pending", pending)
		return &RunResult{Remaining: pending, Failed: a.Status == audit.StatusFailed}, nil
	}

	// Populate progress bounds before the first chunk commits.
	if a, err = r.audits.EnsureChunkTotal(ctx, a); err != nil {
		return nil, err
	}
	if a, err = r.audits.Start(ctx, a); err != nil {
		return nil, err
	}

	effectiveLimit := opts.MaxChunks
	if effectiveLimit <= 0 && a.IsDraft {
		effectiveLimit = draftChunkLimit
	}

	pending, err := r.chunks.PendingChunks(ctx, a.ID, a.DocumentID, effectiveLimit)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(a.ExternalID)
	metricsCtx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()
	metrics.StartPeriodicEmit(metricsCtx, logger)

	// The analysis client reports its retries and provider token usage into
	// this run's counters.
	ctx = analysis.WithUsageObserver(ctx, metrics)

	logger.Info("Audit run starting",
		"pending", len(pending), "chunk_total", a.ChunkTotal,
		"chunk_completed", a.ChunkCompleted, "is_draft", a.IsDraft)

	processed := 0
	for i, chunk := range pending {
		chunkLogger := logger.With("chunk_id", chunk.ChunkID, "chunk_index", chunk.ChunkIndex)

		result, tokens, err := r.analyzeChunk(ctx, a, chunk, opts, chunkLogger)
		if err != nil {
			return r.failRun(ctx, a, processed, len(pending)-processed, metrics, logger, err)
		}

		if _, err := r.results.SaveResult(ctx, a.ID, chunk.ChunkID, result.analysisMap, result.contextSummary); err != nil {
			if !errors.Is(err, services.ErrAlreadyExists) {
				return r.failRun(ctx, a, processed, len(pending)-processed, metrics, logger, err)
			}
			chunkLogger.Warn("Chunk result already committed, skipping duplicate")
		}
		if _, err := r.flags.UpsertFlag(ctx, a.ID, chunk.ChunkID, result.analysis); err != nil {
			return r.failRun(ctx, a, processed, len(pending)-processed, metrics, logger, err)
		}
		if a, err = r.audits.AdvanceProgress(ctx, a.ID, chunk.ChunkID); err != nil {
			return r.failRun(ctx, a, processed, len(pending)-processed, metrics, logger, err)
		}

		processed++
		metrics.ChunkProcessed(tokens)
		chunkLogger.Info("Chunk committed",
			"flag", result.analysis.Flag, "severity", result.analysis.SeverityScore,
			"progress", fmt.Sprintf("%d/%d", a.ChunkCompleted, a.ChunkTotal))

		if i < len(pending)-1 && r.cfg.ChunkProcessingDelay > 0 {
			if err := r.sleep(ctx, r.cfg.ChunkProcessingDelay); err != nil {
				// Cancellation between chunks leaves the audit running and
				// resumable.
				logger.Info("Audit run canceled between chunks", "processed", processed)
				return &RunResult{Processed: processed, Remaining: len(pending) - processed}, nil
			}
		}
	}

	remaining, err := r.chunks.CountPending(ctx, a.ID, a.DocumentID)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		if _, err := r.audits.Complete(ctx, a.ID); err != nil {
			return nil, err
		}
		metrics.Emit(logger, "Audit completed")

		// Snapshot and question failures are logged, not fatal: the audit
		// itself succeeded.
		if _, err := r.scores.RecordScore(ctx, a.ID); err != nil {
			logger.Error("Failed to record compliance score", "error", err)
		}
		if r.questions != nil && !a.IsDraft {
			if err := r.questions.GenerateForAudit(ctx, a.ID); err != nil {
				logger.Error("Failed to generate auditor questions", "error", err)
			}
		}
	} else {
		metrics.Emit(logger, "Audit run finished with pending chunks")
	}

	return &RunResult{Processed: processed, Remaining: remaining}, nil
}

type chunkOutcome struct {
	analysis       *models.NormalizedAnalysis
	analysisMap    map[string]any
	contextSummary map[string]any
}

// analyzeChunk builds context, runs the analysis with the refinement
// sub-protocol, and packages the persistable outcome.
func (r *Runner) analyzeChunk(ctx context.Context, a *ent.Audit, chunk *models.ChunkRecord,
	opts models.RunOptions, logger *slog.Logger) (*chunkOutcome, int, error) {

	buildOpts := retrieval.BuildOptions{IncludeEvidence: opts.IncludeEvidence}
	if a.IsDraft {
		zero := 0
		buildOpts.NeighborWindow = &zero
		buildOpts.BudgetMultiplier = draftBudgetMultiplier
	}

	bundle, err := r.builder.Build(ctx, chunk.ChunkID, buildOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build context for chunk %s: %w", chunk.ChunkID, err)
	}

	result, err := r.analyzer.Analyze(ctx, chunk, bundle)
	if err != nil {
		return nil, 0, err
	}

	result, bundle, err = r.refine(ctx, a, chunk, result, bundle, opts, logger)
	if err != nil {
		return nil, 0, err
	}

	return &chunkOutcome{
		analysis:       result,
		analysisMap:    result.AsMap(),
		contextSummary: contextSummary(bundle),
	}, bundle.TotalTokens, nil
}

// refine implements the bounded re-retrieval loop: while the analysis asks
// for more context and budget remains, rebuild a wider bundle seeded with
// the agent's query and re-analyze.
func (r *Runner) refine(ctx context.Context, a *ent.Audit, chunk *models.ChunkRecord,
	result *models.NormalizedAnalysis, bundle *retrieval.Bundle,
	opts models.RunOptions, logger *slog.Logger) (*models.NormalizedAnalysis, *retrieval.Bundle, error) {

	if a.IsDraft {
		return result, bundle, nil
	}

	maxAttempts := r.cfg.Refinement.MaxAttempts
	if r.recursive && maxAttempts < recursiveRefinementFloor {
		maxAttempts = recursiveRefinementFloor
	}

	multiplier := r.cfg.Refinement.TokenMultiplier
	if multiplier < 1.0 {
		multiplier = 1.0
	}

	attempts := 0
	for result.NeedsAdditionalContext && attempts < maxAttempts {
		query := result.ContextQuery
		if query == "" {
			// No target to search.
			break
		}
		attempts++
		logger.Info("Refining context on agent request", "attempt", attempts, "query", query)

		window := r.cfg.Refinement.ManualWindow
		refined, err := r.builder.Build(ctx, chunk.ChunkID, retrieval.BuildOptions{
			IncludeEvidence:  opts.IncludeEvidence || r.cfg.Refinement.IncludeEvidence,
			NeighborWindow:   &window,
			BudgetMultiplier: multiplier,
			ContextQuery:     query,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build refined context for chunk %s: %w", chunk.ChunkID, err)
		}
		bundle = refined

		result, err = r.analyzer.Analyze(ctx, chunk, bundle)
		if err != nil {
			return nil, nil, err
		}

		if attempts >= sameQueryBreakAfter && result.ContextQuery == query {
			// The agent is not making progress.
			break
		}
	}

	if attempts > 0 {
		result.Refined = true
		result.RefinementAttempts = attempts
	}
	return result, bundle, nil
}

// failRun transitions the audit to failed with a user-facing reason and
// emits terminal metrics. Completed chunks stay durable for resume.
func (r *Runner) failRun(ctx context.Context, a *ent.Audit, processed, remaining int,
	metrics *Metrics, logger *slog.Logger, cause error) (*RunResult, error) {

	reason := failureReason(a, cause)
	logger.Error("Audit failed", "reason", reason, "error", cause)

	if _, err := r.audits.Fail(ctx, a.ID, reason); err != nil {
		logger.Error("Failed to mark audit failed", "error", err)
	}
	metrics.Emit(logger, "Audit failed")

	return &RunResult{Processed: processed, Remaining: remaining, Failed: true}, cause
}

// failureReason renders the user-facing failure text. Rate-limit exhaustion
// names progress and advises retry.
func failureReason(a *ent.Audit, cause error) string {
	var exhausted *analysis.RateLimitExhaustedError
	if errors.As(cause, &exhausted) {
		return fmt.Sprintf(
			"LLM rate limit exceeded while processing chunk %d of %d; completed chunks are saved, please retry in a few minutes",
			a.ChunkCompleted+1, a.ChunkTotal)
	}
	return cause.Error()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
