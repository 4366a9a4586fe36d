package runner_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/pkg/analysis"
	"github.com/regsentry/regsentry/pkg/chunker"
	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
	"github.com/regsentry/regsentry/pkg/runner"
	"github.com/regsentry/regsentry/pkg/services"
	"github.com/regsentry/regsentry/pkg/tokenizer"
	"github.com/regsentry/regsentry/pkg/vectorstore"
	testdb "github.com/regsentry/regsentry/test/database"
)

// fixedEmbedder satisfies embedding.Engine with a constant vector; the
// in-memory vector store is empty in these tests, so searches return
// nothing either way.
type fixedEmbedder struct{}

func (fixedEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (f fixedEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func (fixedEmbedder) Name() string { return "fixed" }

// failingAnalyzer fails on a chosen chunk id with a chosen error and
// delegates everywhere else.
type failingAnalyzer struct {
	failOn string
	err    error
	inner  analysis.Client
}

func (f *failingAnalyzer) Analyze(ctx context.Context, chunk *models.ChunkRecord, bundle *retrieval.Bundle) (*models.NormalizedAnalysis, error) {
	if chunk.ChunkID == f.failOn {
		return nil, f.err
	}
	return f.inner.Analyze(ctx, chunk, bundle)
}

// refiningAnalyzer asks for additional context on its first call, then
// delegates.
type refiningAnalyzer struct {
	inner analysis.Client
	calls int
}

func (r *refiningAnalyzer) Analyze(ctx context.Context, chunk *models.ChunkRecord, bundle *retrieval.Bundle) (*models.NormalizedAnalysis, error) {
	r.calls++
	out, err := r.inner.Analyze(ctx, chunk, bundle)
	if err != nil {
		return nil, err
	}
	if r.calls == 1 {
		out.NeedsAdditionalContext = true
		out.ContextQuery = "calibration interval for torque wrenches"
	}
	return out, nil
}

type runnerFixture struct {
	client  *ent.Client
	audits  *services.AuditService
	chunks  *services.ChunkService
	results *services.ResultService
	flags   *services.FlagService
	doc     *ent.Document
	audit   *ent.Audit
}

func newRunner(t *testing.T, f *runnerFixture, analyzer analysis.Client) *runner.Runner {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ChunkProcessingDelay = 0

	builder := retrieval.NewBuilder(f.chunks, vectorstore.NewMemoryStore(),
		fixedEmbedder{}, tokenizer.NewHeuristic(), cfg.Context)

	return runner.New(runner.Deps{
		Config:    cfg,
		Audits:    f.audits,
		Chunks:    f.chunks,
		Results:   f.results,
		Flags:     f.flags,
		Scores:    services.NewScoreService(f.client),
		Questions: services.NewQuestionService(f.client, nil),
		Builder:   builder,
		Analyzer:  analyzer,
	})
}

func setupAudit(t *testing.T, chunkCount int, isDraft bool) *runnerFixture {
	t.Helper()
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	f := &runnerFixture{
		client:  client,
		audits:  services.NewAuditService(client),
		chunks:  services.NewChunkService(client),
		results: services.NewResultService(client),
		flags:   services.NewFlagService(client),
	}

	docs := services.NewDocumentService(client)
	doc, err := docs.CreateDocument(ctx, services.CreateDocumentParams{
		ExternalID:  "manual-1",
		Filename:    "manual.md",
		StoredPath:  "/tmp/manual.md",
		SizeBytes:   2048,
		ContentHash: "hash-manual-1",
		SourceType:  document.SourceTypeManual,
	})
	require.NoError(t, err)
	f.doc = doc

	pieces := make([]chunker.Chunk, chunkCount)
	for i := range pieces {
		pieces[i] = chunker.Chunk{
			ChunkID:       fmt.Sprintf("%s_0_%d", doc.ExternalID, i),
			ChunkIndex:    i,
			SectionPath:   []string{"Manual", fmt.Sprintf("Section %d", i)},
			ParentHeading: fmt.Sprintf("Section %d", i),
			Content:       fmt.Sprintf("Section %d describes calibration of measuring tools.", i),
			TokenCount:    12,
		}
	}
	require.NoError(t, f.chunks.CreateChunks(ctx, doc.ID, pieces))

	a, err := f.audits.CreateAudit(ctx, models.CreateAuditRequest{
		DocumentID: doc.ExternalID,
		IsDraft:    isDraft,
	})
	require.NoError(t, err)
	f.audit = a

	return f
}

func TestRunnerCompletesAudit(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 3, false)
	r := newRunner(t, f, analysis.NewEchoClient())

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 0, result.Remaining)

	a, err := f.audits.GetAudit(ctx, f.audit.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusCompleted, a.Status)
	assert.Equal(t, 3, a.ChunkCompleted)
	require.NotNil(t, a.CompletedAt)

	// One flag per analyzed chunk.
	flags, err := f.flags.AllFlags(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, flags, 3)

	// Completion snapshots a compliance score.
	scoreCount, err := f.client.ComplianceScore.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, scoreCount)
}

func TestRunnerFailureAndResume(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 3, false)

	failing := &failingAnalyzer{
		failOn: f.doc.ExternalID + "_0_1",
		err:    &analysis.AnalysisError{Message: "analysis response failed validation"},
		inner:  analysis.NewEchoClient(),
	}
	r := newRunner(t, f, failing)

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Failed)
	assert.Equal(t, 1, result.Processed)

	a, err := f.audits.GetAudit(ctx, f.audit.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusFailed, a.Status)
	assert.NotEmpty(t, a.FailureReason)
	assert.Equal(t, 1, a.ChunkCompleted)

	// Resume re-queues, and a healthy run finishes chunks 1..2 without
	// reprocessing chunk 0.
	_, err = f.audits.Resume(ctx, a.ExternalID)
	require.NoError(t, err)

	healthy := newRunner(t, f, analysis.NewEchoClient())
	result, err = healthy.Run(ctx, a.ExternalID, models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Remaining)

	a, err = f.audits.GetAudit(ctx, a.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusCompleted, a.Status)
	assert.Equal(t, 3, a.ChunkCompleted)

	results, err := f.results.ResultsForAudit(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, results, 3, "no chunk is analyzed twice")
}

func TestRunnerRefinesOnAgentRequest(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 1, false)
	scripted := &refiningAnalyzer{inner: analysis.NewEchoClient()}
	r := newRunner(t, f, scripted)

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 2, scripted.calls, "one re-analysis over the rebuilt bundle")

	results, err := f.results.ResultsForAudit(ctx, f.audit.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, true, results[0].Analysis["refined"])
	assert.EqualValues(t, 1, results[0].Analysis["refinement_attempts"])
}

func TestRunnerRateLimitFailureReason(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 3, false)

	limited := &failingAnalyzer{
		failOn: f.doc.ExternalID + "_0_1",
		err:    analysis.NewRateLimitExhausted(3, errors.New("chat endpoint returned status 429")),
		inner:  analysis.NewEchoClient(),
	}
	r := newRunner(t, f, limited)

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Failed)

	a, err := f.audits.GetAudit(ctx, f.audit.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusFailed, a.Status)
	require.NotNil(t, a.FailureReason)
	assert.Equal(t,
		"LLM rate limit exceeded while processing chunk 2 of 3; completed chunks are saved, please retry in a few minutes",
		*a.FailureReason)
}

func TestRunnerDraftLimit(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 7, true)
	r := newRunner(t, f, analysis.NewEchoClient())

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Processed, "draft audits analyze at most five chunks per run")
	assert.Equal(t, 2, result.Remaining)

	a, err := f.audits.GetAudit(ctx, f.audit.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusRunning, a.Status, "draft stays resumable")
	assert.Equal(t, 5, a.ChunkCompleted)
}

func TestRunnerEmptyDocumentCompletes(t *testing.T) {
	ctx := context.Background()
	f := setupAudit(t, 0, false)
	r := newRunner(t, f, analysis.NewEchoClient())

	result, err := r.Run(ctx, f.audit.ExternalID, models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)

	a, err := f.audits.GetAudit(ctx, f.audit.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusCompleted, a.Status)
	assert.Equal(t, 0, a.ChunkTotal)
}
