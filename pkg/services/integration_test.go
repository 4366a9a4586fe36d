package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/pkg/chunker"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/services"
	testdb "github.com/regsentry/regsentry/test/database"
)

func strPtr(s string) *string { return &s }

func createTestDocument(t *testing.T, client *ent.Client, externalID string) *ent.Document {
	t.Helper()
	docs := services.NewDocumentService(client)
	doc, err := docs.CreateDocument(context.Background(), services.CreateDocumentParams{
		ExternalID:   externalID,
		Filename:     "manual.md",
		StoredPath:   "/tmp/manual.md",
		SizeBytes:    1024,
		ContentHash:  "hash-" + externalID,
		SourceType:   document.SourceTypeManual,
		Organization: "ACME Aviation",
	})
	require.NoError(t, err)
	return doc
}

func createTestChunks(t *testing.T, client *ent.Client, doc *ent.Document, n int) {
	t.Helper()
	chunks := services.NewChunkService(client)
	pieces := make([]chunker.Chunk, n)
	for i := range pieces {
		pieces[i] = chunker.Chunk{
			ChunkID:       fmt.Sprintf("%s_0_%d", doc.ExternalID, i),
			ChunkIndex:    i,
			SectionPath:   []string{"Manual", "Tooling"},
			ParentHeading: "Tooling",
			Content:       "Calibration requirements for chunk content.",
			TokenCount:    10,
		}
	}
	require.NoError(t, chunks.CreateChunks(context.Background(), doc.ID, pieces))
}

func testAnalysis(flag string, severity int) *models.NormalizedAnalysis {
	return &models.NormalizedAnalysis{
		Flag:                 flag,
		SeverityScore:        severity,
		RegulationReferences: []string{"Part-145.A.40"},
		Findings:             "Tool calibration interval is not defined.",
		Gaps:                 []string{"no interval"},
		Citations: models.AnalysisCitations{
			ManualSection:      strPtr("Section 4.2"),
			RegulationSections: []string{"Part-145.A.40", "Part-145.A.42"},
		},
		Recommendations: []string{"define the interval"},
	}
}

func TestFlagUpsertIdempotence(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	doc := createTestDocument(t, client.Client, "doc-flags")
	createTestChunks(t, client.Client, doc, 1)

	audits := services.NewAuditService(client.Client)
	a, err := audits.CreateAudit(ctx, models.CreateAuditRequest{DocumentID: doc.ExternalID})
	require.NoError(t, err)

	flags := services.NewFlagService(client.Client)
	chunkID := doc.ExternalID + "_0_0"

	first, err := flags.UpsertFlag(ctx, a.ID, chunkID, testAnalysis("RED", 85))
	require.NoError(t, err)

	// Same analysis again: same row, citations replaced not appended.
	second, err := flags.UpsertFlag(ctx, a.ID, chunkID, testAnalysis("RED", 85))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	citations, err := client.Citation.Query().
		Where(citation.FlagIDEQ(first.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, citations, 3) // 1 manual + 2 regulation

	// Updated analysis rewrites the citation set.
	updated := testAnalysis("YELLOW", 55)
	updated.Citations.RegulationSections = []string{"Part-145.A.40"}
	third, err := flags.UpsertFlag(ctx, a.ID, chunkID, updated)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)

	citations, err = client.Citation.Query().
		Where(citation.FlagIDEQ(first.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, citations, 2)

	all, err := flags.AllFlags(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 55, all[0].SeverityScore)
}

func TestScoreRecordIdempotence(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	doc := createTestDocument(t, client.Client, "doc-scores")
	createTestChunks(t, client.Client, doc, 2)

	audits := services.NewAuditService(client.Client)
	a, err := audits.CreateAudit(ctx, models.CreateAuditRequest{DocumentID: doc.ExternalID})
	require.NoError(t, err)

	flags := services.NewFlagService(client.Client)
	_, err = flags.UpsertFlag(ctx, a.ID, doc.ExternalID+"_0_0", testAnalysis("RED", 85))
	require.NoError(t, err)
	_, err = flags.UpsertFlag(ctx, a.ID, doc.ExternalID+"_0_1", testAnalysis("GREEN", 5))
	require.NoError(t, err)

	scores := services.NewScoreService(client.Client)
	first, err := scores.RecordScore(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.RedCount)
	assert.Equal(t, 1, first.GreenCount)

	second, err := scores.RecordScore(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "repeated calls update the same row")

	count, err := client.ComplianceScore.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAuditResumeStateMachine(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	doc := createTestDocument(t, client.Client, "doc-resume")
	createTestChunks(t, client.Client, doc, 1)

	audits := services.NewAuditService(client.Client)
	a, err := audits.CreateAudit(ctx, models.CreateAuditRequest{DocumentID: doc.ExternalID})
	require.NoError(t, err)
	assert.Equal(t, audit.StatusQueued, a.Status)

	// Queued audits pass through unchanged.
	same, err := audits.Resume(ctx, a.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusQueued, same.Status)

	// Failed audits go back to queued with the reason cleared.
	_, err = audits.Fail(ctx, a.ID, "LLM rate limit exceeded while processing chunk 1 of 1")
	require.NoError(t, err)

	resumed, err := audits.Resume(ctx, a.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusQueued, resumed.Status)
	assert.Empty(t, resumed.FailureReason)

	// Completed audits cannot be resumed.
	_, err = audits.Complete(ctx, a.ID)
	require.NoError(t, err)
	_, err = audits.Resume(ctx, a.ExternalID)
	assert.ErrorIs(t, err, services.ErrAuditCompleted)
}

func TestPendingChunkSelection(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	doc := createTestDocument(t, client.Client, "doc-pending")
	createTestChunks(t, client.Client, doc, 3)

	audits := services.NewAuditService(client.Client)
	a, err := audits.CreateAudit(ctx, models.CreateAuditRequest{DocumentID: doc.ExternalID})
	require.NoError(t, err)
	assert.Equal(t, 3, a.ChunkTotal)

	chunks := services.NewChunkService(client.Client)
	results := services.NewResultService(client.Client)

	// Committing a result removes the chunk from the pending set.
	_, err = results.SaveResult(ctx, a.ID, doc.ExternalID+"_0_0",
		map[string]any{"flag": "GREEN"}, map[string]any{})
	require.NoError(t, err)

	pending, err := chunks.PendingChunks(ctx, a.ID, a.DocumentID, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, doc.ExternalID+"_0_1", pending[0].ChunkID)
	assert.Equal(t, doc.ExternalID+"_0_2", pending[1].ChunkID)

	// Double commit of the same chunk is rejected.
	_, err = results.SaveResult(ctx, a.ID, doc.ExternalID+"_0_0",
		map[string]any{"flag": "GREEN"}, map[string]any{})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}
