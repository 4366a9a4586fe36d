// Package queue provides the background worker pool that claims queued
// audits and drives them through the runner.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/runner"
)

// Sentinel errors for queue operations.
var (
	// ErrNoAuditsAvailable indicates no queued audits are waiting.
	ErrNoAuditsAvailable = errors.New("no audits available")

	// ErrAtCapacity indicates the global concurrent audit limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// AuditExecutor runs one audit to a terminal state. The executor owns the
// ENTIRE audit lifecycle internally: it marks the audit running, writes
// per-chunk results progressively, and records completion or failure on the
// audit row itself. The worker only handles claiming and the cancel
// registry; an executor error never propagates past the worker loop.
//
// *runner.Runner satisfies this interface.
type AuditExecutor interface {
	Run(ctx context.Context, auditRef string, opts models.RunOptions) (*runner.RunResult, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveAudits  int            `json:"active_audits"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentAuditID  string    `json:"current_audit_id,omitempty"`
	AuditsProcessed int       `json:"audits_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
