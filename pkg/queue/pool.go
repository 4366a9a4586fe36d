package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor AuditExecutor
	workers  []*Worker

	// Audit cancel registry: audit external id → cancel function
	activeAudits map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor AuditExecutor) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		activeAudits: make(map[string]context.CancelFunc),
	}
}

// Start re-queues audits interrupted by a previous process and spawns the
// worker goroutines. It is safe to call multiple times; subsequent calls are
// no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	if err := p.requeueInterrupted(ctx); err != nil {
		return err
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// requeueInterrupted returns audits left in running by a crashed process to
// the queue. Completed chunk results survive, so a re-run resumes where the
// previous process stopped. Runs before any worker starts, so no audit in
// this process can be running yet.
func (p *WorkerPool) requeueInterrupted(ctx context.Context) error {
	n, err := p.client.Audit.Update().
		Where(audit.StatusEQ(audit.StatusRunning)).
		SetStatus(audit.StatusQueued).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue interrupted audits: %w", err)
	}
	if n > 0 {
		slog.Info("Requeued audits interrupted by previous shutdown", "count", n)
	}
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current audits. If the graceful shutdown timeout elapses first, active
// audits are cancelled; a cancelled audit stays running in the database and
// is requeued on the next start.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveAuditIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active audits to complete",
			"count", len(active),
			"audit_ids", active)
	}

	for _, worker := range p.workers {
		worker.signal()
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.wait()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout reached, cancelling active audits",
			"timeout", p.config.GracefulShutdownTimeout)
		p.cancelAll()
		<-done
	}

	slog.Info("Worker pool stopped")
}

// RegisterAudit stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterAudit(auditID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeAudits[auditID] = cancel
}

// UnregisterAudit removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterAudit(auditID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeAudits, auditID)
}

// CancelAudit triggers context cancellation for an audit on this pod.
// Returns true if the audit was found and cancelled on this pod.
func (p *WorkerPool) CancelAudit(auditID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeAudits[auditID]; ok {
		cancel()
		return true
	}
	return false
}

// cancelAll cancels every registered audit.
func (p *WorkerPool) cancelAll() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, cancel := range p.activeAudits {
		cancel()
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeAudits, errA := p.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusRunning)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active audits for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're
	// not healthy.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeAudits <= p.config.MaxConcurrentAudits && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active audits query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		ActiveAudits:  activeAudits,
		MaxConcurrent: p.config.MaxConcurrentAudits,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}

// getActiveAuditIDs returns IDs of currently processing audits (for logging).
func (p *WorkerPool) getActiveAuditIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeAudits))
	for id := range p.activeAudits {
		ids = append(ids, id)
	}
	return ids
}
