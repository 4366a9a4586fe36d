package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/regsentry/regsentry/ent"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and executes audits.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor AuditExecutor
	pool     AuditRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentAuditID  string
	auditsProcessed int
	lastActivity    time.Time
}

// AuditRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type AuditRegistry interface {
	RegisterAudit(auditID string, cancel context.CancelFunc)
	UnregisterAudit(auditID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor AuditExecutor, pool AuditRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// audit. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.signal()
	w.wait()
}

// signal asks the worker to stop without waiting.
func (w *Worker) signal() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// wait blocks until the worker goroutine has exited.
func (w *Worker) wait() {
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentAuditID:  w.currentAuditID,
		AuditsProcessed: w.auditsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoAuditsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing audit", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an audit, and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active audits: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentAudits {
		return ErrAtCapacity
	}

	// 2. Claim next audit
	claimed, err := w.claimNextAudit(ctx)
	if err != nil {
		return err
	}

	log := slog.With("audit_id", claimed.ExternalID, "worker_id", w.id)
	log.Info("Audit claimed")

	w.setStatus(WorkerStatusWorking, claimed.ExternalID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Register cancel function for API-triggered cancellation
	auditCtx, cancelAudit := context.WithCancel(ctx)
	defer cancelAudit()
	w.pool.RegisterAudit(claimed.ExternalID, cancelAudit)
	defer w.pool.UnregisterAudit(claimed.ExternalID)

	// 4. Execute. The runner records terminal state on the audit row
	// itself; a cancelled run leaves the audit running and resumable.
	result, err := w.executor.Run(auditCtx, claimed.ExternalID, models.RunOptions{})
	if err != nil {
		log.Error("Audit run ended with error", "error", err)
	} else {
		log.Info("Audit run finished",
			"processed", result.Processed,
			"remaining", result.Remaining,
			"failed", result.Failed)
	}

	w.mu.Lock()
	w.auditsProcessed++
	w.lastActivity = time.Now()
	w.mu.Unlock()

	return nil
}

// claimNextAudit atomically claims the oldest queued audit using
// FOR UPDATE SKIP LOCKED and flips it to running so no other worker picks
// it up.
func (w *Worker) claimNextAudit(ctx context.Context) (*ent.Audit, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Only audits whose document finished ingesting are claimable; an
	// audit queued at upload time waits until its chunks exist.
	a, err := tx.Audit.Query().
		Where(
			audit.StatusEQ(audit.StatusQueued),
			audit.HasDocumentWith(document.StatusEQ(document.StatusProcessed)),
		).
		Order(ent.Asc(audit.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAuditsAvailable
		}
		return nil, fmt.Errorf("failed to query queued audit: %w", err)
	}

	a, err = a.Update().
		SetStatus(audit.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim audit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return a, nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, auditID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAuditID = auditID
	w.lastActivity = time.Now()
}
