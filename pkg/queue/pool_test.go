package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelAudit(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterAudit("audit-1", cancel)

	assert.True(t, pool.CancelAudit("audit-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	assert.False(t, pool.CancelAudit("unknown"))
}

func TestPoolUnregisterAudit(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterAudit("audit-1", cancel)
	assert.True(t, pool.CancelAudit("audit-1"))

	pool.UnregisterAudit("audit-1")
	assert.False(t, pool.CancelAudit("audit-1"))
}

func TestPoolCancelAll(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	pool.RegisterAudit("audit-a", cancel1)
	pool.RegisterAudit("audit-b", cancel2)

	pool.cancelAll()
	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}

func TestPoolGetActiveAuditIDs(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.getActiveAuditIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterAudit("audit-a", cancel1)
	pool.RegisterAudit("audit-b", cancel2)

	ids := pool.getActiveAuditIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "audit-a")
	assert.Contains(t, ids, "audit-b")
}

func TestWorkerStopTwiceDoesNotPanic(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", nil, testQueueConfig(), nil, nil)

	// Never started, so Stop only closes the channel.
	w.Stop()
	assert.NotPanics(t, w.Stop)
}
