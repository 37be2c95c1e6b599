package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
	want int
}

func newCountingProcessor(want int) *countingProcessor {
	return &countingProcessor{done: make(chan struct{}), want: want}
}

func (p *countingProcessor) ProcessDocument(_ context.Context, docID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, docID)
	if len(p.seen) == p.want {
		close(p.done)
	}
	return nil
}

func TestQueueProcessesEnqueuedJobs(t *testing.T) {
	proc := newCountingProcessor(3)
	q := NewExtractQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(8))
	defer q.Shutdown(context.Background())

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id, SubmittedAt: time.Now()}))
	}

	select {
	case <-proc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs not processed in time")
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, ids, proc.seen)
}

func TestShutdownDrainsQueue(t *testing.T) {
	proc := newCountingProcessor(5)
	q := NewExtractQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}
	q.Shutdown(context.Background())

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.seen, 5)
}

func TestEnqueueAfterShutdownIsIgnored(t *testing.T) {
	proc := newCountingProcessor(1)
	q := NewExtractQueue(proc, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.seen)
}

func TestShutdownTwiceIsSafe(t *testing.T) {
	q := NewExtractQueue(newCountingProcessor(1), slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
