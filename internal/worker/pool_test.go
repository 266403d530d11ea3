package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nach0t/siss/internal/buffer"
	"github.com/Nach0t/siss/internal/frame"
	"github.com/Nach0t/siss/internal/metrics"
)

// recordingSink captures every persist call so tests can assert on sequence
// numbers and failure handling.
type recordingSink struct {
	mu        sync.Mutex
	persisted map[uint64]int
	failOn    func(seq uint64) bool
	delay     time.Duration
}

func newRecordingSink() *recordingSink {
	return &recordingSink{persisted: map[uint64]int{}}
}

func (s *recordingSink) Setup(ctx context.Context) error {
	return nil
}

func (s *recordingSink) Persist(ctx context.Context, seq uint64, f frame.Frame) (int, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.failOn != nil && s.failOn(seq) {
		return 0, errors.New("sink unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.persisted[seq]; seen {
		return 0, errors.Errorf("sequence number %d persisted twice", seq)
	}
	s.persisted[seq] = f.Size()
	return f.Size(), nil
}

func (s *recordingSink) Close() error {
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.persisted)
}

func fillQueue(t *testing.T, capacity, numFrames int) *buffer.Bounded[frame.Frame] {
	t.Helper()
	queue, err := buffer.New[frame.Frame](capacity)
	require.NoError(t, err)
	for i := 0; i < numFrames; i++ {
		queue.Push(frame.Frame{Pix: make([]byte, 16), Width: 2, Height: 2})
	}
	return queue
}

func TestRun_DrainsQueueThenStops(t *testing.T) {
	queue := fillQueue(t, 100, 50)
	queue.Close()
	s := newRecordingSink()
	m := metrics.NewRunMetrics()

	NewPool(4, queue, s, m).Run()

	assert.Equal(t, 50, s.count())
	assert.Equal(t, uint64(50), m.Saved())
	assert.Equal(t, uint64(16*50), m.BytesWritten())
	assert.Equal(t, 0, queue.Len())
}

func TestRun_AssignsSequenceNumbersFromZero(t *testing.T) {
	queue := fillQueue(t, 100, 20)
	queue.Close()
	s := newRecordingSink()

	NewPool(3, queue, s, metrics.NewRunMetrics()).Run()

	for seq := uint64(0); seq < 20; seq++ {
		_, ok := s.persisted[seq]
		assert.True(t, ok, "missing sequence number %d", seq)
	}
}

func TestRun_SwallowsSinkFailures(t *testing.T) {
	queue := fillQueue(t, 100, 50)
	queue.Close()
	s := newRecordingSink()
	s.failOn = func(seq uint64) bool { return seq%5 == 0 }
	m := metrics.NewRunMetrics()

	NewPool(2, queue, s, m).Run()

	assert.Equal(t, 40, s.count())
	assert.Equal(t, uint64(40), m.Saved())
	assert.Equal(t, uint64(10), m.SinkFailures())
	assert.Equal(t, 0, queue.Len())
}

func TestRun_StopsWhenEmptyQueueIsClosed(t *testing.T) {
	queue, err := buffer.New[frame.Frame](10)
	require.NoError(t, err)
	pool := NewPool(2, queue, newRecordingSink(), metrics.NewRunMetrics())

	done := make(chan struct{})
	go func() {
		pool.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	queue.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop after the queue was closed")
	}
}

func TestRun_DrainContinuesAfterClose(t *testing.T) {
	queue, err := buffer.New[frame.Frame](100)
	require.NoError(t, err)
	s := newRecordingSink()
	s.delay = time.Millisecond
	m := metrics.NewRunMetrics()
	pool := NewPool(1, queue, s, m)

	done := make(chan struct{})
	go func() {
		pool.Run()
		close(done)
	}()

	for i := 0; i < 30; i++ {
		queue.Push(frame.Frame{Pix: make([]byte, 16), Width: 2, Height: 2})
	}
	queue.Close()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not finish draining")
	}
	assert.Equal(t, 30, s.count())
}
