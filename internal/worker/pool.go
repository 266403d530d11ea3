// Package worker drains the frame queue and persists frames through a sink.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Nach0t/siss/internal/buffer"
	"github.com/Nach0t/siss/internal/common/logging"
	"github.com/Nach0t/siss/internal/frame"
	"github.com/Nach0t/siss/internal/metrics"
	"github.com/Nach0t/siss/internal/sink"
)

const persistTimeout = 30 * time.Second

// Pool runs a fixed set of interchangeable save workers. Each worker pops
// frames until the queue is closed and drained, so the pool keeps persisting
// buffered frames after the producer has stopped.
type Pool struct {
	numWorkers int
	queue      *buffer.Bounded[frame.Frame]
	sink       sink.Sink
	metrics    *metrics.RunMetrics
	seq        atomic.Uint64
}

func NewPool(
	numWorkers int,
	queue *buffer.Bounded[frame.Frame],
	sink sink.Sink,
	metrics *metrics.RunMetrics,
) *Pool {
	return &Pool{
		numWorkers: numWorkers,
		queue:      queue,
		sink:       sink,
		metrics:    metrics,
	}
}

// Run starts the workers and blocks until all of them have stopped, which
// happens once the queue is closed and empty.
func (p *Pool) Run() {
	wg := &sync.WaitGroup{}
	for w := range p.numWorkers {
		wg.Go(func() { p.runWorker(w) })
	}
	wg.Wait()
}

func (p *Pool) runWorker(id int) {
	logging.Debugf("Save worker %d started", id)
	for {
		f, ok := p.queue.Pop()
		if !ok {
			logging.Debugf("Save worker %d stopped", id)
			return
		}
		p.persist(f)
	}
}

func (p *Pool) persist(f frame.Frame) {
	// Persist on a detached context with a timeout so an in-flight save can
	// finish during shutdown instead of tearing mid-write.
	persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	seq := p.seq.Add(1) - 1
	written, err := p.sink.Persist(persistCtx, seq, f)
	if err != nil {
		p.metrics.RecordSinkFailure()
		logging.WithError(err).Warnf("Failed to persist frame %d", seq)
		return
	}
	p.metrics.RecordSaved(written)
}
