// Package producer drives frame generation at the configured rate.
package producer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/buffer"
	"github.com/Nach0t/siss/internal/common/logging"
	"github.com/Nach0t/siss/internal/frame"
	"github.com/Nach0t/siss/internal/generator"
	"github.com/Nach0t/siss/internal/metrics"
	"github.com/Nach0t/siss/internal/pacer"
)

// Producer generates one frame per pacer slot and pushes it onto the queue.
// If the queue is full the push evicts the oldest frame, so production never
// slows down for a lagging sink.
type Producer struct {
	generator generator.Generator
	pacer     *pacer.Pacer
	queue     *buffer.Bounded[frame.Frame]
	metrics   *metrics.RunMetrics
}

func New(
	gen generator.Generator,
	pacer *pacer.Pacer,
	queue *buffer.Bounded[frame.Frame],
	metrics *metrics.RunMetrics,
) *Producer {
	return &Producer{
		generator: gen,
		pacer:     pacer,
		queue:     queue,
		metrics:   metrics,
	}
}

// Run generates frames until ctx is cancelled, which is the normal end of a
// run. The queue is closed on every exit path so the workers always see the
// end of the stream. A generator failure ends the run early and is returned.
func (p *Producer) Run(ctx context.Context) error {
	defer p.queue.Close()

	for {
		// Wait fails once ctx is cancelled or its deadline precludes the next
		// slot; either way the run window is over.
		if err := p.pacer.Wait(ctx); err != nil {
			return nil
		}

		f, err := p.generator.Generate()
		if err != nil {
			return errors.WithMessage(err, "generating frame")
		}

		if evicted := p.queue.Push(f); evicted {
			p.metrics.RecordEvicted()
		}
		p.metrics.RecordProduced()

		if completed, rolled := p.pacer.Record(); rolled {
			logging.Infof("Generated %d frames in the last second (target %d)", completed, p.pacer.Rate())
		}
	}
}
