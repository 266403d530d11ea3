package sink

import (
	"context"

	"github.com/Nach0t/siss/internal/frame"
)

// DiscardSink drops every frame without encoding or storing it. It gives a
// baseline for the producer and queue with persistence cost removed.
type DiscardSink struct{}

func NewDiscardSink() *DiscardSink {
	return &DiscardSink{}
}

func (s *DiscardSink) Setup(ctx context.Context) error {
	return nil
}

func (s *DiscardSink) Persist(ctx context.Context, seq uint64, f frame.Frame) (int, error) {
	return 0, nil
}

func (s *DiscardSink) Close() error {
	return nil
}
