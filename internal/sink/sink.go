// Package sink persists encoded frames to a configurable backend.
package sink

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/configuration"
	"github.com/Nach0t/siss/internal/frame"
)

// Sink stores frames under a monotonic sequence number. Persist is called
// concurrently by the save workers; Setup and Close bracket the run.
type Sink interface {
	// Setup prepares the backend before any frame is persisted.
	Setup(ctx context.Context) error
	// Persist encodes and stores one frame, returning the encoded size in
	// bytes.
	Persist(ctx context.Context, seq uint64, f frame.Frame) (int, error)
	// Close releases backend resources once all workers have stopped.
	Close() error
}

// FromConfig builds the sink selected by the configuration.
func FromConfig(config configuration.SinkConfig) (Sink, error) {
	switch config.Type {
	case configuration.SinkTypeFile:
		return NewFileSink(config.File), nil
	case configuration.SinkTypeRedis:
		return NewRedisSink(config.Redis), nil
	case configuration.SinkTypeDiscard:
		return NewDiscardSink(), nil
	default:
		return nil, errors.Errorf("unknown sink type %q", config.Type)
	}
}
