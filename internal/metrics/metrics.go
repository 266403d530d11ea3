// Package metrics tracks the counters of a run and renders them into the
// summary log line, the prometheus endpoint and the JSON result file.
package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetrics collects the counters of one run. All methods are safe for
// concurrent use; counters only ever increase while the run is in flight.
type RunMetrics struct {
	produced     atomic.Uint64
	evicted      atomic.Uint64
	saved        atomic.Uint64
	sinkFailures atomic.Uint64
	bytesWritten atomic.Uint64
}

func NewRunMetrics() *RunMetrics {
	return &RunMetrics{}
}

// RecordProduced counts one frame generated and pushed onto the queue.
func (m *RunMetrics) RecordProduced() {
	m.produced.Add(1)
}

// RecordEvicted counts one queued frame dropped to make room for a newer one.
func (m *RunMetrics) RecordEvicted() {
	m.evicted.Add(1)
}

// RecordSaved counts one successfully persisted frame and its encoded size.
func (m *RunMetrics) RecordSaved(bytes int) {
	m.saved.Add(1)
	m.bytesWritten.Add(uint64(bytes))
}

// RecordSinkFailure counts one persist attempt that failed.
func (m *RunMetrics) RecordSinkFailure() {
	m.sinkFailures.Add(1)
}

func (m *RunMetrics) Produced() uint64 {
	return m.produced.Load()
}

func (m *RunMetrics) Evicted() uint64 {
	return m.evicted.Load()
}

func (m *RunMetrics) Saved() uint64 {
	return m.saved.Load()
}

func (m *RunMetrics) SinkFailures() uint64 {
	return m.sinkFailures.Load()
}

func (m *RunMetrics) BytesWritten() uint64 {
	return m.bytesWritten.Load()
}

// BuildSummary snapshots the counters into a RunSummary. elapsed is measured
// from run start to after both pipeline stages have been joined, and
// finalQueueDepth is the number of frames still queued at that point.
func (m *RunMetrics) BuildSummary(elapsed time.Duration, finalQueueDepth int) RunSummary {
	produced := m.produced.Load()
	elapsedMillis := elapsed.Milliseconds()
	var averageRate float64
	if elapsedMillis > 0 {
		averageRate = float64(produced) * 1000.0 / float64(elapsedMillis)
	}
	return RunSummary{
		Produced:        produced,
		Saved:           m.saved.Load(),
		Evicted:         m.evicted.Load(),
		SinkFailures:    m.sinkFailures.Load(),
		BytesWritten:    m.bytesWritten.Load(),
		FinalQueueDepth: finalQueueDepth,
		ElapsedMillis:   elapsedMillis,
		AverageRate:     averageRate,
	}
}

// RunSummary is the end-of-run report logged by the runner and embedded in
// the result file. AverageRate is frames produced per second over the full
// elapsed time, joins included.
type RunSummary struct {
	Produced        uint64  `json:"produced"`
	Saved           uint64  `json:"saved"`
	Evicted         uint64  `json:"evicted"`
	SinkFailures    uint64  `json:"sinkFailures"`
	BytesWritten    uint64  `json:"bytesWritten"`
	FinalQueueDepth int     `json:"finalQueueDepth"`
	ElapsedMillis   int64   `json:"elapsedMillis"`
	AverageRate     float64 `json:"averageRate"`
}
