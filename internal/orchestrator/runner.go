// Package orchestrator owns the lifecycle of a run, from configuration
// validation through the drain to the final summary.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Nach0t/siss/internal/buffer"
	"github.com/Nach0t/siss/internal/common"
	"github.com/Nach0t/siss/internal/common/health"
	"github.com/Nach0t/siss/internal/common/logging"
	"github.com/Nach0t/siss/internal/common/util"
	"github.com/Nach0t/siss/internal/configuration"
	"github.com/Nach0t/siss/internal/frame"
	"github.com/Nach0t/siss/internal/generator"
	"github.com/Nach0t/siss/internal/metrics"
	"github.com/Nach0t/siss/internal/pacer"
	"github.com/Nach0t/siss/internal/producer"
	"github.com/Nach0t/siss/internal/sink"
	"github.com/Nach0t/siss/internal/worker"
)

const progressLogInterval = 10 * time.Second

// Runner orchestrates a siss run. It builds the pipeline from the
// configuration, manages the run lifecycle, and collects the summary.
type Runner struct {
	config  configuration.RunConfig
	metrics *metrics.RunMetrics
	state   atomic.Int32

	generator generator.Generator // for test purposes only
	sink      sink.Sink           // for test purposes only
	clock     util.Clock          // for test purposes only
}

// NewRunner creates a new Runner with the given run configuration.
func NewRunner(config configuration.RunConfig) *Runner {
	return &Runner{
		config:  config,
		metrics: metrics.NewRunMetrics(),
	}
}

// State reports where the run currently is in its lifecycle.
func (r *Runner) State() State {
	return State(r.state.Load())
}

func (r *Runner) setState(next State) {
	previous := State(r.state.Swap(int32(next)))
	logging.Debugf("Run state changed from %s to %s", previous, next)
}

// Run executes one complete run and returns its summary.
//
// It performs the following steps:
//  1. Validates the configuration and builds the queue, generator and sink
//  2. Starts the producer and the save workers in separate goroutines
//  3. Waits for the configured duration to elapse
//  4. Cancels the producer and closes the queue, then joins the producer
//     followed by the workers, so no frame can arrive once workers are joined
//  5. Computes the summary from the drained pipeline and writes the result
//     file if a results directory is configured
//
// Cancelling ctx ends the run early: the pipeline still drains and the
// summary covers the shortened run. A generator failure also ends the run
// early and is returned alongside the summary.
func (r *Runner) Run(ctx context.Context) (metrics.RunSummary, error) {
	if err := r.config.Validate(); err != nil {
		return metrics.RunSummary{}, fmt.Errorf("validating run configuration: %w", err)
	}

	queue, err := buffer.New[frame.Frame](r.config.Queue.Capacity)
	if err != nil {
		return metrics.RunSummary{}, fmt.Errorf("creating frame queue: %w", err)
	}

	gen := r.generator
	if gen == nil {
		gen, err = generator.NewNoise(r.config.Frame.Width, r.config.Frame.Height, r.config.Frame.Seed)
		if err != nil {
			return metrics.RunSummary{}, fmt.Errorf("creating frame generator: %w", err)
		}
	}

	frameSink := r.sink
	if frameSink == nil {
		frameSink, err = sink.FromConfig(r.config.Sink)
		if err != nil {
			return metrics.RunSummary{}, fmt.Errorf("creating sink failed: %w", err)
		}
	}

	framePacer, err := pacer.New(r.config.RatePerSecond, r.clock)
	if err != nil {
		return metrics.RunSummary{}, fmt.Errorf("creating pacer failed: %w", err)
	}

	logging.Infof("Preparing %s sink", r.config.Sink.Type)
	if err := frameSink.Setup(ctx); err != nil {
		return metrics.RunSummary{}, fmt.Errorf("setting up sink failed: %w", err)
	}
	defer util.CloseResource("sink", frameSink)

	startupComplete := &health.StartupCompleteChecker{}
	if r.config.Metrics.Port > 0 {
		collector := metrics.NewRunMetricsCollector(r.metrics, queue.Len)
		prometheus.MustRegister(collector)
		defer prometheus.Unregister(collector)

		shutdownMetrics := common.ServeMetrics(r.config.Metrics.Port, startupComplete)
		defer shutdownMetrics()
	}

	prod := producer.New(gen, framePacer, queue, r.metrics)
	pool := worker.NewPool(r.config.Workers, queue, frameSink, r.metrics)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.setState(StateRunning)
	start := time.Now()

	producerDone := make(chan error, 1)
	go func() {
		producerDone <- prod.Run(runCtx)
	}()

	logging.Infof("Starting %d save workers", r.config.Workers)
	workersWg := &sync.WaitGroup{}
	workersWg.Go(pool.Run)
	workersWg.Go(func() { r.logProgress(runCtx, queue) })

	startupComplete.MarkComplete()
	logging.Infof("Run started (duration: %v, target rate: %d/s)", r.config.Duration, r.config.RatePerSecond)

	var producerErr error
	producerExited := false
	select {
	case <-time.After(r.config.Duration):
	case <-ctx.Done():
		logging.Info("Run interrupted, shutting down early")
	case producerErr = <-producerDone:
		producerExited = true
		logging.Info("Producer stopped early, shutting down")
	}

	r.setState(StateShuttingDown)
	cancel()

	// Join the producer first so nothing can be pushed once the workers have
	// drained the queue. The queue must not be closed before this join: a
	// frame pushed after Close would be dropped silently and the produced
	// count would no longer match what reaches the workers.
	if !producerExited {
		producerErr = <-producerDone
	}
	// The producer closes the queue on exit; this close is an idempotent
	// backstop.
	queue.Close()
	workersWg.Wait()
	r.setState(StateDrained)

	elapsed := time.Since(start)
	summary := r.metrics.BuildSummary(elapsed, queue.Len())
	r.logSummary(summary)

	if r.config.Results.Directory != "" {
		result := metrics.BuildRunResult(r.config, summary, time.Now())
		outputFilename := fmt.Sprintf("siss-result-%s.json", time.Now().Format("20060102-150405"))
		outputPath := filepath.Join(r.config.Results.Directory, outputFilename)
		if err := metrics.WriteRunResultToFile(result, outputPath); err != nil {
			return summary, fmt.Errorf("writing run result to file: %w", err)
		}
		logging.Infof("Run results written to: %s", outputPath)
	}

	r.setState(StateReported)

	if producerErr != nil {
		return summary, fmt.Errorf("producer stopped early: %w", producerErr)
	}
	logging.Info("Run completed successfully")
	return summary, nil
}

// logProgress periodically logs pipeline counters for long runs.
func (r *Runner) logProgress(ctx context.Context, queue *buffer.Bounded[frame.Frame]) {
	ticker := time.NewTicker(progressLogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logging.WithFields(map[string]any{
				"produced":      r.metrics.Produced(),
				"saved":         r.metrics.Saved(),
				"evicted":       r.metrics.Evicted(),
				"sink_failures": r.metrics.SinkFailures(),
				"queue_depth":   queue.Len(),
			}).Info("Run progress update")
		}
	}
}

func (r *Runner) logSummary(summary metrics.RunSummary) {
	logging.WithFields(map[string]any{
		"produced":          summary.Produced,
		"saved":             summary.Saved,
		"evicted":           summary.Evicted,
		"sink_failures":     summary.SinkFailures,
		"bytes_written":     summary.BytesWritten,
		"final_queue_depth": summary.FinalQueueDepth,
		"elapsed_millis":    summary.ElapsedMillis,
		"average_rate":      fmt.Sprintf("%.2f", summary.AverageRate),
	}).Info("Run summary")
}
