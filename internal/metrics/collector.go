package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricPrefix namespaces all prometheus metrics exposed by siss.
const MetricPrefix = "siss"

var (
	producedDesc = prometheus.NewDesc(
		MetricPrefix+"_frames_produced_total",
		"Count of frames generated and pushed onto the queue.",
		nil, nil,
	)
	evictedDesc = prometheus.NewDesc(
		MetricPrefix+"_frames_evicted_total",
		"Count of queued frames dropped to make room for newer ones.",
		nil, nil,
	)
	savedDesc = prometheus.NewDesc(
		MetricPrefix+"_frames_saved_total",
		"Count of frames successfully persisted by the save workers.",
		nil, nil,
	)
	sinkFailuresDesc = prometheus.NewDesc(
		MetricPrefix+"_sink_failures_total",
		"Count of persist attempts that failed.",
		nil, nil,
	)
	bytesWrittenDesc = prometheus.NewDesc(
		MetricPrefix+"_bytes_written_total",
		"Total encoded bytes written to the sink.",
		nil, nil,
	)
	queueDepthDesc = prometheus.NewDesc(
		MetricPrefix+"_queue_depth",
		"Number of frames currently queued between the producer and the workers.",
		nil, nil,
	)
)

// RunMetricsCollector exposes the counters of an in-flight run to prometheus.
type RunMetricsCollector struct {
	metrics    *RunMetrics
	queueDepth func() int
}

func NewRunMetricsCollector(metrics *RunMetrics, queueDepth func() int) *RunMetricsCollector {
	return &RunMetricsCollector{
		metrics:    metrics,
		queueDepth: queueDepth,
	}
}

func (c *RunMetricsCollector) Describe(desc chan<- *prometheus.Desc) {
	desc <- producedDesc
	desc <- evictedDesc
	desc <- savedDesc
	desc <- sinkFailuresDesc
	desc <- bytesWrittenDesc
	desc <- queueDepthDesc
}

func (c *RunMetricsCollector) Collect(metrics chan<- prometheus.Metric) {
	metrics <- prometheus.MustNewConstMetric(producedDesc, prometheus.CounterValue, float64(c.metrics.Produced()))
	metrics <- prometheus.MustNewConstMetric(evictedDesc, prometheus.CounterValue, float64(c.metrics.Evicted()))
	metrics <- prometheus.MustNewConstMetric(savedDesc, prometheus.CounterValue, float64(c.metrics.Saved()))
	metrics <- prometheus.MustNewConstMetric(sinkFailuresDesc, prometheus.CounterValue, float64(c.metrics.SinkFailures()))
	metrics <- prometheus.MustNewConstMetric(bytesWrittenDesc, prometheus.CounterValue, float64(c.metrics.BytesWritten()))
	metrics <- prometheus.MustNewConstMetric(queueDepthDesc, prometheus.GaugeValue, float64(c.queueDepth()))
}
