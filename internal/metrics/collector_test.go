package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestRunMetricsCollector_ReportsCurrentCounters(t *testing.T) {
	m := NewRunMetrics()
	m.RecordProduced()
	m.RecordProduced()
	m.RecordSaved(512)
	m.RecordEvicted()
	collector := NewRunMetricsCollector(m, func() int { return 3 })

	actual := getCurrentMetrics(collector)
	assert.Len(t, actual, 6)
	assert.Contains(t, actual, prometheus.MustNewConstMetric(producedDesc, prometheus.CounterValue, float64(2)))
	assert.Contains(t, actual, prometheus.MustNewConstMetric(evictedDesc, prometheus.CounterValue, float64(1)))
	assert.Contains(t, actual, prometheus.MustNewConstMetric(savedDesc, prometheus.CounterValue, float64(1)))
	assert.Contains(t, actual, prometheus.MustNewConstMetric(sinkFailuresDesc, prometheus.CounterValue, float64(0)))
	assert.Contains(t, actual, prometheus.MustNewConstMetric(bytesWrittenDesc, prometheus.CounterValue, float64(512)))
	assert.Contains(t, actual, prometheus.MustNewConstMetric(queueDepthDesc, prometheus.GaugeValue, float64(3)))
}

func TestRunMetricsCollector_TracksQueueDepthChanges(t *testing.T) {
	m := NewRunMetrics()
	depth := 5
	collector := NewRunMetricsCollector(m, func() int { return depth })

	actual := getCurrentMetrics(collector)
	assert.Contains(t, actual, prometheus.MustNewConstMetric(queueDepthDesc, prometheus.GaugeValue, float64(5)))

	depth = 0
	actual = getCurrentMetrics(collector)
	assert.Contains(t, actual, prometheus.MustNewConstMetric(queueDepthDesc, prometheus.GaugeValue, float64(0)))
}

func TestRunMetricsCollector_DescribesAllMetrics(t *testing.T) {
	collector := NewRunMetricsCollector(NewRunMetrics(), func() int { return 0 })

	descChan := make(chan *prometheus.Desc, 1000)
	collector.Describe(descChan)
	close(descChan)

	descs := make([]*prometheus.Desc, 0)
	for d := range descChan {
		descs = append(descs, d)
	}
	assert.Len(t, descs, 6)
}

func getCurrentMetrics(collector *RunMetricsCollector) []prometheus.Metric {
	metricChan := make(chan prometheus.Metric, 1000)
	collector.Collect(metricChan)
	close(metricChan)

	actual := make([]prometheus.Metric, 0)
	for m := range metricChan {
		actual = append(actual, m)
	}
	return actual
}
