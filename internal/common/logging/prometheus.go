package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// PrometheusHook is a zerolog.Hook that counts emitted log lines by level,
// exposed on the /metrics endpoint alongside the run metrics.
type PrometheusHook struct {
	lines *prometheus.CounterVec
}

func NewPrometheusHook() *PrometheusHook {
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siss_log_lines_total",
		Help: "Total number of log lines written, partitioned by level.",
	}, []string{"level"})
	prometheus.MustRegister(lines)
	return &PrometheusHook{lines: lines}
}

func (h *PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	switch level {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		h.lines.WithLabelValues(level.String()).Inc()
	}
}
