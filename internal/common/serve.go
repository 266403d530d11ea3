package common

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nach0t/siss/internal/common/health"
	"github.com/Nach0t/siss/internal/common/logging"
)

// ServeMetrics exposes Prometheus metrics and the health check endpoint on
// the given port, returning a function that stops the server.
func ServeMetrics(port uint16, checker health.Checker) (shutdown func()) {
	return ServeMetricsFor(port, prometheus.DefaultGatherer, checker)
}

func ServeMetricsFor(port uint16, gatherer prometheus.Gatherer, checker health.Checker) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	health.SetupHttpMux(mux, checker)
	return ServeHttp(port, mux)
}

// ServeHttp starts an HTTP server listening on the given port, returning a
// function that shuts it down cleanly.
func ServeHttp(port uint16, mux http.Handler) (shutdown func()) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		logging.Infof("Starting http server listening on %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.WithError(err).Errorf("Http server listening on %d failed", port)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Infof("Stopping http server listening on %d", port)
		if err := srv.Shutdown(ctx); err != nil {
			logging.WithError(err).Warnf("Failed to shut down http server listening on %d", port)
		}
	}
}
