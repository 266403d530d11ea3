package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nach0t/siss/internal/common/logging"
)

// CreateContextWithShutdown returns a context that will report done when a SIGINT or SIGTERM is received
func CreateContextWithShutdown() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-c:
			logging.Infof("Received signal %v, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}
