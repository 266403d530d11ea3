package util

import (
	"io"

	log "github.com/Nach0t/siss/internal/common/logging"
)

func CloseResource(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.WithError(err).Warnf("Failed to close %s cleanly", name)
	}
}
