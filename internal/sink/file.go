package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/configuration"
	"github.com/Nach0t/siss/internal/frame"
)

// FileSink writes each frame as a JPEG file named img_<seq>.jpg.
type FileSink struct {
	directory string
	quality   int
}

func NewFileSink(config configuration.FileSinkConfig) *FileSink {
	return &FileSink{
		directory: config.Directory,
		quality:   config.JpegQuality,
	}
}

// Setup clears and recreates the output directory so it only ever holds
// frames from the current run.
func (s *FileSink) Setup(ctx context.Context) error {
	if err := os.RemoveAll(s.directory); err != nil {
		return errors.Wrapf(err, "clearing output directory %s", s.directory)
	}
	if err := os.MkdirAll(s.directory, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", s.directory)
	}
	return nil
}

func (s *FileSink) Persist(ctx context.Context, seq uint64, f frame.Frame) (int, error) {
	data, err := encodeJpeg(f, s.quality)
	if err != nil {
		return 0, err
	}
	path := filepath.Join(s.directory, fmt.Sprintf("img_%d.jpg", seq))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, errors.Wrapf(err, "writing %s", path)
	}
	return len(data), nil
}

func (s *FileSink) Close() error {
	return nil
}
