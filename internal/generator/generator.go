// Package generator produces the synthetic frames fed into the pipeline.
package generator

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/common/util"
	"github.com/Nach0t/siss/internal/frame"
)

// Generator produces one frame per call. Implementations are called from a
// single producer goroutine.
type Generator interface {
	Generate() (frame.Frame, error)
}

// GenerateFunc adapts a plain function to the Generator interface.
type GenerateFunc func() (frame.Frame, error)

func (f GenerateFunc) Generate() (frame.Frame, error) {
	return f()
}

// Noise generates frames of uniform random RGBA pixels. Frames from the same
// seed are reproducible across runs.
type Noise struct {
	width  int
	height int
	rng    *rand.Rand
}

// NewNoise returns a Noise generator for width x height frames. A zero seed
// picks a fresh one from the wall clock.
func NewNoise(width, height int, seed int64) (*Noise, error) {
	if width < 1 {
		return nil, errors.Errorf("width must be positive, got %d", width)
	}
	if height < 1 {
		return nil, errors.Errorf("height must be positive, got %d", height)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Noise{
		width:  width,
		height: height,
		rng:    util.NewThreadsafeRand(seed),
	}, nil
}

func (n *Noise) Generate() (frame.Frame, error) {
	pix := make([]byte, n.width*n.height*4)
	_, _ = n.rng.Read(pix)
	// Alpha stays opaque so encoded output is a plain noise image.
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return frame.Frame{
		Pix:       pix,
		Width:     n.width,
		Height:    n.height,
		CreatedAt: time.Now(),
	}, nil
}
