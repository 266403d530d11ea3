// Package pacer spaces pipeline iterations out to a fixed target rate.
package pacer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/Nach0t/siss/internal/common/util"
)

// Pacer admits one iteration every 1/rate seconds using absolute deadlines,
// so a slow iteration shortens the following wait instead of pushing the
// whole schedule back. It also counts completed iterations per wall-clock
// second so the caller can report the achieved rate.
//
// A Pacer is owned by a single goroutine and is not safe for concurrent use.
type Pacer struct {
	limiter     *rate.Limiter
	interval    time.Duration
	targetRate  int
	clock       util.Clock
	windowStart time.Time
	windowCount int
}

// New returns a Pacer targeting ratePerSecond iterations per second.
func New(ratePerSecond int, clock util.Clock) (*Pacer, error) {
	if ratePerSecond < 1 {
		return nil, errors.Errorf("rate must be at least 1, got %d", ratePerSecond)
	}
	if clock == nil {
		clock = &util.DefaultClock{}
	}
	return &Pacer{
		limiter:     rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		interval:    time.Second / time.Duration(ratePerSecond),
		targetRate:  ratePerSecond,
		clock:       clock,
		windowStart: clock.Now(),
	}, nil
}

// Wait blocks until the next iteration slot opens or ctx is cancelled. The
// first call returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Record counts one completed iteration. When the call crosses a one-second
// boundary it returns the number of iterations completed in the window just
// ended and true; otherwise it returns 0 and false.
func (p *Pacer) Record() (int, bool) {
	p.windowCount++
	now := p.clock.Now()
	if now.Sub(p.windowStart) >= time.Second {
		completed := p.windowCount
		p.windowCount = 0
		p.windowStart = now
		return completed, true
	}
	return 0, false
}

// Interval returns the spacing between iteration slots.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Rate returns the target iterations per second.
func (p *Pacer) Rate() int {
	return p.targetRate
}
