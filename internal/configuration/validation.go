package configuration

import (
	"github.com/pkg/errors"
)

// Validate checks the whole configuration tree and returns the first problem
// found.
func (c RunConfig) Validate() error {
	if c.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if c.RatePerSecond < 1 {
		return errors.Errorf("ratePerSecond must be at least 1, got %d", c.RatePerSecond)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return errors.Errorf("workers must be in range [1, %d], got %d", MaxWorkers, c.Workers)
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Frame.Validate(); err != nil {
		return err
	}
	if err := c.Sink.Validate(); err != nil {
		return err
	}
	return nil
}

func (c QueueConfig) Validate() error {
	if c.Capacity < 1 {
		return errors.Errorf("queue capacity must be positive, got %d", c.Capacity)
	}
	return nil
}

func (c FrameConfig) Validate() error {
	if c.Width < 1 {
		return errors.Errorf("frame width must be positive, got %d", c.Width)
	}
	if c.Height < 1 {
		return errors.Errorf("frame height must be positive, got %d", c.Height)
	}
	return nil
}

func (c SinkConfig) Validate() error {
	switch c.Type {
	case SinkTypeFile:
		return c.File.Validate()
	case SinkTypeRedis:
		return c.Redis.Validate()
	case SinkTypeDiscard:
		return nil
	default:
		return errors.Errorf("sink type must be one of [file, redis, discard], got %q", c.Type)
	}
}

func (c FileSinkConfig) Validate() error {
	if c.Directory == "" {
		return errors.New("sink directory must not be empty")
	}
	if c.JpegQuality < 1 || c.JpegQuality > 100 {
		return errors.Errorf("jpegQuality must be in range [1, 100], got %d", c.JpegQuality)
	}
	return nil
}

func (c RedisSinkConfig) Validate() error {
	if c.Address == "" {
		return errors.New("redis address must not be empty")
	}
	if c.Ttl < 0 {
		return errors.New("redis ttl must be non-negative")
	}
	return nil
}
