package configuration

import "time"

// MaxWorkers is the upper bound on the save pool size. Past seven workers the
// sinks saturate before the queue does, so larger pools only add contention.
const MaxWorkers = 7

// Sink backend types accepted by SinkConfig.Type.
const (
	SinkTypeFile    = "file"
	SinkTypeRedis   = "redis"
	SinkTypeDiscard = "discard"
)

// RunConfig is the complete input configuration for one run.
type RunConfig struct {
	// Duration is how long the producer keeps generating frames.
	Duration time.Duration `validate:"required"`
	// RatePerSecond is the target number of frames generated per second.
	RatePerSecond int `validate:"gte=1"`
	// Workers is the number of concurrent save workers, at most MaxWorkers.
	Workers int `validate:"gte=1"`

	Queue   QueueConfig
	Frame   FrameConfig
	Sink    SinkConfig
	Metrics MetricsConfig
	Results ResultsConfig
}

// QueueConfig bounds the frame queue between producer and workers.
type QueueConfig struct {
	// Capacity is the maximum number of frames held before the oldest is
	// dropped to make room.
	Capacity int
}

// FrameConfig describes the synthetic frames to generate.
type FrameConfig struct {
	Width  int
	Height int
	// Seed makes the pixel stream reproducible; zero picks a fresh seed.
	Seed int64
}

// SinkConfig selects and configures the persistence backend.
type SinkConfig struct {
	Type  string
	File  FileSinkConfig
	Redis RedisSinkConfig
}

// FileSinkConfig writes frames as JPEG files to a local directory. The
// directory is cleared and recreated at the start of every run.
type FileSinkConfig struct {
	Directory   string
	JpegQuality int
}

// RedisSinkConfig writes JPEG-encoded frames to redis keys.
type RedisSinkConfig struct {
	Address   string
	Password  string
	Database  int
	KeyPrefix string
	// Ttl expires stored frames; zero keeps them indefinitely.
	Ttl time.Duration
}

// MetricsConfig exposes a prometheus endpoint during the run. A zero port
// disables it.
type MetricsConfig struct {
	Port uint16
}

// ResultsConfig controls the JSON result file written after a run. An empty
// directory disables it.
type ResultsConfig struct {
	Directory string
}
