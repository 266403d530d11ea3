package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfig_Validate(t *testing.T) {
	validConfig := &RunConfig{
		Duration:      30 * time.Second,
		RatePerSecond: 30,
		Workers:       4,
		Queue: QueueConfig{
			Capacity: 200,
		},
		Frame: FrameConfig{
			Width:  1920,
			Height: 1280,
		},
		Sink: SinkConfig{
			Type: SinkTypeFile,
			File: FileSinkConfig{
				Directory:   "./output",
				JpegQuality: 85,
			},
		},
	}

	tests := []struct {
		name    string
		modify  func(*RunConfig)
		wantErr bool
		errText string
	}{
		{
			name:    "valid configuration",
			modify:  func(c *RunConfig) {},
			wantErr: false,
		},
		{
			name: "zero duration",
			modify: func(c *RunConfig) {
				c.Duration = 0
			},
			wantErr: true,
			errText: "duration must be positive",
		},
		{
			name: "negative duration",
			modify: func(c *RunConfig) {
				c.Duration = -1 * time.Second
			},
			wantErr: true,
			errText: "duration must be positive",
		},
		{
			name: "zero rate",
			modify: func(c *RunConfig) {
				c.RatePerSecond = 0
			},
			wantErr: true,
			errText: "ratePerSecond must be at least 1",
		},
		{
			name: "zero workers",
			modify: func(c *RunConfig) {
				c.Workers = 0
			},
			wantErr: true,
			errText: "workers must be in range [1, 7]",
		},
		{
			name: "too many workers",
			modify: func(c *RunConfig) {
				c.Workers = MaxWorkers + 1
			},
			wantErr: true,
			errText: "workers must be in range [1, 7]",
		},
		{
			name: "maximum workers is allowed",
			modify: func(c *RunConfig) {
				c.Workers = MaxWorkers
			},
			wantErr: false,
		},
		{
			name: "zero queue capacity",
			modify: func(c *RunConfig) {
				c.Queue.Capacity = 0
			},
			wantErr: true,
			errText: "queue capacity must be positive",
		},
		{
			name: "zero frame width",
			modify: func(c *RunConfig) {
				c.Frame.Width = 0
			},
			wantErr: true,
			errText: "frame width must be positive",
		},
		{
			name: "negative frame height",
			modify: func(c *RunConfig) {
				c.Frame.Height = -1
			},
			wantErr: true,
			errText: "frame height must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configCopy := *validConfig
			tt.modify(&configCopy)
			err := configCopy.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSinkConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  SinkConfig
		wantErr bool
		errText string
	}{
		{
			name: "valid file sink",
			config: SinkConfig{
				Type: SinkTypeFile,
				File: FileSinkConfig{
					Directory:   "/tmp/frames",
					JpegQuality: 85,
				},
			},
			wantErr: false,
		},
		{
			name: "valid redis sink",
			config: SinkConfig{
				Type: SinkTypeRedis,
				Redis: RedisSinkConfig{
					Address: "localhost:6379",
				},
			},
			wantErr: false,
		},
		{
			name: "valid discard sink",
			config: SinkConfig{
				Type: SinkTypeDiscard,
			},
			wantErr: false,
		},
		{
			name:    "unknown sink type",
			config:  SinkConfig{Type: "s3"},
			wantErr: true,
			errText: "sink type must be one of [file, redis, discard]",
		},
		{
			name:    "empty sink type",
			config:  SinkConfig{},
			wantErr: true,
			errText: "sink type must be one of [file, redis, discard]",
		},
		{
			name: "file sink missing directory",
			config: SinkConfig{
				Type: SinkTypeFile,
				File: FileSinkConfig{JpegQuality: 85},
			},
			wantErr: true,
			errText: "sink directory must not be empty",
		},
		{
			name: "file sink zero jpeg quality",
			config: SinkConfig{
				Type: SinkTypeFile,
				File: FileSinkConfig{Directory: "/tmp/frames"},
			},
			wantErr: true,
			errText: "jpegQuality must be in range [1, 100]",
		},
		{
			name: "file sink jpeg quality above 100",
			config: SinkConfig{
				Type: SinkTypeFile,
				File: FileSinkConfig{
					Directory:   "/tmp/frames",
					JpegQuality: 101,
				},
			},
			wantErr: true,
			errText: "jpegQuality must be in range [1, 100]",
		},
		{
			name: "redis sink missing address",
			config: SinkConfig{
				Type: SinkTypeRedis,
			},
			wantErr: true,
			errText: "redis address must not be empty",
		},
		{
			name: "redis sink negative ttl",
			config: SinkConfig{
				Type: SinkTypeRedis,
				Redis: RedisSinkConfig{
					Address: "localhost:6379",
					Ttl:     -1 * time.Second,
				},
			},
			wantErr: true,
			errText: "redis ttl must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
