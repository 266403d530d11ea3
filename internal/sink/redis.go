package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Nach0t/siss/internal/configuration"
	"github.com/Nach0t/siss/internal/frame"
)

const defaultKeyPrefix = "siss"

// RedisSink stores JPEG-encoded frames as redis string values, optionally
// with an expiry.
type RedisSink struct {
	client    *redis.Client
	address   string
	keyPrefix string
	ttl       time.Duration
}

func NewRedisSink(config configuration.RedisSinkConfig) *RedisSink {
	keyPrefix := config.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisSink{
		client: redis.NewClient(&redis.Options{
			Addr:     config.Address,
			Password: config.Password,
			DB:       config.Database,
		}),
		address:   config.Address,
		keyPrefix: keyPrefix,
		ttl:       config.Ttl,
	}
}

// Setup verifies the server is reachable before the run starts.
func (s *RedisSink) Setup(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(err, "pinging redis at %s", s.address)
	}
	return nil
}

func (s *RedisSink) Persist(ctx context.Context, seq uint64, f frame.Frame) (int, error) {
	data, err := encodeJpeg(f, DefaultJpegQuality)
	if err != nil {
		return 0, err
	}
	key := fmt.Sprintf("%s:img_%d", s.keyPrefix, seq)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return 0, errors.Wrapf(err, "writing %s", key)
	}
	return len(data), nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
