package source

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the redis source reads when none is configured.
const DefaultRedisKey = "rcm:snapshot"

// RedisOptions configures the redis-backed graph source.
type RedisOptions struct {
	// URL is the redis connection string (e.g. "redis://localhost:6379").
	URL string

	// Key is the key holding the JSON snapshot document.
	Key string

	// TLS configuration for secure connections.
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment.
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations.
	ReadTimeout time.Duration
}

// Redis is a GraphSource reading a JSON snapshot published to a redis key by
// the upstream record-keeping system.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a redis source and verifies connectivity.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.Key == "" {
		opts.Key = DefaultRedisKey
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Redis{client: client, key: opts.Key}, nil
}

// Load reads and decodes the snapshot at the configured key. An absent key
// is an empty graph, not an error.
func (r *Redis) Load(ctx context.Context) (Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read snapshot key %s: %w", r.key, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot key %s: %w", r.key, err)
	}
	return snap, nil
}

// Close closes the redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
