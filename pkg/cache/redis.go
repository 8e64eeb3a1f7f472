package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. It is meant for the HTTP server, where
// several instances share one cache.
type RedisCache struct {
	client  *redis.Client
	prefix  string
	backoff Backoff
}

// RedisOption configures a [RedisCache].
type RedisOption func(*redisConfig)

type redisConfig struct {
	opts    redis.Options
	prefix  string
	backoff Backoff
}

// WithRedisPassword sets the AUTH password.
func WithRedisPassword(pw string) RedisOption {
	return func(c *redisConfig) { c.opts.Password = pw }
}

// WithRedisDB selects the logical database.
func WithRedisDB(db int) RedisOption {
	return func(c *redisConfig) { c.opts.DB = db }
}

// WithRedisPrefix namespaces every key.
func WithRedisPrefix(p string) RedisOption {
	return func(c *redisConfig) { c.prefix = p }
}

// WithRedisBackoff sets the retry policy for transient network errors.
func WithRedisBackoff(b Backoff) RedisOption {
	return func(c *redisConfig) { c.backoff = b }
}

// NewRedisCache connects to the Redis server at addr and checks that it
// answers.
func NewRedisCache(ctx context.Context, addr string, opts ...RedisOption) (*RedisCache, error) {
	cfg := redisConfig{
		opts: redis.Options{
			Addr:         addr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		prefix:  "stackbox:",
		backoff: DefaultBackoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := redis.NewClient(&cfg.opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrBackend, addr, err)
	}
	return &RedisCache{client: client, prefix: cfg.prefix, backoff: cfg.backoff}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.backoff.Do(ctx, func() error {
		v, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if err != nil {
			return classify(err)
		}
		data = v
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in Redis. A zero ttl stores without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.backoff.Do(ctx, func() error {
		return classify(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.backoff.Do(ctx, func() error {
		return classify(c.client.Del(ctx, c.prefix+key).Err())
	})
}

// Close closes the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// classify marks network failures as retryable backend errors.
func classify(err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable(fmt.Errorf("%w: %v", ErrBackend, err))
	}
	return err
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
