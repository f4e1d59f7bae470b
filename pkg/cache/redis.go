package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	hserrors "github.com/matzehuels/hashart/pkg/errors"
)

// RedisCache is a [Cache] shared by server replicas.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache dials url (redis:// or rediss://) and pings it.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	if err := hserrors.ValidateURL(url); err != nil {
		return nil, err
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, hserrors.Wrap(hserrors.ErrCodeInvalidInput, err, "parse redis url")
	}
	c := NewRedisCacheFromClient(redis.NewClient(opts))
	if err := c.client.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, errors.Join(ErrUnavailable, err)
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get reads key, retrying transient failures.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	var hit bool
	err := RetryWithBackoff(ctx, func() error {
		b, err := c.client.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			return nil
		case err != nil:
			return transient(err)
		}
		data, hit = b, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, hit, nil
}

// Set writes key with ttl; ttl <= 0 keeps it forever.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return RetryWithBackoff(ctx, func() error {
		return transient(c.client.Set(ctx, key, data, ttl).Err())
	})
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return transient(c.client.Del(ctx, key).Err())
}

// Close closes the client.
func (c *RedisCache) Close() error { return c.client.Close() }

// transient marks everything except caller cancellation as retryable.
func transient(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return Retryable(errors.Join(ErrUnavailable, err))
}

var _ Cache = (*RedisCache)(nil)
