package ratelimit

import (
	"context"
	"strconv"
	"time"

	"shaka/internal/errors"

	"github.com/go-chi/httprate"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "shaka:ratelimit:"
	opTimeout = 500 * time.Millisecond
)

// RedisCounter is an httprate.LimitCounter shared by every API replica.
type RedisCounter struct {
	client       redis.UniversalClient
	windowLength time.Duration
}

var _ httprate.LimitCounter = (*RedisCounter)(nil)

// NewRedisCounter creates a counter backed by the given client
func NewRedisCounter(client redis.UniversalClient) *RedisCounter {
	return &RedisCounter{client: client}
}

// Config is called by httprate when the limiter is built.
func (c *RedisCounter) Config(_ int, windowLength time.Duration) {
	c.windowLength = windowLength
}

func (c *RedisCounter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

// IncrementBy bumps the window's counter. Keys live for three windows so the
// previous window stays readable for the sliding estimate.
func (c *RedisCounter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	k := counterKey(key, currentWindow)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrBy(ctx, k, int64(amount))
		pipe.Expire(ctx, k, c.ttl())

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis rate limit increment")
	}

	return nil
}

// Get returns the counts of the current and previous windows.
func (c *RedisCounter) Get(key string, currentWindow, previousWindow time.Time) (int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	values, err := c.client.MGet(ctx, counterKey(key, currentWindow), counterKey(key, previousWindow)).Result()
	if err != nil {
		return 0, 0, errors.Wrap(err, "redis rate limit get")
	}

	curr, err := toCount(values[0])
	if err != nil {
		return 0, 0, err
	}
	prev, err := toCount(values[1])
	if err != nil {
		return 0, 0, err
	}

	return curr, prev, nil
}

func (c *RedisCounter) ttl() time.Duration {
	if c.windowLength <= 0 {
		return time.Minute
	}

	return 3 * c.windowLength
}

func counterKey(key string, window time.Time) string {
	return keyPrefix + strconv.FormatUint(httprate.LimitCounterKey(key, window), 16)
}

func toCount(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	s, ok := v.(string)
	if !ok {
		return 0, errors.Errorf("unexpected rate limit counter value %T", v)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse rate limit counter %q", s)
	}

	return n, nil
}
