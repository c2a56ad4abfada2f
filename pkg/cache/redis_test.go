package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// An unreachable backend exercises the retry path: the first attempt fails
// with a retryable error and the backoff wait is cut short by the context
// deadline.
func TestRedisCacheRetriesUntilDeadline(t *testing.T) {
	c := &RedisCache{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := c.Get(ctx, "key")
	if err == nil {
		t.Fatal("Get() error = nil, want error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get() error = %v, want context.DeadlineExceeded", err)
	}

	if err := c.Set(ctx, "key", []byte("v"), 0); err == nil {
		t.Error("Set() error = nil, want error")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url"); err == nil {
		t.Error("NewRedisCache() error = nil, want error")
	}
}
