package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/framekit/pkg/errors"
)

// Set FRAMEKIT_TEST_REDIS_URL (e.g. redis://localhost:6379/15) to run
// these against a live server.
func redisCache(t *testing.T) *RedisCache {
	t.Helper()
	url := os.Getenv("FRAMEKIT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("FRAMEKIT_TEST_REDIS_URL not set")
	}
	c, err := NewRedisCache(context.Background(), url)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()
	key := "framekit:test:" + t.Name()

	_ = c.Delete(ctx, key)
	if _, ok, err := c.Get(ctx, key); ok || err != nil {
		t.Fatalf("Get before Set: ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok || string(data) != "v" {
		t.Fatalf("Get = (%q, %v, %v)", data, ok, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("deleted key should miss")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "http://not-redis")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}
