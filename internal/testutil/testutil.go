// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	probeTimeout = 2 * time.Second
	// defaultTestDB keeps test keys away from a developer's DB 0.
	defaultTestDB = 15
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func truthy(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// RedisRequired reports whether missing Redis fails tests instead of
// skipping them, as in CI.
func RedisRequired() bool {
	return truthy("TEST_REQUIRE_REDIS")
}

func testRedisDB(t testing.TB) int {
	raw := os.Getenv("TEST_REDIS_DB")
	if raw == "" {
		return defaultTestDB
	}
	db, err := strconv.Atoi(raw)
	if err != nil || db < 0 {
		t.Logf("ignoring TEST_REDIS_DB=%q", raw)
		return defaultTestDB
	}
	return db
}

// GetTestRedisAddr probes REDIS_ADDR, or the compose service then localhost,
// and returns the first address answering PING.
func GetTestRedisAddr(t testing.TB) (string, bool) {
	t.Helper()

	candidates := []string{"redis:6379", "localhost:6379"}
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		candidates = []string{addr}
	}

	for _, addr := range candidates {
		if ping(addr, 0) == nil {
			return addr, true
		}
	}
	return "", false
}

func ping(addr string, db int) error {
	c := redis.NewClient(&redis.Options{Addr: addr, DB: db, MaxRetries: -1})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return c.Ping(ctx).Err()
}

// SetupTestRedis returns a client on the test DB, or skips the test when no
// Redis answers. Keys under prefix are removed before the test and again on
// cleanup, so packages sharing the DB must use distinct prefixes.
func SetupTestRedis(t testing.TB, prefix string) *redis.Client {
	t.Helper()

	addr, ok := GetTestRedisAddr(t)
	if !ok {
		if RedisRequired() {
			t.Fatal("redis not available for testing")
		}
		t.Skip("redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB(t)})
	purge := func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		iter := client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			t.Logf("purge %s*: %v", prefix, err)
		}
	}

	purge()
	t.Cleanup(func() {
		purge()
		if err := client.Close(); err != nil {
			t.Logf("close redis client: %v", err)
		}
	})
	return client
}
