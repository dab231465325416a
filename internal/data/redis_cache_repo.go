package data

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/L-P/mme/internal/core"
	apperrors "github.com/L-P/mme/internal/errors"
)

var _ core.CacheRepository = (*RedisCacheRepo)(nil)

var errEmptyKey = errors.New("key cannot be empty")

const scanCount = 100

// keyScanner is a single Redis node that can be scanned.
type keyScanner interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// nodeVisitor calls fn once per node holding keys, possibly concurrently.
type nodeVisitor func(ctx context.Context, fn func(context.Context, keyScanner) error) error

// visitNodes returns a visitor over every master of a cluster client, or over
// client itself for direct and sentinel clients.
func visitNodes(client redis.UniversalClient) nodeVisitor {
	if cc, ok := client.(*redis.ClusterClient); ok {
		return func(ctx context.Context, fn func(context.Context, keyScanner) error) error {
			return cc.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
				return fn(ctx, node)
			})
		}
	}
	return func(ctx context.Context, fn func(context.Context, keyScanner) error) error {
		return fn(ctx, client)
	}
}

// RedisCacheRepo stores artifacts in Redis under a fixed key prefix so several
// deployments can share one instance.
type RedisCacheRepo struct {
	client redis.UniversalClient
	prefix string
	visit  nodeVisitor
}

// NewRedisCacheRepo wraps client. Every key is stored as prefix+key.
func NewRedisCacheRepo(client redis.UniversalClient, prefix string) *RedisCacheRepo {
	return &RedisCacheRepo{client: client, prefix: prefix, visit: visitNodes(client)}
}

func (r *RedisCacheRepo) key(k string) (string, error) {
	if k == "" {
		return "", errEmptyKey
	}
	return r.prefix + k, nil
}

// Set stores value. A zero ttl keeps it until deleted.
func (r *RedisCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := r.key(key)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, k, value, ttl).Err(); err != nil {
		return redisError(err, "redis set "+key)
	}
	return nil
}

// Get returns nil, nil on a miss.
func (r *RedisCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := r.key(key)
	if err != nil {
		return nil, err
	}

	b, err := r.client.Get(ctx, k).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, redisError(err, "redis get "+key)
	}
	return b, nil
}

// Delete reports whether key existed.
func (r *RedisCacheRepo) Delete(ctx context.Context, key string) (bool, error) {
	k, err := r.key(key)
	if err != nil {
		return false, err
	}

	n, err := r.client.Del(ctx, k).Result()
	if err != nil {
		return false, redisError(err, "redis del "+key)
	}
	return n > 0, nil
}

// DeleteMatching removes every key matching the glob pattern, relative to the
// prefix, and returns how many were removed. On a cluster each master is
// scanned, and keys are unlinked one at a time through the routing client so
// no command spans hash slots.
func (r *RedisCacheRepo) DeleteMatching(ctx context.Context, pattern string) (int64, error) {
	if pattern == "" {
		return 0, errEmptyKey
	}

	var deleted atomic.Int64
	err := r.visit(ctx, func(ctx context.Context, node keyScanner) error {
		iter := node.Scan(ctx, 0, r.prefix+pattern, scanCount).Iterator()
		for iter.Next(ctx) {
			n, err := r.client.Unlink(ctx, iter.Val()).Result()
			if err != nil {
				return redisError(err, "redis unlink "+iter.Val())
			}
			deleted.Add(n)
		}
		if err := iter.Err(); err != nil {
			return redisError(err, "redis scan "+pattern)
		}
		return nil
	})

	if err != nil {
		return deleted.Load(), redisError(err, "redis clear "+pattern)
	}
	return deleted.Load(), nil
}

// Health pings the server.
func (r *RedisCacheRepo) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return redisError(err, "redis ping")
	}
	return nil
}

func redisError(err error, message string) error {
	return apperrors.WrapContext(err, apperrors.ErrCodeUnavailable, message)
}
