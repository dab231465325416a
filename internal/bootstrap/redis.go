package bootstrap

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/L-P/mme/config"
	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/data"
)

const redisPingTimeout = 5 * time.Second

// CacheDeps groups what the color map cache is built from.
type CacheDeps struct {
	Redis  config.RedisConfig
	Cache  config.CacheConfig
	Logger *slog.Logger
}

// NewCacheRepository returns a Redis backed cache when Redis is enabled and an
// in-process one otherwise. The returned close function releases the client.
func NewCacheRepository(ctx context.Context, deps CacheDeps) (core.CacheRepository, func() error, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !deps.Redis.Enabled {
		logger.InfoContext(ctx, "using in-memory color map cache")
		return data.NewMemoryCacheRepo(nil), func() error { return nil }, nil
	}

	client, err := ConnectRedis(ctx, deps.Redis, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return data.NewRedisCacheRepo(client, deps.Cache.KeyPrefix), client.Close, nil
}

// ConnectRedis establishes a connection to Redis.
//
//nolint:ireturn // returning redis.UniversalClient lets us pick single, sentinel, or cluster clients at runtime.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client, addrDesc, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.InfoContext(ctx, "redis connected", "addr", redactAddr(addrDesc))
	}

	return client, nil
}

//nolint:ireturn // see ConnectRedis
func newRedisClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	switch {
	case cfg.UseCluster:
		return newClusterClient(cfg)
	case cfg.UseSentinel:
		return newSentinelClient(cfg)
	default:
		return newDirectClient(cfg)
	}
}

// redactAddr strips credentials from a connection description.
func redactAddr(addr string) string {
	if u, err := url.Parse(addr); err == nil && u.User != nil {
		u.User = url.User("*")
		return u.Redacted()
	}
	if i := strings.LastIndex(addr, "@"); i > -1 {
		return addr[i+1:]
	}
	return addr
}

//nolint:ireturn // see ConnectRedis
func newClusterClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	addrs := normalizeAddrs(cfg.ClusterNodes)
	opts := &redis.ClusterOptions{Password: cfg.Password}

	if len(addrs) == 0 {
		fallback, err := clusterFallbackFromURI(cfg.URI, cfg.Password)
		if err != nil {
			return nil, "", err
		}
		if fallback.addr != "" {
			addrs = []string{fallback.addr}
			opts.Username = fallback.username
			opts.Password = fallback.password
			opts.TLSConfig = fallback.tls
		}
	}

	if len(addrs) == 0 {
		return nil, "", errors.New("redis cluster configuration requires at least one address")
	}
	opts.Addrs = addrs

	return redis.NewClusterClient(opts), "cluster:" + strings.Join(addrs, ","), nil
}

//nolint:ireturn // see ConnectRedis
func newSentinelClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	nodes := normalizeAddrs(cfg.SentinelNodes)
	if len(nodes) == 0 {
		return nil, "", errors.New("redis sentinel configuration requires at least one sentinel node")
	}

	client := redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:       cfg.SentinelMasterName,
		SentinelAddrs:    nodes,
		Password:         cfg.Password,
		SentinelPassword: cfg.SentinelPassword,
	})
	return client, "sentinel:" + cfg.SentinelMasterName, nil
}

//nolint:ireturn // see ConnectRedis
func newDirectClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, "", errors.New("redis direct configuration requires a URI")
	}

	if isRedisURL(uri) {
		opt, err := redis.ParseURL(uri)
		if err != nil {
			return nil, "", fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), opt.Addr, nil
	}

	return redis.NewClient(&redis.Options{Addr: uri, Password: cfg.Password}), uri, nil
}

func normalizeAddrs(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, addr := range raw {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

type clusterFallback struct {
	addr     string
	username string
	password string
	tls      *tls.Config
}

// clusterFallbackFromURI lets a cluster run from REDIS_URI alone.
func clusterFallbackFromURI(uri, defaultPassword string) (clusterFallback, error) {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return clusterFallback{password: defaultPassword}, nil
	}

	if !isRedisURL(trimmed) {
		return clusterFallback{addr: trimmed, password: defaultPassword}, nil
	}

	opt, err := redis.ParseURL(trimmed)
	if err != nil {
		return clusterFallback{}, fmt.Errorf("parse redis cluster url: %w", err)
	}

	fb := clusterFallback{addr: opt.Addr, username: opt.Username, password: defaultPassword, tls: opt.TLSConfig}
	if opt.Password != "" {
		fb.password = opt.Password
	}
	return fb, nil
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}
