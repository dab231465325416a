package config

import (
	"strings"
	"time"
)

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	// Enabled switches the color map cache from memory to Redis.
	Enabled            bool     `env:"ENABLED"              envDefault:"false"`
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig contains cache configuration for generated artifacts.
type CacheConfig struct {
	// ColorMapTTL is how long a rendered color map is kept. 0 keeps it forever.
	ColorMapTTL time.Duration `env:"CACHE_COLORMAP_TTL" envDefault:"24h"`

	// KeyPrefix namespaces cache keys when Redis is shared.
	KeyPrefix string `env:"CACHE_KEY_PREFIX" envDefault:"mme:"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.ColorMapTTL < 0 {
		c.ColorMapTTL = 0
	}
	c.KeyPrefix = strings.TrimSpace(c.KeyPrefix)
}
