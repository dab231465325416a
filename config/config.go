package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - rom.go: ROM image and actor catalog
//   - cache.go: Redis and color map cache configuration
//   - http.go: HTTP server configuration
//   - services.go: Service mode and UI client configuration
//   - log.go: Logging configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, coloured logs).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// ROM configuration
	ROM ROMConfig

	// Cache configuration
	Redis RedisConfig `envPrefix:"REDIS_"`
	Cache CacheConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Service mode configuration
	Services string `env:"SERVICES" envDefault:"api,ui"`

	// UI configuration
	UI UIConfig

	// Logging configuration
	Log LogConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.ROM.Sanitize()
	c.Cache.Sanitize()
	c.HTTP.Sanitize()
	c.UI.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()

	c.Log.Sanitize(c.IsDev)
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsAPIEnabled returns true if the JSON API is served.
func (c *AppConfig) IsAPIEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeAPI]
}

// IsUIEnabled returns true if the HTML views are served.
func (c *AppConfig) IsUIEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeUI]
}

// NeedsLocalROM returns true when this process has to load the ROM itself:
// the API is served, or the UI has no remote API to read from.
func (c *AppConfig) NeedsLocalROM() bool {
	return c.IsAPIEnabled() || (c.IsUIEnabled() && c.UI.APIBaseURL == "")
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
