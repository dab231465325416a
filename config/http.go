package config

import (
	"strings"
	"time"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8064"`

	// AllowedOrigins lists the origins allowed to call the API from a browser.
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:8064,http://localhost:8080"`

	// CompressionEnabled enables gzip compression for text-based assets.
	CompressionEnabled bool `env:"HTTP_COMPRESSION_ENABLED" envDefault:"false"`

	// CompressionLevel is the gzip compression level (1-9).
	// Default is 6 (standard gzip default).
	CompressionLevel int `env:"HTTP_COMPRESSION_LEVEL" envDefault:"6"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT"  envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT"  envDefault:"15s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	// Clamp compression level to valid gzip range (1-9)
	if h.CompressionLevel < 1 {
		h.CompressionLevel = 1
	}
	if h.CompressionLevel > 9 {
		h.CompressionLevel = 9
	}

	origins := h.AllowedOrigins[:0]
	for _, o := range h.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	h.AllowedOrigins = origins

	// The color map takes a while to render on the first request.
	if h.WriteTimeout < 10*time.Second {
		h.WriteTimeout = 10 * time.Second
	}
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 5 * time.Second
	}
	if h.IdleTimeout <= 0 {
		h.IdleTimeout = 15 * time.Second
	}
}
