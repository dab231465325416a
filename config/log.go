package config

import (
	"log/slog"
	"strings"
)

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
	LogFormatTint = "tint"
)

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is json, text or tint (coloured console output). Empty picks
	// tint in dev mode and json otherwise.
	Format string `env:"LOG_FORMAT"`
}

// Sanitize normalises the level and picks a format.
func (l *LogConfig) Sanitize(isDev bool) {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if _, ok := levels[l.Level]; !ok {
		l.Level = "info"
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case LogFormatJSON, LogFormatText, LogFormatTint:
	default:
		if isDev {
			l.Format = LogFormatTint
		} else {
			l.Format = LogFormatJSON
		}
	}
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level.
func (l LogConfig) SlogLevel() slog.Level {
	if lvl, ok := levels[l.Level]; ok {
		return lvl
	}
	return slog.LevelInfo
}
