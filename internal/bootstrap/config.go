package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/L-P/mme/config"
)

// InitLogger builds the process logger for cfg, writing to w, and installs it
// as the slog default.
func InitLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	var h slog.Handler
	switch cfg.Format {
	case config.LogFormatTint:
		h = tint.NewHandler(w, &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.Kitchen,
		})
	case config.LogFormatText:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	}

	logger := slog.New(h).With("app", "mme")
	slog.SetDefault(logger)
	return logger
}

// LoadConfig reads the environment into an AppConfig. The given dotenv files,
// or ./.env when none are given, are loaded first when they exist and never
// override variables already set.
func LoadConfig(dotenv ...string) (config.AppConfig, error) {
	var cfg config.AppConfig

	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load dotenv: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateServiceConfig reports every reason cfg cannot start: no valid
// service, a missing ROM when one must be loaded locally, or a remote API URL
// that is not http(s).
func ValidateServiceConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("service config is required")
	}

	if _, err := cfg.GetEnabledServices(); err != nil {
		return fmt.Errorf("invalid service configuration: %w", err)
	}

	var problems []error
	if cfg.NeedsLocalROM() && cfg.ROM.Path == "" {
		problems = append(problems, errors.New("a ROM path is required: pass it as the first argument or set ROM_PATH"))
	}
	if base := cfg.UI.APIBaseURL; base != "" && cfg.IsUIEnabled() {
		u, err := url.Parse(base)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, fmt.Errorf("UI_API_BASE_URL %q must be an absolute http(s) URL", base))
		}
	}

	return errors.Join(problems...)
}

// GetEnabledServices returns the enabled service names in startup order, or
// nothing when the list does not parse.
func GetEnabledServices(cfg *config.AppConfig) []string {
	names := []string{}
	if cfg == nil {
		return names
	}
	enabled, err := cfg.GetEnabledServices()
	if err != nil {
		return names
	}

	for _, mode := range config.ValidServiceModes() {
		if enabled[mode] {
			names = append(names, string(mode))
		}
	}
	return names
}
