package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeAPI serves the JSON API.
	ServiceModeAPI ServiceMode = "api"
	// ServiceModeUI serves the HTML views.
	ServiceModeUI ServiceMode = "ui"
)

// ValidServiceModes lists the service modes in startup order.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{ServiceModeAPI, ServiceModeUI}
}

func validModeNames() string {
	modes := ValidServiceModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// ParseServices reads a comma separated list such as "api,ui". Blank items
// are skipped, repeats collapse, and unknown names are an error.
func ParseServices(raw string) (map[ServiceMode]bool, error) {
	enabled := make(map[ServiceMode]bool, len(ValidServiceModes()))

	for item := range strings.SplitSeq(raw, ",") {
		name := ServiceMode(strings.ToLower(strings.TrimSpace(item)))
		if name == "" {
			continue
		}
		if !slices.Contains(ValidServiceModes(), name) {
			return nil, fmt.Errorf("invalid service name: %q (valid options: %s)", item, validModeNames())
		}
		enabled[name] = true
	}

	if len(enabled) == 0 {
		return nil, errors.New("at least one service must be specified")
	}
	return enabled, nil
}

// UIConfig contains configuration for the HTML views.
type UIConfig struct {
	// APIBaseURL points the views at a remote API instead of the local ROM,
	// e.g. "http://127.0.0.1:8064".
	APIBaseURL string `env:"UI_API_BASE_URL"`

	// APITimeout bounds each call to the remote API.
	APITimeout time.Duration `env:"UI_API_TIMEOUT" envDefault:"30s"`

	// TemplateDir overrides the embedded templates, used with DEV to reload on change.
	TemplateDir string `env:"UI_TEMPLATE_DIR"`
}

// Sanitize applies guardrails to UI configuration values.
func (u *UIConfig) Sanitize() {
	u.APIBaseURL = strings.TrimRight(strings.TrimSpace(u.APIBaseURL), "/")
	if u.APITimeout <= 0 {
		u.APITimeout = 30 * time.Second
	}
}
