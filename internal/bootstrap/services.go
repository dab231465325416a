package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/L-P/mme/config"
	"github.com/L-P/mme/internal/apiclient"
	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/format"
	"github.com/L-P/mme/internal/rom"
	"github.com/L-P/mme/internal/service"
)

// ServiceContainer holds the application services.
type ServiceContainer struct {
	Catalog core.Catalog
	Query   *service.QueryService
	View    *rom.View // nil when the UI reads from a remote API
	Formats *format.Registry

	closers []func() error
}

// Close releases the connections opened by NewServices.
func (c *ServiceContainer) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	View   *rom.View            // Optional: preloaded ROM, skips LoadROM
	Cache  core.CacheRepository // Optional: skips NewCacheRepository
	Logger *slog.Logger
}

// NewServices wires the catalog the router serves from: the local ROM when
// this process needs it, the remote API otherwise.
func NewServices(ctx context.Context, deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	c := &ServiceContainer{
		Query:   service.NewQueryService(service.QueryServiceOptions{}),
		Formats: format.NewRegistry(),
	}

	if !cfg.NeedsLocalROM() {
		client, err := apiclient.NewClient(apiclient.Config{
			BaseURL: cfg.UI.APIBaseURL,
			Timeout: cfg.UI.APITimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create api client: %w", err)
		}
		logger.InfoContext(ctx, "ui reading from remote api", "base_url", cfg.UI.APIBaseURL)
		c.Catalog = client
		return c, nil
	}

	view := deps.View
	if view == nil {
		var err error
		if view, err = LoadROM(cfg.ROM, logger); err != nil {
			return nil, err
		}
	}
	c.View = view

	cache := deps.Cache
	if cache == nil {
		repo, closeFn, err := NewCacheRepository(ctx, CacheDeps{Redis: cfg.Redis, Cache: cfg.Cache, Logger: logger})
		if err != nil {
			return nil, err
		}
		cache = repo
		c.closers = append(c.closers, closeFn)
	}

	catalog, err := service.NewCatalogService(service.CatalogServiceOptions{
		View: view,
		ColorMaps: service.NewColorMapService(service.ColorMapServiceOptions{
			Cache:  cache,
			TTL:    cfg.Cache.ColorMapTTL,
			Logger: logger,
		}),
		Logger: logger,
	})
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.Catalog = catalog

	return c, nil
}

// LoadROM parses the ROM and the optional actor catalog named by cfg.
func LoadROM(cfg config.ROMConfig, logger *slog.Logger) (*rom.View, error) {
	if cfg.Path == "" {
		return nil, errors.New("ROM path is empty")
	}

	actors, err := loadActors(cfg.ActorsPath)
	if err != nil {
		return nil, err
	}

	view, err := rom.Open(cfg.Path, rom.Options{
		Logger:       logger,
		Actors:       actors,
		SkipChecksum: cfg.SkipChecksum,
	})
	if err != nil {
		return nil, fmt.Errorf("load ROM %s: %w", cfg.Path, err)
	}
	return view, nil
}

func loadActors(path string) (rom.ActorCatalog, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open actor catalog: %w", err)
	}
	defer f.Close()

	actors, err := rom.LoadActorCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load actor catalog %s: %w", path, err)
	}
	return actors, nil
}
