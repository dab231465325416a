package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	mme "github.com/L-P/mme"
	"github.com/L-P/mme/config"
	httpx "github.com/L-P/mme/internal/http"
)

const (
	shutdownTimeout     = 10 * time.Second
	compressionMinBytes = 1024
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler builds the router and wraps it in the middleware stack.
// Order: Recover -> RequestID -> Logging -> CORS -> Compression -> Router.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil || cfg.Services == nil {
		return nil, errors.New("http server config is incomplete")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	services := httpx.RouterServices{
		Catalog:   cfg.Services.Catalog,
		Query:     cfg.Services.Query,
		EnableAPI: appCfg.IsAPIEnabled(),
		EnableUI:  appCfg.IsUIEnabled(),
		IsDev:     appCfg.IsDev,
		Logger:    logger,
	}

	if services.EnableUI {
		if cfg.Services.Formats == nil {
			return nil, errors.New("display filters are required to serve the UI")
		}
		templates, err := assetFS(appCfg.UI.TemplateDir, appCfg.IsDev, httpx.TemplatePathFromRoot, mme.TemplateFS)
		if err != nil {
			return nil, fmt.Errorf("templates: %w", err)
		}
		renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
			TemplateFS: templates,
			Formats:    cfg.Services.Formats,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		services.Renderer = renderer

		static, err := assetFS("", appCfg.IsDev, httpx.StaticPathFromRoot, mme.StaticFS)
		if err != nil {
			return nil, fmt.Errorf("static assets: %w", err)
		}
		services.StaticFS = static
	}

	router, err := httpx.NewRouter(services)
	if err != nil {
		return nil, err
	}

	mws := []func(http.Handler) http.Handler{
		httpx.Recover(logger),
		httpx.RequestID(),
		httpx.Logging(logger),
		httpx.CORS(httpx.CORSConfig{AllowedOrigins: appCfg.HTTP.AllowedOrigins}),
	}
	if appCfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", appCfg.HTTP.CompressionLevel)
		mws = append(mws, httpx.Compression(httpx.CompressionConfig{
			Level:   appCfg.HTTP.CompressionLevel,
			MinSize: compressionMinBytes,
			Logger:  logger,
		}))
	}

	return httpx.Chain(router, mws...), nil
}

// assetFS picks where templates or static files are read from: an explicit
// directory, the source tree in dev mode, or the embedded copy.
func assetFS(dir string, isDev bool, rootPath string, embedded fs.FS) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	if isDev {
		if st, err := os.Stat(rootPath); err == nil && st.IsDir() {
			return os.DirFS(rootPath), nil
		}
	}
	return fs.Sub(embedded, rootPath)
}

// NewHTTPServer creates the HTTP server with the configured timeouts.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	addr := cfg.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = "127.0.0.1:8064"
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// RunHTTPServer serves until ctx is done, then shuts the server down
// gracefully. A nil listener listens on server.Addr.
func RunHTTPServer(ctx context.Context, server *http.Server, ln net.Listener, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", server.Addr); err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
