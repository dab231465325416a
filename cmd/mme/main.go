package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/L-P/mme/config"
	"github.com/L-P/mme/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
	logger := bootstrap.InitLogger(os.Stdout, cfg.Log)

	if err := run(ctx, logger, &cfg, os.Args[1:]); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		stop()
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig, args []string) error {
	applyArgs(cfg, args)

	logStartupInfo(ctx, logger, cfg)
	if err := bootstrap.ValidateServiceConfig(cfg); err != nil {
		return err
	}

	services, err := bootstrap.NewServices(ctx, &bootstrap.ServiceDeps{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := services.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close services failed", "error", cerr)
		}
	}()

	handler, err := bootstrap.BuildHTTPHandler(&bootstrap.HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(cfg.HTTP, handler)
	return bootstrap.RunHTTPServer(ctx, server, nil, logger)
}

// applyArgs lets the first command-line argument name the ROM.
func applyArgs(cfg *config.AppConfig, args []string) {
	if len(args) > 0 && args[0] != "" {
		cfg.ROM.Path = args[0]
	}
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting mme",
		"rom", cfg.ROM.Path,
		"addr", cfg.HTTP.Addr,
		"enabled_services", bootstrap.GetEnabledServices(cfg),
		"redis", cfg.Redis.Enabled,
		"dev", cfg.IsDev,
	)
}
