package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/L-P/mme/internal/bootstrap"
	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/service"
)

type cacheClearOptions struct {
	Pattern string
}

func parseCacheClearFlags(args []string) (cacheClearOptions, error) {
	opts := cacheClearOptions{}
	fs := flag.NewFlagSet("cache-clear", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.Pattern, "pattern", service.ColorMapKeyPattern, "Glob of keys to delete, relative to CACHE_KEY_PREFIX")
	if err := fs.Parse(args); err != nil {
		return cacheClearOptions{}, err
	}
	if fs.NArg() != 0 {
		return cacheClearOptions{}, fmt.Errorf("cache-clear takes no arguments, got %d", fs.NArg())
	}
	if opts.Pattern == "" {
		return cacheClearOptions{}, errors.New("pattern cannot be empty")
	}
	return opts, nil
}

// cacheRepository connects to the configured Redis. The in-process cache dies
// with the server, so there is nothing to clear without Redis.
func (c *commandContext) cacheRepository() (core.CacheRepository, func() error, error) {
	if c.cache != nil {
		return c.cache, func() error { return nil }, nil
	}
	if !c.Config.Redis.Enabled {
		return nil, nil, errors.New("redis is disabled: set REDIS_ENABLED=true to clear a shared cache")
	}
	return bootstrap.NewCacheRepository(c.Ctx, bootstrap.CacheDeps{
		Redis:  c.Config.Redis,
		Cache:  c.Config.Cache,
		Logger: c.Logger,
	})
}

func runCacheClear(cmdCtx *commandContext, args []string) error {
	opts, err := parseCacheClearFlags(args)
	if err != nil {
		return err
	}

	cache, closeCache, err := cmdCtx.cacheRepository()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeCache(); cerr != nil {
			cmdCtx.Logger.Warn("close cache failed", "error", cerr)
		}
	}()

	cmdCtx.Logger.Info("clearing cache", "pattern", opts.Pattern)
	n, err := cache.DeleteMatching(cmdCtx.Ctx, opts.Pattern)
	if err != nil {
		return fmt.Errorf("clear %q: %w", opts.Pattern, err)
	}

	return writef(cmdCtx.Out, "Deleted %d key(s) matching %q\n", n, opts.Pattern)
}
