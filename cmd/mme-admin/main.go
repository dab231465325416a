package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/L-P/mme/config"
	"github.com/L-P/mme/internal/bootstrap"
	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/rom"
	"github.com/L-P/mme/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	usage       string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	Out    io.Writer

	view    *rom.View
	catalog *service.CatalogService
	cache   core.CacheRepository
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	// Progress goes to stderr so command output can be piped.
	logger := bootstrap.InitLogger(os.Stderr, cfg.Log)

	if len(os.Args) < 2 {
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
		Out:    os.Stdout,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"info": {
			name:        "info",
			description: "Print the ROM name, checksums and build",
			usage:       "info [-rom path]",
			run:         runInfo,
		},
		"files": {
			name:        "files",
			description: "List the file table",
			usage:       "files [-rom path] [-all]",
			run:         runFiles,
		},
		"scenes": {
			name:        "scenes",
			description: "List the scenes and their rooms",
			usage:       "scenes [-rom path]",
			run:         runScenes,
		},
		"messages": {
			name:        "messages",
			description: "Print every message of the message table",
			usage:       "messages [-rom path]",
			run:         runMessages,
		},
		"colormap": {
			name:        "colormap",
			description: "Write the ROM color map as a PNG",
			usage:       "colormap [-rom path] <out.png>",
			run:         runColorMap,
		},
		"cache-clear": {
			name:        "cache-clear",
			description: "Delete cached color maps from Redis",
			usage:       "cache-clear [-pattern glob]",
			run:         runCacheClear,
		},
		"extract": {
			name:        "extract",
			description: "Write the raw contents of the file starting at a VROM offset",
			usage:       "extract [-rom path] <start> <out>",
			run:         runExtract,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: mme-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := cmds[name]
		if err := writef(w, "  %-12s %-36s %s\n", c.name, c.usage, c.description); err != nil {
			return err
		}
	}
	return nil
}

// loadCatalog parses the ROM once per invocation.
func (c *commandContext) loadCatalog(romPath string) (*service.CatalogService, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	if c.view == nil {
		romCfg := c.Config.ROM
		if romPath != "" {
			romCfg.Path = romPath
		}
		if romCfg.Path == "" {
			return nil, errors.New("no ROM given: pass -rom or set ROM_PATH")
		}

		view, err := bootstrap.LoadROM(romCfg, c.Logger)
		if err != nil {
			return nil, err
		}
		c.view = view
	}

	catalog, err := service.NewCatalogService(service.CatalogServiceOptions{View: c.view, Logger: c.Logger})
	if err != nil {
		return nil, err
	}
	c.catalog = catalog
	return catalog, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
