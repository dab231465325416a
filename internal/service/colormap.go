package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/L-P/mme/internal/colormap"
	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/rom"
)

// RenderFunc writes the encoded color map of a view.
type RenderFunc func(w io.Writer, v *rom.View) error

// ColorMapServiceOptions groups dependencies for ColorMapService.
type ColorMapServiceOptions struct {
	Cache  core.CacheRepository // Optional: persists rendered maps
	TTL    time.Duration        // Optional: cache TTL, 0 keeps entries forever
	Logger *slog.Logger         // Optional: structured logger
}

// ColorMapService renders color maps once per ROM and shares the result.
// Concurrent requests for the same ROM wait on a single render.
type ColorMapService struct {
	cache  core.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
	render RenderFunc
	group  singleflight.Group
}

// NewColorMapService constructs a new ColorMapService.
func NewColorMapService(opts ColorMapServiceOptions) *ColorMapService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ColorMapService{
		cache:  opts.Cache,
		ttl:    opts.TTL,
		logger: logger.With("component", "colormap_service"),
		render: colormap.Generate,
	}
}

// ColorMapKeyPattern matches every cached color map.
const ColorMapKeyPattern = "colormap:*"

// colorMapKey identifies a ROM by its checksums.
func colorMapKey(v *rom.View) string {
	r := v.ROM()
	return fmt.Sprintf("colormap:%08X%08X", r.CRC1, r.CRC2)
}

// Get returns the PNG color map of v, from cache when possible.
func (s *ColorMapService) Get(ctx context.Context, v *rom.View) ([]byte, error) {
	key := colorMapKey(v)

	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	ch := s.group.DoChan(key, func() (any, error) {
		// A concurrent caller may have stored it while we waited.
		if cached := s.fromCache(context.WithoutCancel(ctx), key); cached != nil {
			return cached, nil
		}
		return s.generate(context.WithoutCancel(ctx), key, v)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		png, _ := res.Val.([]byte)
		return png, nil
	}
}

func (s *ColorMapService) generate(ctx context.Context, key string, v *rom.View) ([]byte, error) {
	started := time.Now()

	var buf bytes.Buffer
	if err := s.render(&buf, v); err != nil {
		return nil, fmt.Errorf("render color map: %w", err)
	}
	png := buf.Bytes()

	s.logger.InfoContext(ctx, "color map rendered",
		"key", key,
		"bytes", len(png),
		"duration", time.Since(started),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, png, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "color map cache store failed", "key", key, "error", err)
		}
	}

	return png, nil
}

// fromCache treats cache failures as misses.
func (s *ColorMapService) fromCache(ctx context.Context, key string) []byte {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "color map cache lookup failed", "key", key, "error", err)
		return nil
	}
	if len(cached) == 0 {
		return nil
	}
	return cached
}
