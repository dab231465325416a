package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/L-P/mme/internal/core"
	apperrors "github.com/L-P/mme/internal/errors"
	"github.com/L-P/mme/internal/rom"
)

var _ core.Catalog = (*CatalogService)(nil)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	View      *rom.View        // Required: parsed ROM
	ColorMaps *ColorMapService // Optional: defaults to an uncached service
	Logger    *slog.Logger     // Optional: structured logger
}

// CatalogService serves the read model of a ROM loaded in this process.
type CatalogService struct {
	view      *rom.View
	colorMaps *ColorMapService
	logger    *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) (*CatalogService, error) {
	if opts.View == nil {
		return nil, errors.New("view is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	colorMaps := opts.ColorMaps
	if colorMaps == nil {
		colorMaps = NewColorMapService(ColorMapServiceOptions{Logger: logger})
	}

	return &CatalogService{
		view:      opts.View,
		colorMaps: colorMaps,
		logger:    logger.With("component", "catalog_service"),
	}, nil
}

// MustNewCatalogService constructs a CatalogService and panics on invalid options.
func MustNewCatalogService(opts CatalogServiceOptions) *CatalogService {
	s, err := NewCatalogService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Summary returns the ROM identification block.
func (s *CatalogService) Summary(_ context.Context) (*core.ROMSummary, error) {
	r := s.view.ROM()
	team, date := r.ParseBuild()

	return &core.ROMSummary{
		Name:      r.Title(),
		CRC1:      fmt.Sprintf("%08X", r.CRC1),
		CRC2:      fmt.Sprintf("%08X", r.CRC2),
		BuildTeam: team,
		BuildDate: date,
	}, nil
}

// Files returns every file table entry, unused ones included.
func (s *CatalogService) Files(_ context.Context) ([]rom.File, error) {
	return slices.Clone(s.view.Files), nil
}

// FileData returns the contents of the file starting at start.
func (s *CatalogService) FileData(_ context.Context, start uint32) ([]byte, error) {
	f, err := s.view.FileByVROMStart(start)
	if err != nil {
		return nil, lookupError(err, "file", start)
	}
	if !f.Valid {
		return nil, apperrors.NotFoundf("file 0x%08X has no data", start)
	}
	return f.Data(), nil
}

// Scenes returns every scene table entry.
func (s *CatalogService) Scenes(_ context.Context) ([]rom.Scene, error) {
	return slices.Clone(s.view.Scenes), nil
}

// Scene returns the scene starting at start.
func (s *CatalogService) Scene(_ context.Context, start uint32) (*rom.Scene, error) {
	scene, err := s.view.SceneByVROMStart(start)
	if err != nil {
		return nil, lookupError(err, "scene", start)
	}
	return scene, nil
}

// Room returns the room starting at start.
func (s *CatalogService) Room(_ context.Context, start uint32) (*rom.Room, error) {
	room, err := s.view.RoomByVROMStart(start)
	if err != nil {
		return nil, lookupError(err, "room", start)
	}
	return room, nil
}

// Messages returns every message in table order.
func (s *CatalogService) Messages(_ context.Context) ([]rom.Message, error) {
	return slices.Clone(s.view.Messages), nil
}

// ColorMap returns the PNG color map of the ROM.
func (s *CatalogService) ColorMap(ctx context.Context) ([]byte, error) {
	png, err := s.colorMaps.Get(ctx, s.view)
	if err != nil {
		return nil, apperrors.WrapContext(err, apperrors.ErrCodeInternal, "color map")
	}
	return png, nil
}

func lookupError(err error, kind string, start uint32) error {
	if rom.IsNotFound(err) {
		return apperrors.Wrapf(err, apperrors.ErrCodeNotFound, "no %s starts at 0x%08X", kind, start)
	}
	return fmt.Errorf("lookup %s: %w", kind, err)
}
