package core

import (
	"context"

	"github.com/L-P/mme/internal/rom"
)

// ROMSummary is the identification block shown on the home page.
type ROMSummary struct {
	Name      string
	CRC1      string
	CRC2      string
	BuildTeam string `json:"Build team"`
	BuildDate string `json:"Build date"`
}

// Catalog is the read model of a loaded ROM. Lookups by VROM start return an
// errors.ErrCodeNotFound AppError when nothing starts there.
type Catalog interface {
	Summary(ctx context.Context) (*ROMSummary, error)
	Files(ctx context.Context) ([]rom.File, error)
	FileData(ctx context.Context, start uint32) ([]byte, error)
	Scenes(ctx context.Context) ([]rom.Scene, error)
	Scene(ctx context.Context, start uint32) (*rom.Scene, error)
	Room(ctx context.Context, start uint32) (*rom.Room, error)
	Messages(ctx context.Context) ([]rom.Message, error)
	ColorMap(ctx context.Context) ([]byte, error)
}
