package config

import "strings"

// ROMConfig locates the ROM image and optional side data.
type ROMConfig struct {
	// Path is the decompressed ROM image. The first command-line argument
	// takes precedence.
	Path string `env:"ROM_PATH"`

	// ActorsPath is an optional JSON actor catalog used to name room actors.
	ActorsPath string `env:"ROM_ACTORS_PATH"`

	// SkipChecksum accepts ROMs whose CRCs do not match the NTSC 1.0 release.
	SkipChecksum bool `env:"ROM_SKIP_CHECKSUM" envDefault:"false"`
}

// Sanitize trims path values.
func (r *ROMConfig) Sanitize() {
	r.Path = strings.TrimSpace(r.Path)
	r.ActorsPath = strings.TrimSpace(r.ActorsPath)
}
