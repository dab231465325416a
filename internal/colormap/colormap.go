// Package colormap renders a ROM as an image, one pixel per 32-bit word, to
// show which parts of the ROM are covered by the file table.
//
// Magenta is unknown/unmapped data, blue is files, and half intensity (eg.
// dark blue) marks zero words.
package colormap

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/L-P/mme/internal/rom"
)

// Side is the width and height of the map: 4096² 4-byte words fill 64 MiB.
const Side = 4096

const wordSize = 4

// Render paints the map of v. Pixel n covers ROM bytes [4n, 4n+4).
func Render(v *rom.View) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Side, Side))
	pix := img.Pix

	for i := 0; i < len(pix); i += wordSize {
		pix[i+0] = 0xFF // R
		pix[i+2] = 0xFF // B
		pix[i+3] = 0xFF // A, set only once
	}

	for _, f := range v.Files {
		if !f.Valid {
			continue
		}
		start := int(f.VROMStart) &^ (wordSize - 1)
		end := min(int(f.VROMEnd), len(pix))
		for i := start; i < end; i += wordSize {
			pix[i+0] = 0
			pix[i+1] = 0
			pix[i+2] = 0xFF
		}
	}

	data := v.Data()
	for i := 0; i+wordSize <= len(data) && i < len(pix); i += wordSize {
		if binary.BigEndian.Uint32(data[i:]) == 0 {
			pix[i+0] /= 2
			pix[i+1] /= 2
			pix[i+2] /= 2
		}
	}

	return img
}

// Encode writes img as a PNG, favoring speed over size.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode color map: %w", err)
	}
	return nil
}

// Generate renders and encodes the map of v to w.
func Generate(w io.Writer, v *rom.View) error {
	return Encode(w, Render(v))
}
