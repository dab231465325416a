package colormap

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-P/mme/internal/rom/romtest"
)

func pixelAt(offset int) (int, int) {
	word := offset / wordSize
	return word % Side, word / Side
}

func TestRender(t *testing.T) {
	v := romtest.View(t)
	img := Render(v)

	require.Equal(t, Side, img.Bounds().Dx())
	require.Equal(t, Side, img.Bounds().Dy())

	tests := []struct {
		name   string
		offset int
		want   color.NRGBA
	}{
		{"file data", 0, color.NRGBA{B: 0xFF, A: 0xFF}},
		{"zero word in a file", romtest.SceneEnd - 4, color.NRGBA{B: 0x7F, A: 0xFF}},
		{"unmapped zero word", romtest.UnusedStart, color.NRGBA{R: 0x7F, B: 0x7F, A: 0xFF}},
		{"scene header", romtest.SceneStart, color.NRGBA{B: 0xFF, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := pixelAt(tt.offset)
			assert.Equal(t, tt.want, img.NRGBAAt(x, y))
		})
	}
}

func TestGenerate(t *testing.T) {
	v := romtest.View(t)

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, v))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Side, img.Bounds().Dx())
}
