package format

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vromOffset uint32

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		value any
		width int
		want  string
	}{
		{"byte padded to two", 255, 2, "0xFF"},
		{"byte padded to four", 255, 4, "0x00FF"},
		{"zero", 0, 1, "0x0"},
		{"zero without width", 0, 0, "0x0"},
		{"wider than width", 0x12345, 2, "0x12345"},
		{"crc", uint32(0xDA6983E7), 8, "0xDA6983E7"},
		{"named type", vromOffset(0x00AD1000), 8, "0x00AD1000"},
		{"integral float", float64(16), 2, "0x10"},
		{"json number", json.Number("4096"), 0, "0x1000"},
		{"negative int8", int8(-1), 0, "0xFF"},
		{"negative int16", int16(-2), 0, "0xFFFE"},
		{"negative width", 10, -3, "0xA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.value, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The width argument only pads; negatives take the bit size of their own type.
func TestHex_NegativeUsesTypeSize(t *testing.T) {
	allOnes := func(bits int) string { return "0x" + strings.Repeat("F", bits/4) }

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"plain int", -1, allOnes(strconv.IntSize)},
		{"int32", int32(-1), allOnes(32)},
		{"int64", int64(-2), "0xFFFFFFFFFFFFFFFE"},
		{"negative float", float64(-1), allOnes(64)},
		{"json number", json.Number("-1"), allOnes(64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.value, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex_RejectsNonNumbers(t *testing.T) {
	for _, v := range []any{"abc", nil, true, 1.5, []int{1}} {
		_, err := Hex(v, 2)
		var convErr *TypeConversionError
		require.ErrorAs(t, err, &convErr, "value %#v", v)
		assert.Equal(t, FilterHex, convErr.Filter)
	}
}

func TestHex_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^0x[0-9A-F]+$`)
	values := []any{0, 1, 15, 16, 255, 256, 4095, uint16(0xFFFF), uint64(1) << 63, int64(-1), uint8(7)}

	for _, v := range values {
		for w := 0; w <= 16; w++ {
			got, err := Hex(v, w)
			require.NoError(t, err)
			assert.Regexp(t, pattern, got)
			assert.GreaterOrEqual(t, len(got), w+2, "Hex(%v, %d) = %q", v, w, got)
		}
	}
}

func TestHexOf(t *testing.T) {
	assert.Equal(t, "0x00FF", HexOf(uint8(255), 4))
	assert.Equal(t, "0xFFFFFFFF", HexOf(int32(-1), 0))
	assert.Equal(t, "0x0020", HexOf(vromOffset(0x20), 4))
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", HexOf(uint64(1<<64-1), 0))
}

func TestConditionalHex(t *testing.T) {
	assert.Equal(t, "abc", ConditionalHex("abc", 4))
	assert.Equal(t, "0x10", ConditionalHex(16, 2))
	assert.Equal(t, 1.5, ConditionalHex(1.5, 2))
	assert.Nil(t, ConditionalHex(nil, 2))
	assert.Equal(t, true, ConditionalHex(true, 2))
	assert.Equal(t, "0xFF", ConditionalHex(json.Number("255"), 2))
}

func TestHex_Idempotent(t *testing.T) {
	first, err := Hex(0xBEEF, 6)
	require.NoError(t, err)
	second, err := Hex(0xBEEF, 6)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, ConditionalHex(0xBEEF, 6), ConditionalHex(0xBEEF, 6))
}
