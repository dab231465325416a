package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	var nilPtr *int
	var nilSlice []byte
	one := 1

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"zero", 0, "f"},
		{"one", 1, "t"},
		{"empty string", "", "f"},
		{"string", "x", "t"},
		{"false", false, "f"},
		{"true", true, "t"},
		{"nil", nil, "f"},
		{"nil pointer", nilPtr, "f"},
		{"pointer", &one, "t"},
		{"nil slice", nilSlice, "f"},
		{"empty slice", []byte{}, "t"},
		{"NaN", math.NaN(), "f"},
		{"negative zero", math.Copysign(0, -1), "f"},
		{"small float", 0.1, "t"},
		{"unsigned zero", uint16(0), "f"},
		{"struct", struct{}{}, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bool(tt.value))
		})
	}
}
