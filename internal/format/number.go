package format

import (
	"encoding/json"
	"math"
	"reflect"
)

// Integer is satisfied by every built-in integer type and types derived from them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by the built-in float types and types derived from them.
type Float interface {
	~float32 | ~float64
}

// Number is any integer or float.
type Number interface {
	Integer | Float
}

// numberKind tags how a dynamic value resolved.
type numberKind int

const (
	notNumber   numberKind = iota
	intNumber              // signed, carried in i with its bit size
	uintNumber             // unsigned, carried in u
	floatNumber            // carried in f
)

// number is the resolved form of a dynamic value.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
	bits int
}

// resolveNumber inspects the runtime type of v. Named numeric types
// (e.g. `type Offset uint32`) resolve like their underlying type. json.Number
// counts as numeric since it is how decoded API payloads carry numbers.
func resolveNumber(v any) number {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return number{kind: intNumber, i: i, bits: 64}
		}
		if f, err := n.Float64(); err == nil {
			return number{kind: floatNumber, f: f}
		}
		return number{}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: intNumber, i: rv.Int(), bits: int(rv.Type().Size()) * 8}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: uintNumber, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return number{kind: floatNumber, f: rv.Float()}
	default:
		return number{}
	}
}

// float64 returns the value as a float; ok is false for non-numbers.
func (n number) float64() (float64, bool) {
	switch n.kind {
	case intNumber:
		return float64(n.i), true
	case uintNumber:
		return float64(n.u), true
	case floatNumber:
		return n.f, true
	default:
		return 0, false
	}
}

// bitPattern returns the unsigned bit pattern printed by the hex filters.
// Signed values use the two's complement of their own width so an int8 of -1
// prints as 0xFF. Floats qualify only when integral and within int64/uint64.
func (n number) bitPattern() (uint64, bool) {
	switch n.kind {
	case intNumber:
		return twosComplement(n.i, n.bits), true
	case uintNumber:
		return n.u, true
	case floatNumber:
		f := n.f
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < 0 {
			if f < math.MinInt64 {
				return 0, false
			}
			return uint64(int64(f)), true
		}
		if f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	default:
		return 0, false
	}
}

func twosComplement(i int64, bits int) uint64 {
	u := uint64(i)
	if bits > 0 && bits < 64 {
		u &= 1<<uint(bits) - 1
	}
	return u
}
