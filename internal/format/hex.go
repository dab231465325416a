package format

import (
	"strconv"
	"strings"
	"unsafe"
)

const hexPrefix = "0x"

// HexOf formats v as uppercase hexadecimal, left-padded with zeros to at least
// width digits and prefixed with 0x. Signed values print as the two's
// complement of their own width.
func HexOf[T Integer](v T, width int) string {
	bits := int(unsafe.Sizeof(v)) * 8
	return padHex(twosComplement(int64(v), bits), width)
}

// Hex is the dynamic form of HexOf. It fails with a *TypeConversionError when v
// has no integral numeric value; it does not fall back like ConditionalHex.
func Hex(v any, width int) (string, error) {
	u, ok := resolveNumber(v).bitPattern()
	if !ok {
		return "", &TypeConversionError{Filter: FilterHex, Value: v}
	}
	return padHex(u, width), nil
}

// ConditionalHex formats numbers like Hex and returns any other value
// unchanged, so it can be applied to mixed-type table cells.
func ConditionalHex(v any, width int) any {
	u, ok := resolveNumber(v).bitPattern()
	if !ok {
		return v
	}
	return padHex(u, width)
}

func padHex(u uint64, width int) string {
	digits := strings.ToUpper(strconv.FormatUint(u, 16))

	var b strings.Builder
	b.Grow(len(hexPrefix) + max(width, len(digits)))
	b.WriteString(hexPrefix)
	for i := len(digits); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return b.String()
}
