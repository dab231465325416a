package format

import (
	"math"
	"math/big"
	"strconv"
)

// byteUnits is the binary unit ladder used by HumanizeBytes. Index 6 is
// labelled ZiB and index 7 YiB; values past the last unit stay in YiB.
var byteUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "ZiB", "YiB"}

const (
	byteStep = 1024
	zeroSize = "0 B"
)

// exponentThreshold is where shortest-decimal output switches to exponent form.
const exponentThreshold = 1e21

// HumanizeBytes scales a byte count to the largest unit that keeps it at or
// above 1, rounds it to two decimals and prints it without trailing zeros:
// 1024 is "1 KiB", 1536 is "1.5 KiB". Zero is "0 B". Non-numbers fail with a
// *TypeConversionError; negative or non-finite numbers with a *DomainError.
func HumanizeBytes(v any) (string, error) {
	f, ok := resolveNumber(v).float64()
	if !ok {
		return "", &TypeConversionError{Filter: FilterHumanizeBytes, Value: v}
	}
	return humanize(f, v)
}

// Bytes is the typed form of HumanizeBytes.
func Bytes[T Number](v T) (string, error) {
	return humanize(float64(v), v)
}

// UnitIndex returns the position in the unit ladder HumanizeBytes picks for f:
// floor(log(f) / log(1024)) clamped to the ladder. Just below a power of 1024
// the log ratio can round up, so 2^50-1 lands on PiB and prints as "1 PiB".
// Exact powers of 1024 always land on their own unit. f must be finite.
func UnitIndex(f float64) int {
	last := len(byteUnits) - 1
	if f <= 0 {
		return 0
	}

	i := int(math.Floor(math.Log(f) / math.Log(byteStep)))
	if i < last && f >= math.Ldexp(1, 10*(i+1)) {
		i++
	}
	return min(max(i, 0), last)
}

func humanize(f float64, orig any) (string, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return "", &DomainError{Filter: FilterHumanizeBytes, Value: orig, Reason: "not finite"}
	case f < 0:
		return "", &DomainError{Filter: FilterHumanizeBytes, Value: orig, Reason: "negative"}
	case f == 0:
		return zeroSize, nil
	}

	i := UnitIndex(f)
	// Dividing by a power of two is exact, so this equals f / 1024^i.
	scaled := math.Ldexp(f, -10*i)

	return formatShortest(roundHundredths(scaled)) + " " + byteUnits[i], nil
}

// roundHundredths rounds x >= 0 to two decimals, ties away from zero, working
// on the exact binary value of x rather than on x*100.
func roundHundredths(x float64) float64 {
	r := new(big.Rat).SetFloat64(x)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))

	n := new(big.Int).Quo(r.Num(), r.Denom())
	out, _ := new(big.Rat).SetFrac(n, big.NewInt(100)).Float64()
	return out
}

// formatShortest prints the shortest decimal that round-trips to f, so 1.50
// prints as 1.5 and 1.00 as 1.
func formatShortest(f float64) string {
	if f >= exponentThreshold {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
