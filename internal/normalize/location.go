package normalize

import (
	"math"
	"strconv"
	"strings"
)

// FixLocation parses an upstream coordinate and restores its order of
// magnitude. The portal occasionally emits coordinates missing one or more
// leading digits, shifting the value down by a power of ten; every correctly
// scaled coordinate in the operating region has a rounded magnitude of at
// least 8, so undersized values are multiplied back up. Values already in
// range are untouched. Unparseable input becomes NaN and propagates; the
// sink write for that marker fails on its own.
func FixLocation(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	if v == 0 {
		// zero never reaches magnitude 8, leave it alone
		return v
	}
	for math.Round(math.Abs(v)) < 8 {
		v *= 10
	}
	return v
}
