package bytecode

import (
	"math"
	"strconv"
)

// Fixed is a signed fixed point number with 10 fractional bits (22.10).
type Fixed int32

const fixedFracBits = 10

// FixedOne is 1.0 as a fixed point number.
const FixedOne Fixed = 1 << fixedFracBits

// FixedFromInt converts an integer.
func FixedFromInt(n int) Fixed {
	return Fixed(n << fixedFracBits)
}

// FixedFromFloat converts a float, rounding to the nearest representable value.
// Values outside the representable range are clamped.
func FixedFromFloat(f float64) Fixed {
	x := math.Round(f * float64(FixedOne))
	if x > math.MaxInt32 {
		return Fixed(math.MaxInt32)
	} else if x < math.MinInt32 {
		return Fixed(math.MinInt32)
	}
	return Fixed(x)
}

// Float returns x as a float.
func (x Fixed) Float() float64 {
	return float64(x) / float64(FixedOne)
}

// Int returns the integral part of x, truncated towards zero.
func (x Fixed) Int() int {
	if x < 0 {
		return -int(-x >> fixedFracBits)
	}
	return int(x >> fixedFracBits)
}

func (x Fixed) String() string {
	return strconv.FormatFloat(x.Float(), 'f', -1, 64)
}
