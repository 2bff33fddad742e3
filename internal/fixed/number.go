package fixed

import (
	"errors"
	"math"
	"strconv"
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("fixed: division by zero")

// Number is a fixed-point value. The zero Number has a zero Format and
// should not be used for arithmetic; build values with the constructors.
type Number struct {
	raw    int64
	format Format
}

// FromFloat64 converts f by scaling with 2^FractionalBits and rounding to the
// nearest integer (halves away from zero). NaN converts to zero; values out of
// range wrap to the storage width after saturating to the int64 range.
func FromFloat64(format Format, f float64) Number {
	scaled := math.Round(f * format.scale())
	var raw int64
	switch {
	case math.IsNaN(scaled):
		raw = 0
	case scaled >= math.MaxInt64:
		raw = math.MaxInt64
	case scaled <= math.MinInt64:
		raw = math.MinInt64
	default:
		raw = int64(scaled)
	}
	return Number{raw: format.wrap(raw), format: format}
}

// FromInt64 converts an integer value, wrapping on overflow.
func FromInt64(format Format, i int64) Number {
	return Number{raw: format.wrap(i << format.FractionalBits), format: format}
}

// FromRaw builds a Number from its scaled integer storage.
func FromRaw(format Format, raw int64) Number {
	return Number{raw: format.wrap(raw), format: format}
}

// FromBytes decodes the little-endian storage bytes of a Number.
// b must hold at least format.StorageBytes() bytes.
func FromBytes(format Format, b []byte) Number {
	var u uint64
	for i := format.StorageBytes() - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return FromRaw(format, int64(u))
}

// PutBytes encodes n little-endian into b, which must hold at least
// n.Format().StorageBytes() bytes.
func (n Number) PutBytes(b []byte) {
	u := uint64(n.raw)
	for i := 0; i < n.format.StorageBytes(); i++ {
		b[i] = byte(u)
		u >>= 8
	}
}

// Format returns the bit split of n.
func (n Number) Format() Format { return n.format }

// Raw returns the scaled integer storage, sign-extended to 64 bits.
func (n Number) Raw() int64 { return n.raw }

// Float64 returns raw / 2^FractionalBits. The result is exact for every
// supported format.
func (n Number) Float64() float64 {
	return float64(n.raw) / n.format.scale()
}

// Int64 returns the integer part of n, truncated toward zero.
func (n Number) Int64() int64 {
	return n.raw / (int64(1) << n.format.FractionalBits)
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool { return n.raw == 0 }

// Add returns n + o. Both operands share a scale, so no rescale is needed.
func (n Number) Add(o Number) Number {
	return Number{raw: n.format.wrap(n.raw + o.raw), format: n.format}
}

// Sub returns n - o.
func (n Number) Sub(o Number) Number {
	return Number{raw: n.format.wrap(n.raw - o.raw), format: n.format}
}

// Mul returns n * o. The product of two scaled values carries twice the
// fractional bits, so it is shifted back by FractionalBits, rounding to nearest.
func (n Number) Mul(o Number) Number {
	product := n.raw * o.raw
	frac := n.format.FractionalBits
	if frac > 0 {
		product = (product + int64(1)<<(frac-1)) >> frac
	}
	return Number{raw: n.format.wrap(product), format: n.format}
}

// Div returns n / o, rounded to nearest with halves away from zero.
// The dividend is pre-scaled by 2^FractionalBits in 64-bit precision.
func (n Number) Div(o Number) (Number, error) {
	if o.raw == 0 {
		return Number{}, ErrDivisionByZero
	}
	num := n.raw << n.format.FractionalBits
	q := num / o.raw
	r := num % o.raw
	if 2*abs(r) >= abs(o.raw) {
		if (num < 0) != (o.raw < 0) {
			q--
		} else {
			q++
		}
	}
	return Number{raw: n.format.wrap(q), format: n.format}, nil
}

// String formats the value with the fewest digits that identify it exactly.
func (n Number) String() string {
	return strconv.FormatFloat(n.Float64(), 'g', -1, 64)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
