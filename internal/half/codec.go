package half

import "math"

const (
	f64MantBits = 52
	f64ExpMask  = 0x7FF
	f64Bias     = 1023
)

// layout describes a small binary floating point format.
type layout struct {
	expBits  uint
	mantBits uint
}

func (l layout) bias() int        { return 1<<(l.expBits-1) - 1 }
func (l layout) maxExp() uint64   { return 1<<l.expBits - 1 }
func (l layout) mantMask() uint64 { return 1<<l.mantBits - 1 }
func (l layout) signBit() uint64  { return 1 << (l.expBits + l.mantBits) }
func (l layout) inf() uint64      { return l.maxExp() << l.mantBits }

var (
	binary16 = layout{expBits: 5, mantBits: 10}
	bfloat16 = layout{expBits: 8, mantBits: 7}
)

// roundBits shifts m right by shift, rounding to nearest with ties to even.
// Any carry out of the mantissa propagates into the exponent field, which
// is exactly the behaviour wanted for the encoded result.
func roundBits(m uint64, shift uint) uint64 {
	if shift == 0 {
		return m
	}
	if shift > 63 {
		return 0
	}
	q := m >> shift
	rem := m & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rem > halfway || (rem == halfway && q&1 == 1) {
		q++
	}
	return q
}

// encode converts f to the bit pattern of layout l.
func (l layout) encode(f float64) uint64 {
	bits := math.Float64bits(f)
	var sign uint64
	if bits>>63 != 0 {
		sign = l.signBit()
	}
	exp := int(bits>>f64MantBits) & f64ExpMask
	mant := bits & (1<<f64MantBits - 1)

	if exp == f64ExpMask {
		if mant == 0 {
			return sign | l.inf()
		}
		// Keep the top payload bits and force a quiet NaN.
		payload := mant >> (f64MantBits - l.mantBits)
		return sign | l.inf() | 1<<(l.mantBits-1) | payload
	}
	if exp == 0 {
		// float64 subnormals are far below the smallest subnormal of either layout.
		return sign
	}

	e := exp - f64Bias
	m := mant | 1<<f64MantBits
	minExp := 1 - l.bias()

	if e > l.bias() {
		return sign | l.inf()
	}
	if e >= minExp {
		biased := uint64(e+l.bias()) << l.mantBits
		shift := uint(f64MantBits - l.mantBits)
		// roundBits keeps the implicit bit; drop it before merging the exponent.
		r := roundBits(m, shift) - 1<<l.mantBits
		return sign | (biased + r)
	}

	// Subnormal result: value = q * 2^(minExp - mantBits).
	shift := f64MantBits + minExp - int(l.mantBits) - e
	if shift > f64MantBits+2 {
		return sign
	}
	return sign | roundBits(m, uint(shift))
}

// decode converts a bit pattern of layout l to float64. The conversion is exact.
func (l layout) decode(h uint64) float64 {
	neg := h&l.signBit() != 0
	exp := (h >> l.mantBits) & l.maxExp()
	mant := h & l.mantMask()

	var f float64
	switch exp {
	case 0:
		f = math.Ldexp(float64(mant), 1-l.bias()-int(l.mantBits))
	case l.maxExp():
		if mant != 0 {
			bits := uint64(f64ExpMask)<<f64MantBits | mant<<(f64MantBits-l.mantBits)
			if neg {
				bits |= 1 << 63
			}
			return math.Float64frombits(bits)
		}
		f = math.Inf(1)
	default:
		f = math.Ldexp(float64(mant|1<<l.mantBits), int(exp)-l.bias()-int(l.mantBits))
	}
	if neg {
		return -f
	}
	return f
}
