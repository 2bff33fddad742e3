package half

import "strconv"

// Float16 is an IEEE 754 binary16 value stored as its raw bits.
type Float16 uint16

// Float16FromFloat64 rounds f to the nearest binary16 value, ties to even.
// Values beyond the finite range become infinities.
func Float16FromFloat64(f float64) Float16 {
	return Float16(binary16.encode(f))
}

// Bits returns the raw binary16 encoding.
func (h Float16) Bits() uint16 { return uint16(h) }

// Float64 returns the exact value of h.
func (h Float16) Float64() float64 { return binary16.decode(uint64(h)) }

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x03FF != 0
}

func (h Float16) Add(o Float16) Float16 { return Float16FromFloat64(h.Float64() + o.Float64()) }
func (h Float16) Sub(o Float16) Float16 { return Float16FromFloat64(h.Float64() - o.Float64()) }
func (h Float16) Mul(o Float16) Float16 { return Float16FromFloat64(h.Float64() * o.Float64()) }
func (h Float16) Div(o Float16) Float16 { return Float16FromFloat64(h.Float64() / o.Float64()) }

// String formats h with the fewest digits that convert back to h.
func (h Float16) String() string {
	if h.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(h.Float64(), 'g', -1, 32)
}
