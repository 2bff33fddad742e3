package half

import "strconv"

// BFloat16 is a truncated-mantissa 16-bit float: the top half of a float32,
// sharing its 8-bit exponent but keeping only 7 mantissa bits.
type BFloat16 uint16

// BFloat16FromFloat64 rounds f to the nearest bfloat16 value, ties to even.
func BFloat16FromFloat64(f float64) BFloat16 {
	return BFloat16(bfloat16.encode(f))
}

func (b BFloat16) Bits() uint16 { return uint16(b) }

// Float64 returns the exact value of b.
func (b BFloat16) Float64() float64 { return bfloat16.decode(uint64(b)) }

func (b BFloat16) IsNaN() bool {
	return b&0x7F80 == 0x7F80 && b&0x007F != 0
}

func (b BFloat16) Add(o BFloat16) BFloat16 { return BFloat16FromFloat64(b.Float64() + o.Float64()) }
func (b BFloat16) Sub(o BFloat16) BFloat16 { return BFloat16FromFloat64(b.Float64() - o.Float64()) }
func (b BFloat16) Mul(o BFloat16) BFloat16 { return BFloat16FromFloat64(b.Float64() * o.Float64()) }
func (b BFloat16) Div(o BFloat16) BFloat16 { return BFloat16FromFloat64(b.Float64() / o.Float64()) }

func (b BFloat16) String() string {
	if b.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(b.Float64(), 'g', -1, 32)
}
