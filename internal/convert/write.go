package convert

import (
	"math"

	"github.com/roach88/seebinum/internal/fixed"
	"github.com/roach88/seebinum/internal/half"
	"github.com/roach88/seebinum/internal/ir"
)

// WriteFromDouble stores v into out using the target's native rounding.
//
// Float32 and Float64 round to nearest even as Go conversions do. Float16 and
// Bfloat16 round to nearest even directly from the float64; any other rule
// produces values that do not survive a print/parse round trip. Integer
// targets truncate toward zero, saturate to the int64 range and then narrow
// by dropping high bits. Fixed-point targets round to the nearest step.
func WriteFromDouble(t ir.ElementType, v float64, out []byte) error {
	if err := check("WriteFromDouble", t, out); err != nil {
		return err
	}

	switch t {
	case ir.Float32:
		le.PutUint32(out, math.Float32bits(float32(v)))
	case ir.Uint8, ir.Int8, ir.Uint16, ir.Int16, ir.Int32, ir.Int64, ir.Uint32:
		putInt(out, ir.ByteWidth(t), uint64(truncToInt64(v)))
	case ir.Uint64:
		if v >= two63 && v < two64 {
			le.PutUint64(out, uint64(v))
		} else {
			le.PutUint64(out, uint64(truncToInt64(v)))
		}
	case ir.Bool8:
		out[0] = boolOf(v != 0)
	case ir.Float16:
		le.PutUint16(out, half.Float16FromFloat64(v).Bits())
	case ir.Bfloat16:
		le.PutUint16(out, half.BFloat16FromFloat64(v).Bits())
	case ir.Float64:
		le.PutUint64(out, math.Float64bits(v))
	case ir.Fixed12_12:
		fixed.FromFloat64(fixed.Q12_12, v).PutBytes(out)
	case ir.Fixed16_16:
		fixed.FromFloat64(fixed.Q16_16, v).PutBytes(out)
	case ir.Fixed8_24:
		fixed.FromFloat64(fixed.Q8_24, v).PutBytes(out)
	}
	return nil
}

// WriteFromInt64 stores v into out. Integer targets keep the low bits;
// floating targets round to nearest even; fixed-point targets wrap.
func WriteFromInt64(t ir.ElementType, v int64, out []byte) error {
	if err := check("WriteFromInt64", t, out); err != nil {
		return err
	}

	switch t {
	case ir.Float32:
		le.PutUint32(out, math.Float32bits(float32(v)))
	case ir.Uint8, ir.Int8, ir.Uint16, ir.Int16, ir.Int32, ir.Int64, ir.Uint32, ir.Uint64:
		putInt(out, ir.ByteWidth(t), uint64(v))
	case ir.Bool8:
		out[0] = boolOf(v != 0)
	case ir.Float16:
		le.PutUint16(out, half.Float16FromFloat64(float64(v)).Bits())
	case ir.Bfloat16:
		le.PutUint16(out, half.BFloat16FromFloat64(float64(v)).Bits())
	case ir.Float64:
		le.PutUint64(out, math.Float64bits(float64(v)))
	case ir.Fixed12_12:
		fixed.FromInt64(fixed.Q12_12, v).PutBytes(out)
	case ir.Fixed16_16:
		fixed.FromInt64(fixed.Q16_16, v).PutBytes(out)
	case ir.Fixed8_24:
		fixed.FromInt64(fixed.Q8_24, v).PutBytes(out)
	}
	return nil
}

// putInt writes the low width bytes of u.
func putInt(out []byte, width int, u uint64) {
	switch width {
	case 1:
		out[0] = byte(u)
	case 2:
		le.PutUint16(out, uint16(u))
	case 4:
		le.PutUint32(out, uint32(u))
	case 8:
		le.PutUint64(out, u)
	}
}

func boolOf(b bool) byte {
	if b {
		return 1
	}
	return 0
}
