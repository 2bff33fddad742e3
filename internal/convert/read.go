package convert

import (
	"encoding/binary"
	"math"

	"github.com/roach88/seebinum/internal/fixed"
	"github.com/roach88/seebinum/internal/half"
	"github.com/roach88/seebinum/internal/ir"
)

var le = binary.LittleEndian

// ReadToDouble converts the value in b to the nearest float64.
// Bool8 reads as 0 or 1; StringChar8 reads as 0.
func ReadToDouble(t ir.ElementType, b []byte) (float64, error) {
	if err := check("ReadToDouble", t, b); err != nil {
		return 0, err
	}

	switch t {
	case ir.Float32:
		return float64(math.Float32frombits(le.Uint32(b))), nil
	case ir.Uint8:
		return float64(b[0]), nil
	case ir.Int8:
		return float64(int8(b[0])), nil
	case ir.Uint16:
		return float64(le.Uint16(b)), nil
	case ir.Int16:
		return float64(int16(le.Uint16(b))), nil
	case ir.Int32:
		return float64(int32(le.Uint32(b))), nil
	case ir.Int64:
		return float64(int64(le.Uint64(b))), nil
	case ir.Bool8:
		return boolByte(b[0]), nil
	case ir.Float16:
		return half.Float16(le.Uint16(b)).Float64(), nil
	case ir.Bfloat16:
		return half.BFloat16(le.Uint16(b)).Float64(), nil
	case ir.Float64:
		return math.Float64frombits(le.Uint64(b)), nil
	case ir.Uint32:
		return float64(le.Uint32(b)), nil
	case ir.Uint64:
		return float64(le.Uint64(b)), nil
	case ir.Fixed12_12:
		return fixed.FromBytes(fixed.Q12_12, b).Float64(), nil
	case ir.Fixed16_16:
		return fixed.FromBytes(fixed.Q16_16, b).Float64(), nil
	case ir.Fixed8_24:
		return fixed.FromBytes(fixed.Q8_24, b).Float64(), nil
	}

	// Undefined, StringChar8 and unknown tags have no numeric value.
	return 0, nil
}

// ReadToInt64 converts the value in b to an int64, truncating floating and
// fixed-point values toward zero. Floating values outside the int64 range
// saturate; NaN reads as 0. Uint64 values above MaxInt64 wrap.
func ReadToInt64(t ir.ElementType, b []byte) (int64, error) {
	if err := check("ReadToInt64", t, b); err != nil {
		return 0, err
	}

	switch t {
	case ir.Float32, ir.Float16, ir.Bfloat16, ir.Float64:
		f, err := ReadToDouble(t, b)
		if err != nil {
			return 0, err
		}
		return truncToInt64(f), nil
	case ir.Uint8:
		return int64(b[0]), nil
	case ir.Int8:
		return int64(int8(b[0])), nil
	case ir.Uint16:
		return int64(le.Uint16(b)), nil
	case ir.Int16:
		return int64(int16(le.Uint16(b))), nil
	case ir.Int32:
		return int64(int32(le.Uint32(b))), nil
	case ir.Int64, ir.Uint64:
		return int64(le.Uint64(b)), nil
	case ir.Bool8:
		return int64(boolByte(b[0])), nil
	case ir.Uint32:
		return int64(le.Uint32(b)), nil
	case ir.Fixed12_12:
		return fixed.FromBytes(fixed.Q12_12, b).Int64(), nil
	case ir.Fixed16_16:
		return fixed.FromBytes(fixed.Q16_16, b).Int64(), nil
	case ir.Fixed8_24:
		return fixed.FromBytes(fixed.Q8_24, b).Int64(), nil
	}
	return 0, nil
}

// ReadRawBits reinterprets the storage bits of b (not the numeric value) as a
// signed integer of the type's width, sign-extended to 64 bits. Unsigned
// integer types are zero-extended. For fixed-point types this is the scaled
// integer storage.
//
// Used for unit-in-last-place comparisons and for hex/binary display.
func ReadRawBits(t ir.ElementType, b []byte) (int64, error) {
	if err := check("ReadRawBits", t, b); err != nil {
		return 0, err
	}

	switch t {
	case ir.Uint8:
		return int64(b[0]), nil
	case ir.Int8:
		return int64(int8(b[0])), nil
	case ir.Uint16:
		return int64(le.Uint16(b)), nil
	case ir.Int16, ir.Float16, ir.Bfloat16:
		return int64(int16(le.Uint16(b))), nil
	case ir.Int32, ir.Float32, ir.Fixed16_16, ir.Fixed8_24:
		return int64(int32(le.Uint32(b))), nil
	case ir.Uint32:
		return int64(le.Uint32(b)), nil
	case ir.Int64, ir.Uint64, ir.Float64:
		return int64(le.Uint64(b)), nil
	case ir.Bool8:
		return int64(boolByte(b[0])), nil
	case ir.Fixed12_12:
		return fixed.FromBytes(fixed.Q12_12, b).Raw(), nil
	}
	return 0, nil
}

func boolByte(b byte) float64 {
	if b != 0 {
		return 1
	}
	return 0
}

const (
	two63 = float64(1 << 63)
	two64 = float64(1 << 64)
)

// truncToInt64 truncates f toward zero, saturating at the int64 range.
func truncToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= two63:
		return math.MaxInt64
	case f < -two63:
		return math.MinInt64
	}
	return int64(f)
}
