package engine

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/roach88/seebinum/internal/fixed"
	"github.com/roach88/seebinum/internal/half"
)

var le = binary.LittleEndian

// kind is the arithmetic of one concrete encoding, expressed over the Go
// type T that holds its values.
type kind[T any] struct {
	load  func(b []byte) T
	store func(v T, out []byte)
	zero  T
	one   T
	add   func(a, b T) T
	sub   func(a, b T) T
	mul   func(a, b T) T
	div   func(a, b T) (T, error)
}

// intKind builds the kind of a native integer. Overflow wraps.
func intKind[T constraints.Integer](load func([]byte) T, store func(T, []byte)) kind[T] {
	return kind[T]{
		load:  load,
		store: store,
		one:   1,
		add:   func(a, b T) T { return a + b },
		sub:   func(a, b T) T { return a - b },
		mul:   func(a, b T) T { return a * b },
		div: func(a, b T) (T, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		},
	}
}

// floatKind builds the kind of a native float. Division never fails.
func floatKind[T constraints.Float](load func([]byte) T, store func(T, []byte)) kind[T] {
	return kind[T]{
		load:  load,
		store: store,
		one:   1,
		add:   func(a, b T) T { return a + b },
		sub:   func(a, b T) T { return a - b },
		mul:   func(a, b T) T { return a * b },
		div:   func(a, b T) (T, error) { return a / b, nil },
	}
}

func fixedKind(format fixed.Format) kind[fixed.Number] {
	return kind[fixed.Number]{
		load:  func(b []byte) fixed.Number { return fixed.FromBytes(format, b) },
		store: func(v fixed.Number, out []byte) { v.PutBytes(out) },
		zero:  fixed.FromRaw(format, 0),
		one:   fixed.FromInt64(format, 1),
		add:   fixed.Number.Add,
		sub:   fixed.Number.Sub,
		mul:   fixed.Number.Mul,
		div:   fixed.Number.Div,
	}
}

var (
	uint8Kind = intKind(
		func(b []byte) uint8 { return b[0] },
		func(v uint8, out []byte) { out[0] = v },
	)
	uint16Kind = intKind(le.Uint16, func(v uint16, out []byte) { le.PutUint16(out, v) })
	uint32Kind = intKind(le.Uint32, func(v uint32, out []byte) { le.PutUint32(out, v) })
	uint64Kind = intKind(le.Uint64, func(v uint64, out []byte) { le.PutUint64(out, v) })

	int8Kind = intKind(
		func(b []byte) int8 { return int8(b[0]) },
		func(v int8, out []byte) { out[0] = byte(v) },
	)
	int16Kind = intKind(
		func(b []byte) int16 { return int16(le.Uint16(b)) },
		func(v int16, out []byte) { le.PutUint16(out, uint16(v)) },
	)
	int32Kind = intKind(
		func(b []byte) int32 { return int32(le.Uint32(b)) },
		func(v int32, out []byte) { le.PutUint32(out, uint32(v)) },
	)
	int64Kind = intKind(
		func(b []byte) int64 { return int64(le.Uint64(b)) },
		func(v int64, out []byte) { le.PutUint64(out, uint64(v)) },
	)

	float32Kind = floatKind(
		func(b []byte) float32 { return math.Float32frombits(le.Uint32(b)) },
		func(v float32, out []byte) { le.PutUint32(out, math.Float32bits(v)) },
	)
	float64Kind = floatKind(
		func(b []byte) float64 { return math.Float64frombits(le.Uint64(b)) },
		func(v float64, out []byte) { le.PutUint64(out, math.Float64bits(v)) },
	)

	float16Kind = kind[half.Float16]{
		load:  func(b []byte) half.Float16 { return half.Float16(le.Uint16(b)) },
		store: func(v half.Float16, out []byte) { le.PutUint16(out, v.Bits()) },
		one:   half.Float16FromFloat64(1),
		add:   half.Float16.Add,
		sub:   half.Float16.Sub,
		mul:   half.Float16.Mul,
		div:   func(a, b half.Float16) (half.Float16, error) { return a.Div(b), nil },
	}
	bfloat16Kind = kind[half.BFloat16]{
		load:  func(b []byte) half.BFloat16 { return half.BFloat16(le.Uint16(b)) },
		store: func(v half.BFloat16, out []byte) { le.PutUint16(out, v.Bits()) },
		one:   half.BFloat16FromFloat64(1),
		add:   half.BFloat16.Add,
		sub:   half.BFloat16.Sub,
		mul:   half.BFloat16.Mul,
		div:   func(a, b half.BFloat16) (half.BFloat16, error) { return a.Div(b), nil },
	}

	fixed12x12Kind = fixedKind(fixed.Q12_12)
	fixed16x16Kind = fixedKind(fixed.Q16_16)
	fixed8x24Kind  = fixedKind(fixed.Q8_24)
)
