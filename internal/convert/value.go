package convert

import "github.com/roach88/seebinum/internal/ir"

// ToDouble is ReadToDouble applied to a Value.
func ToDouble(v ir.Value) (float64, error) {
	return ReadToDouble(v.Type, v.Bytes[:])
}

// ToInt64 is ReadToInt64 applied to a Value.
func ToInt64(v ir.Value) (int64, error) {
	return ReadToInt64(v.Type, v.Bytes[:])
}

// RawBits is ReadRawBits applied to a Value.
func RawBits(v ir.Value) (int64, error) {
	return ReadRawBits(v.Type, v.Bytes[:])
}

// FromDouble builds a Value of type t holding f.
func FromDouble(t ir.ElementType, f float64) (ir.Value, error) {
	v := ir.Value{Type: t}
	if err := WriteFromDouble(t, f, v.Bytes[:]); err != nil {
		return ir.Value{}, err
	}
	return v, nil
}

// FromInt64 builds a Value of type t holding i.
func FromInt64(t ir.ElementType, i int64) (ir.Value, error) {
	v := ir.Value{Type: t}
	if err := WriteFromInt64(t, i, v.Bytes[:]); err != nil {
		return ir.Value{}, err
	}
	return v, nil
}
