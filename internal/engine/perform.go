package engine

import "github.com/roach88/seebinum/internal/ir"

// Perform reduces values with op and returns the result, tagged with the
// first operand's type.
//
// An empty operand list returns the zero Value. None, and encodings that have
// no arithmetic, return a zero value of the first operand's type.
func Perform(op Operation, values []ir.Value) (ir.Value, error) {
	if len(values) == 0 {
		return ir.Value{}, nil
	}
	t := values[0].Type
	result := ir.Value{Type: t}

	var err error
	switch t {
	case ir.Uint8:
		err = apply(uint8Kind, op, values, &result)
	case ir.Uint16:
		err = apply(uint16Kind, op, values, &result)
	case ir.Uint32:
		err = apply(uint32Kind, op, values, &result)
	case ir.Uint64:
		err = apply(uint64Kind, op, values, &result)
	case ir.Int8:
		err = apply(int8Kind, op, values, &result)
	case ir.Int16:
		err = apply(int16Kind, op, values, &result)
	case ir.Int32:
		err = apply(int32Kind, op, values, &result)
	case ir.Int64:
		err = apply(int64Kind, op, values, &result)
	case ir.Float16:
		err = apply(float16Kind, op, values, &result)
	case ir.Bfloat16:
		err = apply(bfloat16Kind, op, values, &result)
	case ir.Float32:
		err = apply(float32Kind, op, values, &result)
	case ir.Float64:
		err = apply(float64Kind, op, values, &result)
	case ir.Fixed12_12:
		err = apply(fixed12x12Kind, op, values, &result)
	case ir.Fixed16_16:
		err = apply(fixed16x16Kind, op, values, &result)
	case ir.Fixed8_24:
		err = apply(fixed8x24Kind, op, values, &result)
	case ir.Undefined, ir.Bool8, ir.StringChar8, ir.Complex64, ir.Complex128:
		// No arithmetic: typed zero.
	}
	if err != nil {
		return ir.Value{Type: t}, divideByZero(op, t, err)
	}
	return result, nil
}

// apply runs the reduction and stores its result into out.
func apply[T any](k kind[T], op Operation, values []ir.Value, out *ir.Value) error {
	v, err := reduce(k, op, values)
	if err != nil {
		return err
	}
	k.store(v, out.Bytes[:])
	return nil
}

// reduce folds values with op using the arithmetic of k.
func reduce[T any](k kind[T], op Operation, values []ir.Value) (T, error) {
	n := len(values)
	at := func(i int) T { return k.load(values[i].Bytes[:]) }

	switch op {
	case Add:
		acc := k.zero
		for i := 0; i < n; i++ {
			acc = k.add(acc, at(i))
		}
		return acc, nil

	case Subtract:
		if n == 0 {
			return k.zero, nil
		}
		acc := at(0)
		for i := 1; i < n; i++ {
			acc = k.sub(acc, at(i))
		}
		return acc, nil

	case Multiply:
		acc := k.one
		for i := 0; i < n; i++ {
			acc = k.mul(acc, at(i))
		}
		return acc, nil

	case Divide:
		if n == 0 {
			return k.zero, nil
		}
		acc := at(0)
		for i := 1; i < n; i++ {
			var err error
			if acc, err = k.div(acc, at(i)); err != nil {
				return k.zero, err
			}
		}
		return acc, nil

	case Dot:
		// Pairs are multiplied and summed; an unpaired last operand is
		// added as is.
		acc := k.zero
		i := 0
		for ; i+1 < n; i += 2 {
			acc = k.add(acc, k.mul(at(i), at(i+1)))
		}
		if i < n {
			acc = k.add(acc, at(i))
		}
		return acc, nil
	}
	return k.zero, nil
}
