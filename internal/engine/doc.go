// Package engine performs arithmetic reductions over sequences of tagged
// numeric values.
//
// Dispatch is a closed switch over the first operand's ElementType. Each
// arithmetic-capable encoding maps to a kind: a small table of load, store
// and arithmetic functions instantiated for one concrete Go type (native
// integers and floats, half-precision floats, fixed-point numbers). The five
// reductions are written once, generically, against that table.
//
// Operands in one reduction are assumed to share the first operand's type.
// Nothing here validates that; mixing encodings gives meaningless results.
//
// Encodings without arithmetic (undefined, char8, bool8 and both complex
// types) reduce to a zero value of the same type without an error. Integer
// and fixed-point division by zero is the only failure and surfaces as a
// RuntimeError with code DIVIDE_BY_ZERO. Floating division follows IEEE 754.
//
// Everything in this package is a pure function of its inputs and safe for
// concurrent use.
package engine
