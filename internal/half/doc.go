// Package half implements the two 16-bit floating point encodings:
// IEEE 754 binary16 (Float16, 5 exponent bits, 10 mantissa bits) and
// bfloat16 (BFloat16, 8 exponent bits, 7 mantissa bits).
//
// Conversions from float64 round to nearest, ties to even, directly from the
// float64 bits. A value printed with enough digits therefore parses back to
// the exact bit pattern it was printed from, e.g. binary16 0x2C29 prints as
// 0.0650024 and 0.0650024 converts back to 0x2C29, not 0x2C28.
//
// Arithmetic is carried out in float64 and rounded back once per operation.
package half
