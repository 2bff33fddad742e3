// Package fixed implements Q-format fixed-point numbers.
//
// A Number is a signed integer scaled by 2^FractionalBits and stored in
// StorageBits bits, which need not be byte aligned (Q12.12 uses 24 bits).
// The scaled integer is held in an int64 and is always sign-extended from
// bit StorageBits-1, so every operation re-wraps its result to the storage
// width before returning.
package fixed
