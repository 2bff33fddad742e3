package fixed

import "fmt"

// Format is the bit split of a fixed-point encoding. IntegerBits includes the
// sign bit, so IntegerBits + FractionalBits == StorageBits.
type Format struct {
	StorageBits    uint
	IntegerBits    uint
	FractionalBits uint
}

// Predefined formats.
var (
	Q12_12 = mustFormat(24, 12, 12)
	Q16_16 = mustFormat(32, 16, 16)
	Q8_24  = mustFormat(32, 8, 24)
)

// mustFormat builds a Format and panics if it breaks the bit split invariants.
func mustFormat(storage, integer, fractional uint) Format {
	f := Format{StorageBits: storage, IntegerBits: integer, FractionalBits: fractional}
	if err := f.Validate(); err != nil {
		panic(fmt.Sprintf("fixed: invalid format %s: %v", f, err))
	}
	return f
}

// Validate checks the format invariants.
// Storage is limited to 32 bits so products fit in an int64 before rescaling.
func (f Format) Validate() error {
	if f.StorageBits == 0 || f.StorageBits > 32 {
		return fmt.Errorf("storage width %d out of range [1, 32]", f.StorageBits)
	}
	if f.IntegerBits+f.FractionalBits != f.StorageBits {
		return fmt.Errorf("integer bits %d + fractional bits %d != storage bits %d",
			f.IntegerBits, f.FractionalBits, f.StorageBits)
	}
	return nil
}

// StorageBytes returns the number of bytes in the serialized form.
func (f Format) StorageBytes() int {
	return int(f.StorageBits+7) / 8
}

// String returns the Q notation of f, e.g. "Q16.16".
func (f Format) String() string {
	return fmt.Sprintf("Q%d.%d", f.IntegerBits, f.FractionalBits)
}

// scale returns 2^FractionalBits.
func (f Format) scale() float64 {
	return float64(int64(1) << f.FractionalBits)
}

// wrap truncates v to the storage width and sign-extends from the top storage bit.
func (f Format) wrap(v int64) int64 {
	shift := 64 - f.StorageBits
	return v << shift >> shift
}
