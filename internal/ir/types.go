package ir

// ElementType identifies the binary layout of a Value's bytes.
// Discriminants 0 through 16 follow the ONNX TensorProto data types; the
// fixed-point encodings extend that list.
type ElementType uint32

const (
	Undefined   ElementType = 0
	Float32     ElementType = 1 // mantissa:23 exponent:8 sign:1
	Uint8       ElementType = 2
	Int8        ElementType = 3
	Uint16      ElementType = 4
	Int16       ElementType = 5
	Int32       ElementType = 6
	Int64       ElementType = 7
	StringChar8 ElementType = 8 // placeholder, no numeric value
	Bool8       ElementType = 9
	Float16     ElementType = 10 // mantissa:10 exponent:5 sign:1
	Float64     ElementType = 11 // mantissa:52 exponent:11 sign:1
	Uint32      ElementType = 12
	Uint64      ElementType = 13
	Complex64   ElementType = 14
	Complex128  ElementType = 15
	Bfloat16    ElementType = 16 // mantissa:7 exponent:8 sign:1
	Fixed12_12  ElementType = 17 // 24-bit storage, 12 integer bits, 12 fractional bits
	Fixed16_16  ElementType = 18
	Fixed8_24   ElementType = 19

	// ElementTypeCount is the number of discriminants. Every registry table
	// below must have exactly this many entries.
	ElementTypeCount = 20
)

// Layout aliases spelling out the bit split.
const (
	Float16m10e5s1 = Float16
	Float16m7e8s1  = Bfloat16
)

var elementTypeNames = [...]string{
	Undefined:   "undefined",
	Float32:     "float32",
	Uint8:       "uint8",
	Int8:        "int8",
	Uint16:      "uint16",
	Int16:       "int16",
	Int32:       "int32",
	Int64:       "int64",
	StringChar8: "string8",
	Bool8:       "bool8",
	Float16:     "float16",
	Float64:     "float64",
	Uint32:      "uint32",
	Uint64:      "uint64",
	Complex64:   "complex64",
	Complex128:  "complex128",
	Bfloat16:    "bfloat16",
	Fixed12_12:  "fixed12_12",
	Fixed16_16:  "fixed16_16",
	Fixed8_24:   "fixed8_24",
}

var byteWidths = [...]uint8{
	Undefined:   0,
	Float32:     4,
	Uint8:       1,
	Int8:        1,
	Uint16:      2,
	Int16:       2,
	Int32:       4,
	Int64:       8,
	StringChar8: 0,
	Bool8:       1,
	Float16:     2,
	Float64:     8,
	Uint32:      4,
	Uint64:      8,
	Complex64:   8,
	Complex128:  16,
	Bfloat16:    2,
	Fixed12_12:  3,
	Fixed16_16:  4,
	Fixed8_24:   4,
}

var fractionalTypes = [...]bool{
	Float32:    true,
	Float16:    true,
	Float64:    true,
	Complex64:  true,
	Complex128: true,
	Bfloat16:   true,
	Fixed12_12: true,
	Fixed16_16: true,
	Fixed8_24:  true,
}

var signedTypes = [...]bool{
	Float32:    true,
	Int8:       true,
	Int16:      true,
	Int32:      true,
	Int64:      true,
	Float16:    true,
	Float64:    true,
	Complex64:  true,
	Complex128: true,
	Bfloat16:   true,
	Fixed12_12: true,
	Fixed16_16: true,
	Fixed8_24:  true,
}

// Compile-time table length checks. Indexing a one-element array with a
// non-zero constant fails to compile.
var (
	_ = [1]struct{}{}[len(elementTypeNames)-ElementTypeCount]
	_ = [1]struct{}{}[len(byteWidths)-ElementTypeCount]
	_ = [1]struct{}{}[len(fractionalTypes)-ElementTypeCount]
	_ = [1]struct{}{}[len(signedTypes)-ElementTypeCount]
)

// index maps out-of-range tags onto Undefined.
func index(t ElementType) ElementType {
	if t >= ElementTypeCount {
		return Undefined
	}
	return t
}

// ByteWidth returns the storage size of t in bytes.
// StringChar8 and Undefined report 0.
func ByteWidth(t ElementType) int {
	return int(byteWidths[index(t)])
}

// IsFractional reports whether t can hold non-integer values.
func IsFractional(t ElementType) bool {
	return fractionalTypes[index(t)]
}

// IsSigned reports whether t can hold negative values.
func IsSigned(t ElementType) bool {
	return signedTypes[index(t)]
}

// Name returns the display name of t.
func Name(t ElementType) string {
	return elementTypeNames[index(t)]
}

// String implements fmt.Stringer.
func (t ElementType) String() string {
	return Name(t)
}

// IsComplex reports whether t is one of the complex encodings, which have
// no numeric interpretation in seebinum.
func IsComplex(t ElementType) bool {
	return t == Complex64 || t == Complex128
}

// IsArithmetic reports whether the operation performer can dispatch on t.
func IsArithmetic(t ElementType) bool {
	switch t {
	case Undefined, StringChar8, Bool8, Complex64, Complex128:
		return false
	}
	return t < ElementTypeCount
}

// typeKeywords lists every accepted spelling for LookupElementType.
var typeKeywords = map[string]ElementType{
	"i8":         Int8,
	"int8":       Int8,
	"ui8":        Uint8,
	"uint8":      Uint8,
	"i16":        Int16,
	"int16":      Int16,
	"ui16":       Uint16,
	"uint16":     Uint16,
	"i32":        Int32,
	"int32":      Int32,
	"ui32":       Uint32,
	"uint32":     Uint32,
	"i64":        Int64,
	"int64":      Int64,
	"ui64":       Uint64,
	"uint64":     Uint64,
	"f16":        Float16,
	"float16":    Float16,
	"f16m7e8s1":  Bfloat16,
	"bfloat16":   Bfloat16,
	"f32":        Float32,
	"float32":    Float32,
	"f64":        Float64,
	"float64":    Float64,
	"fixed12_12": Fixed12_12,
	"fixed16_16": Fixed16_16,
	"fixed8_24":  Fixed8_24,
}

// LookupElementType resolves a type keyword such as "f16" or "fixed8_24".
// Only the numeric encodings a user can select are recognized.
func LookupElementType(name string) (ElementType, bool) {
	t, ok := typeKeywords[name]
	return t, ok
}

// NumericTypes lists the encodings shown by the listing views, in display order.
var NumericTypes = []ElementType{
	Uint8, Uint16, Uint32, Uint64,
	Int8, Int16, Int32, Int64,
	Float16, Bfloat16, Float32, Float64,
	Fixed12_12, Fixed16_16, Fixed8_24,
}
