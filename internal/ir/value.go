package ir

// Value is a raw byte buffer tagged with its encoding.
//
// Only the first ByteWidth(Type) bytes are meaningful (capped at ValueBytes).
// Values are copied by value and never mutated once produced.
type Value struct {
	Bytes [ValueBytes]byte
	Type  ElementType
}

// NewValue builds a Value of type t from the leading bytes of b.
// Extra bytes beyond the type width are ignored.
func NewValue(t ElementType, b []byte) Value {
	v := Value{Type: t}
	copy(v.Bytes[:v.Width()], b)
	return v
}

// Width returns the number of meaningful bytes in v.
func (v Value) Width() int {
	return min(ByteWidth(v.Type), ValueBytes)
}

// Data returns a copy of the meaningful bytes of v.
func (v Value) Data() []byte {
	out := make([]byte, v.Width())
	copy(out, v.Bytes[:])
	return out
}

// IsZero reports whether v is the zero Value (Undefined, all bytes zero).
func (v Value) IsZero() bool {
	return v == Value{}
}
