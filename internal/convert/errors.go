package convert

import (
	"errors"
	"fmt"

	"github.com/roach88/seebinum/internal/ir"
)

// Error is returned by the conversion functions.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the conversion that failed, e.g. "ReadToDouble".
	Op string

	// Type is the element type the conversion was asked to handle.
	Type ir.ElementType

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeUnsupportedType indicates an encoding with no numeric interpretation.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"

	// ErrCodeBufferTooSmall indicates the buffer is shorter than the type width.
	ErrCodeBufferTooSmall ErrorCode = "BUFFER_TOO_SMALL"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
}

// IsUnsupportedType returns true if err is an unsupported type error.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedType(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnsupportedType
	}
	return false
}

// IsBufferTooSmall returns true if err is a short buffer error.
func IsBufferTooSmall(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeBufferTooSmall
	}
	return false
}

// NewUnsupportedTypeError creates an Error for a type with no numeric interpretation.
func NewUnsupportedTypeError(op string, t ir.ElementType) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedType,
		Op:      op,
		Type:    t,
		Message: fmt.Sprintf("%s type is not supported", t),
	}
}

// NewBufferTooSmallError creates an Error for a buffer shorter than the type width.
func NewBufferTooSmallError(op string, t ir.ElementType, have int) *Error {
	return &Error{
		Code:    ErrCodeBufferTooSmall,
		Op:      op,
		Type:    t,
		Message: fmt.Sprintf("%s needs %d bytes, buffer has %d", t, ir.ByteWidth(t), have),
	}
}

// check validates t and the buffer length before any conversion.
func check(op string, t ir.ElementType, b []byte) error {
	if ir.IsComplex(t) {
		return NewUnsupportedTypeError(op, t)
	}
	if len(b) < ir.ByteWidth(t) {
		return NewBufferTooSmallError(op, t, len(b))
	}
	return nil
}
