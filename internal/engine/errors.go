package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/seebinum/internal/ir"
)

// ErrDivisionByZero is returned (wrapped in a RuntimeError) when an integer
// operand divides by zero.
var ErrDivisionByZero = errors.New("integer division by zero")

// RuntimeError represents an error detected while performing an operation.
//
// Runtime errors include:
//   - Divide by zero: integer or fixed-point division with a zero divisor
//   - Invalid range: a sequence step addresses operands that do not exist
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// Operation is the operation being performed.
	Operation Operation

	// Type is the element type of the operands.
	Type ir.ElementType

	// Err is the underlying cause, if any.
	Err error
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeDivideByZero indicates an integer or fixed-point zero divisor.
	ErrCodeDivideByZero RuntimeErrorCode = "DIVIDE_BY_ZERO"

	// ErrCodeInvalidRange indicates a step range outside the operand list.
	ErrCodeInvalidRange RuntimeErrorCode = "INVALID_RANGE"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Type != ir.Undefined {
		return fmt.Sprintf("%s: %s (op=%s, type=%s)", e.Code, e.Message, e.Operation, e.Type)
	}
	return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Operation)
}

// Unwrap returns the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsDivideByZero returns true if the error is a division by zero.
// Uses errors.As to handle wrapped errors.
func IsDivideByZero(err error) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeDivideByZero
	}
	return false
}

// IsInvalidRange returns true if the error is an invalid step range.
func IsInvalidRange(err error) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeInvalidRange
	}
	return false
}

func divideByZero(op Operation, t ir.ElementType, cause error) *RuntimeError {
	return &RuntimeError{
		Code:      ErrCodeDivideByZero,
		Message:   "division by zero",
		Operation: op,
		Type:      t,
		Err:       cause,
	}
}
