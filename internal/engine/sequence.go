package engine

import (
	"fmt"

	"github.com/roach88/seebinum/internal/ir"
)

// Range is a half-open [Begin, End) span of operand indices.
type Range struct {
	Begin int
	End   int
}

// Len returns the number of operands in the range.
func (r Range) Len() int {
	if r.End < r.Begin {
		return 0
	}
	return r.End - r.Begin
}

// Step is one operation applied to a range of operands.
type Step struct {
	Op    Operation
	Range Range
}

// Sequence is an ordered list of steps over one flat operand list.
//
// Steps are built while scanning input: Begin is called when an operation
// keyword appears, with the number of operands seen so far, and Close is
// called once with the final count. Ranges come out contiguous and
// non-overlapping.
type Sequence struct {
	Steps []Step
}

// Begin ends the current step at count and opens a new, empty one for op.
func (s *Sequence) Begin(op Operation, count int) {
	s.Close(count)
	s.Steps = append(s.Steps, Step{Op: op, Range: Range{Begin: count, End: count}})
}

// Close fixes the end of the last step at count.
func (s *Sequence) Close(count int) {
	if n := len(s.Steps); n > 0 {
		s.Steps[n-1].Range.End = count
	}
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.Steps)
}

// Result is the outcome of one step.
type Result struct {
	Step     Step
	Operands []ir.Value
	Value    ir.Value
}

// StepError reports the step that failed during Run, with its operands.
type StepError struct {
	Index    int
	Step     Step
	Operands []ir.Value
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Run performs every step of seq over values, in order. It stops at the
// first failing step and returns the results gathered so far.
func Run(seq Sequence, values []ir.Value) ([]Result, error) {
	results := make([]Result, 0, len(seq.Steps))
	for i, step := range seq.Steps {
		r := step.Range
		if r.Begin < 0 || r.End > len(values) || r.Begin > r.End {
			return results, &RuntimeError{
				Code:      ErrCodeInvalidRange,
				Message:   fmt.Sprintf("step %d range [%d,%d) outside %d operands", i, r.Begin, r.End, len(values)),
				Operation: step.Op,
			}
		}
		operands := values[r.Begin:r.End]
		v, err := Perform(step.Op, operands)
		if err != nil {
			return results, &StepError{Index: i, Step: step, Operands: operands, Err: err}
		}
		results = append(results, Result{Step: step, Operands: operands, Value: v})
	}
	return results, nil
}
