package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/engine"
	"github.com/roach88/seebinum/internal/ir"
	"github.com/roach88/seebinum/internal/render"
)

// Settings is the parse state that keywords change as they are read.
type Settings struct {
	Type ir.ElementType // preferred encoding for following numbers
	Raw  bool           // numbers are raw storage bits
	Mode render.Mode
}

// Invocation is a parsed command line.
type Invocation struct {
	Settings
	Numbers  []ir.Value
	Sequence engine.Sequence
}

// UnknownParameterError reports an argument that is neither a number nor a
// keyword.
type UnknownParameterError struct {
	Param string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Param)
}

// ParseArgs reads numbers and keywords left to right. Keywords change the
// settings used for the numbers after them; operation keywords start a new
// step over the numbers that follow.
func ParseArgs(args []string, initial Settings) (*Invocation, error) {
	inv := &Invocation{Settings: initial}

	for _, arg := range args {
		if IsNumber(arg) {
			for _, piece := range splitNumbers(arg) {
				inv.Numbers = append(inv.Numbers, convert.ParseNumber(piece, inv.Type, inv.Raw))
			}
			continue
		}
		if !inv.apply(arg) {
			return nil, &UnknownParameterError{Param: arg}
		}
	}
	inv.Sequence.Close(len(inv.Numbers))
	return inv, nil
}

// apply handles one keyword and reports whether it was recognized.
func (inv *Invocation) apply(keyword string) bool {
	if op, ok := engine.LookupOperation(keyword); ok {
		if op != engine.None {
			inv.Sequence.Begin(op, len(inv.Numbers))
		}
		return true
	}
	if t, ok := ir.LookupElementType(keyword); ok {
		inv.Type = t
		return true
	}

	switch keyword {
	case "raw":
		inv.Raw = true
	case "num":
		inv.Raw = false
	case "showbinary", "showbin":
		inv.Mode |= render.ShowBinary
	case "showhex":
		inv.Mode &^= render.ShowBinary
	case "showhexfloat":
		inv.Mode |= render.ShowHexFloat
	case "showdecfloat":
		inv.Mode &^= render.ShowHexFloat
	default:
		return false
	}
	return true
}

// IsNumber reports whether arg is read as numbers rather than a keyword:
// it starts with a digit, or with '-' followed by a digit.
func IsNumber(arg string) bool {
	switch {
	case arg == "":
		return false
	case isDigit(arg[0]):
		return true
	case arg[0] == '-' && len(arg) > 1 && isDigit(arg[1]):
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// splitNumbers splits a comma separated list. Empty entries read as zero,
// except a trailing one.
func splitNumbers(arg string) []string {
	pieces := strings.Split(arg, ",")
	if n := len(pieces); n > 1 && pieces[n-1] == "" {
		pieces = pieces[:n-1]
	}
	return pieces
}
