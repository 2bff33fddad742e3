package convert

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/seebinum/internal/ir"
)

// ParseNumber converts freeform text into a Value.
//
// preferred selects the encoding; ir.Undefined (or an unknown tag) asks for
// inference. When raw is set and the preferred type is fractional, the text's
// integer value is stored verbatim as the type's storage bits instead of being
// converted numerically.
//
// ParseNumber never fails. Unparseable text yields a zero value of the
// requested or inferred type, and a complex preferred type keeps a zero buffer.
func ParseNumber(text string, preferred ir.ElementType, raw bool) ir.Value {
	text = normalizeNumber(text)
	if preferred >= ir.ElementTypeCount {
		preferred = ir.Undefined
	}

	p := parseLiteral(text)

	if preferred == ir.Undefined {
		return inferValue(p)
	}

	v := ir.Value{Type: preferred}
	switch {
	case ir.IsFractional(preferred) && raw:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(p.integer()))
		return ir.NewValue(preferred, buf[:])
	case ir.IsFractional(preferred) && !p.floatOK:
		// Integer-only literals such as 0x4240 or 0b1101 do not parse as floats.
		_ = WriteFromInt64(preferred, p.integer(), v.Bytes[:])
	case ir.IsFractional(preferred):
		_ = WriteFromDouble(preferred, p.f, v.Bytes[:])
	default:
		_ = WriteFromInt64(preferred, p.integer(), v.Bytes[:])
	}
	return v
}

// literal holds both readings of a number's text.
type literal struct {
	i        int64
	intOK    bool
	unsigned bool // i only fits as uint64 and has wrapped
	f        float64
	floatOK  bool
}

// integer returns the integer reading, falling back to the truncated float
// reading ("3.7" is 3) and then to zero.
func (l literal) integer() int64 {
	if l.intOK {
		return l.i
	}
	if l.floatOK {
		return truncToInt64(l.f)
	}
	return 0
}

func parseLiteral(text string) literal {
	var l literal
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		l.i, l.intOK = i, true
	} else if u, err := strconv.ParseUint(text, 0, 64); err == nil {
		l.i, l.intOK, l.unsigned = int64(u), true, true
	}

	f, err := strconv.ParseFloat(text, 64)
	var numErr *strconv.NumError
	if err == nil || (errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)) {
		l.f, l.floatOK = f, true
	}
	return l
}

// inferValue picks an encoding for text given without a type. Every nonzero
// reading becomes Float64, preferring the decimal reading ("010" is 10) and
// falling back to the integer one for prefixed literals such as 0x4240 and
// 0b1101. Zero or unparseable text becomes a zero Uint64.
func inferValue(l literal) ir.Value {
	var f float64
	switch {
	case l.floatOK && l.f != 0:
		f = l.f
	case l.intOK && l.unsigned:
		f = float64(uint64(l.i))
	case l.intOK && l.i != 0:
		f = float64(l.i)
	default:
		return ir.Value{Type: ir.Uint64}
	}
	v, _ := FromDouble(ir.Float64, f)
	return v
}

// normalizeNumber folds compatibility characters such as fullwidth digits
// to ASCII and maps the Unicode minus sign to '-'.
func normalizeNumber(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "−", "-")
	return strings.TrimSpace(text)
}
