package render

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/ir"
)

var le = binary.LittleEndian

// Flanks used by the listing views.
const (
	ToBinaryFlank   = " -> "
	FromBinaryFlank = " <- "
)

// ToBinaryValues writes f into each of ir.NumericTypes, in order.
func ToBinaryValues(f float64) ([]ir.Value, error) {
	values := make([]ir.Value, 0, len(ir.NumericTypes))
	for _, t := range ir.NumericTypes {
		v, err := convert.FromDouble(t, f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// FromBinaryValues reinterprets the little-endian bytes of bits as each of
// ir.NumericTypes, in order.
func FromBinaryValues(bits int64) []ir.Value {
	var buf [ir.ValueBytes]byte
	le.PutUint64(buf[:], uint64(bits))

	values := make([]ir.Value, 0, len(ir.NumericTypes))
	for _, t := range ir.NumericTypes {
		values = append(values, ir.NewValue(t, buf[:]))
	}
	return values
}

// Printer writes rendered values to w, one per line.
//
// Rows of the preferred encoding in the listing views are marked with '*'
// and drawn bold when w is a terminal that supports it.
type Printer struct {
	w      io.Writer
	mode   Mode
	marked lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Styling is detected from w, so
// buffers and pipes receive plain text.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		mode:   mode,
		marked: r.NewStyle().Bold(true),
	}
}

// Values prints each value with parenthesized raw bits. Undefined values are
// skipped.
func (p *Printer) Values(values []ir.Value) error {
	for _, v := range values {
		if v.Type == ir.Undefined {
			continue
		}
		s, err := Value(v, p.mode)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "    %s\n", s); err != nil {
			return err
		}
	}
	return nil
}

// ToBinary prints f written into every numeric encoding.
func (p *Printer) ToBinary(f float64, preferred ir.ElementType) error {
	values, err := ToBinaryValues(f)
	if err != nil {
		return err
	}
	return p.rows(values, ToBinaryFlank, preferred)
}

// FromBinary prints the low bytes of bits reinterpreted as every numeric
// encoding.
func (p *Printer) FromBinary(bits int64, preferred ir.ElementType) error {
	return p.rows(FromBinaryValues(bits), FromBinaryFlank, preferred)
}

func (p *Printer) rows(values []ir.Value, leftFlank string, preferred ir.ElementType) error {
	for _, v := range values {
		if err := p.row(v.Type, v.Bytes[:], leftFlank, preferred); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) row(t ir.ElementType, b []byte, leftFlank string, preferred ir.ElementType) error {
	s, err := Line(t, b, leftFlank, "", p.mode)
	if err != nil {
		return err
	}
	if t == preferred {
		_, err = fmt.Fprintf(p.w, "%s\n", p.marked.Render("   *"+s))
		return err
	}
	_, err = fmt.Fprintf(p.w, "    %s\n", s)
	return err
}
