package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/ir"
)

// Mode selects how values are presented. The zero Mode shows raw bits as hex
// and fractional values as decimal.
type Mode uint32

const (
	// ShowBinary prints raw bits as binary digits instead of hex.
	ShowBinary Mode = 1 << iota
	// ShowHexFloat prints fractional values as hex-float instead of decimal.
	ShowHexFloat
)

// Default shows hex raw bits and decimal fractions.
const Default Mode = 0

// Binary reports whether raw bits print as binary.
func (m Mode) Binary() bool { return m&ShowBinary != 0 }

// HexFloat reports whether fractional values print as hex-float.
func (m Mode) HexFloat() bool { return m&ShowHexFloat != 0 }

// NameWidth is the width of the right-aligned encoding name column.
const NameWidth = 10

var nameStyle = lipgloss.NewStyle().Width(NameWidth).Align(lipgloss.Right)

// Line renders one value as "<name> <number><left><raw><right>".
// b must hold at least the encoding's width in bytes.
func Line(t ir.ElementType, b []byte, leftFlank, rightFlank string, mode Mode) (string, error) {
	number, err := Number(t, b, mode)
	if err != nil {
		return "", err
	}
	raw, err := Raw(t, b, mode)
	if err != nil {
		return "", err
	}

	var s strings.Builder
	s.WriteString(nameStyle.Render(ir.Name(t)))
	s.WriteByte(' ')
	s.WriteString(number)
	s.WriteString(leftFlank)
	s.WriteString(raw)
	s.WriteString(rightFlank)
	return s.String(), nil
}

// Value renders v with its raw bits in parentheses.
func Value(v ir.Value, mode Mode) (string, error) {
	return Line(v.Type, v.Bytes[:], "(", ")", mode)
}

// Number renders the numeric component: the value of a fractional encoding,
// or the raw bits as a signed or unsigned integer.
func Number(t ir.ElementType, b []byte, mode Mode) (string, error) {
	if ir.IsFractional(t) {
		f, err := convert.ReadToDouble(t, b)
		if err != nil {
			return "", err
		}
		if mode.HexFloat() {
			return strconv.FormatFloat(f, 'x', -1, 64), nil
		}
		return strconv.FormatFloat(f, 'g', 24, 64), nil
	}

	raw, err := convert.ReadRawBits(t, b)
	if err != nil {
		return "", err
	}
	if ir.IsSigned(t) {
		return strconv.FormatInt(raw, 10), nil
	}
	return strconv.FormatUint(uint64(raw), 10), nil
}

// Raw renders the storage bits as 0x-prefixed hex with two digits per byte,
// or as binary digits with the most significant bit first.
func Raw(t ir.ElementType, b []byte, mode Mode) (string, error) {
	raw, err := convert.ReadRawBits(t, b)
	if err != nil {
		return "", err
	}
	width := min(ir.ByteWidth(t), ir.ValueBytes)

	if mode.Binary() {
		var s strings.Builder
		for i := width - 1; i >= 0; i-- {
			fmt.Fprintf(&s, "%08b", b[i])
		}
		return s.String(), nil
	}

	if width == 0 {
		return "0x", nil
	}
	mask := ^uint64(0)
	if width < 8 {
		mask = 1<<(8*width) - 1
	}
	return fmt.Sprintf("0x%0*X", 2*width, uint64(raw)&mask), nil
}

// Bytes renders a byte dump, each byte as two hex digits and a space.
func Bytes(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		fmt.Fprintf(&s, "%02X ", c)
	}
	return s.String()
}
