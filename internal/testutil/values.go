package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/ir"
)

// Values encodes each double as a value of typ.
// Fails the test if typ has no numeric encoding.
func Values(t testing.TB, typ ir.ElementType, xs ...float64) []ir.Value {
	t.Helper()
	out := make([]ir.Value, 0, len(xs))
	for _, x := range xs {
		v, err := convert.FromDouble(typ, x)
		require.NoError(t, err, "encode %v as %s", x, typ)
		out = append(out, v)
	}
	return out
}

// Doubles decodes each value back to a double.
func Doubles(t testing.TB, values []ir.Value) []float64 {
	t.Helper()
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := convert.ToDouble(v)
		require.NoError(t, err, "decode %s", v.Type)
		out = append(out, f)
	}
	return out
}
