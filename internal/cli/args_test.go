package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seebinum/internal/engine"
	"github.com/roach88/seebinum/internal/ir"
	"github.com/roach88/seebinum/internal/render"
	"github.com/roach88/seebinum/internal/testutil"
)

func TestIsNumber(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"0", true},
		{"13", true},
		{"-13", true},
		{"0x4240", true},
		{"1,2,3", true},
		{"3.14", true},
		{"-", false},
		{"-x", false},
		{"", false},
		{"add", false},
		{".5", false},
		{"--13", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumber(tt.arg))
		})
	}
}

func TestSplitNumbers(t *testing.T) {
	assert.Equal(t, []string{"1"}, splitNumbers("1"))
	assert.Equal(t, []string{"1", "2", "3"}, splitNumbers("1,2,3"))
	assert.Equal(t, []string{"1", "2"}, splitNumbers("1,2,"))
	assert.Equal(t, []string{"1", "", "2"}, splitNumbers("1,,2"))
}

func TestParseArgs_NumbersUseCurrentType(t *testing.T) {
	inv, err := ParseArgs([]string{"int8", "-13", "float32", "1.5"}, Settings{})
	require.NoError(t, err)

	require.Len(t, inv.Numbers, 2)
	assert.Equal(t, ir.Int8, inv.Numbers[0].Type)
	assert.Equal(t, ir.Float32, inv.Numbers[1].Type)
	assert.Equal(t, []float64{-13, 1.5}, testutil.Doubles(t, inv.Numbers))
	assert.Equal(t, ir.Float32, inv.Type)
	assert.Zero(t, inv.Sequence.Len())
}

func TestParseArgs_InferredType(t *testing.T) {
	inv, err := ParseArgs([]string{"7"}, Settings{})
	require.NoError(t, err)

	require.Len(t, inv.Numbers, 1)
	assert.Equal(t, ir.Float64, inv.Numbers[0].Type)
	assert.Equal(t, ir.Undefined, inv.Type)
}

func TestParseArgs_InferredZeroIsUint64(t *testing.T) {
	inv, err := ParseArgs([]string{"0,5"}, Settings{})
	require.NoError(t, err)

	require.Len(t, inv.Numbers, 2)
	assert.Equal(t, ir.Uint64, inv.Numbers[0].Type)
	assert.Equal(t, ir.Float64, inv.Numbers[1].Type)
}

func TestParseArgs_CommaList(t *testing.T) {
	inv, err := ParseArgs([]string{"uint16", "1,,3,"}, Settings{})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 3}, testutil.Doubles(t, inv.Numbers))
}

func TestParseArgs_Operations(t *testing.T) {
	inv, err := ParseArgs([]string{"uint32", "mul", "3", "2", "add", "3", "2", "dot", "1", "2", "3"}, Settings{})
	require.NoError(t, err)

	require.Len(t, inv.Numbers, 7)
	assert.Equal(t, []engine.Step{
		{Op: engine.Multiply, Range: engine.Range{Begin: 0, End: 2}},
		{Op: engine.Add, Range: engine.Range{Begin: 2, End: 4}},
		{Op: engine.Dot, Range: engine.Range{Begin: 4, End: 7}},
	}, inv.Sequence.Steps)
}

func TestParseArgs_NopOpensNoStep(t *testing.T) {
	inv, err := ParseArgs([]string{"nop", "1", "2"}, Settings{})
	require.NoError(t, err)

	assert.Len(t, inv.Numbers, 2)
	assert.Zero(t, inv.Sequence.Len())
}

func TestParseArgs_EmptyStep(t *testing.T) {
	inv, err := ParseArgs([]string{"add"}, Settings{})
	require.NoError(t, err)

	require.Equal(t, 1, inv.Sequence.Len())
	assert.Zero(t, inv.Sequence.Steps[0].Range.Len())
}

func TestParseArgs_Toggles(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		initial Settings
		want    Settings
	}{
		{
			name: "showbinary",
			args: []string{"showbinary"},
			want: Settings{Mode: render.ShowBinary},
		},
		{
			name: "showbin alias",
			args: []string{"showbin"},
			want: Settings{Mode: render.ShowBinary},
		},
		{
			name:    "showhex clears binary",
			args:    []string{"showhex"},
			initial: Settings{Mode: render.ShowBinary | render.ShowHexFloat},
			want:    Settings{Mode: render.ShowHexFloat},
		},
		{
			name: "showhexfloat",
			args: []string{"showhexfloat"},
			want: Settings{Mode: render.ShowHexFloat},
		},
		{
			name:    "showdecfloat clears hex float",
			args:    []string{"showdecfloat"},
			initial: Settings{Mode: render.ShowHexFloat},
			want:    Settings{},
		},
		{
			name: "raw",
			args: []string{"raw"},
			want: Settings{Raw: true},
		},
		{
			name:    "num clears raw",
			args:    []string{"num"},
			initial: Settings{Raw: true},
			want:    Settings{},
		},
		{
			name: "type keyword",
			args: []string{"bfloat16"},
			want: Settings{Type: ir.Bfloat16},
		},
		{
			name: "last type wins",
			args: []string{"int8", "fixed16_16"},
			want: Settings{Type: ir.Fixed16_16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := ParseArgs(tt.args, tt.initial)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.Settings)
		})
	}
}

func TestParseArgs_RawFloat16(t *testing.T) {
	inv, err := ParseArgs([]string{"float16", "raw", "0x4240"}, Settings{})
	require.NoError(t, err)

	require.Len(t, inv.Numbers, 1)
	assert.Equal(t, []byte{0x40, 0x42}, inv.Numbers[0].Data())
	assert.Equal(t, []float64{3.125}, testutil.Doubles(t, inv.Numbers))
}

func TestParseArgs_UnknownParameter(t *testing.T) {
	_, err := ParseArgs([]string{"uint8", "1", "ADD"}, Settings{})
	require.Error(t, err)

	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ADD", unknown.Param)
	assert.Equal(t, `unknown parameter "ADD"`, err.Error())
}
