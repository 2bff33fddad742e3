package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAttributes(t *testing.T) {
	tests := []struct {
		typ        ElementType
		name       string
		width      int
		signed     bool
		fractional bool
	}{
		{Undefined, "undefined", 0, false, false},
		{Float32, "float32", 4, true, true},
		{Uint8, "uint8", 1, false, false},
		{Int8, "int8", 1, true, false},
		{Uint16, "uint16", 2, false, false},
		{Int16, "int16", 2, true, false},
		{Int32, "int32", 4, true, false},
		{Int64, "int64", 8, true, false},
		{StringChar8, "string8", 0, false, false},
		{Bool8, "bool8", 1, false, false},
		{Float16, "float16", 2, true, true},
		{Float64, "float64", 8, true, true},
		{Uint32, "uint32", 4, false, false},
		{Uint64, "uint64", 8, false, false},
		{Complex64, "complex64", 8, true, true},
		{Complex128, "complex128", 16, true, true},
		{Bfloat16, "bfloat16", 2, true, true},
		{Fixed12_12, "fixed12_12", 3, true, true},
		{Fixed16_16, "fixed16_16", 4, true, true},
		{Fixed8_24, "fixed8_24", 4, true, true},
	}
	assert.Len(t, tests, ElementTypeCount)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, Name(tt.typ))
			assert.Equal(t, tt.name, tt.typ.String())
			assert.Equal(t, tt.width, ByteWidth(tt.typ))
			assert.Equal(t, tt.signed, IsSigned(tt.typ))
			assert.Equal(t, tt.fractional, IsFractional(tt.typ))
		})
	}
}

func TestRegistryOutOfRangeFallsBackToUndefined(t *testing.T) {
	for _, typ := range []ElementType{ElementTypeCount, 21, 1000, ElementType(^uint32(0))} {
		assert.Equal(t, "undefined", Name(typ))
		assert.Equal(t, 0, ByteWidth(typ))
		assert.False(t, IsSigned(typ))
		assert.False(t, IsFractional(typ))
		assert.False(t, IsArithmetic(typ))
	}
}

func TestLayoutAliases(t *testing.T) {
	assert.Equal(t, Float16, Float16m10e5s1)
	assert.Equal(t, Bfloat16, Float16m7e8s1)
}

func TestIsArithmetic(t *testing.T) {
	notDispatchable := map[ElementType]bool{
		Undefined:   true,
		StringChar8: true,
		Bool8:       true,
		Complex64:   true,
		Complex128:  true,
	}
	for typ := ElementType(0); typ < ElementTypeCount; typ++ {
		assert.Equal(t, !notDispatchable[typ], IsArithmetic(typ), typ.String())
	}
}

func TestLookupElementType(t *testing.T) {
	tests := map[string]ElementType{
		"i8":         Int8,
		"uint8":      Uint8,
		"ui32":       Uint32,
		"int64":      Int64,
		"f16":        Float16,
		"bfloat16":   Bfloat16,
		"f16m7e8s1":  Bfloat16,
		"float32":    Float32,
		"f64":        Float64,
		"fixed12_12": Fixed12_12,
		"fixed16_16": Fixed16_16,
		"fixed8_24":  Fixed8_24,
	}
	for keyword, want := range tests {
		got, ok := LookupElementType(keyword)
		assert.True(t, ok, keyword)
		assert.Equal(t, want, got, keyword)
	}

	for _, keyword := range []string{"", "complex64", "bool8", "string8", "undefined", "F32"} {
		_, ok := LookupElementType(keyword)
		assert.False(t, ok, keyword)
	}
}

func TestNumericTypesAreArithmetic(t *testing.T) {
	assert.Len(t, NumericTypes, 15)
	for _, typ := range NumericTypes {
		assert.True(t, IsArithmetic(typ), typ.String())
	}
}
