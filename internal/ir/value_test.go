package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValueKeepsOnlyWidthBytes(t *testing.T) {
	v := NewValue(Int16, []byte{0x34, 0x12, 0xFF, 0xFF})

	assert.Equal(t, Int16, v.Type)
	assert.Equal(t, 2, v.Width())
	assert.Equal(t, []byte{0x34, 0x12}, v.Data())
	assert.Equal(t, [ValueBytes]byte{0x34, 0x12}, v.Bytes)
}

func TestValueWidthCapsAtBuffer(t *testing.T) {
	v := Value{Type: Complex128}
	assert.Equal(t, ValueBytes, v.Width())
	assert.Len(t, v.Data(), ValueBytes)
}

func TestValueDataIsACopy(t *testing.T) {
	v := NewValue(Uint8, []byte{7})
	data := v.Data()
	data[0] = 9
	assert.Equal(t, byte(7), v.Bytes[0])
}

func TestValueIsZero(t *testing.T) {
	assert.True(t, Value{}.IsZero())
	assert.False(t, Value{Type: Uint8}.IsZero())
	assert.True(t, NewValue(Undefined, []byte{1, 2}).IsZero())
}
