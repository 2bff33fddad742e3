package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/seebinum/internal/ir"
)

func TestFixedTraceIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedTraceIDGenerator("trace-0001")

	assert.Equal(t, "trace-0001", gen.Generate())
	assert.Equal(t, "trace-0001", gen.Generate())
}

func TestFixedTraceIDGenerator_EmptyIDDefault(t *testing.T) {
	gen := NewFixedTraceIDGenerator("")

	assert.Equal(t, "test-trace-default", gen.Generate())
}

func TestFixedTraceIDGenerator_ThreadSafe(t *testing.T) {
	gen := NewFixedTraceIDGenerator("shared")

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				assert.Equal(t, "shared", gen.Generate())
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestValues_RoundTrip(t *testing.T) {
	values := Values(t, ir.Int16, 1, -2, 300)

	assert.Len(t, values, 3)
	for _, v := range values {
		assert.Equal(t, ir.Int16, v.Type)
		assert.Equal(t, 2, v.Width())
	}
	assert.Equal(t, []float64{1, -2, 300}, Doubles(t, values))
}

func TestValues_Empty(t *testing.T) {
	assert.Empty(t, Values(t, ir.Float32))
}
