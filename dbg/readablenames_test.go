package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type handle int
	var nilPointer *int

	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPointer))

	first := Name(handle(3))
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(handle(3)))

	// Same underlying value, different type
	assert.NotEqual(t, "Ø", Name(3))
	assert.Equal(t, Name(3), Name(3))
}
