package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	first := Name(1)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(1), "names should be memoized")

	var nilPointer *int
	assert.Equal(t, "Ø", Name(nilPointer))
	assert.Equal(t, "Ø", Name(nil))

	value := 3
	assert.Equal(t, Name(&value), Name(&value))
}
