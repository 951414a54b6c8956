package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleCounter(t *testing.T) {
	assert := assert.New(t)
	var c SimpleCounter

	bytes, tokens, lines := c.Count("hello\nworld\n")
	assert.Equal(12, bytes)
	assert.Equal(3, tokens)
	assert.Equal(3, lines)

	bytes, tokens, lines = c.Count("")
	assert.Equal(0, bytes)
	assert.Equal(0, tokens)
	assert.Equal(0, lines)
}
