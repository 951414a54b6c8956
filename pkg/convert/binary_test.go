package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinaryContent(t *testing.T) {
	assert := assert.New(t)

	assert.False(isBinaryContent(nil), "empty content is text")
	assert.False(isBinaryContent([]byte("plain text\nwith lines\n")))
	assert.False(isBinaryContent([]byte("caf\xe9 au lait")), "legacy encodings are not binary")

	assert.True(isBinaryContent([]byte{'a', 0x00, 'b'}), "null byte marks binary")
	assert.True(isBinaryContent([]byte{0x01, 0x02, 0x03, 0x04, 0x05}), "control bytes mark binary")
}

func TestIsBinaryContentNullBeyondSniffWindow(t *testing.T) {
	// A null byte after the sniffed chunk is not seen; the leading
	// window decides.
	content := append([]byte(strings.Repeat("a", binarySniffSize)), 0x00)
	assert.False(t, isBinaryContent(content))
}

func TestHasBinaryExtension(t *testing.T) {
	assert := assert.New(t)

	assert.True(hasBinaryExtension("logo.png"))
	assert.True(hasBinaryExtension("archive.ZIP"), "extension match is case-insensitive")
	assert.True(hasBinaryExtension("lib/native.so"))
	assert.False(hasBinaryExtension("main.go"))
	assert.False(hasBinaryExtension("README"))
}
