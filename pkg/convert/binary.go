package convert

import (
	"bytes"
	"path/filepath"
	"strings"
)

const (
	// binarySniffSize is how many leading bytes are inspected for
	// binary content before a file is decoded.
	binarySniffSize = 1024

	// nonPrintableThreshold is the ratio of non-printable bytes above
	// which content is treated as binary even without null bytes.
	nonPrintableThreshold = 0.3
)

// isBinaryContent reports whether content is likely binary. A null byte
// in the leading chunk is taken as proof; otherwise a high ratio of
// non-printable bytes decides. Empty content is text.
func isBinaryContent(content []byte) bool {
	chunk := content
	if len(chunk) > binarySniffSize {
		chunk = chunk[:binarySniffSize]
	}
	if len(chunk) == 0 {
		return false
	}

	if bytes.IndexByte(chunk, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range chunk {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(chunk)) > nonPrintableThreshold
}

// isPrintable reports whether a byte is printable ASCII or common
// whitespace. Bytes above 0x7f are not counted against the ratio since
// they may belong to multi-byte or legacy encodings.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}

// hasBinaryExtension reports whether the file name carries a known
// binary extension.
func hasBinaryExtension(path string) bool {
	return BinaryExtensions[strings.ToLower(filepath.Ext(path))]
}
