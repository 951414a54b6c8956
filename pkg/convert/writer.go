package convert

import (
	"fmt"
	"io"
	"strings"
)

const (
	// fileHeaderMarker wraps each relative path in the aggregate
	// output. Distinct enough not to collide with ordinary code lines.
	fileHeaderMarker = "### SOURCE FILE: "

	preambleRule = 50
)

// aggregateWriter emits the aggregate output document: a repository
// preamble followed by one header-plus-content entry per file, in
// traversal order.
type aggregateWriter struct {
	w io.Writer
}

func newAggregateWriter(w io.Writer) *aggregateWriter {
	return &aggregateWriter{w: w}
}

// WritePreamble writes the repository banner at the top of the output.
func (aw *aggregateWriter) WritePreamble(root string) error {
	_, err := fmt.Fprintf(aw.w, "# Repository: %s\n%s\n\n", root, strings.Repeat("=", preambleRule))
	return err
}

// WriteEntry writes one file entry: the path header, a separator line,
// the decoded content, and a blank line. The header is written even
// when the content is empty, so zero-byte files still get an entry.
func (aw *aggregateWriter) WriteEntry(relPath, content string) error {
	if _, err := fmt.Fprintf(aw.w, "%s%s\n%s\n", fileHeaderMarker, relPath, strings.Repeat("-", preambleRule)); err != nil {
		return err
	}
	if _, err := io.WriteString(aw.w, content); err != nil {
		return err
	}
	_, err := io.WriteString(aw.w, "\n\n")
	return err
}
