package convert

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

const (
	// detectSampleSize is how many leading bytes are handed to the
	// charset detector.
	detectSampleSize = 10 * 1024

	// detectConfidenceThreshold is the minimum chardet confidence
	// (0-100) for a detected charset to be trusted.
	detectConfidenceThreshold = 80
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// detection is the outcome of a single decoding strategy: the decoded
// text, the encoding name for logging, and how confident the strategy
// is that it applies.
type detection struct {
	text       string
	encoding   string
	confidence int
}

// decodeStrategy inspects raw content and either returns a detection or
// nil when it has no opinion.
type decodeStrategy func(content []byte) *detection

// decodeStrategies is the ordered decision table for encoding
// detection. The first strategy whose confidence clears the threshold
// wins; decodeText falls back to permissive Latin-1 when none does.
var decodeStrategies = []decodeStrategy{
	detectByteOrderMark,
	detectUTF8,
	detectCharset,
}

// decodeText decodes raw file bytes to text. It never fails: content
// that no strategy recognizes is decoded byte-for-byte as Latin-1.
func decodeText(content []byte) (text, encoding string) {
	for _, strategy := range decodeStrategies {
		if d := strategy(content); d != nil && d.confidence >= detectConfidenceThreshold {
			return d.text, d.encoding
		}
	}
	return decodeLatin1(content), "latin-1 (fallback)"
}

// detectByteOrderMark handles UTF-8 and UTF-16 byte-order marks.
func detectByteOrderMark(content []byte) *detection {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return &detection{
			text:       string(bytes.Replace(content, bomUTF8, nil, 1)),
			encoding:   "utf-8 (bom)",
			confidence: 100,
		}
	case bytes.HasPrefix(content, bomUTF16LE), bytes.HasPrefix(content, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		decoded, err := dec.Bytes(content)
		if err != nil {
			return nil
		}
		return &detection{
			text:       string(decoded),
			encoding:   "utf-16 (bom)",
			confidence: 100,
		}
	}
	return nil
}

// detectUTF8 accepts content that is already valid UTF-8.
func detectUTF8(content []byte) *detection {
	if !utf8.Valid(content) {
		return nil
	}
	return &detection{
		text:       string(content),
		encoding:   "utf-8",
		confidence: 100,
	}
}

// detectCharset runs the statistical charset detector over the leading
// sample and decodes with the detected charset when it is known to the
// encoding index.
func detectCharset(content []byte) *detection {
	sample := content
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result.Confidence < detectConfidenceThreshold {
		return nil
	}

	enc, err := htmlindex.Get(strings.ToLower(result.Charset))
	if err != nil {
		return nil
	}
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil
	}

	return &detection{
		text:       string(decoded),
		encoding:   strings.ToLower(result.Charset),
		confidence: result.Confidence,
	}
}

// decodeLatin1 maps every byte to its Latin-1 code point. The mapping
// is total, so this decode cannot fail.
func decodeLatin1(content []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// Latin-1 decoding is total; keep the raw bytes if the
		// transformer ever objects.
		return string(content)
	}
	return string(decoded)
}
