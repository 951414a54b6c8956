package convert

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// tokenModel is the tokenizer model used for token estimates.
const tokenModel = "gpt-4"

// Counter counts bytes, tokens, and lines in text.
type Counter interface {
	Count(text string) (bytes, tokens, lines int)
}

// SimpleCounter estimates tokens as bytes/4, roughly the average for
// English text.
type SimpleCounter struct{}

// Count returns bytes, estimated tokens, and lines for the given text.
func (SimpleCounter) Count(text string) (int, int, int) {
	return len(text), len(text) / 4, countLines(text)
}

// TiktokenCounter counts tokens with the tiktoken tokenizer.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a counter for the given model.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("unsupported model for tiktoken: %s", model)
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

// Count returns bytes, tokens, and lines for the given text.
func (c *TiktokenCounter) Count(text string) (int, int, int) {
	return len(text), len(c.encoding.Encode(text, nil, nil)), countLines(text)
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
