package corpus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tokenizer converts one raw context string into its token sequence. An error
// marks the context as malformed; the indexer skips or rejects it depending
// on its strictness setting.
type Tokenizer func(text string) ([]string, error)

// Whitespace splits a context on Unicode whitespace. Contexts that are not
// valid UTF-8 are rejected.
func Whitespace(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("corpus: context is not valid UTF-8")
	}
	return strings.Fields(text), nil
}

// Folded splits on whitespace after lowercasing, so surface variants of the
// same word share one embedding.
func Folded(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("corpus: context is not valid UTF-8")
	}
	return strings.Fields(strings.ToLower(text)), nil
}
