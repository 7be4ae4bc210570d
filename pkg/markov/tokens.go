package markov

import (
	"bufio"
	"errors"
	"io"
)

// maxTokenSize bounds a single token read from a stream.
const maxTokenSize = 1 << 20

// Tokenizer is an interface that defines the contract for splitting input text
// into tokens. This allows the brain to be independent of the specific
// tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (string, error)
}

// WhitespaceTokenizer splits text on runs of Unicode whitespace and keeps
// punctuation attached to its word, so "Dantes." and "Dantes" are distinct
// tokens.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer returns the default tokenizer.
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// NewStream returns the stream processor.
func (t *WhitespaceTokenizer) NewStream(r io.Reader) StreamTokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	return &whitespaceStream{scanner: scanner}
}

type whitespaceStream struct {
	scanner *bufio.Scanner
}

// Next returns the next token. When the stream is exhausted it returns "" and
// io.EOF; any other error is a problem reading the underlying stream.
func (s *whitespaceStream) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// ReadAll drains a StreamTokenizer into a slice.
func ReadAll(stream StreamTokenizer) ([]string, error) {
	var words []string
	for {
		word, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return words, err
		}
		words = append(words, word)
	}
}
