package token

import (
	"loupe/internal/source"
)

// Token is one lexical token. Text is the raw lexeme for identifiers and
// literals and empty for punctuation.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// NewlineBefore is set when a line terminator precedes the token.
	// Semicolon insertion keys off it.
	NewlineBefore bool
}

func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
