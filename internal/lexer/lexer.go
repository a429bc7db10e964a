package lexer

import (
	"fmt"

	"loupe/internal/diag"
	"loupe/internal/source"
	"loupe/internal/token"
)

// Lexer produces tokens for one source unit. Comments are collected as
// trivia and never surface as tokens; callers retrieve them with Comments
// after the scan.
type Lexer struct {
	file     *source.File
	src      string
	pos      int
	comments []token.Comment
	errors   []diag.Diagnostic

	sawNewline bool
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file: file,
		src:  file.Content,
	}
}

// Comments returns all comments scanned so far, in source order.
func (lx *Lexer) Comments() []token.Comment {
	return lx.comments
}

// Errors returns lexical diagnostics accumulated so far.
func (lx *Lexer) Errors() []diag.Diagnostic {
	return lx.errors
}

// Next returns the next significant token. After the end of input it always
// returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.sawNewline = false
	lx.skipTrivia()

	start := lx.pos
	if lx.pos >= len(lx.src) {
		return lx.makeAt(token.EOF, start, start)
	}

	c := lx.src[lx.pos]
	switch {
	case isIdentStartByte(c) || c >= 0x80:
		return lx.scanIdentOrKeyword()
	case c >= '0' && c <= '9':
		return lx.scanNumber()
	case c == '"' || c == '\'':
		return lx.scanString(c)
	case c == '`':
		return lx.scanTemplate()
	case c == '.' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] >= '0' && lx.src[lx.pos+1] <= '9':
		return lx.scanNumber()
	default:
		return lx.scanOperator()
	}
}

// skipTrivia consumes whitespace and comments, recording comments and
// whether a line terminator was crossed.
func (lx *Lexer) skipTrivia() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch c {
		case ' ', '\t', '\r':
			lx.pos++
		case '\n':
			lx.sawNewline = true
			lx.pos++
		case '/':
			if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
				lx.scanLineComment()
				continue
			}
			if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '*' {
				lx.scanBlockComment()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) scanLineComment() {
	start := lx.pos
	lx.pos += 2
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
		lx.pos++
	}
	lx.comments = append(lx.comments, token.Comment{
		Kind:        token.CommentLine,
		Span:        span(start, lx.pos),
		ContentSpan: span(start+2, lx.pos),
	})
}

func (lx *Lexer) scanBlockComment() {
	start := lx.pos
	lx.pos += 2
	closed := false
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '\n' {
			lx.sawNewline = true
		}
		if lx.src[lx.pos] == '*' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
			lx.pos += 2
			closed = true
			break
		}
		lx.pos++
	}
	contentEnd := lx.pos
	if closed {
		contentEnd -= 2
	} else {
		lx.errorAt(span(start, lx.pos), "unterminated block comment")
	}
	lx.comments = append(lx.comments, token.Comment{
		Kind:        token.CommentBlock,
		Span:        span(start, lx.pos),
		ContentSpan: span(start+2, contentEnd),
	})
}

func (lx *Lexer) makeAt(kind token.Kind, start, end int) token.Token {
	return token.Token{
		Kind:          kind,
		Span:          span(start, end),
		NewlineBefore: lx.sawNewline,
	}
}

func (lx *Lexer) makeText(kind token.Kind, start, end int) token.Token {
	tok := lx.makeAt(kind, start, end)
	tok.Text = lx.src[start:end]
	return tok
}

func (lx *Lexer) errorAt(sp source.Span, format string, args ...any) {
	lx.errors = append(lx.errors, diag.Error(fmt.Sprintf(format, args...)).WithSpan(sp))
}

func span(start, end int) source.Span {
	return source.NewSpan(uint32(start), uint32(end))
}
