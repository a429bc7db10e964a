package lexer

import (
	"unicode"
	"unicode/utf8"

	"loupe/internal/token"
)

func isIdentStartByte(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinueByte(c byte) bool {
	return isIdentStartByte(c) || (c >= '0' && c <= '9')
}

func isIdentStartRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.pos
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c < 0x80 {
			if !isIdentContinueByte(c) {
				break
			}
			lx.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if lx.pos == start {
			if !isIdentStartRune(r) {
				break
			}
		} else if !isIdentContinueRune(r) {
			break
		}
		lx.pos += size
	}
	if lx.pos == start {
		// Lone non-identifier rune: consume it so the scan makes progress.
		_, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		lx.pos += size
		tok := lx.makeText(token.Invalid, start, lx.pos)
		lx.errorAt(tok.Span, "unexpected character %q", tok.Text)
		return tok
	}
	tok := lx.makeText(token.LookupIdent(lx.src[start:lx.pos]), start, lx.pos)
	return tok
}
