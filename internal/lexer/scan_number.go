package lexer

import (
	"loupe/internal/token"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.pos

	if lx.src[lx.pos] == '0' && lx.pos+1 < len(lx.src) {
		switch lx.src[lx.pos+1] {
		case 'x', 'X':
			lx.pos += 2
			lx.scanDigits(isHexDigit, "hexadecimal")
			return lx.makeText(token.Number, start, lx.pos)
		case 'o', 'O':
			lx.pos += 2
			lx.scanDigits(func(c byte) bool { return c >= '0' && c <= '7' }, "octal")
			return lx.makeText(token.Number, start, lx.pos)
		case 'b', 'B':
			lx.pos += 2
			lx.scanDigits(func(c byte) bool { return c == '0' || c == '1' }, "binary")
			return lx.makeText(token.Number, start, lx.pos)
		}
	}

	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.pos++
		}
	}
	if lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		next := lx.pos + 1
		if next < len(lx.src) && (lx.src[next] == '+' || lx.src[next] == '-') {
			next++
		}
		if next < len(lx.src) && isDigit(lx.src[next]) {
			lx.pos = next
			for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
				lx.pos++
			}
		}
	}
	return lx.makeText(token.Number, start, lx.pos)
}

func (lx *Lexer) scanDigits(valid func(byte) bool, base string) {
	digits := 0
	for lx.pos < len(lx.src) && valid(lx.src[lx.pos]) {
		lx.pos++
		digits++
	}
	if digits == 0 {
		lx.errorAt(span(lx.pos-2, lx.pos), "missing digits after %s literal prefix", base)
	}
}
