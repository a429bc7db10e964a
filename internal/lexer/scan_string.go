package lexer

import (
	"loupe/internal/token"
)

func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.pos
	lx.pos++
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == quote {
			lx.pos++
			return lx.makeText(token.String, start, lx.pos)
		}
		if c == '\\' && lx.pos+1 < len(lx.src) {
			lx.pos += 2
			continue
		}
		if c == '\n' {
			break
		}
		lx.pos++
	}
	tok := lx.makeText(token.String, start, lx.pos)
	lx.errorAt(tok.Span, "unterminated string literal")
	return tok
}

// scanTemplate consumes a whole template literal, substitutions included,
// as one token. Nested braces inside ${...} are balanced; nested templates
// recurse.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.pos
	lx.pos++ // opening backtick
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch c {
		case '`':
			lx.pos++
			return lx.makeText(token.Template, start, lx.pos)
		case '\\':
			lx.pos++
			if lx.pos < len(lx.src) {
				lx.pos++
			}
		case '$':
			if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '{' {
				lx.pos += 2
				lx.skipTemplateSubstitution()
			} else {
				lx.pos++
			}
		case '\n':
			lx.sawNewline = true
			lx.pos++
		default:
			lx.pos++
		}
	}
	tok := lx.makeText(token.Template, start, lx.pos)
	lx.errorAt(tok.Span, "unterminated template literal")
	return tok
}

func (lx *Lexer) skipTemplateSubstitution() {
	depth := 1
	for lx.pos < len(lx.src) && depth > 0 {
		switch lx.src[lx.pos] {
		case '{':
			depth++
			lx.pos++
		case '}':
			depth--
			lx.pos++
		case '`':
			lx.scanTemplate()
		case '\'', '"':
			lx.scanString(lx.src[lx.pos])
		default:
			lx.pos++
		}
	}
}
