package lexer

import (
	"loupe/internal/token"
)

// scanOperator handles punctuation and operators, longest match first.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.pos
	rest := lx.src[lx.pos:]

	try := func(lit string, kind token.Kind) *token.Token {
		if len(rest) >= len(lit) && rest[:len(lit)] == lit {
			lx.pos += len(lit)
			tok := lx.makeAt(kind, start, lx.pos)
			return &tok
		}
		return nil
	}

	// Longest operators first within each leading byte.
	switch rest[0] {
	case '(':
		return *try("(", token.LParen)
	case ')':
		return *try(")", token.RParen)
	case '{':
		return *try("{", token.LBrace)
	case '}':
		return *try("}", token.RBrace)
	case '[':
		return *try("[", token.LBracket)
	case ']':
		return *try("]", token.RBracket)
	case ';':
		return *try(";", token.Semicolon)
	case ',':
		return *try(",", token.Comma)
	case ':':
		return *try(":", token.Colon)
	case '~':
		return *try("~", token.Tilde)
	case '^':
		return *try("^", token.Caret)
	case '.':
		if tok := try("...", token.DotDotDot); tok != nil {
			return *tok
		}
		return *try(".", token.Dot)
	case '=':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"===", token.EqEqEq}, {"=>", token.Arrow}, {"==", token.EqEq}, {"=", token.Assign},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '!':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"!==", token.NotEqEq}, {"!=", token.NotEq}, {"!", token.Bang},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '+':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"++", token.PlusPlus}, {"+=", token.PlusAssign}, {"+", token.Plus},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '-':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"--", token.MinusMinus}, {"-=", token.MinusAssign}, {"-", token.Minus},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '*':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"**", token.StarStar}, {"*=", token.StarAssign}, {"*", token.Star},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '/':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"/=", token.SlashAssign}, {"/", token.Slash},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '%':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"%=", token.PercentAssign}, {"%", token.Percent},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '&':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"&&=", token.AmpAmpAssign}, {"&&", token.AmpAmp}, {"&", token.Amp},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '|':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"||=", token.PipePipeAssign}, {"||", token.PipePipe}, {"|", token.Pipe},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '?':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"??=", token.QuestionQuestionAssign}, {"??", token.QuestionQuestion}, {"?", token.Question},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '<':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{"<<", token.LtLt}, {"<=", token.Le}, {"<", token.Lt},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	case '>':
		for _, c := range []struct {
			lit  string
			kind token.Kind
		}{
			{">>>", token.GtGtGt}, {">>", token.GtGt}, {">=", token.Ge}, {">", token.Gt},
		} {
			if tok := try(c.lit, c.kind); tok != nil {
				return *tok
			}
		}
	}

	lx.pos++
	tok := lx.makeText(token.Invalid, start, lx.pos)
	lx.errorAt(tok.Span, "unexpected character %q", tok.Text)
	return tok
}
