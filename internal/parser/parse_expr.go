package parser

import (
	"loupe/internal/ast"
	"loupe/internal/token"
)

var tokenBinOps = map[token.Kind]ast.BinOp{
	token.StarStar:               ast.BinPow,
	token.Star:                   ast.BinMul,
	token.Slash:                  ast.BinDiv,
	token.Percent:                ast.BinRem,
	token.Plus:                   ast.BinAdd,
	token.Minus:                  ast.BinSub,
	token.LtLt:                   ast.BinShl,
	token.GtGt:                   ast.BinShr,
	token.GtGtGt:                 ast.BinUShr,
	token.Lt:                     ast.BinLt,
	token.Gt:                     ast.BinGt,
	token.Le:                     ast.BinLe,
	token.Ge:                     ast.BinGe,
	token.KwIn:                   ast.BinIn,
	token.KwInstanceof:           ast.BinInstanceof,
	token.EqEq:                   ast.BinLooseEq,
	token.NotEq:                  ast.BinLooseNe,
	token.EqEqEq:                 ast.BinStrictEq,
	token.NotEqEq:                ast.BinStrictNe,
	token.Amp:                    ast.BinBitAnd,
	token.Caret:                  ast.BinBitXor,
	token.Pipe:                   ast.BinBitOr,
	token.AmpAmp:                 ast.BinLogicalAnd,
	token.PipePipe:               ast.BinLogicalOr,
	token.QuestionQuestion:       ast.BinNullishCoalescing,
	token.Assign:                 ast.BinAssign,
	token.PlusAssign:             ast.BinAddAssign,
	token.MinusAssign:            ast.BinSubAssign,
	token.StarAssign:             ast.BinMulAssign,
	token.SlashAssign:            ast.BinDivAssign,
	token.PercentAssign:          ast.BinRemAssign,
	token.AmpAmpAssign:           ast.BinLogicalAndAssign,
	token.PipePipeAssign:         ast.BinLogicalOrAssign,
	token.QuestionQuestionAssign: ast.BinNullishAssign,
}

func (p *Parser) parseExpr() ast.Expr {
	start := p.cur().Span.Start
	first := p.parseAssignExpr()
	if !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.eat(token.Comma) {
		exprs = append(exprs, p.parseAssignExpr())
	}
	return ast.Expr{Span: p.spanFrom(start), Data: &ast.ESequence{Exprs: exprs}}
}

func (p *Parser) parseAssignExpr() ast.Expr {
	return p.parseExprPrec(ast.PrecAssign)
}

// noIn suppresses the 'in' operator inside for-statement heads.
func (p *Parser) binOpFor(kind token.Kind) (ast.BinOp, bool) {
	op, ok := tokenBinOps[kind]
	if !ok {
		return 0, false
	}
	if op == ast.BinIn && p.noIn {
		return 0, false
	}
	return op, true
}

func (p *Parser) parseExprPrec(level ast.Prec) ast.Expr {
	start := p.cur().Span.Start
	left := p.parsePrefix()

	for {
		// Conditional
		if p.at(token.Question) && ast.PrecConditional >= level {
			p.advance()
			yes := p.parseAssignExpr()
			p.expect(token.Colon)
			no := p.parseAssignExpr()
			left = ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.ECond{Test: left, Yes: yes, No: no},
			}
			continue
		}

		op, ok := p.binOpFor(p.cur().Kind)
		if !ok {
			return left
		}
		prec := op.Precedence()
		if prec < level {
			return left
		}
		p.advance()
		var right ast.Expr
		if op.RightAssoc() {
			right = p.parseExprPrec(prec)
		} else {
			right = p.parseExprPrec(prec + 1)
		}
		left = ast.Expr{
			Span: p.spanFrom(start),
			Data: &ast.EBinary{Op: op, Left: left, Right: right},
		}
	}
}

func (p *Parser) parsePrefix() ast.Expr {
	start := p.cur().Span.Start

	switch p.cur().Kind {
	case token.Bang:
		return p.parseUnary(ast.UnNot)
	case token.Tilde:
		return p.parseUnary(ast.UnBitNot)
	case token.Plus:
		return p.parseUnary(ast.UnPlus)
	case token.Minus:
		return p.parseUnary(ast.UnNeg)
	case token.KwTypeof:
		return p.parseUnary(ast.UnTypeof)
	case token.KwVoid:
		return p.parseUnary(ast.UnVoid)
	case token.KwDelete:
		return p.parseUnary(ast.UnDelete)
	case token.PlusPlus, token.MinusMinus:
		dec := p.advance().Kind == token.MinusMinus
		value := p.parseExprPrec(ast.PrecUnary)
		return p.suffix(ast.Expr{
			Span: p.spanFrom(start),
			Data: &ast.EUpdate{Prefix: true, Dec: dec, Value: value},
		}, start)
	case token.Percent:
		if p.opts.AllowV8Intrinsics && p.peek(1).Kind == token.Ident {
			p.advance()
			name := p.advance()
			e := &ast.EIntrinsic{Name: name.Text, NameSpan: name.Span}
			p.expect(token.LParen)
			e.Args = p.parseArgs()
			return p.suffix(ast.Expr{Span: p.spanFrom(start), Data: e}, start)
		}
	case token.KwNew:
		return p.suffix(p.parseNewExpr(), start)
	}

	return p.suffix(p.parseAtom(), start)
}

func (p *Parser) parseUnary(op ast.UnOp) ast.Expr {
	start := p.cur().Span.Start
	p.advance()
	value := p.parseExprPrec(ast.PrecUnary)
	return ast.Expr{Span: p.spanFrom(start), Data: &ast.EUnary{Op: op, Value: value}}
}

func (p *Parser) parseNewExpr() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // new
	var target ast.Expr
	if p.at(token.KwNew) {
		target = p.parseNewExpr()
	} else {
		target = p.parseAtom()
	}
	// Member access binds tighter than the construct call.
	for {
		if p.eat(token.Dot) {
			name, ok := p.expectBindingIdent()
			if !ok {
				break
			}
			target = ast.Expr{
				Span: p.spanFrom(target.Span.Start),
				Data: &ast.EDot{Target: target, Name: name.Text, NameSpan: name.Span},
			}
			continue
		}
		if p.at(token.LBracket) {
			p.advance()
			index := p.parseExpr()
			p.expect(token.RBracket)
			target = ast.Expr{
				Span: p.spanFrom(target.Span.Start),
				Data: &ast.EIndex{Target: target, Index: index},
			}
			continue
		}
		break
	}
	e := &ast.ENew{Target: target}
	if p.eat(token.LParen) {
		e.Args = p.parseArgs()
	}
	return ast.Expr{Span: p.spanFrom(start), Data: e}
}

// suffix parses the call/member/postfix tail after any primary expression.
func (p *Parser) suffix(left ast.Expr, start uint32) ast.Expr {
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			name, ok := p.expectBindingIdent()
			if !ok {
				return left
			}
			left = ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.EDot{Target: left, Name: name.Text, NameSpan: name.Span},
			}
		case p.at(token.LBracket):
			p.advance()
			index := p.parseExpr()
			p.expect(token.RBracket)
			left = ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.EIndex{Target: left, Index: index},
			}
		case p.at(token.LParen):
			p.advance()
			args := p.parseArgs()
			left = ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.ECall{Target: left, Args: args},
			}
		case (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.cur().NewlineBefore:
			dec := p.advance().Kind == token.MinusMinus
			left = ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.EUpdate{Dec: dec, Value: left},
			}
		default:
			return left
		}
	}
}

// parseArgs parses a call argument list after the opening paren.
func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			start := p.cur().Span.Start
			p.advance()
			value := p.parseAssignExpr()
			args = append(args, ast.Expr{
				Span: p.spanFrom(start),
				Data: &ast.ESpread{Value: value},
			})
		} else {
			args = append(args, p.parseAssignExpr())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return args
}

func (p *Parser) parseAtom() ast.Expr {
	start := p.cur().Span.Start

	switch p.cur().Kind {
	case token.Ident, token.KwOf, token.KwFrom, token.KwAs, token.KwType, token.KwDeclare:
		if p.peek(1).Kind == token.Arrow {
			return p.parseArrow(start, true)
		}
		name := p.advance()
		return ast.Expr{Span: name.Span, Data: &ast.EIdent{Name: name.Text, Ref: ast.NoReference}}
	case token.Number:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.ENumber{Raw: tok.Text}}
	case token.String:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.EString{Raw: tok.Text}}
	case token.Template:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.ETemplate{Raw: tok.Text}}
	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.EBool{Value: tok.Kind == token.KwTrue}}
	case token.KwNull:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.ENull{}}
	case token.KwThis:
		tok := p.advance()
		return ast.Expr{Span: tok.Span, Data: &ast.EThis{}}
	case token.KwFunction:
		p.advance()
		fn := p.parseFnRest(false)
		return ast.Expr{Span: p.spanFrom(start), Data: &ast.EFunction{Fn: fn}}
	case token.LParen:
		if p.isArrowAhead() {
			return p.parseArrow(start, false)
		}
		p.advance()
		value := p.parseExpr()
		p.expect(token.RParen)
		if p.opts.PreserveParens {
			return ast.Expr{Span: p.spanFrom(start), Data: &ast.EParen{Value: value}}
		}
		return value
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	}

	tok := p.cur()
	p.errorAt(tok.Span, "unexpected %s in expression", p.describe(tok))
	p.advance()
	return ast.Expr{Span: tok.Span, Data: &ast.EIdent{Name: "", Ref: ast.NoReference}}
}

// isArrowAhead reports whether the parenthesized group at the cursor is an
// arrow parameter list, by scanning to the matching paren.
func (p *Parser) isArrowAhead() bool {
	depth := 0
	for j := p.i; j < len(p.tokens); j++ {
		switch p.tokens[j].Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.tokens[minInt(j+1, len(p.tokens)-1)].Kind == token.Arrow
			}
		case token.EOF:
			return false
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// parseArrow parses an arrow function. When single is true the parameter
// list is a bare identifier.
func (p *Parser) parseArrow(start uint32, single bool) ast.Expr {
	fn := ast.Fn{Sym: ast.NoSymbol}
	if single {
		name := p.advance()
		fn.Params = []ast.Param{{Name: name.Text, NameSpan: name.Span, Sym: ast.NoSymbol}}
	} else {
		fn.Params = p.parseParams()
	}
	p.expect(token.Arrow)

	if p.at(token.LBrace) {
		bodyStart := p.cur().Span.Start
		p.advance()
		p.fnDepth++
		fn.Body = p.parseStmtList(token.RBrace)
		p.fnDepth--
		p.expect(token.RBrace)
		fn.BodySpan = p.spanFrom(bodyStart)
	} else {
		p.fnDepth++
		value := p.parseAssignExpr()
		p.fnDepth--
		fn.HasExprBody = true
		fn.BodySpan = value.Span
		fn.Body = []ast.Stmt{{Span: value.Span, Data: &ast.SReturn{Value: &value}}}
	}
	return ast.Expr{Span: p.spanFrom(start), Data: &ast.EArrow{Fn: fn}}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // [
	e := &ast.EArray{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.errorAt(p.cur().Span, "array holes are not supported")
			p.advance()
			continue
		}
		if p.at(token.DotDotDot) {
			spreadStart := p.cur().Span.Start
			p.advance()
			value := p.parseAssignExpr()
			e.Items = append(e.Items, ast.Expr{
				Span: p.spanFrom(spreadStart),
				Data: &ast.ESpread{Value: value},
			})
		} else {
			e.Items = append(e.Items, p.parseAssignExpr())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket)
	return ast.Expr{Span: p.spanFrom(start), Data: e}
}

func (p *Parser) parseObjectLiteral() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // {
	e := &ast.EObject{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			spreadStart := p.cur().Span.Start
			p.advance()
			value := p.parseAssignExpr()
			e.Props = append(e.Props, ast.Property{
				Value: ast.Expr{Span: p.spanFrom(spreadStart), Data: &ast.ESpread{Value: value}},
			})
			if !p.eat(token.Comma) {
				break
			}
			continue
		}

		var prop ast.Property
		switch p.cur().Kind {
		case token.String, token.Number:
			key := p.advance()
			prop.KeyName = key.Text
			prop.KeySpan = key.Span
		default:
			key, ok := p.expectBindingIdent()
			if !ok {
				p.recover()
				goto done
			}
			prop.KeyName = key.Text
			prop.KeySpan = key.Span
			if p.at(token.Comma) || p.at(token.RBrace) {
				prop.Shorthand = true
				prop.Value = ast.Expr{
					Span: key.Span,
					Data: &ast.EIdent{Name: key.Text, Ref: ast.NoReference},
				}
				e.Props = append(e.Props, prop)
				if !p.eat(token.Comma) {
					goto done
				}
				continue
			}
		}
		p.expect(token.Colon)
		prop.Value = p.parseAssignExpr()
		e.Props = append(e.Props, prop)
		if !p.eat(token.Comma) {
			break
		}
	}
done:
	p.expect(token.RBrace)
	return ast.Expr{Span: p.spanFrom(start), Data: e}
}
