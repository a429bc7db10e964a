package parser

import (
	"loupe/internal/ast"
	"loupe/internal/token"
)

func (p *Parser) parseStmtList(end token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(end) && !p.at(token.EOF) {
		before := p.i
		stmts = append(stmts, p.parseStmt())
		if p.i == before {
			// A statement parser that makes no progress would loop forever.
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	start := p.cur().Span.Start

	switch p.cur().Kind {
	case token.Semicolon:
		p.advance()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SEmpty{}}
	case token.LBrace:
		p.advance()
		stmts := p.parseStmtList(token.RBrace)
		p.expect(token.RBrace)
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SBlock{Stmts: stmts}}
	case token.KwVar, token.KwLet, token.KwConst:
		s := p.parseVarStmt(false)
		p.expectSemi()
		s.Span = p.spanFrom(start)
		return s
	case token.KwFunction:
		return p.parseFunctionStmt(false)
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwBreak:
		p.advance()
		p.expectSemi()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SBreak{}}
	case token.KwContinue:
		p.advance()
		p.expectSemi()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SContinue{}}
	case token.KwDebugger:
		p.advance()
		p.expectSemi()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SDebugger{}}
	case token.KwThrow:
		p.advance()
		value := p.parseExpr()
		p.expectSemi()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SThrow{Value: value}}
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwImport:
		return p.parseImportStmt()
	case token.KwExport:
		return p.parseExportStmt()
	case token.KwType:
		// 'type' is contextual: `type X = ...` only when followed by an
		// identifier at the start of a statement.
		if p.peek(1).Kind == token.Ident && !p.peek(1).NewlineBefore {
			return p.parseTypeAliasStmt(false)
		}
	case token.KwDeclare:
		if next := p.peek(1).Kind; next == token.KwFunction || next == token.KwVar ||
			next == token.KwLet || next == token.KwConst || next == token.KwType {
			return p.parseDeclareStmt()
		}
	}

	value := p.parseExpr()
	p.expectSemi()
	return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SExpr{Value: value}}
}

// parseVarStmt parses a var/let/const declaration without the trailing
// semicolon so for-heads can reuse it.
func (p *Parser) parseVarStmt(declare bool) ast.Stmt {
	start := p.cur().Span.Start
	var kind ast.VarKind
	switch p.advance().Kind {
	case token.KwLet:
		kind = ast.VarLet
	case token.KwConst:
		kind = ast.VarConst
	default:
		kind = ast.VarVar
	}

	var decls []ast.Declarator
	for {
		name, ok := p.expectBindingIdent()
		if !ok {
			p.recover()
			break
		}
		d := ast.Declarator{
			Name:     name.Text,
			NameSpan: name.Span,
			Sym:      ast.NoSymbol,
		}
		if p.at(token.Colon) {
			p.advance()
			d.Type = p.parseTypeAnn(typeCtxVarDecl)
		}
		if p.eat(token.Assign) {
			init := p.parseAssignExpr()
			d.Init = &init
		}
		decls = append(decls, d)
		if !p.eat(token.Comma) {
			break
		}
	}
	return ast.Stmt{
		Span: p.spanFrom(start),
		Data: &ast.SVar{Kind: kind, Decls: decls, Declare: declare},
	}
}

// expectBindingIdent accepts identifiers and contextual keywords in binding
// position.
func (p *Parser) expectBindingIdent() (token.Token, bool) {
	if p.at(token.Ident) || token.Contextual(p.cur().Kind) {
		return p.advance(), true
	}
	p.errorAt(p.cur().Span, "expected identifier but found %s", p.describe(p.cur()))
	return p.cur(), false
}

func (p *Parser) parseFunctionStmt(declare bool) ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // function
	fn := p.parseFnRest(declare)
	return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SFunction{Fn: fn, Declare: declare}}
}

// parseFnRest parses everything after the 'function' keyword. When bodyless
// is true (declare mode) the body may be omitted.
func (p *Parser) parseFnRest(bodyless bool) ast.Fn {
	fn := ast.Fn{Sym: ast.NoSymbol}
	if p.at(token.Ident) || token.Contextual(p.cur().Kind) {
		name := p.advance()
		fn.Name = name.Text
		fn.NameSpan = name.Span
	}
	fn.Params = p.parseParams()
	if p.eat(token.Colon) {
		fn.Return = p.parseTypeAnn(typeCtxReturn)
	}
	if bodyless && !p.at(token.LBrace) {
		p.expectSemi()
		return fn
	}
	bodyStart := p.cur().Span.Start
	p.expect(token.LBrace)
	p.fnDepth++
	fn.Body = p.parseStmtList(token.RBrace)
	p.fnDepth--
	p.expect(token.RBrace)
	fn.BodySpan = p.spanFrom(bodyStart)
	return fn
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	p.expect(token.LParen)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		var param ast.Param
		param.Sym = ast.NoSymbol
		if p.eat(token.DotDotDot) {
			param.Rest = true
		}
		name, ok := p.expectBindingIdent()
		if !ok {
			p.recover()
			break
		}
		param.Name = name.Text
		param.NameSpan = name.Span
		if p.eat(token.Question) {
			// Optional marker, erased with the annotation.
		}
		if p.eat(token.Colon) {
			param.Type = p.parseTypeAnn(typeCtxParam)
		}
		if p.eat(token.Assign) {
			def := p.parseAssignExpr()
			param.Default = &def
		}
		params = append(params, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	if p.fnDepth == 0 && !p.opts.AllowReturnOutsideFunction {
		p.errorAt(p.spanFrom(start), "return statement outside of function")
	}
	var value *ast.Expr
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) && !p.cur().NewlineBefore {
		v := p.parseExpr()
		value = &v
	}
	p.expectSemi()
	return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SReturn{Value: value}}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	p.expect(token.LParen)
	test := p.parseExpr()
	p.expect(token.RParen)
	yes := p.parseStmt()
	s := &ast.SIf{Test: test, Yes: yes}
	if p.eat(token.KwElse) {
		no := p.parseStmt()
		s.No = &no
	}
	return ast.Stmt{Span: p.spanFrom(start), Data: s}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	p.expect(token.LParen)
	test := p.parseExpr()
	p.expect(token.RParen)
	body := p.parseStmt()
	return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SWhile{Test: test, Body: body}}
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	body := p.parseStmt()
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	test := p.parseExpr()
	p.expect(token.RParen)
	p.expectSemi()
	return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SDoWhile{Body: body, Test: test}}
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	p.expect(token.LParen)

	var init *ast.Stmt
	if !p.at(token.Semicolon) {
		var initStmt ast.Stmt
		p.noIn = true
		if p.at(token.KwVar) || p.at(token.KwLet) || p.at(token.KwConst) {
			initStmt = p.parseVarStmt(false)
		} else {
			exprStart := p.cur().Span.Start
			value := p.parseExpr()
			initStmt = ast.Stmt{Span: p.spanFrom(exprStart), Data: &ast.SExpr{Value: value}}
		}
		p.noIn = false
		if p.at(token.KwIn) || p.at(token.KwOf) {
			of := p.advance().Kind == token.KwOf
			value := p.parseAssignExpr()
			p.expect(token.RParen)
			body := p.parseStmt()
			return ast.Stmt{
				Span: p.spanFrom(start),
				Data: &ast.SForIn{Init: initStmt, Of: of, Value: value, Body: body},
			}
		}
		init = &initStmt
	}
	p.expect(token.Semicolon)

	var test, update *ast.Expr
	if !p.at(token.Semicolon) {
		t := p.parseExpr()
		test = &t
	}
	p.expect(token.Semicolon)
	if !p.at(token.RParen) {
		u := p.parseExpr()
		update = &u
	}
	p.expect(token.RParen)
	body := p.parseStmt()
	return ast.Stmt{
		Span: p.spanFrom(start),
		Data: &ast.SFor{Init: init, Test: test, Update: update, Body: body},
	}
}

func (p *Parser) parseTryStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance()
	p.expect(token.LBrace)
	body := p.parseStmtList(token.RBrace)
	p.expect(token.RBrace)

	s := &ast.STry{Body: body}
	if p.at(token.KwCatch) {
		catchStart := p.cur().Span.Start
		p.advance()
		catch := &ast.Catch{Sym: ast.NoSymbol}
		if p.eat(token.LParen) {
			if name, ok := p.expectBindingIdent(); ok {
				catch.Name = name.Text
				catch.NameSpan = name.Span
			}
			p.expect(token.RParen)
		}
		p.expect(token.LBrace)
		catch.Body = p.parseStmtList(token.RBrace)
		p.expect(token.RBrace)
		catch.Span = p.spanFrom(catchStart)
		s.Catch = catch
	}
	if p.eat(token.KwFinally) {
		p.expect(token.LBrace)
		s.Finally = p.parseStmtList(token.RBrace)
		p.expect(token.RBrace)
		s.HasFinally = true
	}
	if s.Catch == nil && !s.HasFinally {
		p.errorAt(p.spanFrom(start), "missing catch or finally clause")
	}
	return ast.Stmt{Span: p.spanFrom(start), Data: s}
}

func (p *Parser) parseTypeAliasStmt(declare bool) ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // type
	name, _ := p.expectBindingIdent()
	p.expect(token.Assign)
	ann := p.parseTypeAnn(typeCtxAlias)
	p.expectSemi()
	s := &ast.STypeAlias{
		Name:     name.Text,
		NameSpan: name.Span,
		Sym:      ast.NoSymbol,
		Declare:  declare,
	}
	if ann != nil {
		s.Type = *ann
	}
	return ast.Stmt{Span: p.spanFrom(start), Data: s}
}

func (p *Parser) parseDeclareStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // declare
	var s ast.Stmt
	switch p.cur().Kind {
	case token.KwFunction:
		p.advance()
		fn := p.parseFnRest(true)
		s = ast.Stmt{Data: &ast.SFunction{Fn: fn, Declare: true}}
	case token.KwType:
		return p.parseTypeAliasStmt(true)
	default:
		s = p.parseVarStmt(true)
		p.expectSemi()
	}
	s.Span = p.spanFrom(start)
	return s
}
