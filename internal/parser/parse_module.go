package parser

import (
	"loupe/internal/ast"
	"loupe/internal/source"
	"loupe/internal/token"
)

func (p *Parser) requireModuleGoal(sp source.Span, what string) {
	if p.st.Kind == source.KindScript {
		p.errorAt(sp, "%s cannot be used in a script; set sourceType to module", what)
	}
	p.record.HasModuleSyntax = true
}

func (p *Parser) parseImportStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // import
	p.requireModuleGoal(p.spanFrom(start), "an import declaration")

	s := &ast.SImport{
		DefaultSym:   ast.NoSymbol,
		NamespaceSym: ast.NoSymbol,
	}
	entry := ast.ImportEntry{}

	if p.at(token.String) {
		// Side-effect import: import "m";
		src := p.advance()
		s.Source = unquote(src.Text)
		s.SourceSpan = src.Span
		p.expectSemi()
		stmt := ast.Stmt{Span: p.spanFrom(start), Data: s}
		entry.Source = s.Source
		entry.SourceSpan = s.SourceSpan
		entry.Span = stmt.Span
		p.record.Imports = append(p.record.Imports, entry)
		return stmt
	}

	if p.at(token.KwType) && p.peek(1).Kind != token.Comma && p.peek(1).Kind != token.KwFrom {
		s.TypeOnly = true
		p.advance()
	}

	if p.at(token.Ident) || token.Contextual(p.cur().Kind) {
		name := p.advance()
		s.Default = name.Text
		s.DefaultSpan = name.Span
		entry.Names = append(entry.Names, name.Text)
		if !p.eat(token.Comma) {
			goto from
		}
	}

	switch {
	case p.eat(token.Star):
		p.expect(token.KwAs)
		if name, ok := p.expectBindingIdent(); ok {
			s.Namespace = name.Text
			s.NamespaceSpan = name.Span
			entry.Names = append(entry.Names, name.Text)
		}
	case p.eat(token.LBrace):
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			name, ok := p.expectBindingIdent()
			if !ok {
				p.recover()
				break
			}
			in := ast.ImportName{Name: name.Text, NameSpan: name.Span, Sym: ast.NoSymbol}
			if p.eat(token.KwAs) {
				if alias, ok := p.expectBindingIdent(); ok {
					in.Alias = alias.Text
					in.AliasSpan = alias.Span
				}
			}
			local := in.Name
			if in.Alias != "" {
				local = in.Alias
			}
			entry.Names = append(entry.Names, local)
			s.Names = append(s.Names, in)
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace)
	default:
		p.errorAt(p.cur().Span, "expected import specifiers but found %s", p.describe(p.cur()))
	}

from:
	p.expect(token.KwFrom)
	if src, ok := p.expect(token.String); ok {
		s.Source = unquote(src.Text)
		s.SourceSpan = src.Span
	}
	p.expectSemi()

	stmt := ast.Stmt{Span: p.spanFrom(start), Data: s}
	entry.Source = s.Source
	entry.SourceSpan = s.SourceSpan
	entry.Span = stmt.Span
	entry.TypeOnly = s.TypeOnly
	p.record.Imports = append(p.record.Imports, entry)
	return stmt
}

func (p *Parser) parseExportStmt() ast.Stmt {
	start := p.cur().Span.Start
	p.advance() // export
	p.requireModuleGoal(p.spanFrom(start), "an export declaration")

	if p.eat(token.KwDefault) {
		value := p.parseAssignExpr()
		p.expectSemi()
		stmt := ast.Stmt{Span: p.spanFrom(start), Data: &ast.SExportDefault{Value: value}}
		p.record.Exports = append(p.record.Exports, ast.ExportEntry{
			Name:    "default",
			Span:    stmt.Span,
			Default: true,
		})
		return stmt
	}

	if p.eat(token.LBrace) {
		s := &ast.SExportNamed{}
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			name, ok := p.expectBindingIdent()
			if !ok {
				p.recover()
				break
			}
			en := ast.ExportName{Name: name.Text, NameSpan: name.Span, Ref: ast.NoReference}
			if p.eat(token.KwAs) {
				if alias, ok := p.expectBindingIdent(); ok {
					en.Alias = alias.Text
					en.AliasSpan = alias.Span
				}
			}
			s.Names = append(s.Names, en)
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace)
		p.expectSemi()
		stmt := ast.Stmt{Span: p.spanFrom(start), Data: s}
		for _, en := range s.Names {
			exported := en.Name
			if en.Alias != "" {
				exported = en.Alias
			}
			p.record.Exports = append(p.record.Exports, ast.ExportEntry{Name: exported, Span: en.NameSpan})
		}
		return stmt
	}

	var decl ast.Stmt
	switch p.cur().Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		decl = p.parseVarStmt(false)
		p.expectSemi()
	case token.KwFunction:
		decl = p.parseFunctionStmt(false)
	case token.KwType:
		decl = p.parseTypeAliasStmt(false)
	case token.KwDeclare:
		decl = p.parseDeclareStmt()
	default:
		p.errorAt(p.cur().Span, "expected a declaration after 'export' but found %s", p.describe(p.cur()))
		p.recover()
		return ast.Stmt{Span: p.spanFrom(start), Data: &ast.SEmpty{}}
	}
	decl.Span = p.spanFrom(decl.Span.Start)
	stmt := ast.Stmt{Span: p.spanFrom(start), Data: &ast.SExportNamed{Decl: &decl}}
	for _, name := range declaredNames(&decl) {
		p.record.Exports = append(p.record.Exports, ast.ExportEntry{Name: name.Name, Span: name.Span})
	}
	return stmt
}

type declaredName struct {
	Name string
	Span source.Span
}

func declaredNames(s *ast.Stmt) []declaredName {
	var out []declaredName
	switch d := s.Data.(type) {
	case *ast.SVar:
		for _, dec := range d.Decls {
			out = append(out, declaredName{dec.Name, dec.NameSpan})
		}
	case *ast.SFunction:
		if d.Fn.Name != "" {
			out = append(out, declaredName{d.Fn.Name, d.Fn.NameSpan})
		}
	case *ast.STypeAlias:
		out = append(out, declaredName{d.Name, d.NameSpan})
	}
	return out
}

// unquote strips the delimiting quotes off a string literal lexeme. Escape
// sequences inside module specifiers are left as written.
func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}
