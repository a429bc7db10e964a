package transformer

import (
	"strings"

	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/token"
)

// IsolatedOptions configure declaration emit.
type IsolatedOptions struct {
	// StripInternal drops declarations whose leading block comment contains
	// an @internal tag.
	StripInternal bool
}

// IsolatedResult is a declaration-only program plus the errors that made
// emit impossible. Any error means the program must not be used.
type IsolatedResult struct {
	Program *ast.Program
	Errors  []diag.Diagnostic
}

// BuildIsolatedDeclarations derives a declaration file from exported-surface
// syntax alone. Every emitted type must be readable off a signature; an
// initializer that would require inference beyond trivial literals is an
// error.
func BuildIsolatedDeclarations(program *ast.Program, opts IsolatedOptions) IsolatedResult {
	g := isolatedGen{src: program, opts: opts}
	st := program.SourceType
	st.Definition = true
	out := &ast.Program{
		SourceType: st,
		Path:       program.Path,
		SourceText: program.SourceText,
		Span:       program.Span,
		Comments:   nil,
	}
	for i := range program.Stmts {
		s := &program.Stmts[i]
		if opts.StripInternal && g.isInternal(s) {
			continue
		}
		if decl, ok := g.stmt(s); ok {
			out.Stmts = append(out.Stmts, decl)
		}
	}
	return IsolatedResult{Program: out, Errors: g.errors}
}

type isolatedGen struct {
	src    *ast.Program
	opts   IsolatedOptions
	errors []diag.Diagnostic
}

func (g *isolatedGen) errorAt(s *ast.Stmt, msg string) {
	g.errors = append(g.errors, diag.Error(msg).WithSpan(s.Span))
}

func (g *isolatedGen) stmt(s *ast.Stmt) (ast.Stmt, bool) {
	switch d := s.Data.(type) {
	case *ast.SVar:
		return g.varDecl(s, d)
	case *ast.SFunction:
		return g.funcDecl(s, d)
	case *ast.STypeAlias:
		return ast.Stmt{Span: s.Span, Data: &ast.STypeAlias{
			Name:     d.Name,
			NameSpan: d.NameSpan,
			Sym:      ast.NoSymbol,
			Type:     d.Type,
			Declare:  d.Declare,
		}}, true
	case *ast.SImport:
		return *s, true
	case *ast.SExportNamed:
		if d.Decl == nil {
			return *s, true
		}
		inner, ok := g.stmt(d.Decl)
		if !ok {
			return ast.Stmt{}, false
		}
		return ast.Stmt{Span: s.Span, Data: &ast.SExportNamed{Decl: &inner}}, true
	case *ast.SExportDefault:
		if _, ok := d.Value.Data.(*ast.EIdent); ok {
			return *s, true
		}
		g.errorAt(s, "TS9011: Default export expression cannot be inferred with --isolatedDeclarations.")
		return ast.Stmt{}, false
	}
	return ast.Stmt{}, false
}

func (g *isolatedGen) varDecl(s *ast.Stmt, d *ast.SVar) (ast.Stmt, bool) {
	out := &ast.SVar{Kind: d.Kind, Declare: true}
	for _, dec := range d.Decls {
		typ := dec.Type
		if typ == nil {
			inferred, ok := inferredType(dec.Init)
			if !ok {
				g.errorAt(s, "TS9010: Variable must have an explicit type annotation with --isolatedDeclarations.")
				return ast.Stmt{}, false
			}
			typ = &ast.TypeAnn{Span: dec.NameSpan, Text: inferred}
		}
		out.Decls = append(out.Decls, ast.Declarator{
			Name:     dec.Name,
			NameSpan: dec.NameSpan,
			Sym:      ast.NoSymbol,
			Type:     typ,
		})
	}
	return ast.Stmt{Span: s.Span, Data: out}, true
}

func (g *isolatedGen) funcDecl(s *ast.Stmt, d *ast.SFunction) (ast.Stmt, bool) {
	if d.Fn.Return == nil {
		g.errorAt(s, "TS9007: Function must have an explicit return type annotation with --isolatedDeclarations.")
		return ast.Stmt{}, false
	}
	fn := ast.Fn{
		Name:     d.Fn.Name,
		NameSpan: d.Fn.NameSpan,
		Sym:      ast.NoSymbol,
		Return:   d.Fn.Return,
	}
	for _, p := range d.Fn.Params {
		typ := p.Type
		if typ == nil {
			inferred, ok := inferredType(p.Default)
			if !ok {
				g.errorAt(s, "TS9011: Parameter must have an explicit type annotation with --isolatedDeclarations.")
				return ast.Stmt{}, false
			}
			typ = &ast.TypeAnn{Span: p.NameSpan, Text: inferred}
		}
		fn.Params = append(fn.Params, ast.Param{
			Name:     p.Name,
			NameSpan: p.NameSpan,
			Sym:      ast.NoSymbol,
			Type:     typ,
			Rest:     p.Rest,
		})
	}
	return ast.Stmt{Span: s.Span, Data: &ast.SFunction{Fn: fn, Declare: true}}, true
}

// inferredType maps a trivially typed initializer to its type text.
func inferredType(init *ast.Expr) (string, bool) {
	if init == nil {
		return "", false
	}
	switch d := init.Data.(type) {
	case *ast.ENumber:
		return "number", true
	case *ast.EString, *ast.ETemplate:
		return "string", true
	case *ast.EBool:
		return "boolean", true
	case *ast.ENull:
		return "null", true
	case *ast.EUnary:
		if d.Op == ast.UnNeg || d.Op == ast.UnPlus {
			if _, ok := d.Value.Data.(*ast.ENumber); ok {
				return "number", true
			}
		}
	case *ast.EParen:
		return inferredType(&d.Value)
	}
	return "", false
}

// isInternal reports whether the block comment directly above the statement
// carries an @internal tag.
func (g *isolatedGen) isInternal(s *ast.Stmt) bool {
	for _, c := range g.src.Comments {
		if c.Kind != token.CommentBlock || c.Span.End > s.Span.Start {
			continue
		}
		between := g.src.SourceText[c.Span.End:s.Span.Start]
		if strings.TrimSpace(between) != "" {
			continue
		}
		text := c.ContentSpan.Text(g.src.SourceText)
		if strings.Contains(text, "@internal") {
			return true
		}
	}
	return false
}
