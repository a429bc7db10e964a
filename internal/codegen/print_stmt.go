package codegen

import (
	"loupe/internal/ast"
)

func (p *printer) stmt(s *ast.Stmt) {
	p.mark(s.Span)
	switch d := s.Data.(type) {
	case *ast.SVar:
		p.varDecl(d)
		p.print(";")
	case *ast.SFunction:
		if d.Declare {
			p.print("declare ")
		}
		p.fn(&d.Fn, d.Declare)
		if d.Declare {
			p.print(";")
		}
	case *ast.SReturn:
		p.print("return")
		if d.Value != nil {
			p.print(" ")
			p.expr(d.Value, ast.PrecComma)
		}
		p.print(";")
	case *ast.SIf:
		p.print("if")
		p.space()
		p.print("(")
		p.expr(&d.Test, ast.PrecLowest)
		p.print(")")
		p.space()
		p.nested(&d.Yes)
		if d.No != nil {
			p.space()
			p.print("else")
			if _, isIf := d.No.Data.(*ast.SIf); isIf || !p.opts.Minify {
				p.print(" ")
			}
			p.nested(d.No)
		}
	case *ast.SWhile:
		p.print("while")
		p.space()
		p.print("(")
		p.expr(&d.Test, ast.PrecLowest)
		p.print(")")
		p.space()
		p.nested(&d.Body)
	case *ast.SDoWhile:
		p.print("do")
		p.print(" ")
		p.nested(&d.Body)
		p.space()
		p.print("while")
		p.space()
		p.print("(")
		p.expr(&d.Test, ast.PrecLowest)
		p.print(");")
	case *ast.SFor:
		p.print("for")
		p.space()
		p.print("(")
		if d.Init != nil {
			p.forInit(d.Init)
		}
		p.print(";")
		if d.Test != nil {
			p.space()
			p.expr(d.Test, ast.PrecLowest)
		}
		p.print(";")
		if d.Update != nil {
			p.space()
			p.expr(d.Update, ast.PrecLowest)
		}
		p.print(")")
		p.space()
		p.nested(&d.Body)
	case *ast.SForIn:
		p.print("for")
		p.space()
		p.print("(")
		p.forInit(&d.Init)
		if d.Of {
			p.print(" of ")
		} else {
			p.print(" in ")
		}
		p.expr(&d.Value, ast.PrecComma)
		p.print(")")
		p.space()
		p.nested(&d.Body)
	case *ast.SBlock:
		p.block(d.Stmts)
	case *ast.SEmpty:
		p.print(";")
	case *ast.SExpr:
		p.exprStmt(&d.Value)
		p.print(";")
	case *ast.SDebugger:
		p.print("debugger;")
	case *ast.SThrow:
		p.print("throw ")
		p.expr(&d.Value, ast.PrecComma)
		p.print(";")
	case *ast.STry:
		p.print("try")
		p.space()
		p.block(d.Body)
		if d.Catch != nil {
			p.space()
			p.print("catch")
			p.space()
			if d.Catch.Name != "" {
				p.print("(")
				p.print(p.symbolName(d.Catch.Sym, d.Catch.Name))
				p.print(")")
				p.space()
			}
			p.block(d.Catch.Body)
		}
		if d.HasFinally {
			p.space()
			p.print("finally")
			p.space()
			p.block(d.Finally)
		}
	case *ast.SBreak:
		p.print("break;")
	case *ast.SContinue:
		p.print("continue;")
	case *ast.SImport:
		p.importStmt(d)
	case *ast.SExportNamed:
		p.print("export ")
		if d.Decl != nil {
			p.stmt(d.Decl)
			return
		}
		p.print("{")
		for i, name := range d.Names {
			if i > 0 {
				p.print(",")
			}
			p.space()
			p.print(name.Name)
			if name.Alias != "" {
				p.print(" as ")
				p.print(name.Alias)
			}
		}
		p.space()
		p.print("};")
	case *ast.SExportDefault:
		p.print("export default ")
		p.expr(&d.Value, ast.PrecComma)
		p.print(";")
	case *ast.STypeAlias:
		if d.Declare {
			p.print("declare ")
		}
		p.print("type ")
		p.print(d.Name)
		p.space()
		p.print("=")
		p.space()
		p.print(d.Type.Text)
		p.print(";")
	}
}

// nested prints a statement in a single-statement position, indenting
// non-block bodies on their own line.
func (p *printer) nested(s *ast.Stmt) {
	if _, isBlock := s.Data.(*ast.SBlock); isBlock || p.opts.Minify {
		p.stmt(s)
		return
	}
	p.indent++
	p.newline()
	p.stmt(s)
	p.indent--
}

func (p *printer) block(stmts []ast.Stmt) {
	if len(stmts) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for i := range stmts {
		p.newline()
		p.stmt(&stmts[i])
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) varDecl(d *ast.SVar) {
	if d.Declare {
		p.print("declare ")
	}
	p.print(d.Kind.String())
	p.print(" ")
	for i := range d.Decls {
		if i > 0 {
			p.print(",")
			p.space()
		}
		dec := &d.Decls[i]
		p.mark(dec.NameSpan)
		p.print(p.symbolName(dec.Sym, dec.Name))
		p.typeAnn(dec.Type)
		if dec.Init != nil {
			p.space()
			p.print("=")
			p.space()
			p.expr(dec.Init, ast.PrecAssign)
		}
	}
}

// forInit prints a for-head init without the trailing semicolon.
func (p *printer) forInit(s *ast.Stmt) {
	switch d := s.Data.(type) {
	case *ast.SVar:
		p.varDecl(d)
	case *ast.SExpr:
		p.expr(&d.Value, ast.PrecLowest)
	}
}

func (p *printer) fn(f *ast.Fn, bodyless bool) {
	p.print("function")
	name := p.symbolName(f.Sym, f.Name)
	if name != "" {
		p.print(" ")
		p.mark(f.NameSpan)
		p.print(name)
	}
	p.params(f.Params)
	p.typeAnn(f.Return)
	if bodyless {
		return
	}
	p.space()
	p.block(f.Body)
}

func (p *printer) params(params []ast.Param) {
	p.print("(")
	for i := range params {
		if i > 0 {
			p.print(",")
			p.space()
		}
		par := &params[i]
		if par.Rest {
			p.print("...")
		}
		p.mark(par.NameSpan)
		p.print(p.symbolName(par.Sym, par.Name))
		p.typeAnn(par.Type)
		if par.Default != nil {
			p.space()
			p.print("=")
			p.space()
			p.expr(par.Default, ast.PrecAssign)
		}
	}
	p.print(")")
}

func (p *printer) importStmt(d *ast.SImport) {
	p.print("import ")
	if d.TypeOnly {
		p.print("type ")
	}
	wrote := false
	if d.Default != "" {
		p.print(p.symbolName(d.DefaultSym, d.Default))
		wrote = true
	}
	if d.Namespace != "" {
		if wrote {
			p.print(",")
			p.space()
		}
		p.print("* as ")
		p.print(p.symbolName(d.NamespaceSym, d.Namespace))
		wrote = true
	}
	if len(d.Names) > 0 {
		if wrote {
			p.print(",")
			p.space()
		}
		p.print("{")
		for i, name := range d.Names {
			if i > 0 {
				p.print(",")
			}
			p.space()
			p.print(name.Name)
			if name.Alias != "" {
				p.print(" as ")
				p.print(p.symbolName(name.Sym, name.Alias))
			}
		}
		p.space()
		p.print("}")
		wrote = true
	}
	if wrote {
		p.print(" from ")
	}
	p.print(quote(d.Source))
	p.print(";")
}
