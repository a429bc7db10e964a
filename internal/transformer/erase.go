package transformer

import (
	"loupe/internal/ast"
)

// eraseTypes strips every TypeScript-only construct: annotations, type
// aliases, type-only imports, and ambient declarations. Statement lists are
// filtered; a type-only statement in a single-statement position (an if arm,
// a loop body) degrades to an empty statement.
func eraseTypes(program *ast.Program) {
	r := rewriter{
		stmt: func(s *ast.Stmt) {
			switch d := s.Data.(type) {
			case *ast.SVar:
				for i := range d.Decls {
					d.Decls[i].Type = nil
				}
			case *ast.SFunction:
				eraseFnTypes(&d.Fn)
			case *ast.SBlock:
				d.Stmts = filterErased(d.Stmts)
			case *ast.STry:
				d.Body = filterErased(d.Body)
				if d.Catch != nil {
					d.Catch.Body = filterErased(d.Catch.Body)
				}
				d.Finally = filterErased(d.Finally)
			case *ast.SIf:
				eraseSingle(&d.Yes)
				if d.No != nil {
					eraseSingle(d.No)
				}
			case *ast.SWhile:
				eraseSingle(&d.Body)
			case *ast.SDoWhile:
				eraseSingle(&d.Body)
			case *ast.SFor:
				eraseSingle(&d.Body)
			case *ast.SForIn:
				eraseSingle(&d.Body)
			}
		},
		expr: func(e *ast.Expr) {
			switch d := e.Data.(type) {
			case *ast.EArrow:
				eraseFnTypes(&d.Fn)
			case *ast.EFunction:
				eraseFnTypes(&d.Fn)
			}
		},
		fnPre: func(f *ast.Fn) {
			f.Body = filterErased(f.Body)
		},
	}
	program.Stmts = filterErased(program.Stmts)
	r.stmtList(program.Stmts)
}

func eraseFnTypes(fn *ast.Fn) {
	fn.Return = nil
	for i := range fn.Params {
		fn.Params[i].Type = nil
	}
}

func eraseSingle(s *ast.Stmt) {
	if !keepAfterErasure(s) {
		s.Data = &ast.SEmpty{}
	}
}

func filterErased(stmts []ast.Stmt) []ast.Stmt {
	out := stmts[:0]
	for i := range stmts {
		if keepAfterErasure(&stmts[i]) {
			out = append(out, stmts[i])
		}
	}
	return out
}

func keepAfterErasure(s *ast.Stmt) bool {
	switch d := s.Data.(type) {
	case *ast.STypeAlias:
		return false
	case *ast.SVar:
		return !d.Declare
	case *ast.SFunction:
		return !d.Declare
	case *ast.SImport:
		return !d.TypeOnly
	case *ast.SExportNamed:
		if d.Decl == nil {
			return true
		}
		return keepAfterErasure(d.Decl)
	}
	return true
}
