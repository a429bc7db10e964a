package linter

import (
	"strings"

	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/semantic"
)

func (l *Linter) noDebugger(program *ast.Program) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachStmt(program.Stmts, func(s *ast.Stmt) {
		if _, ok := s.Data.(*ast.SDebugger); ok {
			out = append(out, diag.Warning("eslint(no-debugger): `debugger` statement is not allowed").
				WithSpan(s.Span))
		}
	})
	return out
}

func (l *Linter) noUnusedVars(scoping *semantic.Scoping, record *ModuleRecord) []diag.Diagnostic {
	var out []diag.Diagnostic
	const interesting = semantic.SymFunctionScopedVariable |
		semantic.SymBlockScopedVariable |
		semantic.SymFunction
	for _, sym := range scoping.Symbols() {
		if sym.Flags&interesting == 0 || sym.Flags&(semantic.SymImport|semantic.SymTypeAlias|semantic.SymCatchVariable) != 0 {
			continue
		}
		if len(sym.Refs) > 0 || strings.HasPrefix(sym.Name, "_") {
			continue
		}
		if sym.Scope == scoping.Root() && record != nil && record.IsExported(sym.Name) {
			continue
		}
		out = append(out, diag.Warningf("eslint(no-unused-vars): Variable '%s' is declared but never used.", sym.Name).
			WithLabel(sym.Span, "'"+sym.Name+"' is declared here"))
	}
	return out
}

func (l *Linter) noDuplicateImports(record *ModuleRecord) []diag.Diagnostic {
	var out []diag.Diagnostic
	if record == nil {
		return nil
	}
	for _, src := range record.RequestOrder {
		spans := record.Requests[src]
		for _, sp := range spans[1:] {
			out = append(out, diag.Warningf("eslint(no-duplicate-imports): '%s' import is duplicated", src).
				WithSpan(sp))
		}
	}
	return out
}

// eachStmt visits every statement in the tree, function bodies included.
func eachStmt(stmts []ast.Stmt, fn func(*ast.Stmt)) {
	for i := range stmts {
		s := &stmts[i]
		fn(s)
		switch d := s.Data.(type) {
		case *ast.SFunction:
			eachStmt(d.Fn.Body, fn)
		case *ast.SIf:
			eachStmt([]ast.Stmt{d.Yes}, fn)
			if d.No != nil {
				eachStmt([]ast.Stmt{*d.No}, fn)
			}
		case *ast.SWhile:
			eachStmt([]ast.Stmt{d.Body}, fn)
		case *ast.SDoWhile:
			eachStmt([]ast.Stmt{d.Body}, fn)
		case *ast.SFor:
			if d.Init != nil {
				eachStmt([]ast.Stmt{*d.Init}, fn)
			}
			eachStmt([]ast.Stmt{d.Body}, fn)
		case *ast.SForIn:
			eachStmt([]ast.Stmt{d.Body}, fn)
		case *ast.SBlock:
			eachStmt(d.Stmts, fn)
		case *ast.STry:
			eachStmt(d.Body, fn)
			if d.Catch != nil {
				eachStmt(d.Catch.Body, fn)
			}
			eachStmt(d.Finally, fn)
		case *ast.SExportNamed:
			if d.Decl != nil {
				eachStmt([]ast.Stmt{*d.Decl}, fn)
			}
		}
	}
}
