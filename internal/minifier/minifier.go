package minifier

import (
	"loupe/internal/ast"
	"loupe/internal/semantic"
)

// CompressOptions enable statement-level compression passes.
type CompressOptions struct {
	DropConsole  bool
	DropDebugger bool
}

// Options configure the minifier. Compress nil means no compression.
type Options struct {
	Mangle   bool
	Compress *CompressOptions
}

// Result carries the scoping produced by mangling. Nil when mangling is off;
// the printer then uses source names.
type Result struct {
	Scoping *semantic.Scoping
}

type Minifier struct {
	opts Options
}

func New(opts Options) *Minifier {
	return &Minifier{opts: opts}
}

// Build compresses the tree in place, then mangles. Mangling runs its own
// semantic pass: earlier passes may have rewritten the tree, so reference
// ids from any previous pass are stale.
func (m *Minifier) Build(program *ast.Program) Result {
	if m.opts.Compress != nil {
		compress(program, *m.opts.Compress)
	}
	if !m.opts.Mangle {
		return Result{}
	}
	return Result{Scoping: mangle(program)}
}

func compress(program *ast.Program, opts CompressOptions) {
	program.Stmts = compressStmts(program.Stmts, opts)
}

func compressStmts(stmts []ast.Stmt, opts CompressOptions) []ast.Stmt {
	out := stmts[:0]
	for i := range stmts {
		s := stmts[i]
		if dropStmt(&s, opts) {
			continue
		}
		compressStmt(&s, opts)
		out = append(out, s)
	}
	return out
}

func dropStmt(s *ast.Stmt, opts CompressOptions) bool {
	switch d := s.Data.(type) {
	case *ast.SDebugger:
		return opts.DropDebugger
	case *ast.SExpr:
		return opts.DropConsole && isConsoleCall(&d.Value)
	}
	return false
}

// isConsoleCall matches a call whose callee is a member of the global
// console object, `console.log(x)` and `console["log"](x)` alike.
func isConsoleCall(e *ast.Expr) bool {
	call, ok := e.Data.(*ast.ECall)
	if !ok {
		return false
	}
	var target *ast.Expr
	switch d := call.Target.Data.(type) {
	case *ast.EDot:
		target = &d.Target
	case *ast.EIndex:
		target = &d.Target
	default:
		return false
	}
	ident, ok := target.Data.(*ast.EIdent)
	return ok && ident.Name == "console"
}

func compressStmt(s *ast.Stmt, opts CompressOptions) {
	switch d := s.Data.(type) {
	case *ast.SFunction:
		d.Fn.Body = compressStmts(d.Fn.Body, opts)
	case *ast.SIf:
		compressSingle(&d.Yes, opts)
		if d.No != nil {
			compressSingle(d.No, opts)
		}
	case *ast.SWhile:
		compressSingle(&d.Body, opts)
	case *ast.SDoWhile:
		compressSingle(&d.Body, opts)
	case *ast.SFor:
		compressSingle(&d.Body, opts)
	case *ast.SForIn:
		compressSingle(&d.Body, opts)
	case *ast.SBlock:
		d.Stmts = compressStmts(d.Stmts, opts)
	case *ast.STry:
		d.Body = compressStmts(d.Body, opts)
		if d.Catch != nil {
			d.Catch.Body = compressStmts(d.Catch.Body, opts)
		}
		d.Finally = compressStmts(d.Finally, opts)
	case *ast.SExportNamed:
		if d.Decl != nil {
			compressStmt(d.Decl, opts)
		}
	}
}

func compressSingle(s *ast.Stmt, opts CompressOptions) {
	if dropStmt(s, opts) {
		s.Data = &ast.SEmpty{}
		return
	}
	compressStmt(s, opts)
}
