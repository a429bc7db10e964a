package transformer

import (
	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/semantic"
	"loupe/internal/source"
)

// Transformer rewrites the tree in place: TypeScript erasure always, plus
// syntax downleveling when the target predates a feature.
type Transformer struct {
	opts Options
}

func New(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Build runs every applicable pass over the program. The scoping argument is
// the semantic pass the tree was built with; passes that rewrite bindings keep
// it untouched since downstream stages rebuild scoping when they need it.
func (t *Transformer) Build(program *ast.Program, scoping *semantic.Scoping) []diag.Diagnostic {
	_ = scoping
	if program.SourceType.IsTypeScript() {
		eraseTypes(program)
	}
	if t.opts.Target < ES2016 {
		lowerExponent(program)
	}
	if t.opts.Target < ES2015 {
		lowerBlockScoping(program)
		lowerArrows(program)
	}
	return nil
}

// lowerBlockScoping rewrites let and const declarations to var. Scope-safe
// renaming is out of scope; the semantic pass already reported shadowing that
// would change meaning.
func lowerBlockScoping(program *ast.Program) {
	r := rewriter{stmt: func(s *ast.Stmt) {
		if d, ok := s.Data.(*ast.SVar); ok {
			d.Kind = ast.VarVar
		}
	}}
	r.stmtList(program.Stmts)
}

// lowerArrows rewrites arrow functions into function expressions. `this`
// capture is not rewritten; arrows keep their span so a reader can locate
// them in the original source.
func lowerArrows(program *ast.Program) {
	r := rewriter{expr: func(e *ast.Expr) {
		if d, ok := e.Data.(*ast.EArrow); ok {
			fn := d.Fn
			fn.HasExprBody = false
			e.Data = &ast.EFunction{Fn: fn}
		}
	}}
	r.stmtList(program.Stmts)
}

// lowerExponent rewrites `a ** b` into `Math.pow(a, b)`.
func lowerExponent(program *ast.Program) {
	r := rewriter{expr: func(e *ast.Expr) {
		d, ok := e.Data.(*ast.EBinary)
		if !ok || d.Op != ast.BinPow {
			return
		}
		pow := ast.Expr{
			Span: e.Span,
			Data: &ast.EDot{
				Target:   ast.Expr{Span: e.Span, Data: &ast.EIdent{Name: "Math", Ref: ast.NoReference}},
				Name:     "pow",
				NameSpan: source.Span{Start: e.Span.Start, End: e.Span.Start},
			},
		}
		e.Data = &ast.ECall{Target: pow, Args: []ast.Expr{d.Left, d.Right}}
	}}
	r.stmtList(program.Stmts)
}

// rewriter walks the tree depth-first and applies its callbacks in place.
// Statements get the callback before descending; expressions after, so an
// expression rewrite sees already-rewritten children.
type rewriter struct {
	stmt func(*ast.Stmt)
	expr func(*ast.Expr)
	// fnPre runs on every function before its body is walked; erasure uses
	// it to filter the body list.
	fnPre func(*ast.Fn)
}

func (r *rewriter) stmtList(stmts []ast.Stmt) {
	for i := range stmts {
		r.stmtNode(&stmts[i])
	}
}

func (r *rewriter) stmtNode(s *ast.Stmt) {
	if r.stmt != nil {
		r.stmt(s)
	}
	switch d := s.Data.(type) {
	case *ast.SVar:
		for i := range d.Decls {
			if d.Decls[i].Init != nil {
				r.exprNode(d.Decls[i].Init)
			}
		}
	case *ast.SFunction:
		r.fn(&d.Fn)
	case *ast.SReturn:
		if d.Value != nil {
			r.exprNode(d.Value)
		}
	case *ast.SIf:
		r.exprNode(&d.Test)
		r.stmtNode(&d.Yes)
		if d.No != nil {
			r.stmtNode(d.No)
		}
	case *ast.SWhile:
		r.exprNode(&d.Test)
		r.stmtNode(&d.Body)
	case *ast.SDoWhile:
		r.stmtNode(&d.Body)
		r.exprNode(&d.Test)
	case *ast.SFor:
		if d.Init != nil {
			r.stmtNode(d.Init)
		}
		if d.Test != nil {
			r.exprNode(d.Test)
		}
		if d.Update != nil {
			r.exprNode(d.Update)
		}
		r.stmtNode(&d.Body)
	case *ast.SForIn:
		r.stmtNode(&d.Init)
		r.exprNode(&d.Value)
		r.stmtNode(&d.Body)
	case *ast.SBlock:
		r.stmtList(d.Stmts)
	case *ast.SExpr:
		r.exprNode(&d.Value)
	case *ast.SThrow:
		r.exprNode(&d.Value)
	case *ast.STry:
		r.stmtList(d.Body)
		if d.Catch != nil {
			r.stmtList(d.Catch.Body)
		}
		r.stmtList(d.Finally)
	case *ast.SExportNamed:
		if d.Decl != nil {
			r.stmtNode(d.Decl)
		}
	case *ast.SExportDefault:
		r.exprNode(&d.Value)
	}
}

func (r *rewriter) fn(f *ast.Fn) {
	if r.fnPre != nil {
		r.fnPre(f)
	}
	for i := range f.Params {
		if f.Params[i].Default != nil {
			r.exprNode(f.Params[i].Default)
		}
	}
	r.stmtList(f.Body)
}

func (r *rewriter) exprNode(e *ast.Expr) {
	switch d := e.Data.(type) {
	case *ast.EArray:
		for i := range d.Items {
			r.exprNode(&d.Items[i])
		}
	case *ast.EObject:
		for i := range d.Props {
			r.exprNode(&d.Props[i].Value)
		}
	case *ast.EUnary:
		r.exprNode(&d.Value)
	case *ast.EUpdate:
		r.exprNode(&d.Value)
	case *ast.EBinary:
		r.exprNode(&d.Left)
		r.exprNode(&d.Right)
	case *ast.ECond:
		r.exprNode(&d.Test)
		r.exprNode(&d.Yes)
		r.exprNode(&d.No)
	case *ast.ECall:
		r.exprNode(&d.Target)
		for i := range d.Args {
			r.exprNode(&d.Args[i])
		}
	case *ast.ENew:
		r.exprNode(&d.Target)
		for i := range d.Args {
			r.exprNode(&d.Args[i])
		}
	case *ast.EDot:
		r.exprNode(&d.Target)
	case *ast.EIndex:
		r.exprNode(&d.Target)
		r.exprNode(&d.Index)
	case *ast.EArrow:
		r.fn(&d.Fn)
	case *ast.EFunction:
		r.fn(&d.Fn)
	case *ast.EParen:
		r.exprNode(&d.Value)
	case *ast.ESequence:
		for i := range d.Exprs {
			r.exprNode(&d.Exprs[i])
		}
	case *ast.ESpread:
		r.exprNode(&d.Value)
	case *ast.EIntrinsic:
		for i := range d.Args {
			r.exprNode(&d.Args[i])
		}
	}
	if r.expr != nil {
		r.expr(e)
	}
}
