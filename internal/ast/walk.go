package ast

import (
	"loupe/internal/source"
)

// WalkSpans applies fn to every span stored in the tree, each span exactly
// once. The coordinate translator uses it to convert the whole tree in a
// single traversal.
func WalkSpans(p *Program, fn func(*source.Span)) {
	fn(&p.Span)
	for i := range p.Stmts {
		walkStmtSpans(&p.Stmts[i], fn)
	}
}

func walkTypeSpans(t *TypeAnn, fn func(*source.Span)) {
	if t != nil {
		fn(&t.Span)
	}
}

func walkFnSpans(f *Fn, fn func(*source.Span)) {
	if !f.NameSpan.Empty() || f.Name != "" {
		fn(&f.NameSpan)
	}
	for i := range f.Params {
		p := &f.Params[i]
		fn(&p.NameSpan)
		walkTypeSpans(p.Type, fn)
		if p.Default != nil {
			walkExprSpans(p.Default, fn)
		}
	}
	walkTypeSpans(f.Return, fn)
	fn(&f.BodySpan)
	for i := range f.Body {
		walkStmtSpans(&f.Body[i], fn)
	}
}

func walkStmtSpans(s *Stmt, fn func(*source.Span)) {
	fn(&s.Span)
	switch d := s.Data.(type) {
	case *SVar:
		for i := range d.Decls {
			dec := &d.Decls[i]
			fn(&dec.NameSpan)
			walkTypeSpans(dec.Type, fn)
			if dec.Init != nil {
				walkExprSpans(dec.Init, fn)
			}
		}
	case *SFunction:
		walkFnSpans(&d.Fn, fn)
	case *SReturn:
		if d.Value != nil {
			walkExprSpans(d.Value, fn)
		}
	case *SIf:
		walkExprSpans(&d.Test, fn)
		walkStmtSpans(&d.Yes, fn)
		if d.No != nil {
			walkStmtSpans(d.No, fn)
		}
	case *SWhile:
		walkExprSpans(&d.Test, fn)
		walkStmtSpans(&d.Body, fn)
	case *SDoWhile:
		walkStmtSpans(&d.Body, fn)
		walkExprSpans(&d.Test, fn)
	case *SFor:
		if d.Init != nil {
			walkStmtSpans(d.Init, fn)
		}
		if d.Test != nil {
			walkExprSpans(d.Test, fn)
		}
		if d.Update != nil {
			walkExprSpans(d.Update, fn)
		}
		walkStmtSpans(&d.Body, fn)
	case *SForIn:
		walkStmtSpans(&d.Init, fn)
		walkExprSpans(&d.Value, fn)
		walkStmtSpans(&d.Body, fn)
	case *SBlock:
		for i := range d.Stmts {
			walkStmtSpans(&d.Stmts[i], fn)
		}
	case *SExpr:
		walkExprSpans(&d.Value, fn)
	case *SThrow:
		walkExprSpans(&d.Value, fn)
	case *STry:
		for i := range d.Body {
			walkStmtSpans(&d.Body[i], fn)
		}
		if d.Catch != nil {
			fn(&d.Catch.Span)
			if d.Catch.Name != "" {
				fn(&d.Catch.NameSpan)
			}
			for i := range d.Catch.Body {
				walkStmtSpans(&d.Catch.Body[i], fn)
			}
		}
		for i := range d.Finally {
			walkStmtSpans(&d.Finally[i], fn)
		}
	case *SImport:
		if d.Default != "" {
			fn(&d.DefaultSpan)
		}
		if d.Namespace != "" {
			fn(&d.NamespaceSpan)
		}
		for i := range d.Names {
			fn(&d.Names[i].NameSpan)
			if d.Names[i].Alias != "" {
				fn(&d.Names[i].AliasSpan)
			}
		}
		fn(&d.SourceSpan)
	case *SExportNamed:
		if d.Decl != nil {
			walkStmtSpans(d.Decl, fn)
		}
		for i := range d.Names {
			fn(&d.Names[i].NameSpan)
			if d.Names[i].Alias != "" {
				fn(&d.Names[i].AliasSpan)
			}
		}
	case *SExportDefault:
		walkExprSpans(&d.Value, fn)
	case *STypeAlias:
		fn(&d.NameSpan)
		fn(&d.Type.Span)
	case *SEmpty, *SDebugger, *SBreak, *SContinue:
	}
}

func walkExprSpans(e *Expr, fn func(*source.Span)) {
	fn(&e.Span)
	switch d := e.Data.(type) {
	case *EArray:
		for i := range d.Items {
			walkExprSpans(&d.Items[i], fn)
		}
	case *EObject:
		for i := range d.Props {
			fn(&d.Props[i].KeySpan)
			walkExprSpans(&d.Props[i].Value, fn)
		}
	case *EUnary:
		walkExprSpans(&d.Value, fn)
	case *EUpdate:
		walkExprSpans(&d.Value, fn)
	case *EBinary:
		walkExprSpans(&d.Left, fn)
		walkExprSpans(&d.Right, fn)
	case *ECond:
		walkExprSpans(&d.Test, fn)
		walkExprSpans(&d.Yes, fn)
		walkExprSpans(&d.No, fn)
	case *ECall:
		walkExprSpans(&d.Target, fn)
		for i := range d.Args {
			walkExprSpans(&d.Args[i], fn)
		}
	case *ENew:
		walkExprSpans(&d.Target, fn)
		for i := range d.Args {
			walkExprSpans(&d.Args[i], fn)
		}
	case *EDot:
		walkExprSpans(&d.Target, fn)
		fn(&d.NameSpan)
	case *EIndex:
		walkExprSpans(&d.Target, fn)
		walkExprSpans(&d.Index, fn)
	case *EArrow:
		walkFnSpans(&d.Fn, fn)
	case *EFunction:
		walkFnSpans(&d.Fn, fn)
	case *EParen:
		walkExprSpans(&d.Value, fn)
	case *ESequence:
		for i := range d.Exprs {
			walkExprSpans(&d.Exprs[i], fn)
		}
	case *ESpread:
		walkExprSpans(&d.Value, fn)
	case *EIntrinsic:
		fn(&d.NameSpan)
		for i := range d.Args {
			walkExprSpans(&d.Args[i], fn)
		}
	}
}
