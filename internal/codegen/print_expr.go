package codegen

import (
	"strings"

	"loupe/internal/ast"
)

// exprStmt prints an expression in statement position, parenthesizing the
// forms that would otherwise parse as a declaration or block.
func (p *printer) exprStmt(e *ast.Expr) {
	switch e.Data.(type) {
	case *ast.EFunction, *ast.EObject:
		p.print("(")
		p.expr(e, ast.PrecLowest)
		p.print(")")
	default:
		p.expr(e, ast.PrecLowest)
	}
}

// expr prints an expression, wrapping it in parens when its own precedence
// is lower than what the position requires.
func (p *printer) expr(e *ast.Expr, prec ast.Prec) {
	if exprPrec(e) < prec {
		p.print("(")
		p.exprInner(e)
		p.print(")")
		return
	}
	p.exprInner(e)
}

func exprPrec(e *ast.Expr) ast.Prec {
	switch d := e.Data.(type) {
	case *ast.ESequence:
		return ast.PrecComma
	case *ast.EBinary:
		return d.Op.Precedence()
	case *ast.ECond:
		return ast.PrecConditional
	case *ast.EArrow:
		return ast.PrecAssign
	case *ast.EUnary:
		return ast.PrecUnary
	case *ast.EUpdate:
		if d.Prefix {
			return ast.PrecUnary
		}
		return ast.PrecPostfix
	case *ast.ECall, *ast.EIntrinsic:
		return ast.PrecCall
	case *ast.ENew:
		return ast.PrecCall
	}
	return ast.PrecMember
}

func (p *printer) exprInner(e *ast.Expr) {
	switch d := e.Data.(type) {
	case *ast.EIdent:
		p.mark(e.Span)
		p.print(p.refName(d.Ref, d.Name))
	case *ast.EThis:
		p.print("this")
	case *ast.ENumber:
		p.print(d.Raw)
	case *ast.EString:
		p.print(d.Raw)
	case *ast.ETemplate:
		p.print(d.Raw)
	case *ast.EBool:
		if d.Value {
			p.print("true")
		} else {
			p.print("false")
		}
	case *ast.ENull:
		p.print("null")
	case *ast.EArray:
		p.print("[")
		for i := range d.Items {
			if i > 0 {
				p.print(",")
				p.space()
			}
			p.expr(&d.Items[i], ast.PrecAssign)
		}
		p.print("]")
	case *ast.EObject:
		p.object(d)
	case *ast.EUnary:
		p.print(d.Op.String())
		if d.Op.IsKeyword() {
			p.print(" ")
		} else if needsSpaceAfterUnary(d.Op, &d.Value) {
			p.print(" ")
		}
		p.expr(&d.Value, ast.PrecUnary)
	case *ast.EUpdate:
		op := "++"
		if d.Dec {
			op = "--"
		}
		if d.Prefix {
			p.print(op)
			p.expr(&d.Value, ast.PrecUnary)
		} else {
			p.expr(&d.Value, ast.PrecPostfix)
			p.print(op)
		}
	case *ast.EBinary:
		p.binary(d)
	case *ast.ECond:
		p.expr(&d.Test, ast.PrecNullishCoalescing)
		p.space()
		p.print("?")
		p.space()
		p.expr(&d.Yes, ast.PrecAssign)
		p.space()
		p.print(":")
		p.space()
		p.expr(&d.No, ast.PrecAssign)
	case *ast.ECall:
		p.expr(&d.Target, ast.PrecCall)
		p.args(d.Args)
	case *ast.ENew:
		p.print("new ")
		p.expr(&d.Target, ast.PrecMember)
		p.args(d.Args)
	case *ast.EDot:
		p.expr(&d.Target, ast.PrecMember)
		p.print(".")
		p.mark(d.NameSpan)
		p.print(d.Name)
	case *ast.EIndex:
		p.expr(&d.Target, ast.PrecMember)
		p.print("[")
		p.expr(&d.Index, ast.PrecLowest)
		p.print("]")
	case *ast.EArrow:
		p.params(d.Fn.Params)
		p.typeAnn(d.Fn.Return)
		p.space()
		p.print("=>")
		p.space()
		if d.Fn.HasExprBody && len(d.Fn.Body) == 1 {
			if ret, ok := d.Fn.Body[0].Data.(*ast.SReturn); ok && ret.Value != nil {
				p.arrowBody(ret.Value)
				return
			}
		}
		p.block(d.Fn.Body)
	case *ast.EFunction:
		p.fn(&d.Fn, false)
	case *ast.EParen:
		p.print("(")
		p.expr(&d.Value, ast.PrecLowest)
		p.print(")")
	case *ast.ESequence:
		for i := range d.Exprs {
			if i > 0 {
				p.print(",")
				p.space()
			}
			p.expr(&d.Exprs[i], ast.PrecAssign)
		}
	case *ast.ESpread:
		p.print("...")
		p.expr(&d.Value, ast.PrecAssign)
	case *ast.EIntrinsic:
		p.print("%")
		p.print(d.Name)
		p.args(d.Args)
	}
}

// needsSpaceAfterUnary avoids gluing `- -x` into `--x` under minification.
func needsSpaceAfterUnary(op ast.UnOp, value *ast.Expr) bool {
	switch inner := value.Data.(type) {
	case *ast.EUnary:
		return (op == ast.UnNeg && inner.Op == ast.UnNeg) ||
			(op == ast.UnPlus && inner.Op == ast.UnPlus)
	case *ast.EUpdate:
		return inner.Prefix && ((op == ast.UnNeg && inner.Dec) || (op == ast.UnPlus && !inner.Dec))
	case *ast.ENumber:
		return op == ast.UnNeg && strings.HasPrefix(inner.Raw, "-")
	}
	return false
}

func (p *printer) binary(d *ast.EBinary) {
	leftPrec := d.Op.Precedence()
	rightPrec := leftPrec + 1
	if d.Op.RightAssoc() {
		leftPrec, rightPrec = leftPrec+1, leftPrec
	}
	if d.Op.IsAssign() {
		// Assignment targets are member expressions; the grammar does not
		// allow another assignment on the left.
		leftPrec = ast.PrecPostfix
	}
	p.expr(&d.Left, leftPrec)
	if d.Op.IsKeywordOp() {
		p.print(" ")
		p.print(d.Op.String())
		p.print(" ")
	} else {
		p.space()
		p.print(d.Op.String())
		p.space()
		if p.opts.Minify && binNeedsSpace(d.Op, &d.Right) {
			p.print(" ")
		}
	}
	p.expr(&d.Right, rightPrec)
}

// binNeedsSpace avoids gluing `a - -b` into `a--b` under minification.
func binNeedsSpace(op ast.BinOp, right *ast.Expr) bool {
	switch inner := right.Data.(type) {
	case *ast.EUnary:
		return (op == ast.BinSub && inner.Op == ast.UnNeg) ||
			(op == ast.BinAdd && inner.Op == ast.UnPlus)
	case *ast.EUpdate:
		return inner.Prefix && ((op == ast.BinSub && inner.Dec) || (op == ast.BinAdd && !inner.Dec))
	}
	return false
}

// arrowBody prints an expression arrow body, parenthesizing object literals
// so the brace does not read as a block.
func (p *printer) arrowBody(e *ast.Expr) {
	if _, isObj := e.Data.(*ast.EObject); isObj {
		p.print("(")
		p.expr(e, ast.PrecLowest)
		p.print(")")
		return
	}
	p.expr(e, ast.PrecAssign)
}

func (p *printer) args(args []ast.Expr) {
	p.print("(")
	for i := range args {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.expr(&args[i], ast.PrecAssign)
	}
	p.print(")")
}

func (p *printer) object(d *ast.EObject) {
	if len(d.Props) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	for i := range d.Props {
		if i > 0 {
			p.print(",")
		}
		p.space()
		prop := &d.Props[i]
		if prop.Shorthand {
			// A renamed binding can no longer print as shorthand.
			if ident, ok := prop.Value.Data.(*ast.EIdent); ok {
				if name := p.refName(ident.Ref, ident.Name); name != prop.KeyName {
					p.print(prop.KeyName)
					p.print(":")
					p.space()
					p.print(name)
					continue
				}
			}
			p.expr(&prop.Value, ast.PrecAssign)
			continue
		}
		if spread, ok := prop.Value.Data.(*ast.ESpread); ok && prop.KeyName == "" {
			p.print("...")
			p.expr(&spread.Value, ast.PrecAssign)
			continue
		}
		p.print(prop.KeyName)
		p.print(":")
		p.space()
		p.expr(&prop.Value, ast.PrecAssign)
	}
	p.space()
	p.print("}")
}
