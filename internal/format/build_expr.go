package format

import (
	"loupe/internal/ast"
)

func (b builder) expr(e *ast.Expr) Doc {
	return b.exprPrec(e, ast.PrecLowest)
}

func (b builder) exprPrec(e *ast.Expr, prec ast.Prec) Doc {
	doc := b.exprInner(e)
	if exprPrec(e) < prec {
		return Concat(Text("("), doc, Text(")"))
	}
	return doc
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
	case *ast.ECall, *ast.EIntrinsic, *ast.ENew:
		return ast.PrecCall
	}
	return ast.PrecMember
}

func (b builder) exprInner(e *ast.Expr) Doc {
	switch d := e.Data.(type) {
	case *ast.EIdent:
		return Text(d.Name)
	case *ast.EThis:
		return Text("this")
	case *ast.ENumber:
		return Text(d.Raw)
	case *ast.EString:
		return Text(d.Raw)
	case *ast.ETemplate:
		return Text(d.Raw)
	case *ast.EBool:
		if d.Value {
			return Text("true")
		}
		return Text("false")
	case *ast.ENull:
		return Text("null")
	case *ast.EArray:
		if len(d.Items) == 0 {
			return Text("[]")
		}
		var inner []Doc
		for i := range d.Items {
			if i > 0 {
				inner = append(inner, Text(","), Line())
			}
			inner = append(inner, b.exprPrec(&d.Items[i], ast.PrecAssign))
		}
		return Group(
			Text("["),
			Indent(append([]Doc{Softline()}, inner...)...),
			Softline(), Text("]"),
		)
	case *ast.EObject:
		return b.object(d)
	case *ast.EUnary:
		op := d.Op.String()
		if d.Op.IsKeyword() {
			op += " "
		}
		return Concat(Text(op), b.exprPrec(&d.Value, ast.PrecUnary))
	case *ast.EUpdate:
		op := "++"
		if d.Dec {
			op = "--"
		}
		if d.Prefix {
			return Concat(Text(op), b.exprPrec(&d.Value, ast.PrecUnary))
		}
		return Concat(b.exprPrec(&d.Value, ast.PrecPostfix), Text(op))
	case *ast.EBinary:
		leftPrec := d.Op.Precedence()
		rightPrec := leftPrec + 1
		if d.Op.RightAssoc() {
			leftPrec, rightPrec = leftPrec+1, leftPrec
		}
		if d.Op.IsAssign() {
			leftPrec = ast.PrecPostfix
		}
		return Group(
			b.exprPrec(&d.Left, leftPrec),
			Text(" "+d.Op.String()),
			Line(),
			b.exprPrec(&d.Right, rightPrec),
		)
	case *ast.ECond:
		return Group(
			b.exprPrec(&d.Test, ast.PrecNullishCoalescing),
			Indent(
				Line(), Text("? "), b.exprPrec(&d.Yes, ast.PrecAssign),
				Line(), Text(": "), b.exprPrec(&d.No, ast.PrecAssign),
			),
		)
	case *ast.ECall:
		return Concat(b.exprPrec(&d.Target, ast.PrecCall), b.args(d.Args))
	case *ast.ENew:
		return Concat(Text("new "), b.exprPrec(&d.Target, ast.PrecMember), b.args(d.Args))
	case *ast.EDot:
		return Concat(b.exprPrec(&d.Target, ast.PrecMember), Text("."+d.Name))
	case *ast.EIndex:
		return Concat(
			b.exprPrec(&d.Target, ast.PrecMember),
			Text("["), b.expr(&d.Index), Text("]"),
		)
	case *ast.EArrow:
		return b.arrow(&d.Fn)
	case *ast.EFunction:
		return Concat(b.fnSignature(&d.Fn), Text(" "), b.body(d.Fn.Body))
	case *ast.EParen:
		// The formatter owns parens; redundant source parens are dropped.
		return b.exprInner(&d.Value)
	case *ast.ESequence:
		var inner []Doc
		for i := range d.Exprs {
			if i > 0 {
				inner = append(inner, Text(","), Line())
			}
			inner = append(inner, b.exprPrec(&d.Exprs[i], ast.PrecAssign))
		}
		return Group(inner...)
	case *ast.ESpread:
		return Concat(Text("..."), b.exprPrec(&d.Value, ast.PrecAssign))
	case *ast.EIntrinsic:
		return Concat(Text("%"+d.Name), b.args(d.Args))
	}
	return Text("")
}

func (b builder) arrow(f *ast.Fn) Doc {
	doc := b.params(f.Params)
	if f.Return != nil {
		doc = Concat(doc, Text(": "+f.Return.Text))
	}
	doc = Concat(doc, Text(" => "))
	if f.HasExprBody && len(f.Body) == 1 {
		if ret, ok := f.Body[0].Data.(*ast.SReturn); ok && ret.Value != nil {
			if _, isObj := ret.Value.Data.(*ast.EObject); isObj {
				return Concat(doc, Text("("), b.expr(ret.Value), Text(")"))
			}
			return Concat(doc, b.exprPrec(ret.Value, ast.PrecAssign))
		}
	}
	return Concat(doc, b.body(f.Body))
}

func (b builder) args(args []ast.Expr) Doc {
	if len(args) == 0 {
		return Text("()")
	}
	var inner []Doc
	for i := range args {
		if i > 0 {
			inner = append(inner, Text(","), Line())
		}
		inner = append(inner, b.exprPrec(&args[i], ast.PrecAssign))
	}
	return Group(
		Text("("),
		Indent(append([]Doc{Softline()}, inner...)...),
		Softline(), Text(")"),
	)
}

func (b builder) object(d *ast.EObject) Doc {
	if len(d.Props) == 0 {
		return Text("{}")
	}
	var inner []Doc
	for i := range d.Props {
		if i > 0 {
			inner = append(inner, Text(","), Line())
		}
		prop := &d.Props[i]
		if prop.Shorthand {
			inner = append(inner, b.exprPrec(&prop.Value, ast.PrecAssign))
			continue
		}
		if spread, ok := prop.Value.Data.(*ast.ESpread); ok && prop.KeyName == "" {
			inner = append(inner, Text("..."), b.exprPrec(&spread.Value, ast.PrecAssign))
			continue
		}
		inner = append(inner, Text(prop.KeyName+": "), b.exprPrec(&prop.Value, ast.PrecAssign))
	}
	return Group(
		Text("{"),
		Indent(append([]Doc{Line()}, inner...)...),
		Line(), Text("}"),
	)
}
