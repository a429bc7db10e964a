package format

import (
	"loupe/internal/ast"
)

// builder lowers the AST into a document tree.
type builder struct{}

// Program builds the document tree for a whole file.
func Program(program *ast.Program) Doc {
	b := builder{}
	var docs []Doc
	for i := range program.Stmts {
		if i > 0 {
			docs = append(docs, Hardline())
		}
		docs = append(docs, b.stmt(&program.Stmts[i]))
	}
	docs = append(docs, Hardline())
	return Concat(docs...)
}

func (b builder) stmt(s *ast.Stmt) Doc {
	switch d := s.Data.(type) {
	case *ast.SVar:
		return Concat(b.varDecl(d), Text(";"))
	case *ast.SFunction:
		if d.Declare {
			return Concat(Text("declare "), b.fnSignature(&d.Fn), Text(";"))
		}
		return Concat(b.fnSignature(&d.Fn), Text(" "), b.body(d.Fn.Body))
	case *ast.SReturn:
		if d.Value == nil {
			return Text("return;")
		}
		return Concat(Text("return "), b.expr(d.Value), Text(";"))
	case *ast.SIf:
		doc := Concat(
			Text("if ("), Group(b.expr(&d.Test)), Text(") "),
			b.nested(&d.Yes),
		)
		if d.No != nil {
			doc = Concat(doc, Text(" else "), b.nested(d.No))
		}
		return doc
	case *ast.SWhile:
		return Concat(Text("while ("), Group(b.expr(&d.Test)), Text(") "), b.nested(&d.Body))
	case *ast.SDoWhile:
		return Concat(Text("do "), b.nested(&d.Body), Text(" while ("), b.expr(&d.Test), Text(");"))
	case *ast.SFor:
		head := []Doc{Text("for (")}
		if d.Init != nil {
			head = append(head, b.forInit(d.Init))
		}
		head = append(head, Text("; "))
		if d.Test != nil {
			head = append(head, b.expr(d.Test))
		}
		head = append(head, Text("; "))
		if d.Update != nil {
			head = append(head, b.expr(d.Update))
		}
		head = append(head, Text(") "), b.nested(&d.Body))
		return Concat(head...)
	case *ast.SForIn:
		kw := " in "
		if d.Of {
			kw = " of "
		}
		return Concat(
			Text("for ("), b.forInit(&d.Init), Text(kw), b.expr(&d.Value),
			Text(") "), b.nested(&d.Body),
		)
	case *ast.SBlock:
		return b.body(d.Stmts)
	case *ast.SEmpty:
		return Text(";")
	case *ast.SExpr:
		switch d.Value.Data.(type) {
		case *ast.EFunction, *ast.EObject:
			return Concat(Text("("), b.expr(&d.Value), Text(");"))
		}
		return Concat(Group(b.expr(&d.Value)), Text(";"))
	case *ast.SDebugger:
		return Text("debugger;")
	case *ast.SThrow:
		return Concat(Text("throw "), b.expr(&d.Value), Text(";"))
	case *ast.STry:
		doc := Concat(Text("try "), b.body(d.Body))
		if d.Catch != nil {
			doc = Concat(doc, Text(" catch "))
			if d.Catch.Name != "" {
				doc = Concat(doc, Text("("+d.Catch.Name+") "))
			}
			doc = Concat(doc, b.body(d.Catch.Body))
		}
		if d.HasFinally {
			doc = Concat(doc, Text(" finally "), b.body(d.Finally))
		}
		return doc
	case *ast.SBreak:
		return Text("break;")
	case *ast.SContinue:
		return Text("continue;")
	case *ast.SImport:
		return b.importStmt(d)
	case *ast.SExportNamed:
		if d.Decl != nil {
			return Concat(Text("export "), b.stmt(d.Decl))
		}
		var names []Doc
		for i, name := range d.Names {
			if i > 0 {
				names = append(names, Text(","), Line())
			}
			text := name.Name
			if name.Alias != "" {
				text += " as " + name.Alias
			}
			names = append(names, Text(text))
		}
		return Group(
			Text("export {"),
			Indent(append([]Doc{Line()}, names...)...),
			Line(), Text("};"),
		)
	case *ast.SExportDefault:
		return Concat(Text("export default "), b.expr(&d.Value), Text(";"))
	case *ast.STypeAlias:
		doc := Text("type " + d.Name + " = " + d.Type.Text + ";")
		if d.Declare {
			return Concat(Text("declare "), doc)
		}
		return doc
	}
	return Text(";")
}

// nested forces single-statement bodies into blocks, prettier style.
func (b builder) nested(s *ast.Stmt) Doc {
	if d, ok := s.Data.(*ast.SBlock); ok {
		return b.body(d.Stmts)
	}
	return b.body([]ast.Stmt{*s})
}

func (b builder) body(stmts []ast.Stmt) Doc {
	if len(stmts) == 0 {
		return Text("{}")
	}
	var inner []Doc
	for i := range stmts {
		inner = append(inner, Hardline(), b.stmt(&stmts[i]))
	}
	return Concat(Text("{"), Indent(inner...), Hardline(), Text("}"))
}

func (b builder) varDecl(d *ast.SVar) Doc {
	docs := []Doc{}
	if d.Declare {
		docs = append(docs, Text("declare "))
	}
	docs = append(docs, Text(d.Kind.String()+" "))
	for i := range d.Decls {
		if i > 0 {
			docs = append(docs, Text(","), Line())
		}
		dec := &d.Decls[i]
		name := dec.Name
		if dec.Type != nil {
			name += ": " + dec.Type.Text
		}
		docs = append(docs, Text(name))
		if dec.Init != nil {
			docs = append(docs, Text(" = "), b.expr(dec.Init))
		}
	}
	return Group(docs...)
}

func (b builder) forInit(s *ast.Stmt) Doc {
	switch d := s.Data.(type) {
	case *ast.SVar:
		return b.varDecl(d)
	case *ast.SExpr:
		return b.expr(&d.Value)
	}
	return Text("")
}

func (b builder) fnSignature(f *ast.Fn) Doc {
	docs := []Doc{Text("function")}
	if f.Name != "" {
		docs = append(docs, Text(" "+f.Name))
	}
	docs = append(docs, b.params(f.Params))
	if f.Return != nil {
		docs = append(docs, Text(": "+f.Return.Text))
	}
	return Concat(docs...)
}

func (b builder) params(params []ast.Param) Doc {
	if len(params) == 0 {
		return Text("()")
	}
	var inner []Doc
	for i := range params {
		if i > 0 {
			inner = append(inner, Text(","), Line())
		}
		par := &params[i]
		text := par.Name
		if par.Rest {
			text = "..." + text
		}
		if par.Type != nil {
			text += ": " + par.Type.Text
		}
		inner = append(inner, Text(text))
		if par.Default != nil {
			inner = append(inner, Text(" = "), b.expr(par.Default))
		}
	}
	return Group(
		Text("("),
		Indent(append([]Doc{Softline()}, inner...)...),
		Softline(), Text(")"),
	)
}

func (b builder) importStmt(d *ast.SImport) Doc {
	docs := []Doc{Text("import ")}
	if d.TypeOnly {
		docs = append(docs, Text("type "))
	}
	wrote := false
	if d.Default != "" {
		docs = append(docs, Text(d.Default))
		wrote = true
	}
	if d.Namespace != "" {
		if wrote {
			docs = append(docs, Text(", "))
		}
		docs = append(docs, Text("* as "+d.Namespace))
		wrote = true
	}
	if len(d.Names) > 0 {
		if wrote {
			docs = append(docs, Text(", "))
		}
		var names []Doc
		for i, name := range d.Names {
			if i > 0 {
				names = append(names, Text(","), Line())
			}
			text := name.Name
			if name.Alias != "" {
				text += " as " + name.Alias
			}
			names = append(names, Text(text))
		}
		docs = append(docs, Group(
			Text("{"),
			Indent(append([]Doc{Line()}, names...)...),
			Line(), Text("}"),
		))
		wrote = true
	}
	if wrote {
		docs = append(docs, Text(" from "))
	}
	docs = append(docs, Text(`"`+d.Source+`";`))
	return Concat(docs...)
}
