package ast

import (
	"encoding/json"

	"loupe/internal/source"
)

// ProgramJSON serializes the tree as an ESTree-flavored document. Spans must
// already be in their final coordinate system: the serializer emits whatever
// offsets the tree carries.
func ProgramJSON(p *Program) (string, error) {
	body := make([]any, 0, len(p.Stmts))
	for i := range p.Stmts {
		body = append(body, stmtJSON(&p.Stmts[i]))
	}
	sourceType := "script"
	if p.SourceType.Kind == source.KindModule {
		sourceType = "module"
	}
	root := node(p.Span, "Program")
	root["sourceType"] = sourceType
	root["body"] = body
	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func node(sp source.Span, typ string) map[string]any {
	return map[string]any{
		"type":  typ,
		"start": sp.Start,
		"end":   sp.End,
	}
}

func stmtJSON(s *Stmt) map[string]any {
	n := node(s.Span, StmtName(s.Data))
	switch d := s.Data.(type) {
	case *SVar:
		n["kind"] = d.Kind.String()
		n["declare"] = d.Declare
		decls := make([]any, 0, len(d.Decls))
		for i := range d.Decls {
			dec := &d.Decls[i]
			dn := node(dec.NameSpan, "VariableDeclarator")
			dn["id"] = identJSON(dec.Name, dec.NameSpan)
			if dec.Type != nil {
				dn["typeAnnotation"] = typeJSON(dec.Type)
			}
			if dec.Init != nil {
				dn["init"] = exprJSON(dec.Init)
			} else {
				dn["init"] = nil
			}
			decls = append(decls, dn)
		}
		n["declarations"] = decls
	case *SFunction:
		n["declare"] = d.Declare
		fnJSON(n, &d.Fn)
	case *SReturn:
		if d.Value != nil {
			n["argument"] = exprJSON(d.Value)
		} else {
			n["argument"] = nil
		}
	case *SIf:
		n["test"] = exprJSON(&d.Test)
		n["consequent"] = stmtJSON(&d.Yes)
		if d.No != nil {
			n["alternate"] = stmtJSON(d.No)
		} else {
			n["alternate"] = nil
		}
	case *SWhile:
		n["test"] = exprJSON(&d.Test)
		n["body"] = stmtJSON(&d.Body)
	case *SDoWhile:
		n["body"] = stmtJSON(&d.Body)
		n["test"] = exprJSON(&d.Test)
	case *SFor:
		if d.Init != nil {
			n["init"] = stmtJSON(d.Init)
		} else {
			n["init"] = nil
		}
		if d.Test != nil {
			n["test"] = exprJSON(d.Test)
		} else {
			n["test"] = nil
		}
		if d.Update != nil {
			n["update"] = exprJSON(d.Update)
		} else {
			n["update"] = nil
		}
		n["body"] = stmtJSON(&d.Body)
	case *SForIn:
		n["left"] = stmtJSON(&d.Init)
		n["right"] = exprJSON(&d.Value)
		n["body"] = stmtJSON(&d.Body)
	case *SBlock:
		n["body"] = stmtListJSON(d.Stmts)
	case *SExpr:
		n["expression"] = exprJSON(&d.Value)
	case *SThrow:
		n["argument"] = exprJSON(&d.Value)
	case *STry:
		n["block"] = stmtListJSON(d.Body)
		if d.Catch != nil {
			c := node(d.Catch.Span, "CatchClause")
			if d.Catch.Name != "" {
				c["param"] = identJSON(d.Catch.Name, d.Catch.NameSpan)
			} else {
				c["param"] = nil
			}
			c["body"] = stmtListJSON(d.Catch.Body)
			n["handler"] = c
		} else {
			n["handler"] = nil
		}
		if d.HasFinally {
			n["finalizer"] = stmtListJSON(d.Finally)
		} else {
			n["finalizer"] = nil
		}
	case *SImport:
		specs := make([]any, 0, len(d.Names)+2)
		if d.Default != "" {
			sp := node(d.DefaultSpan, "ImportDefaultSpecifier")
			sp["local"] = identJSON(d.Default, d.DefaultSpan)
			specs = append(specs, sp)
		}
		if d.Namespace != "" {
			sp := node(d.NamespaceSpan, "ImportNamespaceSpecifier")
			sp["local"] = identJSON(d.Namespace, d.NamespaceSpan)
			specs = append(specs, sp)
		}
		for _, name := range d.Names {
			sp := node(name.NameSpan, "ImportSpecifier")
			sp["imported"] = identJSON(name.Name, name.NameSpan)
			local, localSpan := name.Name, name.NameSpan
			if name.Alias != "" {
				local, localSpan = name.Alias, name.AliasSpan
			}
			sp["local"] = identJSON(local, localSpan)
			specs = append(specs, sp)
		}
		n["specifiers"] = specs
		src := node(d.SourceSpan, "Literal")
		src["value"] = d.Source
		n["source"] = src
		n["importKind"] = importKind(d.TypeOnly)
	case *SExportNamed:
		if d.Decl != nil {
			n["declaration"] = stmtJSON(d.Decl)
			n["specifiers"] = []any{}
		} else {
			n["declaration"] = nil
			specs := make([]any, 0, len(d.Names))
			for _, name := range d.Names {
				sp := node(name.NameSpan, "ExportSpecifier")
				sp["local"] = identJSON(name.Name, name.NameSpan)
				exported, exportedSpan := name.Name, name.NameSpan
				if name.Alias != "" {
					exported, exportedSpan = name.Alias, name.AliasSpan
				}
				sp["exported"] = identJSON(exported, exportedSpan)
				specs = append(specs, sp)
			}
			n["specifiers"] = specs
		}
	case *SExportDefault:
		n["declaration"] = exprJSON(&d.Value)
	case *STypeAlias:
		n["id"] = identJSON(d.Name, d.NameSpan)
		n["typeAnnotation"] = typeJSON(&d.Type)
		n["declare"] = d.Declare
	}
	return n
}

func importKind(typeOnly bool) string {
	if typeOnly {
		return "type"
	}
	return "value"
}

func stmtListJSON(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for i := range stmts {
		out = append(out, stmtJSON(&stmts[i]))
	}
	return out
}

func identJSON(name string, sp source.Span) map[string]any {
	n := node(sp, "Identifier")
	n["name"] = name
	return n
}

func typeJSON(t *TypeAnn) map[string]any {
	n := node(t.Span, "TSTypeAnnotation")
	n["text"] = t.Text
	return n
}

func fnJSON(n map[string]any, f *Fn) {
	if f.Name != "" {
		n["id"] = identJSON(f.Name, f.NameSpan)
	} else {
		n["id"] = nil
	}
	params := make([]any, 0, len(f.Params))
	for i := range f.Params {
		par := &f.Params[i]
		pn := identJSON(par.Name, par.NameSpan)
		if par.Type != nil {
			pn["typeAnnotation"] = typeJSON(par.Type)
		}
		if par.Rest {
			rest := node(par.NameSpan, "RestElement")
			rest["argument"] = pn
			params = append(params, rest)
			continue
		}
		if par.Default != nil {
			def := node(par.NameSpan, "AssignmentPattern")
			def["left"] = pn
			def["right"] = exprJSON(par.Default)
			params = append(params, def)
			continue
		}
		params = append(params, pn)
	}
	n["params"] = params
	if f.Return != nil {
		n["returnType"] = typeJSON(f.Return)
	}
	body := node(f.BodySpan, "BlockStatement")
	body["body"] = stmtListJSON(f.Body)
	n["body"] = body
}

func exprJSON(e *Expr) map[string]any {
	n := node(e.Span, ExprName(e.Data))
	switch d := e.Data.(type) {
	case *EIdent:
		n["name"] = d.Name
	case *ENumber:
		n["raw"] = d.Raw
	case *EString:
		n["raw"] = d.Raw
	case *ETemplate:
		n["raw"] = d.Raw
	case *EBool:
		n["value"] = d.Value
	case *ENull:
		n["value"] = nil
	case *EArray:
		items := make([]any, 0, len(d.Items))
		for i := range d.Items {
			items = append(items, exprJSON(&d.Items[i]))
		}
		n["elements"] = items
	case *EObject:
		props := make([]any, 0, len(d.Props))
		for i := range d.Props {
			prop := &d.Props[i]
			if spread, ok := prop.Value.Data.(*ESpread); ok && prop.KeyName == "" {
				props = append(props, exprJSON(&Expr{Span: prop.Value.Span, Data: spread}))
				continue
			}
			pn := node(prop.KeySpan.Cover(prop.Value.Span), "Property")
			pn["key"] = identJSON(prop.KeyName, prop.KeySpan)
			pn["value"] = exprJSON(&prop.Value)
			pn["shorthand"] = prop.Shorthand
			props = append(props, pn)
		}
		n["properties"] = props
	case *EUnary:
		n["operator"] = d.Op.String()
		n["argument"] = exprJSON(&d.Value)
	case *EUpdate:
		if d.Dec {
			n["operator"] = "--"
		} else {
			n["operator"] = "++"
		}
		n["prefix"] = d.Prefix
		n["argument"] = exprJSON(&d.Value)
	case *EBinary:
		n["operator"] = d.Op.String()
		n["left"] = exprJSON(&d.Left)
		n["right"] = exprJSON(&d.Right)
	case *ECond:
		n["test"] = exprJSON(&d.Test)
		n["consequent"] = exprJSON(&d.Yes)
		n["alternate"] = exprJSON(&d.No)
	case *ECall:
		n["callee"] = exprJSON(&d.Target)
		n["arguments"] = exprListJSON(d.Args)
	case *ENew:
		n["callee"] = exprJSON(&d.Target)
		n["arguments"] = exprListJSON(d.Args)
	case *EDot:
		n["object"] = exprJSON(&d.Target)
		n["property"] = identJSON(d.Name, d.NameSpan)
		n["computed"] = false
	case *EIndex:
		n["object"] = exprJSON(&d.Target)
		n["property"] = exprJSON(&d.Index)
		n["computed"] = true
	case *EArrow:
		fnJSON(n, &d.Fn)
		n["expression"] = d.Fn.HasExprBody
	case *EFunction:
		fnJSON(n, &d.Fn)
	case *EParen:
		n["expression"] = exprJSON(&d.Value)
	case *ESequence:
		n["expressions"] = exprListJSON(d.Exprs)
	case *ESpread:
		n["argument"] = exprJSON(&d.Value)
	case *EIntrinsic:
		n["name"] = d.Name
		n["arguments"] = exprListJSON(d.Args)
	}
	return n
}

func exprListJSON(exprs []Expr) []any {
	out := make([]any, 0, len(exprs))
	for i := range exprs {
		out = append(out, exprJSON(&exprs[i]))
	}
	return out
}
