package parser_test

import (
	"testing"

	"loupe/internal/ast"
	"loupe/internal/parser"
	"loupe/internal/source"
)

func parseFile(t *testing.T, path, src string) parser.Result {
	t.Helper()
	file := source.NewFile(path, src)
	return parser.Parse(file, source.SourceTypeFromPath(path), parser.DefaultOptions())
}

func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()
	res := parseFile(t, "test.tsx", src)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, res.Errors)
	}
	return res.Program
}

func TestVarStatement(t *testing.T) {
	program := parseClean(t, "const x: number = 1;")
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Stmts))
	}
	v, ok := program.Stmts[0].Data.(*ast.SVar)
	if !ok {
		t.Fatalf("statement is %T, want *ast.SVar", program.Stmts[0].Data)
	}
	if v.Kind != ast.VarConst {
		t.Errorf("kind = %v, want const", v.Kind)
	}
	if len(v.Decls) != 1 || v.Decls[0].Name != "x" {
		t.Fatalf("decls = %+v", v.Decls)
	}
	dec := v.Decls[0]
	if dec.Type == nil || dec.Type.Text != "number" {
		t.Errorf("type annotation = %+v, want text %q", dec.Type, "number")
	}
	if dec.Init == nil {
		t.Fatal("missing initializer")
	}
	if n, ok := dec.Init.Data.(*ast.ENumber); !ok || n.Raw != "1" {
		t.Errorf("init = %+v, want number 1", dec.Init.Data)
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	program := parseClean(t, "let a = 1\nlet b = 2\nb = a")
	if len(program.Stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(program.Stmts))
	}
}

func TestReturnStopsAtLineBreak(t *testing.T) {
	program := parseClean(t, "function f() {\n  return\n  1\n}")
	fn := program.Stmts[0].Data.(*ast.SFunction)
	if len(fn.Fn.Body) != 2 {
		t.Fatalf("got %d body statements, want 2", len(fn.Fn.Body))
	}
	ret, ok := fn.Fn.Body[0].Data.(*ast.SReturn)
	if !ok {
		t.Fatalf("first body statement is %T, want return", fn.Fn.Body[0].Data)
	}
	if ret.Value != nil {
		t.Error("a line break after return must end the statement")
	}
}

func TestArrowDetection(t *testing.T) {
	program := parseClean(t, "const f = (a, b) => a + b;\nconst g = (x) => { return x; };")

	first := program.Stmts[0].Data.(*ast.SVar).Decls[0].Init
	arrow, ok := first.Data.(*ast.EArrow)
	if !ok {
		t.Fatalf("first initializer is %T, want arrow", first.Data)
	}
	if len(arrow.Fn.Params) != 2 {
		t.Errorf("got %d params, want 2", len(arrow.Fn.Params))
	}
	if !arrow.Fn.HasExprBody {
		t.Error("expression-bodied arrow must set HasExprBody")
	}
	if len(arrow.Fn.Body) != 1 {
		t.Fatalf("expression body must synthesize a single return, got %d stmts", len(arrow.Fn.Body))
	}
	if _, ok := arrow.Fn.Body[0].Data.(*ast.SReturn); !ok {
		t.Errorf("synthesized statement is %T, want return", arrow.Fn.Body[0].Data)
	}

	second := program.Stmts[1].Data.(*ast.SVar).Decls[0].Init
	blockArrow := second.Data.(*ast.EArrow)
	if blockArrow.Fn.HasExprBody {
		t.Error("block-bodied arrow must not set HasExprBody")
	}
}

func TestPreserveParens(t *testing.T) {
	find := func(program *ast.Program) ast.E {
		s := program.Stmts[0].Data.(*ast.SExpr)
		bin := s.Value.Data.(*ast.EBinary)
		return bin.Left.Data
	}

	preserved := parseClean(t, "(1 + 2) * 3;")
	if _, ok := find(preserved).(*ast.EParen); !ok {
		t.Errorf("left operand is %T, want parenthesized node", find(preserved))
	}

	file := source.NewFile("test.tsx", "(1 + 2) * 3;")
	opts := parser.DefaultOptions()
	opts.PreserveParens = false
	res := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), opts)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if _, ok := find(res.Program).(*ast.EBinary); !ok {
		t.Errorf("left operand is %T, parens must fold away", find(res.Program))
	}
}

func TestModuleRecord(t *testing.T) {
	res := parseFile(t, "test.tsx", `import def, { a, b as c } from "dep";
import * as ns from "other";
export const x = 1;
export { x as y };
export default x;
`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	rec := res.ModuleRecord
	if !rec.HasModuleSyntax {
		t.Error("module syntax must be recorded")
	}
	if len(rec.Imports) != 2 {
		t.Fatalf("got %d imports, want 2", len(rec.Imports))
	}
	if rec.Imports[0].Source != "dep" {
		t.Errorf("first import source = %q, want dep", rec.Imports[0].Source)
	}
	wantNames := []string{"def", "a", "c"}
	if len(rec.Imports[0].Names) != len(wantNames) {
		t.Fatalf("first import names = %v, want %v", rec.Imports[0].Names, wantNames)
	}
	for i, w := range wantNames {
		if rec.Imports[0].Names[i] != w {
			t.Errorf("import name %d = %q, want %q", i, rec.Imports[0].Names[i], w)
		}
	}
	if rec.Imports[1].Names[0] != "ns" {
		t.Errorf("namespace import local = %q, want ns", rec.Imports[1].Names[0])
	}

	wantExports := []struct {
		name string
		def  bool
	}{{"x", false}, {"y", false}, {"default", true}}
	if len(rec.Exports) != len(wantExports) {
		t.Fatalf("got %d exports %v, want %d", len(rec.Exports), rec.Exports, len(wantExports))
	}
	for i, w := range wantExports {
		if rec.Exports[i].Name != w.name || rec.Exports[i].Default != w.def {
			t.Errorf("export %d = %+v, want %+v", i, rec.Exports[i], w)
		}
	}
}

func TestTypeOnlyImport(t *testing.T) {
	res := parseFile(t, "test.tsx", `import type { T } from "types";`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	imp := res.Program.Stmts[0].Data.(*ast.SImport)
	if !imp.TypeOnly {
		t.Error("type-only import must be flagged")
	}
	if len(res.ModuleRecord.Imports) != 1 || !res.ModuleRecord.Imports[0].TypeOnly {
		t.Error("module record must carry the type-only flag")
	}
}

func TestImportInScriptIsAnError(t *testing.T) {
	file := source.NewFile("test.cjs", `import "m";`)
	res := parser.Parse(file, source.SourceTypeFromPath("test.cjs"), parser.DefaultOptions())
	if len(res.Errors) == 0 {
		t.Fatal("import under the script goal must produce a diagnostic")
	}
}

func TestRecoveryKeepsParsing(t *testing.T) {
	res := parseFile(t, "test.tsx", "let a = ;\nlet ok = 2;")
	if len(res.Errors) == 0 {
		t.Fatal("malformed input must produce diagnostics")
	}
	if res.Program == nil {
		t.Fatal("the tree must exist even for malformed input")
	}
	found := false
	for _, s := range res.Program.Stmts {
		if v, ok := s.Data.(*ast.SVar); ok {
			for _, dec := range v.Decls {
				if dec.Name == "ok" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("parsing must resynchronize and reach the statement after the error")
	}
}

func TestTemplateAndTryCatch(t *testing.T) {
	program := parseClean(t, "try {\n  f(`hi ${name}`);\n} catch (e) {\n  g(e);\n} finally {\n}")
	tr, ok := program.Stmts[0].Data.(*ast.STry)
	if !ok {
		t.Fatalf("statement is %T, want try", program.Stmts[0].Data)
	}
	if tr.Catch == nil || tr.Catch.Name != "e" {
		t.Errorf("catch clause = %+v", tr.Catch)
	}
	if !tr.HasFinally {
		t.Error("empty finally must still be recorded")
	}
}
