package transformer_test

import (
	"strings"
	"testing"

	"loupe/internal/ast"
	"loupe/internal/parser"
	"loupe/internal/semantic"
	"loupe/internal/source"
	"loupe/internal/transformer"
)

func parseTSX(t *testing.T, src string) (*ast.Program, *semantic.Scoping) {
	t.Helper()
	file := source.NewFile("test.tsx", src)
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	sem := semantic.Builder{}.Build(parsed.Program)
	return parsed.Program, sem.Scoping
}

func transform(t *testing.T, src string, opts transformer.Options) *ast.Program {
	t.Helper()
	program, scoping := parseTSX(t, src)
	if diags := transformer.New(opts).Build(program, scoping); len(diags) != 0 {
		t.Fatalf("unexpected transform diagnostics: %v", diags)
	}
	return program
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		name string
		want transformer.Target
	}{
		{"es5", transformer.ES5},
		{"es6", transformer.ES2015},
		{"es2015", transformer.ES2015},
		{"ES2020", transformer.ES2020},
		{" esnext ", transformer.ESNext},
	}
	for _, tc := range cases {
		got, err := transformer.ParseTarget(tc.name)
		if err != nil {
			t.Errorf("ParseTarget(%q): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTarget(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}

	if _, err := transformer.ParseTarget("es7"); err == nil {
		t.Error("unknown target must be rejected")
	} else if err.Error() != `invalid target "es7"` {
		t.Errorf("error = %q", err)
	}
}

func TestTypeErasure(t *testing.T) {
	src := `type Alias = number;
import type { T } from "types";
declare const env: string;
const n: number = 1;
function f(a: string, b?: number): void {
}
`
	program := transform(t, src, transformer.DefaultOptions())

	for _, s := range program.Stmts {
		switch s.Data.(type) {
		case *ast.STypeAlias:
			t.Error("type aliases must be erased")
		case *ast.SImport:
			t.Error("type-only imports must be erased")
		}
	}
	for _, s := range program.Stmts {
		if v, ok := s.Data.(*ast.SVar); ok {
			if v.Declare {
				t.Error("declare statements must be erased")
			}
			for _, dec := range v.Decls {
				if dec.Type != nil {
					t.Errorf("annotation on %q must be erased", dec.Name)
				}
			}
		}
		if fn, ok := s.Data.(*ast.SFunction); ok {
			if fn.Fn.Return != nil {
				t.Error("return annotation must be erased")
			}
			for _, p := range fn.Fn.Params {
				if p.Type != nil {
					t.Errorf("annotation on parameter %q must be erased", p.Name)
				}
			}
		}
	}
}

func TestErasureSkipsJavaScript(t *testing.T) {
	file := source.NewFile("test.js", "let a = 1;\ntype = 2;")
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.js"), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	sem := semantic.Builder{}.Build(parsed.Program)
	before := len(parsed.Program.Stmts)
	transformer.New(transformer.DefaultOptions()).Build(parsed.Program, sem.Scoping)
	if len(parsed.Program.Stmts) != before {
		t.Error("JavaScript units must pass through untouched")
	}
}

func TestLowerExponent(t *testing.T) {
	program := transform(t, "const v = a ** b;", transformer.Options{Target: transformer.ES5})
	init := program.Stmts[0].Data.(*ast.SVar).Decls[0].Init
	call, ok := init.Data.(*ast.ECall)
	if !ok {
		t.Fatalf("initializer is %T, want a call", init.Data)
	}
	dot, ok := call.Target.Data.(*ast.EDot)
	if !ok || dot.Name != "pow" {
		t.Fatalf("call target = %+v, want Math.pow", call.Target.Data)
	}
	if ident, ok := dot.Target.Data.(*ast.EIdent); !ok || ident.Name != "Math" {
		t.Errorf("receiver = %+v, want Math", dot.Target.Data)
	}
	if len(call.Args) != 2 {
		t.Errorf("got %d args, want the two operands", len(call.Args))
	}
}

func TestExponentSurvivesModernTargets(t *testing.T) {
	program := transform(t, "const v = a ** b;", transformer.Options{Target: transformer.ES2016})
	init := program.Stmts[0].Data.(*ast.SVar).Decls[0].Init
	if bin, ok := init.Data.(*ast.EBinary); !ok || bin.Op != ast.BinPow {
		t.Errorf("initializer = %+v, ** is native from es2016 on", init.Data)
	}
}

func TestLowerBlockScopingAndArrows(t *testing.T) {
	program := transform(t, "let a = 1;\nconst f = (x) => x + a;", transformer.Options{Target: transformer.ES5})
	for _, s := range program.Stmts {
		if v, ok := s.Data.(*ast.SVar); ok && v.Kind != ast.VarVar {
			t.Errorf("declaration kind = %v, want var below es2015", v.Kind)
		}
	}
	init := program.Stmts[1].Data.(*ast.SVar).Decls[0].Init
	fn, ok := init.Data.(*ast.EFunction)
	if !ok {
		t.Fatalf("initializer is %T, arrows must lower to function expressions", init.Data)
	}
	if fn.Fn.HasExprBody {
		t.Error("lowered functions cannot keep the expression-body flag")
	}
	if len(fn.Fn.Body) != 1 {
		t.Fatal("the synthesized return must survive lowering")
	}
}

func TestIsolatedDeclarations(t *testing.T) {
	src := `export const version: string = "1";
export const count = 42;
export function add(a: number, b: number): number {
  return a + b;
}
`
	res := transformer.BuildIsolatedDeclarations(mustParse(t, src), transformer.IsolatedOptions{})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if !res.Program.SourceType.IsDefinition() {
		t.Error("the output program must be a declaration unit")
	}
	if len(res.Program.Stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(res.Program.Stmts))
	}

	// `count` has no annotation but a number literal: the type is inferred.
	second := res.Program.Stmts[1].Data.(*ast.SExportNamed).Decl.Data.(*ast.SVar)
	if !second.Declare {
		t.Error("emitted variables must be declare statements")
	}
	if second.Decls[0].Type == nil || second.Decls[0].Type.Text != "number" {
		t.Errorf("inferred type = %+v, want number", second.Decls[0].Type)
	}
	if second.Decls[0].Init != nil {
		t.Error("initializers must not survive declaration emit")
	}

	fn := res.Program.Stmts[2].Data.(*ast.SExportNamed).Decl.Data.(*ast.SFunction)
	if !fn.Declare || len(fn.Fn.Body) != 0 {
		t.Error("emitted functions must be bodyless declare statements")
	}
}

func TestIsolatedDeclarationErrors(t *testing.T) {
	cases := []struct {
		src  string
		code string
	}{
		{"export const v = compute();", "TS9010"},
		{"export function f(a: number) {\n  return a;\n}", "TS9007"},
		{"export function g(a): void {\n}", "TS9011"},
		{"export default f();", "TS9011"},
	}
	for _, tc := range cases {
		res := transformer.BuildIsolatedDeclarations(mustParse(t, tc.src), transformer.IsolatedOptions{})
		if len(res.Errors) == 0 {
			t.Errorf("%q: expected a %s error", tc.src, tc.code)
			continue
		}
		if !strings.HasPrefix(res.Errors[0].Message, tc.code) {
			t.Errorf("%q: message = %q, want %s", tc.src, res.Errors[0].Message, tc.code)
		}
	}
}

func TestIsolatedDeclarationsStripInternal(t *testing.T) {
	src := "/* @internal */\nexport const hidden: number = 1;\nexport const shown: number = 2;"
	res := transformer.BuildIsolatedDeclarations(mustParse(t, src), transformer.IsolatedOptions{StripInternal: true})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Program.Stmts) != 1 {
		t.Fatalf("got %d statements, want the internal one stripped", len(res.Program.Stmts))
	}
}

func TestIsolatedExportDefaultIdent(t *testing.T) {
	res := transformer.BuildIsolatedDeclarations(mustParse(t, "const x: number = 1;\nexport default x;"), transformer.IsolatedOptions{})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	found := false
	for _, s := range res.Program.Stmts {
		if _, ok := s.Data.(*ast.SExportDefault); ok {
			found = true
		}
	}
	if !found {
		t.Error("a default-exported identifier must survive emit")
	}
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, _ := parseTSX(t, src)
	return program
}
