package minifier_test

import (
	"testing"

	"loupe/internal/ast"
	"loupe/internal/minifier"
	"loupe/internal/parser"
	"loupe/internal/source"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	file := source.NewFile("test.tsx", src)
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	return parsed.Program
}

func TestDropDebugger(t *testing.T) {
	program := mustParse(t, "debugger;\nfunction f() {\n  debugger;\n  return 1;\n}")
	minifier.New(minifier.Options{
		Compress: &minifier.CompressOptions{DropDebugger: true},
	}).Build(program)

	if len(program.Stmts) != 1 {
		t.Fatalf("got %d top-level statements, want 1", len(program.Stmts))
	}
	fn := program.Stmts[0].Data.(*ast.SFunction)
	if len(fn.Fn.Body) != 1 {
		t.Fatalf("got %d body statements, want only the return", len(fn.Fn.Body))
	}
	if _, ok := fn.Fn.Body[0].Data.(*ast.SReturn); !ok {
		t.Errorf("surviving statement is %T, want return", fn.Fn.Body[0].Data)
	}
}

func TestDropConsole(t *testing.T) {
	program := mustParse(t, "console.log(\"a\");\nconsole[\"warn\"](\"b\");\nconsole;\nwork();")
	minifier.New(minifier.Options{
		Compress: &minifier.CompressOptions{DropConsole: true},
	}).Build(program)

	// Only the member calls go; a bare reference and other calls stay.
	if len(program.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Stmts))
	}
}

func TestDropInSingleStatementPosition(t *testing.T) {
	program := mustParse(t, "if (dev) debugger;")
	minifier.New(minifier.Options{
		Compress: &minifier.CompressOptions{DropDebugger: true},
	}).Build(program)

	cond := program.Stmts[0].Data.(*ast.SIf)
	if _, ok := cond.Yes.Data.(*ast.SEmpty); !ok {
		t.Errorf("single-statement body is %T, want an empty statement", cond.Yes.Data)
	}
}

func TestCompressOffLeavesTreeAlone(t *testing.T) {
	program := mustParse(t, "debugger;\nconsole.log(1);")
	res := minifier.New(minifier.Options{}).Build(program)
	if len(program.Stmts) != 2 {
		t.Error("no compress options means no statement removal")
	}
	if res.Scoping != nil {
		t.Error("no mangle means no replacement scoping")
	}
}

func TestMangleRenamesLocalsOnly(t *testing.T) {
	program := mustParse(t, "const keep = 1;\nfunction f(longParam) {\n  let longLocal = longParam + keep;\n  return longLocal;\n}")
	res := minifier.New(minifier.Options{Mangle: true}).Build(program)
	if res.Scoping == nil {
		t.Fatal("mangling must hand back a scoping")
	}

	names := map[string]string{}
	for _, sym := range res.Scoping.Symbols() {
		switch {
		case sym.Span.Text(program.SourceText) == "keep":
			names["keep"] = sym.Name
		case sym.Span.Text(program.SourceText) == "f":
			names["f"] = sym.Name
		case sym.Span.Text(program.SourceText) == "longParam":
			names["longParam"] = sym.Name
		case sym.Span.Text(program.SourceText) == "longLocal":
			names["longLocal"] = sym.Name
		}
	}

	if names["keep"] != "keep" || names["f"] != "f" {
		t.Errorf("root-scope symbols must keep their names, got %v", names)
	}
	if names["longParam"] == "longParam" || names["longLocal"] == "longLocal" {
		t.Errorf("locals must be renamed, got %v", names)
	}
	if len(names["longParam"]) != 1 || len(names["longLocal"]) != 1 {
		t.Errorf("the first generated names are single characters, got %v", names)
	}
	if names["longParam"] == names["longLocal"] {
		t.Error("distinct symbols must get distinct names")
	}
}

func TestGeneratedNamesSkipKeywords(t *testing.T) {
	// Enough locals that the generator would pass "do" if it were not
	// filtered: the single-letter space has 54 entries, none of which are
	// keywords, so force two-letter names by checking a big unit.
	src := "function f() {\n"
	for i := 0; i < 60; i++ {
		src += "  let v" + string(rune('A'+i%26)) + string(rune('a'+i/26)) + " = 1;\n"
	}
	src += "}"
	program := mustParse(t, src)
	res := minifier.New(minifier.Options{Mangle: true}).Build(program)
	for _, sym := range res.Scoping.Symbols() {
		switch sym.Name {
		case "do", "if", "in", "for", "let", "new", "try", "var":
			t.Fatalf("generator produced the keyword %q", sym.Name)
		}
	}
}
