package linter_test

import (
	"strings"
	"testing"

	"loupe/internal/diag"
	"loupe/internal/linter"
	"loupe/internal/parser"
	"loupe/internal/semantic"
	"loupe/internal/source"
)

func lint(t *testing.T, src string, opts linter.Options) []diag.Diagnostic {
	t.Helper()
	file := source.NewFile("test.tsx", src)
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	sem := semantic.Builder{}.Build(parsed.Program)
	record := linter.NewModuleRecord(parsed.Program.Path, &parsed.ModuleRecord)
	return linter.New(opts).Run(parsed.Program, sem.Scoping, record)
}

func messages(diags []diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

func TestNoDebugger(t *testing.T) {
	diags := lint(t, "function f() {\n  debugger;\n}\nf();", linter.Options{})
	if len(diags) != 1 {
		t.Fatalf("got %v, want one finding", messages(diags))
	}
	d := diags[0]
	if d.Severity != diag.SevWarning {
		t.Errorf("severity = %v, lint findings must be warnings", d.Severity)
	}
	if d.Message != "eslint(no-debugger): `debugger` statement is not allowed" {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Labels) != 1 {
		t.Fatal("finding must point at the statement")
	}
}

func TestNoUnusedVars(t *testing.T) {
	src := "const used = 1;\nconst unused = 2;\nconst _ignored = 3;\nprint(used);"
	diags := lint(t, src, linter.Options{})
	if len(diags) != 1 {
		t.Fatalf("got %v, want one finding", messages(diags))
	}
	want := "eslint(no-unused-vars): Variable 'unused' is declared but never used."
	if diags[0].Message != want {
		t.Errorf("message = %q, want %q", diags[0].Message, want)
	}
}

func TestNoUnusedVarsSkipsExports(t *testing.T) {
	diags := lint(t, "export const api = 1;", linter.Options{})
	if len(diags) != 0 {
		t.Errorf("exported names are used by definition, got %v", messages(diags))
	}
}

func TestNoUnusedVarsSkipsImportsAndCatch(t *testing.T) {
	src := "import { dep } from \"dep\";\ntry {\n  f();\n} catch (e) {\n}"
	diags := lint(t, src, linter.Options{})
	if len(diags) != 0 {
		t.Errorf("imports and catch bindings are out of scope for the rule, got %v", messages(diags))
	}
}

func TestNoDuplicateImports(t *testing.T) {
	src := "import { a } from \"m\";\nimport { b } from \"m\";\nimport { c } from \"other\";\na(b, c);"
	diags := lint(t, src, linter.Options{})
	if len(diags) != 1 {
		t.Fatalf("got %v, want one finding", messages(diags))
	}
	if !strings.Contains(diags[0].Message, "eslint(no-duplicate-imports): 'm' import is duplicated") {
		t.Errorf("message = %q", diags[0].Message)
	}
}

func TestRuleToggles(t *testing.T) {
	src := "debugger;\nconst unused = 1;"
	all := lint(t, src, linter.Options{})
	if len(all) != 2 {
		t.Fatalf("got %v, want two findings", messages(all))
	}
	noDbg := lint(t, src, linter.Options{DisableNoDebugger: true})
	if len(noDbg) != 1 || !strings.Contains(noDbg[0].Message, "no-unused-vars") {
		t.Errorf("disabling no-debugger left %v", messages(noDbg))
	}
	none := lint(t, src, linter.Options{
		DisableNoDebugger:   true,
		DisableNoUnusedVars: true,
	})
	if len(none) != 0 {
		t.Errorf("got %v, want nothing", messages(none))
	}
}
