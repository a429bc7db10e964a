package semantic_test

import (
	"strings"
	"testing"

	"loupe/internal/ast"
	"loupe/internal/parser"
	"loupe/internal/semantic"
	"loupe/internal/source"
)

func analyze(t *testing.T, src string, b semantic.Builder) (*ast.Program, semantic.Result) {
	t.Helper()
	file := source.NewFile("test.tsx", src)
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	return parsed.Program, b.Build(parsed.Program)
}

func findSymbol(sc *semantic.Scoping, name string) *semantic.Symbol {
	for i, s := range sc.Symbols() {
		if s.Name == name {
			return &sc.Symbols()[i]
		}
	}
	return nil
}

func TestScopeTree(t *testing.T) {
	src := "const a = 1;\nfunction f(p) {\n  let b = p;\n  {\n    let c = b;\n  }\n}"
	_, res := analyze(t, src, semantic.Builder{})
	sc := res.Scoping

	// Program, function body and inner block.
	if sc.ScopeCount() != 3 {
		t.Fatalf("got %d scopes, want 3", sc.ScopeCount())
	}
	root := sc.Scope(sc.Root())
	if root.Flags&semantic.ScopeTop == 0 {
		t.Error("root scope must carry the top flag")
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	fnScope := sc.Scope(root.Children[0])
	if fnScope.Flags&semantic.ScopeFunction == 0 {
		t.Error("function body scope must carry the function flag")
	}
	if len(fnScope.Children) != 1 {
		t.Fatalf("function scope has %d children, want 1", len(fnScope.Children))
	}

	a := findSymbol(sc, "a")
	if a == nil || a.Scope != sc.Root() {
		t.Error("'a' must bind in the program scope")
	}
	if a.Flags&semantic.SymConstVariable == 0 {
		t.Error("'a' must be marked const")
	}
	c := findSymbol(sc, "c")
	if c == nil || c.Scope != fnScope.Children[0] {
		t.Error("'c' must bind in the inner block scope")
	}
}

func TestVarHoistsToFunctionScope(t *testing.T) {
	src := "function f() {\n  {\n    var v = 1;\n  }\n}"
	_, res := analyze(t, src, semantic.Builder{})
	sc := res.Scoping

	v := findSymbol(sc, "v")
	if v == nil {
		t.Fatal("missing symbol 'v'")
	}
	if sc.Scope(v.Scope).Flags&semantic.ScopeFunction == 0 {
		t.Errorf("var must hoist to the enclosing function scope, bound in scope %d", v.Scope)
	}
}

func TestDuplicateLexicalBinding(t *testing.T) {
	src := "let x = 1;\nlet x = 2;"
	_, res := analyze(t, src, semantic.Builder{CheckSyntax: true})
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(res.Errors), res.Errors)
	}
	e := res.Errors[0]
	if e.Message != "Identifier 'x' has already been declared" {
		t.Errorf("message = %q", e.Message)
	}
	if len(e.Labels) != 2 {
		t.Errorf("got %d labels, want both declaration sites", len(e.Labels))
	}
}

func TestDuplicateCheckRequiresCheckSyntax(t *testing.T) {
	src := "let x = 1;\nlet x = 2;"
	_, res := analyze(t, src, semantic.Builder{})
	if len(res.Errors) != 0 {
		t.Errorf("without CheckSyntax the pass must stay silent, got %v", res.Errors)
	}
}

func TestReferenceResolution(t *testing.T) {
	src := "let n = 0;\nn = n + 1;"
	_, res := analyze(t, src, semantic.Builder{})
	sc := res.Scoping

	n := findSymbol(sc, "n")
	if n == nil {
		t.Fatal("missing symbol 'n'")
	}
	if len(n.Refs) != 2 {
		t.Fatalf("got %d references, want 2", len(n.Refs))
	}
	first := sc.Ref(n.Refs[0])
	if first.Flags.String() != "Write" {
		t.Errorf("assignment target flags = %s, want Write", first.Flags)
	}
	second := sc.Ref(n.Refs[1])
	if second.Flags.String() != "Read" {
		t.Errorf("right-hand side flags = %s, want Read", second.Flags)
	}
}

func TestCompoundAssignmentIsReadWrite(t *testing.T) {
	src := "let n = 0;\nn += 1;"
	_, res := analyze(t, src, semantic.Builder{})
	n := findSymbol(res.Scoping, "n")
	if n == nil || len(n.Refs) != 1 {
		t.Fatalf("symbol = %+v", n)
	}
	if got := res.Scoping.Ref(n.Refs[0]).Flags.String(); got != "ReadWrite" {
		t.Errorf("compound assignment flags = %s, want ReadWrite", got)
	}
}

func TestGlobalsStayUnresolved(t *testing.T) {
	src := "console.log(1);"
	program, res := analyze(t, src, semantic.Builder{})
	call := program.Stmts[0].Data.(*ast.SExpr).Value.Data.(*ast.ECall)
	dot := call.Target.Data.(*ast.EDot)
	ident := dot.Target.Data.(*ast.EIdent)
	if !ident.Ref.IsValid() {
		t.Fatal("the identifier must still get a reference id")
	}
	if res.Scoping.Ref(ident.Ref).Sym.IsValid() {
		t.Error("'console' must not resolve to a unit-local symbol")
	}
}

func TestCFGDot(t *testing.T) {
	src := "let i = 0;\nwhile (i < 3) {\n  i = i + 1;\n}\ndone();"
	_, res := analyze(t, src, semantic.Builder{BuildCFG: true})
	if res.CFG == nil {
		t.Fatal("BuildCFG must produce a graph")
	}

	dot := res.CFG.DebugDot(false)
	if !strings.HasPrefix(dot, "digraph cfg {") {
		t.Errorf("dot output must open a digraph, got %q", dot[:min(len(dot), 30)])
	}
	if !strings.Contains(dot, "bb0") {
		t.Error("dot output must name basic blocks")
	}
	if !strings.Contains(dot, "->") {
		t.Error("dot output must contain edges")
	}

	verbose := res.CFG.DebugDot(true)
	if len(verbose) <= len(dot) {
		t.Error("verbose mode must annotate statement lines with spans")
	}
}
