package ast_test

import (
	"encoding/json"
	"testing"

	"loupe/internal/ast"
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

func TestProgramJSON(t *testing.T) {
	program := mustParse(t, "const x = 1;\nf(x);")
	text, err := ast.ProgramJSON(program)
	if err != nil {
		t.Fatal(err)
	}

	var root struct {
		Type       string           `json:"type"`
		SourceType string           `json:"sourceType"`
		Start      uint32           `json:"start"`
		End        uint32           `json:"end"`
		Body       []map[string]any `json:"body"`
	}
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if root.Type != "Program" {
		t.Errorf("type = %q, want Program", root.Type)
	}
	if root.SourceType != "module" {
		t.Errorf("sourceType = %q, want module", root.SourceType)
	}
	if root.Start != 0 || root.End != uint32(len(program.SourceText)) {
		t.Errorf("program span = [%d,%d), want the whole text", root.Start, root.End)
	}
	if len(root.Body) != 2 {
		t.Fatalf("got %d body nodes, want 2", len(root.Body))
	}
	if root.Body[0]["type"] != "VariableDeclaration" {
		t.Errorf("first node type = %v", root.Body[0]["type"])
	}
	if root.Body[1]["type"] != "ExpressionStatement" {
		t.Errorf("second node type = %v", root.Body[1]["type"])
	}
}

func TestProgramJSONScriptGoal(t *testing.T) {
	file := source.NewFile("test.cjs", "var a = 1;")
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.cjs"), parser.DefaultOptions())
	text, err := ast.ProgramJSON(parsed.Program)
	if err != nil {
		t.Fatal(err)
	}
	var root struct {
		SourceType string `json:"sourceType"`
	}
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		t.Fatal(err)
	}
	if root.SourceType != "script" {
		t.Errorf("sourceType = %q, want script", root.SourceType)
	}
}

func TestWalkSpansVisitsEverySpanOnce(t *testing.T) {
	program := mustParse(t, "function f(a: number): void {\n  return;\n}")
	seen := map[*source.Span]int{}
	ast.WalkSpans(program, func(sp *source.Span) {
		seen[sp]++
	})
	if len(seen) == 0 {
		t.Fatal("no spans visited")
	}
	for sp, n := range seen {
		if n != 1 {
			t.Fatalf("span %s visited %d times", sp, n)
		}
	}
	if _, ok := seen[&program.Span]; !ok {
		t.Error("the program span must be visited")
	}
}

func TestWalkSpansConversionShiftsOffsets(t *testing.T) {
	src := "let x = 1;"
	program := mustParse(t, src)
	ast.WalkSpans(program, func(sp *source.Span) {
		sp.Start += 100
		sp.End += 100
	})
	if program.Span.Start != 100 {
		t.Errorf("program start = %d, want shifted", program.Span.Start)
	}
	v := program.Stmts[0].Data.(*ast.SVar)
	if v.Decls[0].NameSpan.Start != 104 {
		t.Errorf("name span start = %d, want 104", v.Decls[0].NameSpan.Start)
	}
}
