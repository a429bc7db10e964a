package format_test

import (
	"strings"
	"testing"

	"loupe/internal/ast"
	"loupe/internal/format"
	"loupe/internal/parser"
	"loupe/internal/source"
)

func parseForFormat(t *testing.T, src string) *ast.Program {
	t.Helper()
	file := source.NewFile("test.tsx", src)
	opts := parser.DefaultOptions()
	opts.PreserveParens = false
	parsed := parser.Parse(file, source.SourceTypeFromPath("test.tsx"), opts)
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, parsed.Errors)
	}
	return parsed.Program
}

func TestFormatNormalizes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"const x=1;", "const x = 1;\n"},
		{"let   a  =  b+c;", "let a = b + c;\n"},
		{"if(a)b();", "if (a) {\n  b();\n}\n"},
		{"while(x)x--;", "while (x) {\n  x--;\n}\n"},
		{"debugger", "debugger;\n"},
		{"import{a}from\"m\";", "import { a } from \"m\";\n"},
		{"type T=number;", "type T = number;\n"},
	}
	for _, tc := range cases {
		got := format.Format(parseForFormat(t, tc.src))
		if got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestFormatBreaksLongCalls(t *testing.T) {
	src := "doSomethingImportant(firstArgumentWithAVeryLongName, secondArgumentWithAVeryLongName, thirdArgumentWithAVeryLongName);"
	want := "doSomethingImportant(\n" +
		"  firstArgumentWithAVeryLongName,\n" +
		"  secondArgumentWithAVeryLongName,\n" +
		"  thirdArgumentWithAVeryLongName\n" +
		");\n"
	got := format.Format(parseForFormat(t, src))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatKeepsShortCallsFlat(t *testing.T) {
	got := format.Format(parseForFormat(t, "f(a,b,c);"))
	if got != "f(a, b, c);\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatDropsRedundantParens(t *testing.T) {
	got := format.Format(parseForFormat(t, "x = ((a + b)) * c;"))
	if got != "x = (a + b) * c;\n" {
		t.Errorf("got %q, redundant parens must fold to the required pair", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := `import { helper } from "dep";
function run(items) {
  for (let i = 0; i < items.length; i++) {
    helper(items[i]);
  }
}
export { run };
`
	once := format.Format(parseForFormat(t, src))
	twice := format.Format(parseForFormat(t, once))
	if once != twice {
		t.Errorf("formatting is not stable:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestDocTextIsParseable(t *testing.T) {
	program := parseForFormat(t, "const x = 1;\nfunction f(a) {\n  return a;\n}")
	irText := format.DocText(program)

	if !strings.HasPrefix(irText, "[\"") && !strings.HasPrefix(irText, "\"") {
		t.Errorf("document dump must be array syntax, got %q", irText[:min(len(irText), 20)])
	}
	file := source.NewFile("ir.tsx", irText)
	opts := parser.DefaultOptions()
	opts.PreserveParens = false
	res := parser.Parse(file, source.DefaultSourceType(), opts)
	if len(res.Errors) != 0 {
		t.Fatalf("document dump does not re-parse: %v\n%s", res.Errors, irText)
	}
}

func TestRenderGroups(t *testing.T) {
	doc := format.Group(
		format.Text("("),
		format.Indent(format.Softline(), format.Text("a"), format.Text(","), format.Line(), format.Text("b")),
		format.Softline(),
		format.Text(")"),
	)
	if got := format.Render(doc, 80); got != "(a, b)" {
		t.Errorf("flat render = %q, want %q", got, "(a, b)")
	}
	if got := format.Render(doc, 3); got != "(\n  a,\n  b\n)" {
		t.Errorf("broken render = %q, want %q", got, "(\n  a,\n  b\n)")
	}
}

func TestHardlineForcesBreak(t *testing.T) {
	doc := format.Group(format.Text("{"), format.Indent(format.Hardline(), format.Text("x")), format.Hardline(), format.Text("}"))
	if got := format.Render(doc, 200); got != "{\n  x\n}" {
		t.Errorf("got %q, hard lines must break even inside a fitting width", got)
	}
}
