package codegen_test

import (
	"encoding/json"
	"strings"
	"testing"

	"loupe/internal/ast"
	"loupe/internal/codegen"
	"loupe/internal/minifier"
	"loupe/internal/parser"
	"loupe/internal/source"
)

const sample = `import { helper } from "dep";
const limit: number = 10;
function count(items) {
  let total = 0;
  for (let i = 0; i < items.length; i++) {
    total += helper(items[i]);
  }
  if (total > limit) {
    return limit;
  }
  return total;
}
export { count };
`

func mustParse(t *testing.T, path, src string) *ast.Program {
	t.Helper()
	file := source.NewFile(path, src)
	parsed := parser.Parse(file, source.SourceTypeFromPath(path), parser.DefaultOptions())
	if len(parsed.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", parsed.Errors)
	}
	return parsed.Program
}

func reparse(t *testing.T, code string) {
	t.Helper()
	file := source.NewFile("out.tsx", code)
	res := parser.Parse(file, source.SourceTypeFromPath("out.tsx"), parser.DefaultOptions())
	if len(res.Errors) != 0 {
		t.Fatalf("generated code does not re-parse: %v\n%s", res.Errors, code)
	}
}

func TestRoundTrip(t *testing.T) {
	program := mustParse(t, "test.tsx", sample)
	out, err := codegen.Build(program, codegen.Options{})
	if err != nil {
		t.Fatal(err)
	}
	reparse(t, out.Code)
	if out.Map != "" {
		t.Error("maps must stay off unless requested")
	}
}

func TestMinifiedRoundTrip(t *testing.T) {
	program := mustParse(t, "test.tsx", sample)
	pretty, err := codegen.Build(program, codegen.Options{})
	if err != nil {
		t.Fatal(err)
	}
	minified, err := codegen.Build(program, codegen.Options{Minify: true})
	if err != nil {
		t.Fatal(err)
	}
	reparse(t, minified.Code)
	if len(minified.Code) >= len(pretty.Code) {
		t.Errorf("minified output (%d bytes) must be smaller than pretty output (%d bytes)",
			len(minified.Code), len(pretty.Code))
	}
	if strings.Contains(minified.Code, "\n") {
		t.Error("minified output must not contain newlines")
	}
}

func TestOperatorPrecedenceParens(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x = (a + b) * c;", "x = (a + b) * c;\n"},
		{"x = a + b * c;", "x = a + b * c;\n"},
		{"x = a - (b - c);", "x = a - (b - c);\n"},
		{"x = (a ? b : c) + 1;", "x = (a ? b : c) + 1;\n"},
	}
	for _, tc := range cases {
		file := source.NewFile("t.tsx", tc.src)
		opts := parser.DefaultOptions()
		opts.PreserveParens = false
		parsed := parser.Parse(file, source.SourceTypeFromPath("t.tsx"), opts)
		if len(parsed.Errors) != 0 {
			t.Fatalf("%q: parse errors %v", tc.src, parsed.Errors)
		}
		out, err := codegen.Build(parsed.Program, codegen.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if out.Code != tc.want {
			t.Errorf("%q printed as %q, want %q", tc.src, out.Code, tc.want)
		}
	}
}

func TestMangledNamesReachOutput(t *testing.T) {
	program := mustParse(t, "test.tsx", "function f() {\n  let veryLongName = 1;\n  return veryLongName;\n}")
	res := minifier.New(minifier.Options{Mangle: true}).Build(program)
	out, err := codegen.Build(program, codegen.Options{Minify: true, Scoping: res.Scoping})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.Code, "veryLongName") {
		t.Errorf("output still carries the source name: %s", out.Code)
	}
	// The declaration keeps its top-level name.
	if !strings.Contains(out.Code, "function f(") {
		t.Errorf("root-scope name must survive: %s", out.Code)
	}
	reparse(t, out.Code)
}

func TestSourceMap(t *testing.T) {
	program := mustParse(t, "src/app.tsx", "const a = 1;\nconst b = a + 1;\n")
	out, err := codegen.Build(program, codegen.Options{SourceMapPath: "src/app.tsx"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Map == "" {
		t.Fatal("map requested but empty")
	}

	var m struct {
		Version  int      `json:"version"`
		Sources  []string `json:"sources"`
		Mappings string   `json:"mappings"`
	}
	if err := json.Unmarshal([]byte(out.Map), &m); err != nil {
		t.Fatalf("map is not valid JSON: %v", err)
	}
	if m.Version != 3 {
		t.Errorf("version = %d, want 3", m.Version)
	}
	if len(m.Sources) != 1 || m.Sources[0] != "src/app.tsx" {
		t.Errorf("sources = %v", m.Sources)
	}
	if m.Mappings == "" {
		t.Error("mappings must not be empty")
	}
}

func TestDeclareEmit(t *testing.T) {
	program := mustParse(t, "test.tsx", "declare const env: string;\ndeclare function f(a: number): void;")
	out, err := codegen.Build(program, codegen.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Code, "declare const env: string;") {
		t.Errorf("missing declare const, got %q", out.Code)
	}
	if !strings.Contains(out.Code, "declare function f(a: number): void;") {
		t.Errorf("missing bodyless declare function, got %q", out.Code)
	}
}

func TestImportExportEmit(t *testing.T) {
	src := "import def, { a as b } from \"m\";\nimport * as ns from \"n\";\nexport { a as c };\nexport default def;\n"
	program := mustParse(t, "test.tsx", src)
	out, err := codegen.Build(program, codegen.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`import def, { a as b } from "m";`,
		`import * as ns from "n";`,
		`export { a as c };`,
		`export default def;`,
	} {
		if !strings.Contains(out.Code, want) {
			t.Errorf("output missing %q:\n%s", want, out.Code)
		}
	}
	reparse(t, out.Code)
}
