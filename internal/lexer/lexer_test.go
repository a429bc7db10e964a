package lexer_test

import (
	"testing"

	"loupe/internal/lexer"
	"loupe/internal/source"
	"loupe/internal/token"
)

func makeTestLexer(input string) *lexer.Lexer {
	return lexer.New(source.NewFile("test.tsx", input))
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestTokenKinds(t *testing.T) {
	cases := []struct {
		input string
		want  []token.Kind
	}{
		{
			"const x = 1;",
			[]token.Kind{token.KwConst, token.Ident, token.Assign, token.Number, token.Semicolon, token.EOF},
		},
		{
			"a === b !== c",
			[]token.Kind{token.Ident, token.EqEqEq, token.Ident, token.NotEqEq, token.Ident, token.EOF},
		},
		{
			"x ** 2 *= y",
			[]token.Kind{token.Ident, token.StarStar, token.Number, token.StarAssign, token.Ident, token.EOF},
		},
		{
			"f(...args)",
			[]token.Kind{token.Ident, token.LParen, token.DotDotDot, token.Ident, token.RParen, token.EOF},
		},
		{
			"() => x++",
			[]token.Kind{token.LParen, token.RParen, token.Arrow, token.Ident, token.PlusPlus, token.EOF},
		},
		{
			"0x1F 0b10 0o7 1.5e-3 .5",
			[]token.Kind{token.Number, token.Number, token.Number, token.Number, token.Number, token.EOF},
		},
		{
			`import { a as b } from "m";`,
			[]token.Kind{
				token.KwImport, token.LBrace, token.Ident, token.KwAs, token.Ident, token.RBrace,
				token.KwFrom, token.String, token.Semicolon, token.EOF,
			},
		},
	}
	for _, tc := range cases {
		got := collectKinds(makeTestLexer(tc.input))
		if len(got) != len(tc.want) {
			t.Errorf("%q: got %d tokens %v, want %d", tc.input, len(got), got, len(tc.want))
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%q: token %d = %v, want %v", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}

func TestTemplateIsOneToken(t *testing.T) {
	input := "`a ${f({x: 1})} b`;"
	lx := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.Template {
		t.Fatalf("kind = %v, want Template", tok.Kind)
	}
	if tok.Text != "`a ${f({x: 1})} b`" {
		t.Errorf("template text = %q, substitutions must stay inside", tok.Text)
	}
	if next := lx.Next(); next.Kind != token.Semicolon {
		t.Errorf("token after template = %v, want Semicolon", next.Kind)
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	input := "// lead\nlet a; /* mid */ let b;"
	lx := makeTestLexer(input)
	kinds := collectKinds(lx)
	for _, k := range kinds {
		if k == token.Invalid {
			t.Errorf("comment leaked as a token: %v", kinds)
		}
	}

	comments := lx.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Kind != token.CommentLine {
		t.Errorf("first comment kind = %v, want line", comments[0].Kind)
	}
	if got := comments[0].ContentSpan.Text(input); got != " lead" {
		t.Errorf("line comment content = %q, want %q", got, " lead")
	}
	if comments[1].Kind != token.CommentBlock {
		t.Errorf("second comment kind = %v, want block", comments[1].Kind)
	}
	if got := comments[1].ContentSpan.Text(input); got != " mid " {
		t.Errorf("block comment content = %q, delimiters must be excluded", got)
	}
	// The full span keeps the delimiters.
	if got := comments[1].Span.Text(input); got != "/* mid */" {
		t.Errorf("block comment span = %q", got)
	}
}

func TestNewlineBefore(t *testing.T) {
	lx := makeTestLexer("a\nb c")
	if tok := lx.Next(); tok.NewlineBefore {
		t.Error("first token must not report a preceding newline")
	}
	if tok := lx.Next(); !tok.NewlineBefore {
		t.Error("token after a line break must report NewlineBefore")
	}
	if tok := lx.Next(); tok.NewlineBefore {
		t.Error("same-line token must not report NewlineBefore")
	}
}

func TestUnterminatedString(t *testing.T) {
	lx := makeTestLexer(`let s = "oops`)
	collectKinds(lx)
	errs := lx.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Message != "unterminated string literal" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx := makeTestLexer("let a; /* never ends")
	collectKinds(lx)
	found := false
	for _, e := range lx.Errors() {
		if e.Message == "unterminated block comment" {
			found = true
		}
	}
	if !found {
		t.Error("expected an unterminated block comment error")
	}
}

func TestStringEscapes(t *testing.T) {
	input := `"a\"b"`
	lx := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.String {
		t.Fatalf("kind = %v, want String", tok.Kind)
	}
	if tok.Text != input {
		t.Errorf("text = %q, escaped quote must not end the literal", tok.Text)
	}
	if len(lx.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", lx.Errors())
	}
}
