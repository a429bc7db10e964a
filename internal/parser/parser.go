package parser

import (
	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/lexer"
	"loupe/internal/source"
	"loupe/internal/token"
)

// Options control syntax details that are configurable per run.
type Options struct {
	AllowReturnOutsideFunction bool
	PreserveParens             bool
	AllowV8Intrinsics          bool
}

// DefaultOptions mirrors the documented defaults.
func DefaultOptions() Options {
	return Options{PreserveParens: true}
}

// Result is the parser's complete output. The tree is always present, even
// for malformed input: recovery substitutes empty statements and keeps going.
type Result struct {
	Program      *ast.Program
	Errors       []diag.Diagnostic
	ModuleRecord ast.ModuleRecordRaw
}

// Parser is a recursive-descent parser over a pre-lexed token stream. It
// never fails hard: every syntax error becomes a diagnostic and the parse
// resynchronizes at a statement boundary.
type Parser struct {
	file   *source.File
	st     source.SourceType
	opts   Options
	tokens []token.Token
	i      int
	errors []diag.Diagnostic
	record ast.ModuleRecordRaw

	fnDepth int
	// noIn suppresses the 'in' operator while a for-head is being parsed.
	noIn bool
}

// Parse runs the parser over one source unit.
func Parse(file *source.File, st source.SourceType, opts Options) Result {
	lx := lexer.New(file)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	p := &Parser{
		file:   file,
		st:     st,
		opts:   opts,
		tokens: tokens,
		errors: append([]diag.Diagnostic(nil), lx.Errors()...),
	}

	stmts := p.parseStmtList(token.EOF)
	program := &ast.Program{
		SourceType: st,
		Path:       file.Path,
		SourceText: file.Content,
		Span:       source.NewSpan(0, file.End()),
		Stmts:      stmts,
		Comments:   lx.Comments(),
	}
	return Result{
		Program:      program,
		Errors:       p.errors,
		ModuleRecord: p.record,
	}
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.i]
}

func (p *Parser) peek(n int) token.Token {
	if p.i+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.i+n]
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.i]
	if p.i+1 < len(p.tokens) {
		p.i++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.errorAt(p.cur().Span, "expected %s but found %s", kind, p.describe(p.cur()))
	return p.cur(), false
}

func (p *Parser) describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	if tok.Text != "" {
		return "'" + tok.Text + "'"
	}
	return tok.Kind.String()
}

func (p *Parser) errorAt(sp source.Span, format string, args ...any) {
	p.errors = append(p.errors, diag.Errorf(format, args...).WithSpan(sp))
}

// expectSemi applies automatic semicolon insertion: an explicit semicolon, a
// closing brace, end of file or a preceding line terminator all end the
// statement.
func (p *Parser) expectSemi() {
	switch {
	case p.eat(token.Semicolon):
	case p.at(token.RBrace), p.at(token.EOF):
	case p.cur().NewlineBefore:
	default:
		p.errorAt(p.cur().Span, "expected ';' but found %s", p.describe(p.cur()))
		p.recover()
	}
}

// recover skips ahead to a plausible statement boundary.
func (p *Parser) recover() {
	for !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			return
		}
		if p.at(token.RBrace) || p.cur().NewlineBefore {
			return
		}
		p.advance()
	}
}

// spanFrom covers from a start offset up to the end of the previous token.
func (p *Parser) spanFrom(start uint32) source.Span {
	end := start
	if p.i > 0 {
		end = p.tokens[p.i-1].Span.End
	}
	if end < start {
		end = start
	}
	return source.NewSpan(start, end)
}
