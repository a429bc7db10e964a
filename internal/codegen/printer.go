package codegen

import (
	"strings"

	"loupe/internal/ast"
	"loupe/internal/semantic"
	"loupe/internal/source"
)

// Options configure the printer.
type Options struct {
	// Minify drops whitespace. The output stays re-parseable: statement
	// separators and precedence parens are always emitted.
	Minify bool
	// Scoping, when set, supplies symbol names. The mangler hands its
	// renamed scoping here; without it identifiers print their source text.
	Scoping *semantic.Scoping
	// SourceMapPath enables source map generation and becomes the map's
	// source entry.
	SourceMapPath string
}

// Result is printed code plus the version 3 source map JSON, empty when maps
// are disabled.
type Result struct {
	Code string
	Map  string
}

// Build prints the program. The only error path is source map
// serialization.
func Build(program *ast.Program, opts Options) (Result, error) {
	p := &printer{opts: opts, program: program}
	if opts.SourceMapPath != "" {
		p.smap = newMapBuilder(opts.SourceMapPath, program.SourceText)
	}
	for i := range program.Stmts {
		p.stmt(&program.Stmts[i])
		p.newline()
	}
	res := Result{Code: p.sb.String()}
	if p.smap != nil {
		m, err := p.smap.JSON()
		if err != nil {
			return Result{}, err
		}
		res.Map = m
	}
	return res, nil
}

type printer struct {
	opts    Options
	program *ast.Program
	sb      strings.Builder
	indent  int
	line    int
	col     int
	smap    *mapBuilder
}

func (p *printer) print(s string) {
	for _, b := range []byte(s) {
		if b == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
	p.sb.WriteString(s)
}

// space prints a formatting space dropped under minification.
func (p *printer) space() {
	if !p.opts.Minify {
		p.print(" ")
	}
}

func (p *printer) newline() {
	if p.opts.Minify {
		return
	}
	p.print("\n")
	for i := 0; i < p.indent; i++ {
		p.print("  ")
	}
}

// mark records a source map segment pointing the current output position at
// the given source offset.
func (p *printer) mark(sp source.Span) {
	if p.smap != nil {
		p.smap.add(p.line, p.col, sp.Start)
	}
}

func (p *printer) symbolName(sym ast.SymbolID, fallback string) string {
	if p.opts.Scoping != nil && sym.IsValid() {
		return p.opts.Scoping.Symbol(sym).Name
	}
	return fallback
}

func (p *printer) refName(ref ast.ReferenceID, fallback string) string {
	if p.opts.Scoping == nil || !ref.IsValid() {
		return fallback
	}
	r := p.opts.Scoping.Ref(ref)
	if !r.Sym.IsValid() {
		return fallback
	}
	return p.opts.Scoping.Symbol(r.Sym).Name
}

// quote renders a module specifier as a double-quoted string literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func (p *printer) typeAnn(t *ast.TypeAnn) {
	if t == nil {
		return
	}
	p.print(":")
	p.space()
	p.print(t.Text)
}
