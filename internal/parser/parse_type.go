package parser

import (
	"strings"

	"loupe/internal/ast"
	"loupe/internal/token"
)

// typeCtx selects the terminator set for raw type-annotation scanning.
type typeCtx uint8

const (
	typeCtxParam typeCtx = iota
	typeCtxVarDecl
	typeCtxReturn
	typeCtxAlias
)

// parseTypeAnn consumes a TypeScript type as raw text. The pipeline never
// interprets types, so the scan only needs to find where the type ends:
// bracket depth plus a context-dependent terminator set.
func (p *Parser) parseTypeAnn(ctx typeCtx) *ast.TypeAnn {
	start := p.cur().Span.Start
	depth := 0
	consumed := 0

	for !p.at(token.EOF) {
		tok := p.cur()
		if depth == 0 {
			if p.typeTerminator(ctx, tok.Kind) {
				break
			}
			if consumed > 0 && tok.NewlineBefore && (ctx == typeCtxAlias || ctx == typeCtxVarDecl) {
				break
			}
		}
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace, token.Lt:
			depth++
		case token.RParen, token.RBracket, token.RBrace, token.Gt:
			if depth == 0 {
				goto done
			}
			depth--
		case token.GtGt:
			depth -= 2
		case token.GtGtGt:
			depth -= 3
		}
		if depth < 0 {
			break
		}
		p.advance()
		consumed++
	}

done:
	if consumed == 0 {
		p.errorAt(p.cur().Span, "expected a type but found %s", p.describe(p.cur()))
		return nil
	}
	sp := p.spanFrom(start)
	return &ast.TypeAnn{
		Span: sp,
		Text: strings.TrimSpace(sp.Text(p.file.Content)),
	}
}

func (p *Parser) typeTerminator(ctx typeCtx, kind token.Kind) bool {
	switch ctx {
	case typeCtxParam:
		return kind == token.Comma || kind == token.RParen || kind == token.Assign
	case typeCtxVarDecl:
		return kind == token.Assign || kind == token.Semicolon || kind == token.Comma ||
			kind == token.RBrace || kind == token.RParen || kind == token.KwIn || kind == token.KwOf
	case typeCtxReturn:
		return kind == token.LBrace || kind == token.Semicolon
	case typeCtxAlias:
		return kind == token.Semicolon || kind == token.RBrace
	}
	return false
}
