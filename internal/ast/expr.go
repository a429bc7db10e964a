package ast

import (
	"loupe/internal/source"
)

// Expr is one expression node: a span plus kind-specific payload. Data is
// always a pointer so passes can rewrite nodes in place.
type Expr struct {
	Span source.Span
	Data E
}

// E is implemented by all expression payloads.
type E interface{ isExpr() }

type EIdent struct {
	Name string
	// Ref is assigned by the most recent semantic pass; NoReference until
	// then and for unresolvable built-ins handled as unresolved references.
	Ref ReferenceID
}

type EThis struct{}

type ENumber struct {
	Raw string
}

type EString struct {
	// Raw keeps the literal verbatim, quotes included.
	Raw string
}

type ETemplate struct {
	Raw string
}

type EBool struct {
	Value bool
}

type ENull struct{}

type EArray struct {
	Items []Expr
}

// Property is one key/value entry of an object literal.
type Property struct {
	KeyName string
	KeySpan source.Span
	Value   Expr
	// Shorthand marks `{x}` where key and value are the same identifier.
	Shorthand bool
}

type EObject struct {
	Props []Property
}

type EUnary struct {
	Op    UnOp
	Value Expr
}

// EUpdate is ++/-- in prefix or postfix position.
type EUpdate struct {
	Prefix bool
	Dec    bool
	Value  Expr
}

type EBinary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

type ECond struct {
	Test Expr
	Yes  Expr
	No   Expr
}

type ECall struct {
	Target Expr
	Args   []Expr
}

type ENew struct {
	Target Expr
	Args   []Expr
}

type EDot struct {
	Target   Expr
	Name     string
	NameSpan source.Span
}

type EIndex struct {
	Target Expr
	Index  Expr
}

type EArrow struct {
	Fn Fn
}

type EFunction struct {
	Fn Fn
}

// EParen survives only when parenthesis preservation is on.
type EParen struct {
	Value Expr
}

type ESequence struct {
	Exprs []Expr
}

type ESpread struct {
	Value Expr
}

// EIntrinsic is a V8 runtime call `%Name(...)`, parsed only when
// allowV8Intrinsics is enabled.
type EIntrinsic struct {
	Name     string
	NameSpan source.Span
	Args     []Expr
}

func (*EIdent) isExpr()     {}
func (*EThis) isExpr()      {}
func (*ENumber) isExpr()    {}
func (*EString) isExpr()    {}
func (*ETemplate) isExpr()  {}
func (*EBool) isExpr()      {}
func (*ENull) isExpr()      {}
func (*EArray) isExpr()     {}
func (*EObject) isExpr()    {}
func (*EUnary) isExpr()     {}
func (*EUpdate) isExpr()    {}
func (*EBinary) isExpr()    {}
func (*ECond) isExpr()      {}
func (*ECall) isExpr()      {}
func (*ENew) isExpr()       {}
func (*EDot) isExpr()       {}
func (*EIndex) isExpr()     {}
func (*EArrow) isExpr()     {}
func (*EFunction) isExpr()  {}
func (*EParen) isExpr()     {}
func (*ESequence) isExpr()  {}
func (*ESpread) isExpr()    {}
func (*EIntrinsic) isExpr() {}
