package ast

import (
	"loupe/internal/source"
)

// Stmt is one statement node: a span plus kind-specific payload.
type Stmt struct {
	Span source.Span
	Data S
}

// S is implemented by all statement payloads.
type S interface{ isStmt() }

// VarKind distinguishes var/let/const declarations.
type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	}
	return "var"
}

// Declarator is one name of a declaration statement.
type Declarator struct {
	Name     string
	NameSpan source.Span
	Sym      SymbolID
	Type     *TypeAnn
	Init     *Expr
}

// TypeAnn is a TypeScript annotation kept as raw text; the pipeline erases
// it rather than interpreting it.
type TypeAnn struct {
	Span source.Span
	Text string
}

type SVar struct {
	Kind    VarKind
	Decls   []Declarator
	Declare bool
}

// Param is one function parameter.
type Param struct {
	Name     string
	NameSpan source.Span
	Sym      SymbolID
	Type     *TypeAnn
	Default  *Expr
	Rest     bool
}

// Fn is shared by function declarations, function expressions and arrows.
type Fn struct {
	Name     string
	NameSpan source.Span
	Sym      SymbolID
	Params   []Param
	Body     []Stmt
	BodySpan source.Span
	Return   *TypeAnn
	// HasExprBody marks arrows written with an expression body; Body then
	// holds a single synthesized return.
	HasExprBody bool
}

type SFunction struct {
	Fn      Fn
	Declare bool
}

type SReturn struct {
	Value *Expr
}

type SIf struct {
	Test Expr
	Yes  Stmt
	No   *Stmt
}

type SWhile struct {
	Test Expr
	Body Stmt
}

type SDoWhile struct {
	Body Stmt
	Test Expr
}

type SFor struct {
	Init   *Stmt
	Test   *Expr
	Update *Expr
	Body   Stmt
}

// SForIn covers for-in and for-of.
type SForIn struct {
	Init  Stmt
	Of    bool
	Value Expr
	Body  Stmt
}

type SBlock struct {
	Stmts []Stmt
}

type SEmpty struct{}

type SExpr struct {
	Value Expr
}

type SDebugger struct{}

type SThrow struct {
	Value Expr
}

// Catch is the catch clause of a try statement.
type Catch struct {
	Span     source.Span
	Name     string
	NameSpan source.Span
	Sym      SymbolID
	Body     []Stmt
}

type STry struct {
	Body    []Stmt
	Catch   *Catch
	Finally []Stmt
	// HasFinally distinguishes an empty finally block from none at all.
	HasFinally bool
}

type SBreak struct{}

type SContinue struct{}

// ImportName is one named import specifier.
type ImportName struct {
	Name      string
	NameSpan  source.Span
	Alias     string
	AliasSpan source.Span
	Sym       SymbolID
}

type SImport struct {
	Default       string
	DefaultSpan   source.Span
	DefaultSym    SymbolID
	Namespace     string
	NamespaceSpan source.Span
	NamespaceSym  SymbolID
	Names         []ImportName
	Source        string
	SourceSpan    source.Span
	TypeOnly      bool
}

// ExportName is one specifier of `export { a as b }`.
type ExportName struct {
	Name      string
	NameSpan  source.Span
	Ref       ReferenceID
	Alias     string
	AliasSpan source.Span
}

type SExportNamed struct {
	// Decl is set for `export <declaration>` and nil for a specifier list.
	Decl  *Stmt
	Names []ExportName
}

type SExportDefault struct {
	Value Expr
}

type STypeAlias struct {
	Name     string
	NameSpan source.Span
	Sym      SymbolID
	Type     TypeAnn
	Declare  bool
}

func (*SVar) isStmt()           {}
func (*SFunction) isStmt()      {}
func (*SReturn) isStmt()        {}
func (*SIf) isStmt()            {}
func (*SWhile) isStmt()         {}
func (*SDoWhile) isStmt()       {}
func (*SFor) isStmt()           {}
func (*SForIn) isStmt()         {}
func (*SBlock) isStmt()         {}
func (*SEmpty) isStmt()         {}
func (*SExpr) isStmt()          {}
func (*SDebugger) isStmt()      {}
func (*SThrow) isStmt()         {}
func (*STry) isStmt()           {}
func (*SBreak) isStmt()         {}
func (*SContinue) isStmt()      {}
func (*SImport) isStmt()        {}
func (*SExportNamed) isStmt()   {}
func (*SExportDefault) isStmt() {}
func (*STypeAlias) isStmt()     {}
