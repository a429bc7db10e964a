package semantic

import (
	"strings"

	"loupe/internal/ast"
	"loupe/internal/source"
)

// ScopeFlags classify a lexical scope. A plain block scope has no flags set.
type ScopeFlags uint8

const (
	ScopeTop ScopeFlags = 1 << iota
	ScopeFunction
	ScopeArrow
	ScopeCatch
)

func (f ScopeFlags) String() string {
	if f == 0 {
		return "Block"
	}
	var parts []string
	if f&ScopeTop != 0 {
		parts = append(parts, "Top")
	}
	if f&ScopeFunction != 0 {
		parts = append(parts, "Function")
	}
	if f&ScopeArrow != 0 {
		parts = append(parts, "Arrow")
	}
	if f&ScopeCatch != 0 {
		parts = append(parts, "Catch")
	}
	return strings.Join(parts, " | ")
}

// SymbolFlags classify what kind of declaration created a symbol.
type SymbolFlags uint16

const (
	SymFunctionScopedVariable SymbolFlags = 1 << iota
	SymBlockScopedVariable
	SymConstVariable
	SymFunction
	SymImport
	SymTypeAlias
	SymCatchVariable
)

func (f SymbolFlags) String() string {
	var parts []string
	if f&SymFunctionScopedVariable != 0 {
		parts = append(parts, "FunctionScopedVariable")
	}
	if f&SymBlockScopedVariable != 0 {
		parts = append(parts, "BlockScopedVariable")
	}
	if f&SymConstVariable != 0 {
		parts = append(parts, "ConstVariable")
	}
	if f&SymFunction != 0 {
		parts = append(parts, "Function")
	}
	if f&SymImport != 0 {
		parts = append(parts, "Import")
	}
	if f&SymTypeAlias != 0 {
		parts = append(parts, "TypeAlias")
	}
	if f&SymCatchVariable != 0 {
		parts = append(parts, "CatchVariable")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, " | ")
}

// IsLexical reports whether redeclaration in the same scope is an error.
func (f SymbolFlags) IsLexical() bool {
	return f&(SymBlockScopedVariable|SymConstVariable|SymImport|SymCatchVariable) != 0
}

// ReferenceFlags classify how a reference uses its symbol.
type ReferenceFlags uint8

const (
	RefRead ReferenceFlags = 1 << iota
	RefWrite
)

func (f ReferenceFlags) String() string {
	switch {
	case f&RefRead != 0 && f&RefWrite != 0:
		return "ReadWrite"
	case f&RefWrite != 0:
		return "Write"
	default:
		return "Read"
	}
}

// Binding is one name introduced into a scope, in insertion order.
type Binding struct {
	Name string
	Sym  ast.SymbolID
}

// Scope is one node of the scope tree.
type Scope struct {
	ID       ast.ScopeID
	Flags    ScopeFlags
	Parent   ast.ScopeID
	Bindings []Binding
	Children []ast.ScopeID
}

// Symbol is one declared name.
type Symbol struct {
	ID    ast.SymbolID
	Name  string
	Span  source.Span
	Flags SymbolFlags
	Scope ast.ScopeID
	// Refs lists resolved reference ids in source order.
	Refs []ast.ReferenceID
}

// Reference is one identifier use site.
type Reference struct {
	ID    ast.ReferenceID
	Span  source.Span
	Flags ReferenceFlags
	// Sym is NoSymbol for names that resolve to nothing in the unit
	// (globals like console).
	Sym ast.SymbolID
}

// Scoping is the complete semantic table for one tree: scope tree, symbols
// and references. It is immutable after Build except for the mangler's
// renames.
type Scoping struct {
	scopes     []Scope
	symbols    []Symbol
	references []Reference
}

// Root returns the program scope id.
func (sc *Scoping) Root() ast.ScopeID { return 0 }

func (sc *Scoping) ScopeCount() int  { return len(sc.scopes) }
func (sc *Scoping) SymbolCount() int { return len(sc.symbols) }

func (sc *Scoping) Scope(id ast.ScopeID) *Scope       { return &sc.scopes[id] }
func (sc *Scoping) Symbol(id ast.SymbolID) *Symbol    { return &sc.symbols[id] }
func (sc *Scoping) Ref(id ast.ReferenceID) *Reference { return &sc.references[id] }

// Symbols iterates symbols in creation order.
func (sc *Scoping) Symbols() []Symbol { return sc.symbols }

// SetSymbolName is used by the mangler to install shortened names.
func (sc *Scoping) SetSymbolName(id ast.SymbolID, name string) {
	sc.symbols[id].Name = name
}
