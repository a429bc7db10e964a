package ast

import "math"

// ScopeID indexes a scope in the semantic scope table.
type ScopeID uint32

// SymbolID indexes a symbol in the semantic symbol table.
type SymbolID uint32

// ReferenceID indexes a reference in the semantic reference table.
type ReferenceID uint32

const (
	NoScope     ScopeID     = math.MaxUint32
	NoSymbol    SymbolID    = math.MaxUint32
	NoReference ReferenceID = math.MaxUint32
)

func (id ScopeID) IsValid() bool     { return id != NoScope }
func (id SymbolID) IsValid() bool    { return id != NoSymbol }
func (id ReferenceID) IsValid() bool { return id != NoReference }
