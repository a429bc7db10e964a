package minifier

import (
	"loupe/internal/ast"
	"loupe/internal/semantic"
)

const nameHead = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$"
const nameTail = nameHead + "0123456789"

// reservedNames can never be produced by the generator.
var reservedNames = map[string]bool{
	"do": true, "if": true, "in": true, "for": true, "let": true,
	"new": true, "try": true, "var": true, "case": true, "else": true,
	"enum": true, "null": true, "this": true, "true": true, "void": true,
	"with": true,
}

// mangle renames every local symbol to a short generated name. It runs a
// fresh semantic pass so the renames line up with the current tree, and
// returns that scoping for the printer.
func mangle(program *ast.Program) *semantic.Scoping {
	res := semantic.Builder{}.Build(program)
	sc := res.Scoping
	next := 0
	for _, sym := range sc.Symbols() {
		if !mangleable(sc, &sym) {
			continue
		}
		name := numberToName(next)
		next++
		for reservedNames[name] {
			name = numberToName(next)
			next++
		}
		sc.SetSymbolName(sym.ID, name)
	}
	return sc
}

// mangleable excludes root-scope symbols: they may be exported or referenced
// by other modules, and renaming them would change the module's surface.
func mangleable(sc *semantic.Scoping, sym *semantic.Symbol) bool {
	if sym.Scope == sc.Root() {
		return false
	}
	return sym.Flags&(semantic.SymImport|semantic.SymTypeAlias) == 0
}

// numberToName maps 0,1,2,... to a,b,c,...,$, aa, ab and so on.
func numberToName(i int) string {
	name := string(nameHead[i%len(nameHead)])
	for i = i / len(nameHead); i > 0; i = i / len(nameTail) {
		i--
		name += string(nameTail[i%len(nameTail)])
	}
	return name
}
