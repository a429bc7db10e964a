package pipeline

import (
	"fmt"
	"strings"

	"loupe/internal/ast"
	"loupe/internal/semantic"
)

// renderScopeText renders the scope tree as indented text. The traversal is
// an explicit stack over the read-only scope table: one header and one
// closing marker per scope, bindings listed in insertion order, indentation
// equal to nesting depth.
func renderScopeText(sc *semantic.Scoping) string {
	if sc.ScopeCount() == 0 {
		return ""
	}
	var sb strings.Builder

	type frame struct {
		id    ast.ScopeID
		child int
	}

	open := func(id ast.ScopeID, depth int) {
		scope := sc.Scope(id)
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(&sb, "%sScope %d (%s) {\n", indent, scope.ID, scope.Flags)
		for _, b := range scope.Bindings {
			sym := sc.Symbol(b.Sym)
			fmt.Fprintf(&sb, "%s  %s (SymbolId(%d) %s)\n", indent, b.Name, sym.ID, sym.Flags)
		}
	}

	stack := []frame{{id: sc.Root()}}
	open(sc.Root(), 0)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		scope := sc.Scope(top.id)
		if top.child < len(scope.Children) {
			next := scope.Children[top.child]
			top.child++
			open(next, len(stack))
			stack = append(stack, frame{id: next})
			continue
		}
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&sb, "%s}\n", strings.Repeat("  ", len(stack)))
	}
	return sb.String()
}
