package pipeline

import (
	"fmt"
	"strings"

	"loupe/internal/ast"
)

// renderIR dumps the top-level statement list as plain structural text, one
// node name plus byte span per line.
func renderIR(program *ast.Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Program %s\n", program.Span)
	for i := range program.Stmts {
		s := &program.Stmts[i]
		fmt.Fprintf(&sb, "  %s %s\n", ast.StmtName(s.Data), s.Span)
	}
	return sb.String()
}
