package semantic

import (
	"fmt"
	"strings"
)

// DebugDot renders the graph in Graphviz dot syntax. Verbose mode annotates
// every statement line with its source span.
func (g *CFG) DebugDot(verbose bool) string {
	var sb strings.Builder
	sb.WriteString("digraph cfg {\n")
	sb.WriteString("\tnode [shape=box];\n")
	for _, blk := range g.Blocks {
		label := fmt.Sprintf("bb%d", blk.ID)
		if len(blk.Lines) > 0 {
			var lines []string
			for i, line := range blk.Lines {
				if verbose && i < len(blk.Spans) {
					lines = append(lines, fmt.Sprintf("%s [%d-%d]", line, blk.Spans[i].Start, blk.Spans[i].End))
				} else {
					lines = append(lines, line)
				}
			}
			label += "\\n" + strings.Join(lines, "\\n")
		}
		fmt.Fprintf(&sb, "\tbb%d [label=\"%s\"];\n", blk.ID, label)
	}
	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&sb, "\tbb%d -> bb%d [label=\"%s\"];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&sb, "\tbb%d -> bb%d;\n", e.From, e.To)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
