package format

import (
	"strconv"
	"strings"

	"loupe/internal/ast"
)

// PrintWidth is the column budget groups try to fit in.
const PrintWidth = 80

// Format pretty-prints the program.
func Format(program *ast.Program) string {
	doc := Program(program)
	return Render(doc, PrintWidth)
}

// DocText dumps the document tree in array syntax. The dump is itself valid
// JavaScript, so it survives a trip through the parser.
func DocText(program *ast.Program) string {
	doc := Program(program)
	var sb strings.Builder
	writeDoc(&sb, &doc)
	sb.WriteString(";\n")
	return sb.String()
}

func writeDoc(sb *strings.Builder, d *Doc) {
	switch d.kind {
	case docText:
		sb.WriteString(strconv.Quote(d.text))
		return
	case docLine:
		sb.WriteString(`"line"`)
		return
	case docSoftline:
		sb.WriteString(`"softline"`)
		return
	case docHardline:
		sb.WriteString(`"hardline"`)
		return
	case docIndent:
		sb.WriteString(`["indent"`)
	case docGroup:
		sb.WriteString(`["group"`)
	case docConcat:
		sb.WriteString(`["concat"`)
	}
	for i := range d.children {
		sb.WriteString(", ")
		writeDoc(sb, &d.children[i])
	}
	sb.WriteString("]")
}
