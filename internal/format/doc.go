// Package format pretty-prints a program through an intermediate document
// tree: the builder lowers the AST into nested groups of text, lines and
// indents, and the renderer folds each group onto one line when it fits the
// print width.
package format

import (
	"strings"
)

// Doc is one node of the document tree.
type Doc struct {
	kind     docKind
	text     string
	children []Doc
}

type docKind uint8

const (
	docText docKind = iota
	// docLine renders as a space when its group fits, a newline otherwise.
	docLine
	// docSoftline renders as nothing when its group fits.
	docSoftline
	// docHardline always breaks and forces every enclosing group to break.
	docHardline
	docIndent
	docGroup
	docConcat
)

func Text(s string) Doc       { return Doc{kind: docText, text: s} }
func Line() Doc               { return Doc{kind: docLine} }
func Softline() Doc           { return Doc{kind: docSoftline} }
func Hardline() Doc           { return Doc{kind: docHardline} }
func Indent(docs ...Doc) Doc  { return Doc{kind: docIndent, children: docs} }
func Group(docs ...Doc) Doc   { return Doc{kind: docGroup, children: docs} }
func Concat(docs ...Doc) Doc  { return Doc{kind: docConcat, children: docs} }

// fits measures the flat width of a document, stopping early once the budget
// is exhausted. Hard lines never fit.
func (d *Doc) fits(budget int) (int, bool) {
	switch d.kind {
	case docText:
		return len(d.text), len(d.text) <= budget
	case docLine:
		return 1, budget >= 1
	case docSoftline:
		return 0, true
	case docHardline:
		return 0, false
	}
	total := 0
	for i := range d.children {
		w, ok := d.children[i].fits(budget - total)
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, total <= budget
}

type renderer struct {
	sb    strings.Builder
	width int
	col   int
}

func (r *renderer) render(d *Doc, indent int, flat bool) {
	switch d.kind {
	case docText:
		r.sb.WriteString(d.text)
		r.col += len(d.text)
	case docLine:
		if flat {
			r.sb.WriteByte(' ')
			r.col++
		} else {
			r.break_(indent)
		}
	case docSoftline:
		if !flat {
			r.break_(indent)
		}
	case docHardline:
		r.break_(indent)
	case docIndent:
		for i := range d.children {
			r.render(&d.children[i], indent+1, flat)
		}
	case docGroup:
		groupFlat := flat
		if !groupFlat {
			_, ok := d.fits(r.width - r.col)
			groupFlat = ok
		}
		for i := range d.children {
			r.render(&d.children[i], indent, groupFlat)
		}
	case docConcat:
		for i := range d.children {
			r.render(&d.children[i], indent, flat)
		}
	}
}

func (r *renderer) break_(indent int) {
	r.sb.WriteByte('\n')
	for i := 0; i < indent; i++ {
		r.sb.WriteString("  ")
	}
	r.col = indent * 2
}

// Render flattens the document into text at the given print width.
func Render(d Doc, width int) string {
	r := renderer{width: width}
	r.render(&d, 0, false)
	return r.sb.String()
}
