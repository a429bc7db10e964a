package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"loupe/internal/diag"
	"loupe/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	locColor     = color.New(color.Faint)
)

// renderFileDiagnostics prints flat diagnostics with source context: a
// location header, the offending line, and a caret underline sized in
// display cells.
func renderFileDiagnostics(w io.Writer, path string, flats []diag.Flat, colored bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		for _, d := range flats {
			fmt.Fprintf(w, "%s: %s: %s\n", path, d.Severity, d.Message)
		}
		return
	}
	file := source.NewFile(path, string(content))
	for _, d := range flats {
		renderDiagnostic(w, file, d, colored)
	}
}

func renderDiagnostic(w io.Writer, file *source.File, d diag.Flat, colored bool) {
	sev := d.Severity
	if colored {
		sev = severityColor(d.Severity).Sprint(d.Severity)
	}
	pos := file.LineColAt(d.Start)
	loc := fmt.Sprintf("%s:%d:%d", file.Path, pos.Line+1, pos.Col+1)
	if colored {
		loc = locColor.Sprint(loc)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", loc, sev, d.Message)

	line := file.Line(pos.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Underline in display cells, not bytes.
	prefix := runewidth.StringWidth(line[:min(int(pos.Col), len(line))])
	length := int(d.End) - int(d.Start)
	if length <= 0 || int(pos.Col)+length > len(line) {
		length = 1
	} else {
		length = runewidth.StringWidth(line[pos.Col : int(pos.Col)+length])
		if length == 0 {
			length = 1
		}
	}
	caret := strings.Repeat(" ", prefix) + strings.Repeat("^", length)
	if colored {
		caret = severityColor(d.Severity).Sprint(caret)
	}
	fmt.Fprintf(w, "  %s\n", caret)
}

func severityColor(severity string) *color.Color {
	switch severity {
	case "Error":
		return errorColor
	case "Warning":
		return warningColor
	default:
		return infoColor
	}
}
