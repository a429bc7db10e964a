package ast

import (
	"loupe/internal/source"
	"loupe/internal/token"
)

// Program is the root of one parsed source unit. Exactly one program exists
// per pipeline run; transform and minify stages rewrite it in place.
type Program struct {
	SourceType source.SourceType
	Path       string
	SourceText string
	Span       source.Span
	Stmts      []Stmt
	Comments   []token.Comment
}

// ImportEntry summarizes one import declaration for the module record.
type ImportEntry struct {
	Source     string
	SourceSpan source.Span
	Span       source.Span
	Names      []string
	TypeOnly   bool
}

// ExportEntry summarizes one exported name.
type ExportEntry struct {
	Name    string
	Span    source.Span
	Default bool
}

// ModuleRecordRaw is the parser's raw module-reference summary. It is
// read-only once built; the driver wraps it into the linter's module record.
type ModuleRecordRaw struct {
	HasModuleSyntax bool
	Imports         []ImportEntry
	Exports         []ExportEntry
}
