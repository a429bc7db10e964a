package linter

import (
	"loupe/internal/ast"
	"loupe/internal/source"
)

// ModuleRecord is the lint-facing view of the parser's raw module summary.
// It is read-only once built and may be shared between driver and linter.
type ModuleRecord struct {
	Path string
	// Requests maps each module specifier to the spans of the import
	// declarations that request it, in source order.
	Requests map[string][]source.Span
	// RequestOrder preserves first-seen specifier order for deterministic
	// iteration.
	RequestOrder []string
	// Exports lists exported names.
	Exports         []string
	HasModuleSyntax bool
}

// NewModuleRecord builds the summary from the parser's raw record.
func NewModuleRecord(path string, raw *ast.ModuleRecordRaw) *ModuleRecord {
	rec := &ModuleRecord{
		Path:            path,
		Requests:        make(map[string][]source.Span),
		HasModuleSyntax: raw.HasModuleSyntax,
	}
	for _, imp := range raw.Imports {
		if _, seen := rec.Requests[imp.Source]; !seen {
			rec.RequestOrder = append(rec.RequestOrder, imp.Source)
		}
		rec.Requests[imp.Source] = append(rec.Requests[imp.Source], imp.Span)
	}
	for _, exp := range raw.Exports {
		rec.Exports = append(rec.Exports, exp.Name)
	}
	return rec
}

// IsExported reports whether a top-level name is exported.
func (r *ModuleRecord) IsExported(name string) bool {
	for _, exp := range r.Exports {
		if exp == name {
			return true
		}
	}
	return false
}
