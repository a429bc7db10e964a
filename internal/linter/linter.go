package linter

import (
	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/semantic"
)

// Options configure which rules run. The zero value enables everything.
type Options struct {
	DisableNoDebugger        bool
	DisableNoUnusedVars      bool
	DisableNoDuplicateImport bool
}

// Linter evaluates advisory rules against a freshly built semantic pass.
// All findings are warnings: lint never makes a run fail.
type Linter struct {
	opts Options
}

func New(opts Options) *Linter {
	return &Linter{opts: opts}
}

// Run evaluates every enabled rule. The scoping must come from a semantic
// pass over the same tree.
func (l *Linter) Run(program *ast.Program, scoping *semantic.Scoping, record *ModuleRecord) []diag.Diagnostic {
	var out []diag.Diagnostic
	if !l.opts.DisableNoDebugger {
		out = append(out, l.noDebugger(program)...)
	}
	if !l.opts.DisableNoUnusedVars {
		out = append(out, l.noUnusedVars(scoping, record)...)
	}
	if !l.opts.DisableNoDuplicateImport {
		out = append(out, l.noDuplicateImports(record)...)
	}
	return out
}
