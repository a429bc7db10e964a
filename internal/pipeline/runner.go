package pipeline

import (
	"errors"
	"fmt"

	"loupe/internal/ast"
	"loupe/internal/codegen"
	"loupe/internal/diag"
	"loupe/internal/format"
	"loupe/internal/linter"
	"loupe/internal/minifier"
	"loupe/internal/parser"
	"loupe/internal/semantic"
	"loupe/internal/source"
	"loupe/internal/transformer"
)

// ErrSerialization is the only fatal failure: structured-output encoding
// broke. Every other stage failure degrades to a diagnostic.
var ErrSerialization = errors.New("serialization failed")

// transformExcessCapacity pre-sizes the semantic tables when a transform is
// requested: the transform roughly triples the scope/symbol/reference
// population.
const transformExcessCapacity = 2.0

// Runner drives one pipeline run at a time. State (sink, result bundle) is
// reused across sequential runs but never shared between concurrent callers.
type Runner struct {
	sink   diag.Sink
	result Result
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the stage sequence over one source unit. The returned result
// is owned by the runner and valid until the next Run call. The error is
// non-nil only for serialization failure.
func (r *Runner) Run(sourceText string, cfg Config) (*Result, error) {
	r.sink.Reset()
	r.result.reset()

	// 1. Source type from path, then the explicit override.
	st := source.SourceTypeFromPath(cfg.SourceFilename)
	switch cfg.SourceType {
	case "script":
		st = st.WithScript()
	case "module":
		st = st.WithModule()
	}

	// 2. Parse. The tree is best-effort even for malformed input.
	file := source.NewFile(cfg.SourceFilename, sourceText)
	parsed := parser.Parse(file, st, parser.Options{
		AllowReturnOutsideFunction: cfg.AllowReturnOutsideFunction,
		PreserveParens:             cfg.PreserveParens,
		AllowV8Intrinsics:          cfg.AllowV8Intrinsics,
	})
	program := parsed.Program

	// 3. Semantic analysis with CFG. Syntax-class diagnostics (parser and
	// analyzer alike) reach the sink only when requested.
	excess := 0.0
	if cfg.RunTransform {
		excess = transformExcessCapacity
	}
	sem := semantic.Builder{
		CheckSyntax:    true,
		BuildCFG:       true,
		ExcessCapacity: excess,
	}.Build(program)
	if cfg.RunSyntaxDiagnostics {
		r.sink.Append(parsed.Errors)
		r.sink.Append(sem.Errors)
	}

	// 4. CFG text.
	r.result.ControlFlowGraphDot = sem.CFG.DebugDot(cfg.CfgVerbose)

	// 5. Module record, read-only from here on.
	record := linter.NewModuleRecord(program.Path, &parsed.ModuleRecord)

	// 6. Lint gate: only on clean sinks, and over a fresh semantic pass.
	if cfg.RunLint && r.sink.Empty() {
		lintSem := semantic.Builder{}.Build(program)
		r.sink.Append(linter.New(linter.Options{}).Run(program, lintSem.Scoping, record))
	}

	// 7. Format stage, on its own parse of the original source with paren
	// preservation off.
	if cfg.PrettierFormat || cfg.PrettierIr {
		r.formatStage(file, st, cfg)
	}

	// 8. Scope and symbol views, skipped wholesale for declaration files.
	if !st.IsDefinition() {
		if cfg.RunScopeView {
			r.result.ScopeText = renderScopeText(sem.Scoping)
		}
		if cfg.RunSymbolView {
			symbols, err := projectSymbols(sem.Scoping)
			if err != nil {
				return nil, fmt.Errorf("%w: symbols: %v", ErrSerialization, err)
			}
			r.result.SymbolsJSON = symbols
		}
	}

	// 9. Transform. Isolated declarations is a disjoint sub-sequence ending
	// the run early.
	if cfg.RunTransform {
		if cfg.IsolatedDeclarations {
			return r.isolatedRun(program, cfg)
		}
		opts := transformer.DefaultOptions()
		if cfg.TransformTarget != "" {
			resolved, err := transformer.FromTarget(cfg.TransformTarget)
			if err != nil {
				r.sink.Push(diag.Error(err.Error()))
			} else {
				opts = resolved
			}
		}
		r.sink.Append(transformer.New(opts).Build(program, sem.Scoping))
	}

	// 10. Minify. Mangling hands codegen a replacement symbol table.
	var mangled *semantic.Scoping
	if cfg.MinifyMangle || cfg.MinifyCompress {
		mopts := minifier.Options{Mangle: cfg.MinifyMangle}
		if cfg.MinifyCompress {
			mopts.Compress = &minifier.CompressOptions{
				DropConsole:  cfg.DropConsole,
				DropDebugger: cfg.DropDebugger,
			}
		}
		mangled = minifier.New(mopts).Build(program).Scoping
	}

	// 11. Code generation.
	if err := r.codegenStage(program, mangled, cfg); err != nil {
		return nil, err
	}

	// 12. Raw top-level dump.
	r.result.IR = renderIR(program)

	// 13. Convert spans to code units exactly once, then serialize the tree
	// and extract comments. Flat diagnostics stay in byte offsets.
	conv := source.NewUtf8ToUtf16(sourceText)
	if !conv.IsIdentity() {
		ast.WalkSpans(program, conv.ConvertSpan)
	}
	astJSON, err := ast.ProgramJSON(program)
	if err != nil {
		return nil, fmt.Errorf("%w: ast: %v", ErrSerialization, err)
	}
	r.result.AstJSON = astJSON
	r.result.Comments = extractComments(program, conv)
	r.result.Diagnostics = r.sink.Flatten()
	return &r.result, nil
}

// isolatedRun code-generates the declaration tree and ends the run: minify,
// the raw dump and the AST/comment rendering never execute in this mode.
func (r *Runner) isolatedRun(program *ast.Program, cfg Config) (*Result, error) {
	iso := transformer.BuildIsolatedDeclarations(program, transformer.IsolatedOptions{})
	if len(iso.Errors) > 0 {
		r.sink.Append(iso.Errors)
		r.result.CodegenText = ""
		r.result.CodegenSourcemapJSON = ""
		r.result.Diagnostics = r.sink.Flatten()
		return &r.result, nil
	}
	if err := r.codegenStage(iso.Program, nil, Config{
		SourceFilename:  cfg.SourceFilename,
		EnableSourcemap: cfg.EnableSourcemap,
	}); err != nil {
		return nil, err
	}
	r.result.Diagnostics = r.sink.Flatten()
	return &r.result, nil
}

func (r *Runner) codegenStage(program *ast.Program, mangled *semantic.Scoping, cfg Config) error {
	opts := codegen.Options{
		Minify:  cfg.MinifyWhitespace,
		Scoping: mangled,
	}
	if cfg.EnableSourcemap {
		opts.SourceMapPath = cfg.SourceFilename
	}
	out, err := codegen.Build(program, opts)
	if err != nil {
		return fmt.Errorf("%w: sourcemap: %v", ErrSerialization, err)
	}
	r.result.CodegenText = out.Code
	r.result.CodegenSourcemapJSON = out.Map
	return nil
}

// formatStage runs the pretty-printer on a fresh parse. The IR view
// deliberately double-renders: the document dump is itself parseable, so it
// goes through the parser and printer a second time.
func (r *Runner) formatStage(file *source.File, st source.SourceType, cfg Config) {
	opts := parser.DefaultOptions()
	opts.PreserveParens = false
	fresh := parser.Parse(file, st, opts)
	if cfg.PrettierFormat {
		r.result.FormattedText = format.Format(fresh.Program)
	}
	if cfg.PrettierIr {
		irText := format.DocText(fresh.Program)
		irFile := source.NewFile(cfg.SourceFilename, irText)
		reparsed := parser.Parse(irFile, source.DefaultSourceType(), opts)
		r.result.PrettierIrText = format.Format(reparsed.Program)
	}
}
