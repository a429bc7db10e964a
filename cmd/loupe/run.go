package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"loupe/internal/pipeline"
)

var runFlags struct {
	filename                   string
	sourceType                 string
	allowReturnOutsideFunction bool
	preserveParens             bool
	allowV8Intrinsics          bool
	syntax                     bool
	lint                       bool
	scopes                     bool
	symbols                    bool
	transform                  bool
	target                     string
	isolatedDeclarations       bool
	sourcemap                  bool
	mangle                     bool
	compress                   bool
	minifyWhitespace           bool
	dropConsole                bool
	dropDebugger               bool
	cfgVerbose                 bool
	prettier                   bool
	prettierIr                 bool
	output                     string
	view                       string
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.filename, "filename", "", "logical filename for source-type inference (default from the argument, else test.tsx)")
	f.StringVar(&runFlags.sourceType, "source-type", "", "override module kind (script|module)")
	f.BoolVar(&runFlags.allowReturnOutsideFunction, "allow-return-outside-function", false, "permit top-level return")
	f.BoolVar(&runFlags.preserveParens, "preserve-parens", true, "keep parenthesized expressions in the tree")
	f.BoolVar(&runFlags.allowV8Intrinsics, "allow-v8-intrinsics", false, "parse %Intrinsic(...) calls")
	f.BoolVar(&runFlags.syntax, "syntax", false, "record syntax and semantic diagnostics")
	f.BoolVar(&runFlags.lint, "lint", false, "run lint rules")
	f.BoolVar(&runFlags.scopes, "scopes", false, "render the scope tree")
	f.BoolVar(&runFlags.symbols, "symbols", false, "render the symbol table")
	f.BoolVar(&runFlags.transform, "transform", false, "run the transform stage")
	f.StringVar(&runFlags.target, "target", "", "transform target (es5..es2024, esnext)")
	f.BoolVar(&runFlags.isolatedDeclarations, "isolated-declarations", false, "emit declaration output instead of transforming")
	f.BoolVar(&runFlags.sourcemap, "sourcemap", false, "emit a source map with generated code")
	f.BoolVar(&runFlags.mangle, "mangle", false, "shorten symbol names")
	f.BoolVar(&runFlags.compress, "compress", false, "enable compression passes")
	f.BoolVar(&runFlags.minifyWhitespace, "minify-whitespace", false, "drop formatting whitespace in generated code")
	f.BoolVar(&runFlags.dropConsole, "drop-console", false, "compression: remove console.* statement calls")
	f.BoolVar(&runFlags.dropDebugger, "drop-debugger", false, "compression: remove debugger statements")
	f.BoolVar(&runFlags.cfgVerbose, "cfg-verbose", false, "annotate CFG nodes with spans")
	f.BoolVar(&runFlags.prettier, "prettier", false, "produce formatted text")
	f.BoolVar(&runFlags.prettierIr, "prettier-ir", false, "produce the formatter's document IR")
	f.StringVar(&runFlags.output, "output", "json", "result encoding (json|msgpack)")
	f.StringVar(&runFlags.view, "view", "", "print one view instead of the full result (ast|ir|cfg|scopes|symbols|codegen|sourcemap|formatted|prettier-ir)")
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the inspection pipeline over one source unit",
	Long:  `Run parses the file (or standard input), drives the configured analysis and transformation stages, and prints the result bundle.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, path, err := readSource(args)
	if err != nil {
		return err
	}
	if path != "" {
		cfg.SourceFilename = path
	}
	applyRunFlags(cmd, &cfg)

	res, err := pipeline.NewRunner().Run(text, cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if runFlags.view != "" {
		return printView(out, res, runFlags.view)
	}
	switch runFlags.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "msgpack":
		data, err := msgpack.Marshal(res)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output %q (must be json or msgpack)", runFlags.output)
	}
}

// applyRunFlags overlays explicitly set flags on the config, leaving file
// and default values in place otherwise.
func applyRunFlags(cmd *cobra.Command, cfg *pipeline.Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("filename", func() { cfg.SourceFilename = runFlags.filename })
	set("source-type", func() { cfg.SourceType = runFlags.sourceType })
	set("allow-return-outside-function", func() { cfg.AllowReturnOutsideFunction = runFlags.allowReturnOutsideFunction })
	set("preserve-parens", func() { cfg.PreserveParens = runFlags.preserveParens })
	set("allow-v8-intrinsics", func() { cfg.AllowV8Intrinsics = runFlags.allowV8Intrinsics })
	set("syntax", func() { cfg.RunSyntaxDiagnostics = runFlags.syntax })
	set("lint", func() { cfg.RunLint = runFlags.lint })
	set("scopes", func() { cfg.RunScopeView = runFlags.scopes })
	set("symbols", func() { cfg.RunSymbolView = runFlags.symbols })
	set("transform", func() { cfg.RunTransform = runFlags.transform })
	set("target", func() { cfg.TransformTarget = runFlags.target })
	set("isolated-declarations", func() { cfg.IsolatedDeclarations = runFlags.isolatedDeclarations })
	set("sourcemap", func() { cfg.EnableSourcemap = runFlags.sourcemap })
	set("mangle", func() { cfg.MinifyMangle = runFlags.mangle })
	set("compress", func() { cfg.MinifyCompress = runFlags.compress })
	set("minify-whitespace", func() { cfg.MinifyWhitespace = runFlags.minifyWhitespace })
	set("drop-console", func() { cfg.DropConsole = runFlags.dropConsole })
	set("drop-debugger", func() { cfg.DropDebugger = runFlags.dropDebugger })
	set("cfg-verbose", func() { cfg.CfgVerbose = runFlags.cfgVerbose })
	set("prettier", func() { cfg.PrettierFormat = runFlags.prettier })
	set("prettier-ir", func() { cfg.PrettierIr = runFlags.prettierIr })
}

// readSource returns the text and, for file arguments, the path to use as
// the logical filename. "-" or no argument reads standard input.
func readSource(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}

func printView(out io.Writer, res *pipeline.Result, view string) error {
	var text string
	switch view {
	case "ast":
		text = res.AstJSON
	case "ir":
		text = res.IR
	case "cfg":
		text = res.ControlFlowGraphDot
	case "scopes":
		text = res.ScopeText
	case "symbols":
		text = res.SymbolsJSON
	case "codegen":
		text = res.CodegenText
	case "sourcemap":
		text = res.CodegenSourcemapJSON
	case "formatted":
		text = res.FormattedText
	case "prettier-ir":
		text = res.PrettierIrText
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	fmt.Fprintln(out, text)
	return nil
}
