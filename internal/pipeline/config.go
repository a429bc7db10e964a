package pipeline

// Config is the flat option record for one run. The zero value of every
// field except SourceFilename and PreserveParens is the documented default;
// DefaultConfig fills those two in.
type Config struct {
	// SourceFilename drives source-type inference and sourcemap naming only;
	// no file IO happens on it.
	SourceFilename string `json:"sourceFilename" toml:"source_filename"`
	// SourceType overrides the inferred module kind: "", "script" or
	// "module".
	SourceType string `json:"sourceType" toml:"source_type"`

	AllowReturnOutsideFunction bool `json:"allowReturnOutsideFunction" toml:"allow_return_outside_function"`
	PreserveParens             bool `json:"preserveParens" toml:"preserve_parens"`
	AllowV8Intrinsics          bool `json:"allowV8Intrinsics" toml:"allow_v8_intrinsics"`

	RunSyntaxDiagnostics bool `json:"runSyntaxDiagnostics" toml:"run_syntax_diagnostics"`
	RunLint              bool `json:"runLint" toml:"run_lint"`
	RunScopeView         bool `json:"runScopeView" toml:"run_scope_view"`
	RunSymbolView        bool `json:"runSymbolView" toml:"run_symbol_view"`

	RunTransform         bool   `json:"runTransform" toml:"run_transform"`
	TransformTarget      string `json:"transformTarget" toml:"transform_target"`
	IsolatedDeclarations bool   `json:"isolatedDeclarations" toml:"isolated_declarations"`
	EnableSourcemap      bool   `json:"enableSourcemap" toml:"enable_sourcemap"`

	MinifyMangle     bool `json:"minifyMangle" toml:"minify_mangle"`
	MinifyCompress   bool `json:"minifyCompress" toml:"minify_compress"`
	MinifyWhitespace bool `json:"minifyWhitespace" toml:"minify_whitespace"`
	DropConsole      bool `json:"dropConsole" toml:"drop_console"`
	DropDebugger     bool `json:"dropDebugger" toml:"drop_debugger"`

	CfgVerbose     bool `json:"cfgVerbose" toml:"cfg_verbose"`
	PrettierFormat bool `json:"prettierFormat" toml:"prettier_format"`
	PrettierIr     bool `json:"prettierIr" toml:"prettier_ir"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		SourceFilename: "test.tsx",
		PreserveParens: true,
	}
}
