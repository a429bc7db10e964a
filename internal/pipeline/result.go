package pipeline

import (
	"loupe/internal/diag"
)

// CommentRecord is one extracted comment: kind, verbatim content text and
// the full span in external (UTF-16 code unit) coordinates.
type CommentRecord struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text" msgpack:"text"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// Result is the output bundle of one run. Every field is an independent
// copy; nothing aliases parser or analyzer state past the run.
type Result struct {
	AstJSON             string          `json:"astJson" msgpack:"astJson"`
	IR                  string          `json:"ir" msgpack:"ir"`
	ControlFlowGraphDot string          `json:"controlFlowGraphDot" msgpack:"controlFlowGraphDot"`
	SymbolsJSON         string          `json:"symbolsJson" msgpack:"symbolsJson"`
	ScopeText           string          `json:"scopeText" msgpack:"scopeText"`
	CodegenText         string          `json:"codegenText" msgpack:"codegenText"`
	// CodegenSourcemapJSON is empty when no sourcemap was requested or
	// produced.
	CodegenSourcemapJSON string          `json:"codegenSourcemapJson,omitempty" msgpack:"codegenSourcemapJson,omitempty"`
	FormattedText        string          `json:"formattedText" msgpack:"formattedText"`
	PrettierIrText       string          `json:"prettierIrText" msgpack:"prettierIrText"`
	Comments             []CommentRecord `json:"comments" msgpack:"comments"`
	Diagnostics          []diag.Flat     `json:"diagnostics" msgpack:"diagnostics"`
}

// reset restores the zero state so that no field carries over between runs.
func (r *Result) reset() {
	*r = Result{}
}
