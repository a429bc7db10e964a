package source

import (
	"path/filepath"
	"strings"
)

// Language distinguishes the two dialect families we accept.
type Language uint8

const (
	LangJavaScript Language = iota
	LangTypeScript
)

func (l Language) String() string {
	if l == LangTypeScript {
		return "typescript"
	}
	return "javascript"
}

// ModuleKind records whether the unit is parsed with script or module goals.
type ModuleKind uint8

const (
	KindModule ModuleKind = iota
	KindScript
)

func (k ModuleKind) String() string {
	if k == KindScript {
		return "script"
	}
	return "module"
}

// SourceType classifies one source unit: dialect family, JSX-ness, parse goal
// and whether the file is a pure type-declaration file.
type SourceType struct {
	Lang       Language
	JSX        bool
	Kind       ModuleKind
	Definition bool
}

// DefaultSourceType matches the fallback used when a path gives no signal:
// a TSX module.
func DefaultSourceType() SourceType {
	return SourceType{Lang: LangTypeScript, JSX: true, Kind: KindModule}
}

// SourceTypeFromPath infers a source type from the file extension. Unknown
// extensions fall back to the default.
func SourceTypeFromPath(path string) SourceType {
	base := strings.ToLower(filepath.Base(path))
	definition := strings.HasSuffix(base, ".d.ts") ||
		strings.HasSuffix(base, ".d.mts") ||
		strings.HasSuffix(base, ".d.cts")

	st := DefaultSourceType()
	switch {
	case definition:
		st = SourceType{Lang: LangTypeScript, Kind: KindModule, Definition: true}
	case strings.HasSuffix(base, ".ts"):
		st = SourceType{Lang: LangTypeScript, Kind: KindModule}
	case strings.HasSuffix(base, ".mts"):
		st = SourceType{Lang: LangTypeScript, Kind: KindModule}
	case strings.HasSuffix(base, ".cts"):
		st = SourceType{Lang: LangTypeScript, Kind: KindScript}
	case strings.HasSuffix(base, ".tsx"):
		st = SourceType{Lang: LangTypeScript, JSX: true, Kind: KindModule}
	case strings.HasSuffix(base, ".js"):
		st = SourceType{Lang: LangJavaScript, JSX: true, Kind: KindModule}
	case strings.HasSuffix(base, ".jsx"):
		st = SourceType{Lang: LangJavaScript, JSX: true, Kind: KindModule}
	case strings.HasSuffix(base, ".mjs"):
		st = SourceType{Lang: LangJavaScript, JSX: true, Kind: KindModule}
	case strings.HasSuffix(base, ".cjs"):
		st = SourceType{Lang: LangJavaScript, JSX: true, Kind: KindScript}
	}
	return st
}

// WithScript forces the script parse goal.
func (t SourceType) WithScript() SourceType {
	t.Kind = KindScript
	return t
}

// WithModule forces the module parse goal.
func (t SourceType) WithModule() SourceType {
	t.Kind = KindModule
	return t
}

func (t SourceType) IsTypeScript() bool { return t.Lang == LangTypeScript }

// IsDefinition reports whether the unit is a pure type-declaration file
// (.d.ts and friends): such files carry no runtime bindings.
func (t SourceType) IsDefinition() bool { return t.Definition }
