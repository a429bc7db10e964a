package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"in":         KwIn,
	"of":         KwOf,
	"break":      KwBreak,
	"continue":   KwContinue,
	"new":        KwNew,
	"delete":     KwDelete,
	"typeof":     KwTypeof,
	"void":       KwVoid,
	"instanceof": KwInstanceof,
	"this":       KwThis,
	"null":       KwNull,
	"true":       KwTrue,
	"false":      KwFalse,
	"import":     KwImport,
	"export":     KwExport,
	"from":       KwFrom,
	"as":         KwAs,
	"default":    KwDefault,
	"debugger":   KwDebugger,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"type":       KwType,
	"declare":    KwDeclare,
}

var keywordNames = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for name, kind := range keywords {
		m[kind] = name
	}
	return m
}()

// LookupIdent maps an identifier lexeme to its keyword kind, or Ident.
func LookupIdent(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return Ident
}

// Contextual reports whether the keyword may also be used as a plain
// identifier ('of', 'from', 'as', 'type', 'declare' are not reserved words).
func Contextual(k Kind) bool {
	switch k {
	case KwOf, KwFrom, KwAs, KwType, KwDeclare:
		return true
	}
	return false
}
