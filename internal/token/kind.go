package token

// Kind enumerates lexical token categories.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	Number
	String
	Template

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	DotDotDot
	Arrow
	Colon
	Question

	// Operators
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAmpAssign
	PipePipeAssign
	QuestionQuestionAssign
	EqEq
	NotEq
	EqEqEq
	NotEqEq
	Lt
	Gt
	Le
	Ge
	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	PlusPlus
	MinusMinus
	AmpAmp
	PipePipe
	QuestionQuestion
	Amp
	Pipe
	Caret
	Tilde
	Bang
	LtLt
	GtGt
	GtGtGt

	// Keywords
	KwVar
	KwLet
	KwConst
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwIn
	KwOf
	KwBreak
	KwContinue
	KwNew
	KwDelete
	KwTypeof
	KwVoid
	KwInstanceof
	KwThis
	KwNull
	KwTrue
	KwFalse
	KwImport
	KwExport
	KwFrom
	KwAs
	KwDefault
	KwDebugger
	KwThrow
	KwTry
	KwCatch
	KwFinally
	KwType
	KwDeclare
)

var kindNames = map[Kind]string{
	Invalid:                "invalid",
	EOF:                    "eof",
	Ident:                  "identifier",
	Number:                 "number",
	String:                 "string",
	Template:               "template",
	LParen:                 "'('",
	RParen:                 "')'",
	LBrace:                 "'{'",
	RBrace:                 "'}'",
	LBracket:               "'['",
	RBracket:               "']'",
	Semicolon:              "';'",
	Comma:                  "','",
	Dot:                    "'.'",
	DotDotDot:              "'...'",
	Arrow:                  "'=>'",
	Colon:                  "':'",
	Question:               "'?'",
	Assign:                 "'='",
	PlusAssign:             "'+='",
	MinusAssign:            "'-='",
	StarAssign:             "'*='",
	SlashAssign:            "'/='",
	PercentAssign:          "'%='",
	AmpAmpAssign:           "'&&='",
	PipePipeAssign:         "'||='",
	QuestionQuestionAssign: "'??='",
	EqEq:                   "'=='",
	NotEq:                  "'!='",
	EqEqEq:                 "'==='",
	NotEqEq:                "'!=='",
	Lt:                     "'<'",
	Gt:                     "'>'",
	Le:                     "'<='",
	Ge:                     "'>='",
	Plus:                   "'+'",
	Minus:                  "'-'",
	Star:                   "'*'",
	StarStar:               "'**'",
	Slash:                  "'/'",
	Percent:                "'%'",
	PlusPlus:               "'++'",
	MinusMinus:             "'--'",
	AmpAmp:                 "'&&'",
	PipePipe:               "'||'",
	QuestionQuestion:       "'??'",
	Amp:                    "'&'",
	Pipe:                   "'|'",
	Caret:                  "'^'",
	Tilde:                  "'~'",
	Bang:                   "'!'",
	LtLt:                   "'<<'",
	GtGt:                   "'>>'",
	GtGtGt:                 "'>>>'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if kw, ok := keywordNames[k]; ok {
		return "'" + kw + "'"
	}
	return "unknown"
}

// IsKeyword reports whether the kind is a reserved or contextual keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwDeclare
}

// IsAssign reports whether the kind is an assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= QuestionQuestionAssign
}
