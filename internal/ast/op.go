package ast

// BinOp enumerates binary operators, assignment operators included.
type BinOp uint8

const (
	BinInvalid BinOp = iota

	// Multiplicative and additive
	BinPow
	BinMul
	BinDiv
	BinRem
	BinAdd
	BinSub

	// Shift
	BinShl
	BinShr
	BinUShr

	// Relational
	BinLt
	BinGt
	BinLe
	BinGe
	BinIn
	BinInstanceof

	// Equality
	BinLooseEq
	BinLooseNe
	BinStrictEq
	BinStrictNe

	// Bitwise
	BinBitAnd
	BinBitXor
	BinBitOr

	// Logical
	BinLogicalAnd
	BinLogicalOr
	BinNullishCoalescing

	// Assignment
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinRemAssign
	BinLogicalAndAssign
	BinLogicalOrAssign
	BinNullishAssign
)

// Precedence levels, tighter binds higher.
type Prec uint8

const (
	PrecLowest Prec = iota
	PrecComma
	PrecAssign
	PrecConditional
	PrecNullishCoalescing
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecCompare
	PrecShift
	PrecAdd
	PrecMultiply
	PrecExponent
	PrecUnary
	PrecPostfix
	PrecCall
	PrecMember
)

type opInfo struct {
	Text       string
	Prec       Prec
	RightAssoc bool
	IsAssign   bool
}

var binOps = map[BinOp]opInfo{
	BinPow:               {"**", PrecExponent, true, false},
	BinMul:               {"*", PrecMultiply, false, false},
	BinDiv:               {"/", PrecMultiply, false, false},
	BinRem:               {"%", PrecMultiply, false, false},
	BinAdd:               {"+", PrecAdd, false, false},
	BinSub:               {"-", PrecAdd, false, false},
	BinShl:               {"<<", PrecShift, false, false},
	BinShr:               {">>", PrecShift, false, false},
	BinUShr:              {">>>", PrecShift, false, false},
	BinLt:                {"<", PrecCompare, false, false},
	BinGt:                {">", PrecCompare, false, false},
	BinLe:                {"<=", PrecCompare, false, false},
	BinGe:                {">=", PrecCompare, false, false},
	BinIn:                {"in", PrecCompare, false, false},
	BinInstanceof:        {"instanceof", PrecCompare, false, false},
	BinLooseEq:           {"==", PrecEquality, false, false},
	BinLooseNe:           {"!=", PrecEquality, false, false},
	BinStrictEq:          {"===", PrecEquality, false, false},
	BinStrictNe:          {"!==", PrecEquality, false, false},
	BinBitAnd:            {"&", PrecBitAnd, false, false},
	BinBitXor:            {"^", PrecBitXor, false, false},
	BinBitOr:             {"|", PrecBitOr, false, false},
	BinLogicalAnd:        {"&&", PrecLogicalAnd, false, false},
	BinLogicalOr:         {"||", PrecLogicalOr, false, false},
	BinNullishCoalescing: {"??", PrecNullishCoalescing, false, false},
	BinAssign:            {"=", PrecAssign, true, true},
	BinAddAssign:         {"+=", PrecAssign, true, true},
	BinSubAssign:         {"-=", PrecAssign, true, true},
	BinMulAssign:         {"*=", PrecAssign, true, true},
	BinDivAssign:         {"/=", PrecAssign, true, true},
	BinRemAssign:         {"%=", PrecAssign, true, true},
	BinLogicalAndAssign:  {"&&=", PrecAssign, true, true},
	BinLogicalOrAssign:   {"||=", PrecAssign, true, true},
	BinNullishAssign:     {"??=", PrecAssign, true, true},
}

func (op BinOp) String() string     { return binOps[op].Text }
func (op BinOp) Precedence() Prec   { return binOps[op].Prec }
func (op BinOp) RightAssoc() bool   { return binOps[op].RightAssoc }
func (op BinOp) IsAssign() bool     { return binOps[op].IsAssign }
func (op BinOp) IsKeywordOp() bool  { return op == BinIn || op == BinInstanceof }

// UnOp enumerates prefix unary operators.
type UnOp uint8

const (
	UnPlus UnOp = iota
	UnNeg
	UnNot
	UnBitNot
	UnTypeof
	UnVoid
	UnDelete
)

func (op UnOp) String() string {
	switch op {
	case UnPlus:
		return "+"
	case UnNeg:
		return "-"
	case UnNot:
		return "!"
	case UnBitNot:
		return "~"
	case UnTypeof:
		return "typeof"
	case UnVoid:
		return "void"
	case UnDelete:
		return "delete"
	}
	return "?"
}

// IsKeyword reports whether the operator needs a space before its operand.
func (op UnOp) IsKeyword() bool {
	return op == UnTypeof || op == UnVoid || op == UnDelete
}
