package ast

// StmtName returns the ESTree-style node name for a statement payload.
func StmtName(s S) string {
	switch d := s.(type) {
	case *SVar:
		return "VariableDeclaration"
	case *SFunction:
		return "FunctionDeclaration"
	case *SReturn:
		return "ReturnStatement"
	case *SIf:
		return "IfStatement"
	case *SWhile:
		return "WhileStatement"
	case *SDoWhile:
		return "DoWhileStatement"
	case *SFor:
		return "ForStatement"
	case *SForIn:
		if d.Of {
			return "ForOfStatement"
		}
		return "ForInStatement"
	case *SBlock:
		return "BlockStatement"
	case *SEmpty:
		return "EmptyStatement"
	case *SExpr:
		return "ExpressionStatement"
	case *SDebugger:
		return "DebuggerStatement"
	case *SThrow:
		return "ThrowStatement"
	case *STry:
		return "TryStatement"
	case *SBreak:
		return "BreakStatement"
	case *SContinue:
		return "ContinueStatement"
	case *SImport:
		return "ImportDeclaration"
	case *SExportNamed:
		return "ExportNamedDeclaration"
	case *SExportDefault:
		return "ExportDefaultDeclaration"
	case *STypeAlias:
		return "TSTypeAliasDeclaration"
	}
	return "UnknownStatement"
}

// ExprName returns the ESTree-style node name for an expression payload.
func ExprName(e E) string {
	switch e.(type) {
	case *EIdent:
		return "Identifier"
	case *EThis:
		return "ThisExpression"
	case *ENumber, *EString, *EBool, *ENull:
		return "Literal"
	case *ETemplate:
		return "TemplateLiteral"
	case *EArray:
		return "ArrayExpression"
	case *EObject:
		return "ObjectExpression"
	case *EUnary:
		return "UnaryExpression"
	case *EUpdate:
		return "UpdateExpression"
	case *EBinary:
		return "BinaryExpression"
	case *ECond:
		return "ConditionalExpression"
	case *ECall:
		return "CallExpression"
	case *ENew:
		return "NewExpression"
	case *EDot, *EIndex:
		return "MemberExpression"
	case *EArrow:
		return "ArrowFunctionExpression"
	case *EFunction:
		return "FunctionExpression"
	case *EParen:
		return "ParenthesizedExpression"
	case *ESequence:
		return "SequenceExpression"
	case *ESpread:
		return "SpreadElement"
	case *EIntrinsic:
		return "V8IntrinsicExpression"
	}
	return "UnknownExpression"
}
