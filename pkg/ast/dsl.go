package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

// Operator helpers.

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Add(left, right Expression) *BinaryExpression { return Bin(OperatorAdd, left, right) }
func Sub(left, right Expression) *BinaryExpression { return Bin(OperatorSubtract, left, right) }
func Mul(left, right Expression) *BinaryExpression { return Bin(OperatorMultiply, left, right) }
func Div(left, right Expression) *BinaryExpression { return Bin(OperatorDivide, left, right) }
func Lt(left, right Expression) *BinaryExpression  { return Bin(OperatorLessThan, left, right) }
func Lte(left, right Expression) *BinaryExpression { return Bin(OperatorLessEqual, left, right) }
func Gt(left, right Expression) *BinaryExpression  { return Bin(OperatorGreaterThan, left, right) }
func Gte(left, right Expression) *BinaryExpression { return Bin(OperatorGreaterEqual, left, right) }
func Eq(left, right Expression) *BinaryExpression  { return Bin(OperatorEqual, left, right) }
func Neq(left, right Expression) *BinaryExpression { return Bin(OperatorNotEqual, left, right) }
func And(left, right Expression) *BinaryExpression { return Bin(OperatorLogicalAnd, left, right) }
func Or(left, right Expression) *BinaryExpression  { return Bin(OperatorLogicalOr, left, right) }

// Binding helpers.

func Let(name string, init Expression) *LetExpression {
	return NewLetExpression(name, init)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(name, value)
}

// Control flow helpers.

func Block(expressions ...Expression) *BlockExpression {
	return NewBlockExpression(expressions)
}

// If wraps each branch expression in a single-element block.
func If(condition, then, els Expression) *IfExpression {
	return NewIfExpression(condition, Block(then), Block(els))
}

func IfBlocks(condition Expression, then, els *BlockExpression) *IfExpression {
	return NewIfExpression(condition, then, els)
}

func While(condition Expression, body ...Expression) *WhileExpression {
	return NewWhileExpression(condition, body)
}

func Println(target Expression) *PrintlnExpression {
	return NewPrintlnExpression(target)
}

func Print(target Expression) *PrintExpression {
	return NewPrintExpression(target)
}

// Function helpers.

func Param(name string, paramType Type) *FunctionParameter {
	return NewFunctionParameter(name, paramType)
}

func Def(name string, params []*FunctionParameter, returnType Type, body ...Expression) *DefFunction {
	return NewDefFunction(name, params, returnType, Block(body...))
}

func Call(name string, args ...Expression) *FunctionCall {
	return NewFunctionCall(name, args)
}
