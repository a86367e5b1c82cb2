package ast

import "fmt"

// Visitor has one method per expression variant. Every pass over the tree
// implements it, so adding a variant here breaks each pass until it handles it.
type Visitor[T any] interface {
	VisitIntegerLiteral(*IntegerLiteral) (T, error)
	VisitStringLiteral(*StringLiteral) (T, error)
	VisitBooleanLiteral(*BooleanLiteral) (T, error)
	VisitIdentifier(*Identifier) (T, error)
	VisitBinaryExpression(*BinaryExpression) (T, error)
	VisitLetExpression(*LetExpression) (T, error)
	VisitAssignmentExpression(*AssignmentExpression) (T, error)
	VisitIfExpression(*IfExpression) (T, error)
	VisitWhileExpression(*WhileExpression) (T, error)
	VisitPrintlnExpression(*PrintlnExpression) (T, error)
	VisitPrintExpression(*PrintExpression) (T, error)
	VisitBlockExpression(*BlockExpression) (T, error)
	VisitDefFunction(*DefFunction) (T, error)
	VisitFunctionCall(*FunctionCall) (T, error)
}

// UnknownNodeError reports a nil expression or one Accept does not recognise.
type UnknownNodeError struct {
	Node Expression
}

func (e *UnknownNodeError) Error() string {
	if e.Node == nil {
		return "ast: missing expression"
	}
	return fmt.Sprintf("ast: unsupported expression %T", e.Node)
}

// Accept dispatches expr to the matching Visitor method.
func Accept[T any](v Visitor[T], expr Expression) (T, error) {
	switch n := expr.(type) {
	case *IntegerLiteral:
		return v.VisitIntegerLiteral(n)
	case *StringLiteral:
		return v.VisitStringLiteral(n)
	case *BooleanLiteral:
		return v.VisitBooleanLiteral(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *BinaryExpression:
		return v.VisitBinaryExpression(n)
	case *LetExpression:
		return v.VisitLetExpression(n)
	case *AssignmentExpression:
		return v.VisitAssignmentExpression(n)
	case *IfExpression:
		return v.VisitIfExpression(n)
	case *WhileExpression:
		return v.VisitWhileExpression(n)
	case *PrintlnExpression:
		return v.VisitPrintlnExpression(n)
	case *PrintExpression:
		return v.VisitPrintExpression(n)
	case *BlockExpression:
		return v.VisitBlockExpression(n)
	case *DefFunction:
		return v.VisitDefFunction(n)
	case *FunctionCall:
		return v.VisitFunctionCall(n)
	}
	var zero T
	return zero, &UnknownNodeError{Node: expr}
}
