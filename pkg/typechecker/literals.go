package typechecker

import "nub/interpreter-go/pkg/ast"

func (c *Checker) VisitIntegerLiteral(*ast.IntegerLiteral) (ast.Type, error) {
	return ast.TypeInt, nil
}

func (c *Checker) VisitStringLiteral(*ast.StringLiteral) (ast.Type, error) {
	return ast.TypeString, nil
}

func (c *Checker) VisitBooleanLiteral(*ast.BooleanLiteral) (ast.Type, error) {
	return ast.TypeBoolean, nil
}
