package typechecker

import "nub/interpreter-go/pkg/ast"

func (c *Checker) VisitBinaryExpression(expr *ast.BinaryExpression) (ast.Type, error) {
	left, err := c.checkExpression(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := c.checkExpression(expr.Right)
	if err != nil {
		return 0, err
	}
	switch expr.Operator {
	case ast.OperatorAdd, ast.OperatorSubtract, ast.OperatorMultiply, ast.OperatorDivide:
		if err := requireOperands(expr, left, right, ast.TypeInt); err != nil {
			return 0, err
		}
		return ast.TypeInt, nil
	case ast.OperatorLessThan, ast.OperatorLessEqual, ast.OperatorGreaterThan, ast.OperatorGreaterEqual:
		if err := requireOperands(expr, left, right, ast.TypeInt); err != nil {
			return 0, err
		}
		return ast.TypeBoolean, nil
	case ast.OperatorEqual, ast.OperatorNotEqual:
		if left != right {
			return 0, newTypeError(expr, "incompatible type: %s should be %s", right, left)
		}
		return ast.TypeBoolean, nil
	case ast.OperatorLogicalAnd, ast.OperatorLogicalOr:
		if err := requireOperands(expr, left, right, ast.TypeBoolean); err != nil {
			return 0, err
		}
		return ast.TypeBoolean, nil
	default:
		return 0, newTypeError(expr, "unsupported binary operator %q", expr.Operator)
	}
}

func requireOperands(expr *ast.BinaryExpression, left, right, want ast.Type) error {
	if left == want && right == want {
		return nil
	}
	return newTypeError(expr, "incompatible type: (lhs, rhs) should be (%s, %s), but (%s, %s)", want, want, left, right)
}
