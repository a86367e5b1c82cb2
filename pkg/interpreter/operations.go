package interpreter

import (
	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
)

func (i *Interpreter) VisitBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	switch expr.Operator {
	case ast.OperatorLogicalAnd, ast.OperatorLogicalOr:
		return i.evaluateLogical(expr)
	}
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OperatorAdd:
		if isString(left) || isString(right) {
			return runtime.StringValue{Val: runtime.Render(left) + runtime.Render(right)}, nil
		}
		return applyArithmetic(expr, left, right)
	case ast.OperatorSubtract, ast.OperatorMultiply, ast.OperatorDivide:
		return applyArithmetic(expr, left, right)
	case ast.OperatorLessThan, ast.OperatorLessEqual, ast.OperatorGreaterThan, ast.OperatorGreaterEqual:
		return applyComparison(expr, left, right)
	case ast.OperatorEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.OperatorNotEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	default:
		return nil, newRuntimeError(expr, "unsupported binary operator %q", expr.Operator)
	}
}

// evaluateLogical skips the right operand when the left one decides the result.
func (i *Interpreter) evaluateLogical(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateBoolOperand(expr, expr.Left)
	if err != nil {
		return nil, err
	}
	if expr.Operator == ast.OperatorLogicalAnd && !left {
		return runtime.BoolValue{Val: false}, nil
	}
	if expr.Operator == ast.OperatorLogicalOr && left {
		return runtime.BoolValue{Val: true}, nil
	}
	right, err := i.evaluateBoolOperand(expr, expr.Right)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: right}, nil
}

func (i *Interpreter) evaluateBoolOperand(expr *ast.BinaryExpression, operand ast.Expression) (bool, error) {
	val, err := i.evaluateExpression(operand)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return false, newRuntimeError(expr, "'%s' requires Boolean operands, got %s", expr.Operator, val.Kind())
	}
	return b.Val, nil
}

// applyArithmetic uses two's complement int64 arithmetic, so overflow wraps and
// MinInt64 / -1 yields MinInt64.
func applyArithmetic(expr *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	l, r, err := integerOperands(expr, left, right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OperatorAdd:
		return runtime.IntegerValue{Val: l + r}, nil
	case ast.OperatorSubtract:
		return runtime.IntegerValue{Val: l - r}, nil
	case ast.OperatorMultiply:
		return runtime.IntegerValue{Val: l * r}, nil
	case ast.OperatorDivide:
		if r == 0 {
			return nil, newRuntimeError(expr, "division by zero")
		}
		return runtime.IntegerValue{Val: l / r}, nil
	}
	return nil, newRuntimeError(expr, "unsupported arithmetic operator %q", expr.Operator)
}

func applyComparison(expr *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	l, r, err := integerOperands(expr, left, right)
	if err != nil {
		return nil, err
	}
	var result bool
	switch expr.Operator {
	case ast.OperatorLessThan:
		result = l < r
	case ast.OperatorLessEqual:
		result = l <= r
	case ast.OperatorGreaterThan:
		result = l > r
	case ast.OperatorGreaterEqual:
		result = l >= r
	}
	return runtime.BoolValue{Val: result}, nil
}

func integerOperands(expr *ast.BinaryExpression, left, right runtime.Value) (int64, int64, error) {
	l, lok := left.(runtime.IntegerValue)
	r, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return 0, 0, newRuntimeError(expr, "'%s' requires Int operands, got (%s, %s)", expr.Operator, left.Kind(), right.Kind())
	}
	return l.Val, r.Val, nil
}

func isString(v runtime.Value) bool {
	_, ok := v.(runtime.StringValue)
	return ok
}
