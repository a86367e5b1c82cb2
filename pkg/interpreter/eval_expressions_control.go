package interpreter

import (
	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
)

func (i *Interpreter) VisitIfExpression(expr *ast.IfExpression) (runtime.Value, error) {
	cond, err := i.evaluateCondition(expr, expr.Condition)
	if err != nil {
		return nil, err
	}
	if cond {
		return i.evaluateExpression(expr.Then)
	}
	return i.evaluateExpression(expr.Else)
}

func (i *Interpreter) VisitWhileExpression(expr *ast.WhileExpression) (runtime.Value, error) {
	result := runtime.DefaultValue
	for {
		cond, err := i.evaluateCondition(expr, expr.Condition)
		if err != nil {
			return nil, err
		}
		if !cond {
			return result, nil
		}
		for _, body := range expr.Body {
			result, err = i.evaluateExpression(body)
			if err != nil {
				return nil, err
			}
		}
	}
}

func (i *Interpreter) VisitBlockExpression(block *ast.BlockExpression) (runtime.Value, error) {
	if block == nil {
		return nil, &ast.UnknownNodeError{}
	}
	result := runtime.DefaultValue
	for _, expr := range block.Expressions {
		val, err := i.evaluateExpression(expr)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateCondition(owner ast.Node, cond ast.Expression) (bool, error) {
	val, err := i.evaluateExpression(cond)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return false, newRuntimeError(owner, "condition must be Boolean, got %s", val.Kind())
	}
	return b.Val, nil
}
