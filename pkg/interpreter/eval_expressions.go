package interpreter

import (
	"fmt"
	"io"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
)

func (i *Interpreter) VisitIntegerLiteral(lit *ast.IntegerLiteral) (runtime.Value, error) {
	return runtime.IntegerValue{Val: lit.Value}, nil
}

func (i *Interpreter) VisitStringLiteral(lit *ast.StringLiteral) (runtime.Value, error) {
	return runtime.StringValue{Val: lit.Value}, nil
}

func (i *Interpreter) VisitBooleanLiteral(lit *ast.BooleanLiteral) (runtime.Value, error) {
	return runtime.BoolValue{Val: lit.Value}, nil
}

func (i *Interpreter) VisitIdentifier(id *ast.Identifier) (runtime.Value, error) {
	val, ok := i.scopes.Find(i.current, id.Name)
	if !ok {
		return nil, newRuntimeError(id, "%s is not defined", id.Name)
	}
	return val, nil
}

func (i *Interpreter) VisitLetExpression(expr *ast.LetExpression) (runtime.Value, error) {
	val, err := i.evaluateExpression(expr.Init)
	if err != nil {
		return nil, err
	}
	if i.scopes.HasLocal(i.current, expr.Name) {
		return nil, newRuntimeError(expr, "variable %s is already defined", expr.Name)
	}
	i.scopes.Register(i.current, expr.Name, val)
	return val, nil
}

func (i *Interpreter) VisitAssignmentExpression(expr *ast.AssignmentExpression) (runtime.Value, error) {
	val, err := i.evaluateExpression(expr.Value)
	if err != nil {
		return nil, err
	}
	owner, ok := i.scopes.FindOwningScope(i.current, expr.Name)
	if !ok {
		return nil, newRuntimeError(expr, "%s is not defined", expr.Name)
	}
	i.scopes.Register(owner, expr.Name, val)
	return val, nil
}

func (i *Interpreter) VisitPrintlnExpression(expr *ast.PrintlnExpression) (runtime.Value, error) {
	return i.print(expr.Target, "\n")
}

func (i *Interpreter) VisitPrintExpression(expr *ast.PrintExpression) (runtime.Value, error) {
	return i.print(expr.Target, "")
}

func (i *Interpreter) print(target ast.Expression, terminator string) (runtime.Value, error) {
	val, err := i.evaluateExpression(target)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(i.stdout, runtime.Render(val)+terminator); err != nil {
		return nil, fmt.Errorf("interpreter: write output: %w", err)
	}
	return val, nil
}
