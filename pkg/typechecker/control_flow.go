package typechecker

import "nub/interpreter-go/pkg/ast"

func (c *Checker) VisitIfExpression(expr *ast.IfExpression) (ast.Type, error) {
	if err := c.checkCondition(expr.Condition); err != nil {
		return 0, err
	}
	thenType, err := c.checkExpression(expr.Then)
	if err != nil {
		return 0, err
	}
	elseType, err := c.checkExpression(expr.Else)
	if err != nil {
		return 0, err
	}
	if thenType != elseType {
		return 0, newTypeError(expr, "incompatible type: then: %s, else: %s", thenType, elseType)
	}
	return thenType, nil
}

// VisitWhileExpression checks the body for errors only; a loop is always Int,
// the type of the value it yields when the body never runs.
func (c *Checker) VisitWhileExpression(expr *ast.WhileExpression) (ast.Type, error) {
	if err := c.checkCondition(expr.Condition); err != nil {
		return 0, err
	}
	for _, body := range expr.Body {
		if _, err := c.checkExpression(body); err != nil {
			return 0, err
		}
	}
	return ast.TypeInt, nil
}

func (c *Checker) VisitBlockExpression(expr *ast.BlockExpression) (ast.Type, error) {
	if expr == nil {
		return 0, &ast.UnknownNodeError{}
	}
	last := ast.TypeInt
	for _, inner := range expr.Expressions {
		typ, err := c.checkExpression(inner)
		if err != nil {
			return 0, err
		}
		last = typ
	}
	return last, nil
}

func (c *Checker) VisitPrintlnExpression(expr *ast.PrintlnExpression) (ast.Type, error) {
	return c.checkExpression(expr.Target)
}

func (c *Checker) VisitPrintExpression(expr *ast.PrintExpression) (ast.Type, error) {
	return c.checkExpression(expr.Target)
}

func (c *Checker) checkCondition(cond ast.Expression) error {
	typ, err := c.checkExpression(cond)
	if err != nil {
		return err
	}
	if typ != ast.TypeBoolean {
		return newTypeError(cond, "expected: %s, actual: %s", ast.TypeBoolean, typ)
	}
	return nil
}
