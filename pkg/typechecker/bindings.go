package typechecker

import "nub/interpreter-go/pkg/ast"

func (c *Checker) VisitIdentifier(expr *ast.Identifier) (ast.Type, error) {
	typ, ok := c.scopes.Find(c.current, expr.Name)
	if !ok {
		return 0, newTypeError(expr, "%s is not defined", expr.Name)
	}
	return typ, nil
}

// VisitLetExpression binds the init type in the current scope, replacing any
// earlier binding. Redefinition is reported by the evaluator.
func (c *Checker) VisitLetExpression(expr *ast.LetExpression) (ast.Type, error) {
	typ, err := c.checkExpression(expr.Init)
	if err != nil {
		return 0, err
	}
	c.scopes.Register(c.current, expr.Name, typ)
	return typ, nil
}

func (c *Checker) VisitAssignmentExpression(expr *ast.AssignmentExpression) (ast.Type, error) {
	typ, err := c.checkExpression(expr.Value)
	if err != nil {
		return 0, err
	}
	declared, ok := c.scopes.Find(c.current, expr.Name)
	if !ok {
		return 0, newTypeError(expr, "%s is not defined", expr.Name)
	}
	if declared != typ {
		return 0, newTypeError(expr, "incompatible type: %s should be %s, but %s", expr.Name, declared, typ)
	}
	return typ, nil
}
