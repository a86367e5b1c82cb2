package typechecker

import (
	"log/slog"
	"slices"

	"nub/interpreter-go/pkg/ast"
)

// VisitDefFunction checks the body in a scope holding only the parameters and
// the root bindings, which is what a call sees at runtime.
func (c *Checker) VisitDefFunction(def *ast.DefFunction) (ast.Type, error) {
	if !def.ReturnType.Valid() {
		return 0, newTypeError(def, "function %s has an invalid return type", def.Name)
	}
	c.logger.Debug("check function", slog.String("name", def.Name), slog.Int("params", len(def.Params)))
	defer c.enterScope(c.scopes.Root())()
	for _, param := range def.Params {
		if param == nil {
			return 0, newTypeError(def, "function %s has a missing parameter", def.Name)
		}
		if !param.ParamType.Valid() {
			return 0, newTypeError(param, "parameter %s of %s has an invalid type", param.Name, def.Name)
		}
		if c.scopes.HasLocal(c.current, param.Name) {
			return 0, newTypeError(param, "parameter %s is already defined in %s", param.Name, def.Name)
		}
		c.scopes.Register(c.current, param.Name, param.ParamType)
	}
	bodyType, err := c.checkExpression(def.Body)
	if err != nil {
		return 0, err
	}
	if bodyType != def.ReturnType {
		return 0, newTypeError(def, "incompatible type: %s should return %s, but body is %s", def.Name, def.ReturnType, bodyType)
	}
	return def.ReturnType, nil
}

func (c *Checker) VisitFunctionCall(call *ast.FunctionCall) (ast.Type, error) {
	actual := make([]ast.Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		typ, err := c.checkExpression(arg)
		if err != nil {
			return 0, err
		}
		actual[i] = typ
	}
	def, ok := c.functions.Lookup(call.Name)
	if !ok || def == nil {
		return 0, newTypeError(call, "function %s doesn't exist", call.Name)
	}
	expected := def.ParamTypes()
	if !slices.Equal(expected, actual) {
		return 0, newTypeError(call, "in function invocation %s(), expected: %s, actual: %s", call.Name, typeList(expected), typeList(actual))
	}
	return def.ReturnType, nil
}
