package interpreter

import (
	"log/slog"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
)

// VisitDefFunction has no effect in place; definitions are collected before
// evaluation starts. The result is the zero value of the declared return type,
// which is the type the checker assigns to the definition.
func (i *Interpreter) VisitDefFunction(def *ast.DefFunction) (runtime.Value, error) {
	return zeroValue(def, def.ReturnType)
}

func zeroValue(node ast.Node, typ ast.Type) (runtime.Value, error) {
	switch typ {
	case ast.TypeInt:
		return runtime.IntegerValue{Val: 0}, nil
	case ast.TypeString:
		return runtime.StringValue{Val: ""}, nil
	case ast.TypeBoolean:
		return runtime.BoolValue{Val: false}, nil
	default:
		return nil, newRuntimeError(node, "no zero value for type %s", typ)
	}
}

func (i *Interpreter) VisitFunctionCall(call *ast.FunctionCall) (runtime.Value, error) {
	def, ok := i.functions.Lookup(call.Name)
	if !ok || def == nil {
		return nil, newRuntimeError(call, "function %s is not defined", call.Name)
	}
	args := make([]runtime.Value, len(call.Arguments))
	for idx, arg := range call.Arguments {
		val, err := i.evaluateExpression(arg)
		if err != nil {
			return nil, err
		}
		args[idx] = val
	}
	if len(args) != len(def.Params) {
		return nil, newRuntimeError(call, "function %s expects %d arguments, got %d", call.Name, len(def.Params), len(args))
	}
	return i.invoke(call, def, args)
}

// invoke runs def's body in a fresh scope whose parent is the global scope, so
// a callee never sees its caller's locals.
func (i *Interpreter) invoke(call *ast.FunctionCall, def *ast.DefFunction, args []runtime.Value) (runtime.Value, error) {
	if i.callDepth >= i.maxCallDepth {
		return nil, newRuntimeError(call, "maximum call depth %d exceeded calling %s", i.maxCallDepth, call.Name)
	}
	i.callDepth++
	defer func() { i.callDepth-- }()
	i.logger.Debug("call function", slog.String("name", def.Name), slog.Int("depth", i.callDepth))

	defer i.enterScope(i.global)()
	for idx, param := range def.Params {
		if param == nil {
			return nil, newRuntimeError(def, "function %s has a missing parameter", def.Name)
		}
		if i.scopes.HasLocal(i.current, param.Name) {
			return nil, newRuntimeError(param, "variable %s is already defined", param.Name)
		}
		i.scopes.Register(i.current, param.Name, args[idx])
	}
	return i.evaluateExpression(def.Body)
}
