package typechecker

import (
	"testing"

	"nub/interpreter-go/pkg/ast"
)

func addDef() *ast.DefFunction {
	return ast.Def("add",
		[]*ast.FunctionParameter{ast.Param("x", ast.TypeInt), ast.Param("y", ast.TypeInt)},
		ast.TypeInt,
		ast.Add(ast.ID("x"), ast.ID("y")),
	)
}

func TestCheckerAcceptsWellTypedCall(t *testing.T) {
	call := ast.Call("add", ast.Int(1), ast.Int(2))
	checker, err := checkProgram(t, addDef(), call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ, _ := checker.TypeOf(call); typ != ast.TypeInt {
		t.Fatalf("expected call to be Int, got %v", typ)
	}
}

func TestCheckerRejectsArgumentTypeMismatch(t *testing.T) {
	_, err := checkProgram(t, addDef(), ast.Call("add", ast.Int(1), ast.Str("2")))
	expectTypeError(t, err, "in function invocation add(), expected: [Int, Int], actual: [Int, String]")
}

func TestCheckerRejectsArityMismatch(t *testing.T) {
	_, err := checkProgram(t, addDef(), ast.Call("add", ast.Int(1)))
	expectTypeError(t, err, "expected: [Int, Int], actual: [Int]")
}

func TestCheckerRejectsUnknownFunction(t *testing.T) {
	_, err := checkProgram(t, ast.Call("nope"))
	expectTypeError(t, err, "function nope doesn't exist")
}

func TestCheckerCallBeforeDefinition(t *testing.T) {
	if _, err := checkProgram(t, ast.Call("add", ast.Int(1), ast.Int(2)), addDef()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckerRecursiveFunction(t *testing.T) {
	fact := ast.Def("fact", []*ast.FunctionParameter{ast.Param("n", ast.TypeInt)}, ast.TypeInt,
		ast.If(ast.Lt(ast.ID("n"), ast.Int(2)),
			ast.Int(1),
			ast.Mul(ast.ID("n"), ast.Call("fact", ast.Sub(ast.ID("n"), ast.Int(1))))),
	)
	if _, err := checkProgram(t, fact, ast.Call("fact", ast.Int(5))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckerRejectsReturnTypeMismatch(t *testing.T) {
	def := ast.Def("greet", nil, ast.TypeInt, ast.Str("hello"))
	_, err := checkProgram(t, def)
	typeErr := expectTypeError(t, err, "greet should return Int, but body is String")
	if typeErr.Node != def {
		t.Fatalf("expected error node to be the definition")
	}
}

func TestCheckerRejectsDuplicateParameters(t *testing.T) {
	def := ast.Def("f", []*ast.FunctionParameter{ast.Param("a", ast.TypeInt), ast.Param("a", ast.TypeInt)}, ast.TypeInt, ast.ID("a"))
	_, err := checkProgram(t, def)
	expectTypeError(t, err, "parameter a is already defined in f")
}

func TestCheckerFunctionScopeIsPoppedOnError(t *testing.T) {
	checker := New()
	bad := ast.Def("f", []*ast.FunctionParameter{ast.Param("p", ast.TypeInt)}, ast.TypeInt, ast.ID("missing"))
	program := ast.Block(bad)
	if _, err := checker.Check(program, ast.CollectFunctions(program)); err == nil {
		t.Fatalf("expected error")
	}
	if checker.scopes.Depth() != 1 || checker.current != checker.scopes.Root() {
		t.Fatalf("expected only the root scope after failure, depth %d", checker.scopes.Depth())
	}
}

func TestCheckerParametersDoNotLeak(t *testing.T) {
	_, err := checkProgram(t,
		ast.Def("id", []*ast.FunctionParameter{ast.Param("v", ast.TypeInt)}, ast.TypeInt, ast.ID("v")),
		ast.ID("v"),
	)
	expectTypeError(t, err, "v is not defined")
}
