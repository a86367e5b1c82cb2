package interpreter

import (
	"bytes"
	"errors"
	"testing"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/typechecker"
)

func TestEvaluateProgramRunsPipeline(t *testing.T) {
	var out bytes.Buffer
	program := ast.Block(
		ast.Def("add", []*ast.FunctionParameter{ast.Param("x", ast.TypeInt), ast.Param("y", ast.TypeInt)}, ast.TypeInt,
			ast.Add(ast.ID("x"), ast.ID("y"))),
		ast.Println(ast.Call("add", ast.Int(1), ast.Int(2))),
	)
	val, err := NewWithConfig(Config{Stdout: &out}).EvaluateProgram(program, ProgramEvaluationOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectInteger(t, val, 3)
	if out.String() != "3\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEvaluateProgramStopsOnTypeError(t *testing.T) {
	var out bytes.Buffer
	program := ast.Block(
		ast.Println(ast.Str("side effect")),
		ast.Def("add", []*ast.FunctionParameter{ast.Param("x", ast.TypeInt), ast.Param("y", ast.TypeInt)}, ast.TypeInt,
			ast.Add(ast.ID("x"), ast.ID("y"))),
		ast.Call("add", ast.Int(1), ast.Str("2")),
	)
	_, err := NewWithConfig(Config{Stdout: &out}).EvaluateProgram(program, ProgramEvaluationOptions{})
	var typeErr *typechecker.TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected type error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing evaluated, got output %q", out.String())
	}
}

func TestEvaluateProgramSkipTypecheck(t *testing.T) {
	program := ast.Block(ast.Add(ast.Str("a"), ast.Int(1)), ast.Eq(ast.Int(1), ast.Str("1")))
	if _, err := New().EvaluateProgram(program, ProgramEvaluationOptions{}); err == nil {
		t.Fatalf("expected the checker to reject mixed operands")
	}
	val, err := New().EvaluateProgram(program, ProgramEvaluationOptions{SkipTypecheck: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Kind().String() != "Boolean" {
		t.Fatalf("expected Boolean result, got %s", val.Kind())
	}
}

func TestEvaluateProgramRedefinitionIsRuntimeError(t *testing.T) {
	program := ast.Block(ast.Let("x", ast.Int(10)), ast.Let("x", ast.Int(20)))
	_, err := New().EvaluateProgram(program, ProgramEvaluationOptions{})
	var typeErr *typechecker.TypeError
	if errors.As(err, &typeErr) {
		t.Fatalf("expected redefinition to pass the checker, got %v", err)
	}
	expectRuntimeError(t, err, "variable x is already defined")
}

func TestEvaluateProgramBranchLetsDoNotCollide(t *testing.T) {
	program := ast.Block(ast.If(ast.Bool(true), ast.Let("y", ast.Int(1)), ast.Let("y", ast.Int(2))))
	val, err := New().EvaluateProgram(program, ProgramEvaluationOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectInteger(t, val, 1)
}

func TestEvaluateProgramDefinitionAsOperand(t *testing.T) {
	program := ast.Block(
		ast.Let("f", ast.Def("g", nil, ast.TypeInt, ast.Int(1))),
		ast.Add(ast.ID("f"), ast.Int(1)),
	)
	val, err := New().EvaluateProgram(program, ProgramEvaluationOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectInteger(t, val, 1)
}
