package typechecker

import (
	"testing"

	"nub/interpreter-go/pkg/ast"
)

func TestCheckerArithmeticRequiresIntegers(t *testing.T) {
	for _, op := range []ast.BinaryOperator{ast.OperatorAdd, ast.OperatorSubtract, ast.OperatorMultiply, ast.OperatorDivide} {
		expr := ast.Bin(op, ast.Int(1), ast.Int(2))
		checker, err := checkProgram(t, expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
		if typ, _ := checker.TypeOf(expr); typ != ast.TypeInt {
			t.Fatalf("%s: expected Int, got %v", op, typ)
		}
	}
	_, err := checkProgram(t, ast.Add(ast.Int(1), ast.Str("2")))
	expectTypeError(t, err, "incompatible type: (lhs, rhs) should be (Int, Int), but (Int, String)")
}

func TestCheckerComparisonYieldsBoolean(t *testing.T) {
	expr := ast.Lte(ast.Int(1), ast.Int(2))
	checker, err := checkProgram(t, expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ, _ := checker.TypeOf(expr); typ != ast.TypeBoolean {
		t.Fatalf("expected Boolean, got %v", typ)
	}
	_, err = checkProgram(t, ast.Gt(ast.Bool(true), ast.Int(2)))
	expectTypeError(t, err, "should be (Int, Int), but (Boolean, Int)")
}

func TestCheckerEqualityNeedsMatchingTypes(t *testing.T) {
	if _, err := checkProgram(t, ast.Eq(ast.Str("a"), ast.Str("b")), ast.Neq(ast.Bool(true), ast.Bool(false))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := checkProgram(t, ast.Eq(ast.Int(1), ast.Str("1")))
	expectTypeError(t, err, "incompatible type: String should be Int")
}

func TestCheckerLogicalOperatorsNeedBooleans(t *testing.T) {
	if _, err := checkProgram(t, ast.And(ast.Bool(true), ast.Or(ast.Bool(false), ast.Bool(true)))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := checkProgram(t, ast.And(ast.Int(1), ast.Bool(true)))
	expectTypeError(t, err, "should be (Boolean, Boolean), but (Int, Boolean)")
}

func TestCheckerRejectsUnknownOperator(t *testing.T) {
	_, err := checkProgram(t, ast.Bin(ast.BinaryOperator("%"), ast.Int(1), ast.Int(2)))
	expectTypeError(t, err, "unsupported binary operator")
}

func TestCheckerPrintTakesTargetType(t *testing.T) {
	printlnExpr := ast.Println(ast.Str("hi"))
	printExpr := ast.Print(ast.Int(3))
	checker, err := checkProgram(t, printlnExpr, printExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ, _ := checker.TypeOf(printlnExpr); typ != ast.TypeString {
		t.Fatalf("expected println to be String, got %v", typ)
	}
	if typ, _ := checker.TypeOf(printExpr); typ != ast.TypeInt {
		t.Fatalf("expected print to be Int, got %v", typ)
	}
}
