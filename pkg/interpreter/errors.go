package interpreter

import (
	"fmt"

	"nub/interpreter-go/pkg/ast"
)

// RuntimeError aborts evaluation at the node that failed.
type RuntimeError struct {
	Message string
	Node    ast.Node
}

func (e *RuntimeError) Error() string {
	return "runtime: " + e.Message
}

func newRuntimeError(node ast.Node, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Node: node}
}
