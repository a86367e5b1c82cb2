package typechecker

import (
	"fmt"
	"strings"

	"nub/interpreter-go/pkg/ast"
)

// TypeError reports the first ill-typed expression found by the checker.
type TypeError struct {
	Message string
	Node    ast.Node
}

func (e *TypeError) Error() string {
	return "typechecker: " + e.Message
}

func newTypeError(node ast.Node, format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...), Node: node}
}

func typeList(types []ast.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
