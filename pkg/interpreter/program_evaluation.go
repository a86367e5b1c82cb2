package interpreter

import (
	"fmt"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
	"nub/interpreter-go/pkg/typechecker"
)

// ProgramEvaluationOptions configures EvaluateProgram behaviour.
type ProgramEvaluationOptions struct {
	// SkipTypecheck bypasses the checker. Use this when the program has already
	// been checked.
	SkipTypecheck bool
}

// EvaluateProgram collects the top-level functions, type checks the program
// unless disabled, and evaluates it. A *typechecker.TypeError is returned
// unwrapped and nothing is evaluated.
func (i *Interpreter) EvaluateProgram(program *ast.BlockExpression, opts ProgramEvaluationOptions) (runtime.Value, error) {
	if program == nil {
		return nil, fmt.Errorf("interpreter: program is nil")
	}
	functions := ast.CollectFunctions(program)
	if !opts.SkipTypecheck {
		checker := typechecker.NewWithConfig(typechecker.Config{Logger: i.logger})
		if _, err := checker.Check(program, functions); err != nil {
			return nil, err
		}
	}
	return i.Evaluate(program, functions)
}
