package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/runtime"
	"nub/interpreter-go/pkg/scope"
)

// DefaultMaxCallDepth bounds nested function activations when Config leaves
// MaxCallDepth unset.
const DefaultMaxCallDepth = 10000

// Config customises an Interpreter.
type Config struct {
	// Stdout receives println and print output. Nil means os.Stdout.
	Stdout io.Writer
	// Logger receives scope and call tracing at debug level. Nil discards it.
	Logger *slog.Logger
	// MaxCallDepth limits nested calls; exceeding it is a RuntimeError.
	MaxCallDepth int
}

// Interpreter evaluates Nub programs by walking the tree.
type Interpreter struct {
	scopes       *scope.Table[runtime.Value]
	global       scope.Handle
	current      scope.Handle
	functions    ast.FunctionTable
	stdout       io.Writer
	logger       *slog.Logger
	callDepth    int
	maxCallDepth int
}

var _ ast.Visitor[runtime.Value] = (*Interpreter)(nil)

// New returns an interpreter writing to os.Stdout.
func New() *Interpreter {
	return NewWithConfig(Config{})
}

// NewWithConfig returns an interpreter using the provided configuration.
func NewWithConfig(cfg Config) *Interpreter {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	maxDepth := cfg.MaxCallDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}
	scopes := scope.NewTable[runtime.Value]()
	return &Interpreter{
		scopes:       scopes,
		global:       scopes.Root(),
		current:      scopes.Root(),
		functions:    make(ast.FunctionTable),
		stdout:       stdout,
		logger:       logger,
		maxCallDepth: maxDepth,
	}
}

// Evaluate runs program against functions and returns the value of its last
// top-level expression. Each call starts from an empty global scope.
func (i *Interpreter) Evaluate(program *ast.BlockExpression, functions ast.FunctionTable) (runtime.Value, error) {
	if program == nil {
		return nil, fmt.Errorf("interpreter: program is nil")
	}
	if functions == nil {
		functions = make(ast.FunctionTable)
	}
	i.functions = functions
	i.scopes.Reset()
	i.global = i.scopes.Root()
	i.current = i.global
	i.callDepth = 0
	return i.evaluateExpression(program)
}

// GlobalNames returns the names bound in the global scope, sorted.
func (i *Interpreter) GlobalNames() []string {
	return i.scopes.Keys(i.global)
}

// Global returns the global binding for name after an evaluation.
func (i *Interpreter) Global(name string) (runtime.Value, bool) {
	return i.scopes.Find(i.global, name)
}

func (i *Interpreter) evaluateExpression(expr ast.Expression) (runtime.Value, error) {
	return ast.Accept[runtime.Value](i, expr)
}

// enterScope pushes a child of parent and makes it current. The returned func
// pops it and restores the previous scope.
func (i *Interpreter) enterScope(parent scope.Handle) func() {
	prev := i.current
	i.current = i.scopes.Push(parent)
	i.logger.Debug("push stack frame", slog.Int("stack-size", i.scopes.Depth()))
	return func() {
		if err := i.scopes.Pop(i.current); err != nil {
			i.logger.Error("pop stack frame", slog.Any("error", err))
		}
		i.current = prev
		i.logger.Debug("pop stack frame", slog.Int("stack-size", i.scopes.Depth()))
	}
}
