package typechecker

import (
	"fmt"
	"io"
	"log/slog"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/scope"
)

// InferenceMap records the type computed for each visited expression.
type InferenceMap map[ast.Expression]ast.Type

// Config customises a Checker.
type Config struct {
	// Logger receives scope tracing at debug level. Nil discards it.
	Logger *slog.Logger
}

// Checker walks a Nub program once before evaluation and rejects it on the
// first ill-typed expression.
type Checker struct {
	infer     InferenceMap
	scopes    *scope.Table[ast.Type]
	current   scope.Handle
	functions ast.FunctionTable
	logger    *slog.Logger
}

var _ ast.Visitor[ast.Type] = (*Checker)(nil)

// New returns a checker instance.
func New() *Checker {
	return NewWithConfig(Config{})
}

// NewWithConfig returns a checker using the provided configuration.
func NewWithConfig(cfg Config) *Checker {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	scopes := scope.NewTable[ast.Type]()
	return &Checker{
		infer:     make(InferenceMap),
		scopes:    scopes,
		current:   scopes.Root(),
		functions: make(ast.FunctionTable),
		logger:    logger,
	}
}

// Check type checks program with a fresh checker.
func Check(program *ast.BlockExpression, functions ast.FunctionTable) (*ast.BlockExpression, error) {
	return New().Check(program, functions)
}

// Check type checks program against functions and returns it unchanged when it
// is well typed. Each call starts from an empty root scope.
func (c *Checker) Check(program *ast.BlockExpression, functions ast.FunctionTable) (*ast.BlockExpression, error) {
	if program == nil {
		return nil, fmt.Errorf("typechecker: program is nil")
	}
	if functions == nil {
		functions = make(ast.FunctionTable)
	}
	c.functions = functions
	c.infer = make(InferenceMap)
	c.scopes.Reset()
	c.current = c.scopes.Root()
	c.logger.Debug("check program",
		slog.Int("expressions", len(program.Expressions)),
		slog.Int("functions", len(functions)))
	if _, err := c.checkExpression(program); err != nil {
		return nil, err
	}
	return program, nil
}

// TypeOf returns the type inferred for expr by the most recent Check.
func (c *Checker) TypeOf(expr ast.Expression) (ast.Type, bool) {
	typ, ok := c.infer[expr]
	return typ, ok
}

func (c *Checker) checkExpression(expr ast.Expression) (ast.Type, error) {
	typ, err := ast.Accept[ast.Type](c, expr)
	if err != nil {
		return 0, err
	}
	c.infer[expr] = typ
	return typ, nil
}

// enterScope pushes a child of parent and makes it current. The returned func
// pops it and restores the previous scope.
func (c *Checker) enterScope(parent scope.Handle) func() {
	prev := c.current
	c.current = c.scopes.Push(parent)
	c.logger.Debug("push type scope", slog.Int("stack-size", c.scopes.Depth()))
	return func() {
		if err := c.scopes.Pop(c.current); err != nil {
			c.logger.Error("pop type scope", slog.Any("error", err))
		}
		c.current = prev
		c.logger.Debug("pop type scope", slog.Int("stack-size", c.scopes.Depth()))
	}
}
