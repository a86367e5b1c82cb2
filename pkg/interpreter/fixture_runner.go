package interpreter

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/driver"
	"nub/interpreter-go/pkg/runtime"
	"nub/interpreter-go/pkg/typechecker"
)

// FixtureOutcome is what a fixture run actually produced.
type FixtureOutcome struct {
	Skipped   bool
	Value     runtime.Value
	Stdout    []string
	TypeError *typechecker.TypeError
	Err       error
}

// RunFixture replays fixture with captured output and compares the outcome to
// the manifest's expectations. The outcome is returned even on mismatch.
func RunFixture(fixture *driver.Fixture) (FixtureOutcome, error) {
	return RunFixtureWithLogger(fixture, nil)
}

// RunFixtureWithLogger is RunFixture with tracing sent to logger.
func RunFixtureWithLogger(fixture *driver.Fixture, logger *slog.Logger) (FixtureOutcome, error) {
	if fixture == nil || fixture.Manifest == nil {
		return FixtureOutcome{}, fmt.Errorf("interpreter: fixture is missing its manifest")
	}
	var outcome FixtureOutcome
	expect := fixture.Manifest.Expect
	if fixture.Manifest.Skip {
		outcome.Skipped = true
		return outcome, nil
	}
	if fixture.Program == nil {
		return outcome, fmt.Errorf("interpreter: fixture %s has no program", fixture.Name())
	}

	functions := ast.CollectFunctions(fixture.Program)
	checker := typechecker.NewWithConfig(typechecker.Config{Logger: logger})
	if _, err := checker.Check(fixture.Program, functions); err != nil {
		var typeErr *typechecker.TypeError
		if !errors.As(err, &typeErr) {
			return outcome, err
		}
		outcome.TypeError = typeErr
		if len(expect.TypeErrors) == 0 {
			return outcome, fmt.Errorf("fixture %s: unexpected type error: %s", fixture.Name(), typeErr.Message)
		}
		return outcome, matchMessages(fixture.Name(), "type error", expect.TypeErrors, typeErr.Message)
	}
	if len(expect.TypeErrors) > 0 {
		return outcome, fmt.Errorf("fixture %s: expected type errors %q, got none", fixture.Name(), expect.TypeErrors)
	}

	var stdout bytes.Buffer
	interp := NewWithConfig(Config{Stdout: &stdout, Logger: logger})
	value, err := interp.Evaluate(fixture.Program, functions)
	outcome.Value = value
	outcome.Err = err
	outcome.Stdout = splitLines(stdout.String())

	if expect.Stdout != nil && !slices.Equal(outcome.Stdout, expect.Stdout) {
		return outcome, fmt.Errorf("fixture %s: stdout mismatch: expected %q, got %q", fixture.Name(), expect.Stdout, outcome.Stdout)
	}
	if err != nil {
		if len(expect.Errors) == 0 {
			return outcome, fmt.Errorf("fixture %s: unexpected error: %w", fixture.Name(), err)
		}
		return outcome, matchMessages(fixture.Name(), "runtime error", expect.Errors, err.Error())
	}
	if len(expect.Errors) > 0 {
		return outcome, fmt.Errorf("fixture %s: expected runtime errors %q, got none", fixture.Name(), expect.Errors)
	}
	if expect.Result != nil {
		want, err := expectedValue(expect.Result)
		if err != nil {
			return outcome, fmt.Errorf("fixture %s: %w", fixture.Name(), err)
		}
		if !runtime.Equal(want, value) {
			return outcome, fmt.Errorf("fixture %s: expected result %s %q, got %s %q",
				fixture.Name(), want.Kind(), runtime.Render(want), value.Kind(), runtime.Render(value))
		}
	}
	return outcome, nil
}

func matchMessages(name, label string, expected []string, actual string) error {
	for _, fragment := range expected {
		if !strings.Contains(actual, fragment) {
			return fmt.Errorf("fixture %s: expected %s containing %q, got %q", name, label, fragment, actual)
		}
	}
	return nil
}

// splitLines breaks captured output on newlines. A trailing newline does not
// produce an empty final line.
func splitLines(out string) []string {
	if out == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func expectedValue(ev *driver.ExpectedValue) (runtime.Value, error) {
	kind, err := runtime.ParseKind(ev.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case runtime.KindInteger:
		switch v := ev.Value.(type) {
		case int:
			return runtime.IntegerValue{Val: int64(v)}, nil
		case int64:
			return runtime.IntegerValue{Val: v}, nil
		}
	case runtime.KindString:
		if v, ok := ev.Value.(string); ok {
			return runtime.StringValue{Val: v}, nil
		}
	case runtime.KindBool:
		if v, ok := ev.Value.(bool); ok {
			return runtime.BoolValue{Val: v}, nil
		}
	}
	return nil, fmt.Errorf("expected result value %v does not match kind %s", ev.Value, ev.Kind)
}
