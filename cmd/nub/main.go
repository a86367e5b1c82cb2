package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nub/interpreter-go/pkg/ast"
	"nub/interpreter-go/pkg/driver"
	"nub/interpreter-go/pkg/interpreter"
	"nub/interpreter-go/pkg/runtime"
	"nub/interpreter-go/pkg/typechecker"
)

const cliToolVersion = "nub-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	verbose := false
	for len(args) > 0 && (args[0] == "--verbose" || args[0] == "-v") {
		verbose = true
		args = args[1:]
	}
	logger := newLogger(verbose)

	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:], logger)
	case "check":
		return runCheck(args[1:], logger)
	case "encode":
		return runEncode(args[1:])
	case "fixtures":
		return runFixtures(args[1:], logger)
	default:
		return runProgram(args, logger)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  nub [--verbose] run <program.json|program.yml>")
	fmt.Fprintln(os.Stderr, "  nub [--verbose] check <program>")
	fmt.Fprintln(os.Stderr, "  nub encode <program>")
	fmt.Fprintln(os.Stderr, "  nub [--verbose] fixtures <dir>")
	fmt.Fprintln(os.Stderr, "  nub [--verbose] fixtures --git <url> [--rev <rev>]")
	fmt.Fprintln(os.Stderr, "  nub --version")
}

func singlePath(command string, args []string) (string, bool) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "nub %s requires a program file\n", command)
		return "", false
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return "", false
	}
	return args[0], true
}

func runProgram(args []string, logger *slog.Logger) int {
	path, ok := singlePath("run", args)
	if !ok {
		return 1
	}
	program, err := driver.LoadProgram(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	interp := interpreter.NewWithConfig(interpreter.Config{Stdout: os.Stdout, Logger: logger})
	value, err := interp.EvaluateProgram(program, interpreter.ProgramEvaluationOptions{})
	if err != nil {
		reportError(path, err)
		return 1
	}
	logger.Debug("program finished", slog.String("kind", value.Kind().String()), slog.String("value", runtime.Render(value)))
	return 0
}

func runCheck(args []string, logger *slog.Logger) int {
	path, ok := singlePath("check", args)
	if !ok {
		return 1
	}
	program, err := driver.LoadProgram(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	checker := typechecker.NewWithConfig(typechecker.Config{Logger: logger})
	if _, err := checker.Check(program, ast.CollectFunctions(program)); err != nil {
		reportError(path, err)
		return 1
	}
	typ, _ := checker.TypeOf(program)
	fmt.Fprintf(os.Stdout, "%s: ok (%s)\n", path, typ)
	return 0
}

func runEncode(args []string) int {
	path, ok := singlePath("encode", args)
	if !ok {
		return 1
	}
	program, err := driver.LoadProgram(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	data, err := driver.EncodeProgram(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, string(data))
	return 0
}

func reportError(path string, err error) {
	var typeErr *typechecker.TypeError
	var rtErr *interpreter.RuntimeError
	switch {
	case errors.As(err, &typeErr):
		fmt.Fprintf(os.Stderr, "%s: type error: %s\n", path, typeErr.Message)
	case errors.As(err, &rtErr):
		fmt.Fprintf(os.Stderr, "%s: runtime error: %s\n", path, rtErr.Message)
	default:
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
	}
}

func runFixtures(args []string, logger *slog.Logger) int {
	var root, gitURL, rev string
	for idx := 0; idx < len(args); idx++ {
		switch args[idx] {
		case "--git", "--rev":
			if idx+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[idx])
				return 1
			}
			if args[idx] == "--git" {
				gitURL = args[idx+1]
			} else {
				rev = args[idx+1]
			}
			idx++
		default:
			if root != "" {
				fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", args[idx])
				return 1
			}
			root = args[idx]
		}
	}
	if gitURL != "" {
		home, err := resolveNubHome()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		checkout, err := driver.GitSource{URL: gitURL, Rev: rev}.Checkout(filepath.Join(home, "fixtures"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "fetch fixtures: %v\n", err)
			return 1
		}
		logger.Debug("fixtures checked out", slog.String("url", gitURL), slog.String("dir", checkout))
		if root == "" {
			root = checkout
		} else {
			root = filepath.Join(checkout, root)
		}
	} else if rev != "" {
		fmt.Fprintln(os.Stderr, "--rev requires --git")
		return 1
	}
	if root == "" {
		fmt.Fprintln(os.Stderr, "nub fixtures requires a directory or --git url")
		return 1
	}

	dirs, err := driver.DiscoverFixtures(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	passed, failed, skipped := 0, 0, 0
	for _, dir := range dirs {
		name := dir
		if rel, err := filepath.Rel(root, dir); err == nil {
			name = filepath.ToSlash(rel)
		}
		fixture, err := driver.LoadFixture(dir)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", name, err)
			continue
		}
		outcome, err := interpreter.RunFixtureWithLogger(fixture, logger)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", name, err)
		case outcome.Skipped:
			skipped++
			fmt.Fprintf(os.Stdout, "SKIP %s\n", name)
		default:
			passed++
			fmt.Fprintf(os.Stdout, "PASS %s\n", name)
		}
	}
	fmt.Fprintf(os.Stdout, "%d passed, %d failed, %d skipped\n", passed, failed, skipped)
	if failed > 0 {
		return 1
	}
	return 0
}

// resolveNubHome returns $NUB_HOME, or ~/.nub when it is unset.
func resolveNubHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("NUB_HOME")); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(userHome, ".nub"), nil
}
