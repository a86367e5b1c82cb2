package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const addProgram = `[
  {
    "type": "DefFunction",
    "name": "add",
    "params": [{"name": "x", "paramType": "Int"}, {"name": "y", "paramType": "Int"}],
    "returnType": "Int",
    "body": [{"type": "BinaryExpression", "operator": "+", "left": {"type": "Identifier", "name": "x"}, "right": {"type": "Identifier", "name": "y"}}]
  },
  {"type": "PrintlnExpression", "target": {"type": "FunctionCall", "name": "add", "arguments": [{"type": "IntegerLiteral", "value": 1}, {"type": "IntegerLiteral", "value": 2}]}}
]`

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}
	_ = rOut.Close()
	_ = rErr.Close()
	return code, string(outBytes), string(errBytes)
}

func TestVersion(t *testing.T) {
	code, out, _ := captureCLI(t, []string{"--version"})
	if code != 0 || strings.TrimSpace(out) != cliToolVersion {
		t.Fatalf("unexpected version output (code %d): %q", code, out)
	}
}

func TestNoArgumentsPrintsUsage(t *testing.T) {
	code, _, errOut := captureCLI(t, nil)
	if code != 1 || !strings.Contains(errOut, "usage:") {
		t.Fatalf("expected usage on stderr (code %d): %q", code, errOut)
	}
}

func TestRunProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.json")
	writeTestFile(t, path, addProgram)
	code, out, errOut := captureCLI(t, []string{"run", path})
	if code != 0 {
		t.Fatalf("run failed (code %d): %s", code, errOut)
	}
	if out != "3\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
}

func TestRunWithoutSubcommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yml")
	writeTestFile(t, path, "- {type: PrintlnExpression, target: {type: StringLiteral, value: hi}}\n")
	code, out, errOut := captureCLI(t, []string{path})
	if code != 0 || out != "hi\n" {
		t.Fatalf("unexpected result (code %d) stdout %q stderr %q", code, out, errOut)
	}
}

func TestRunReportsTypeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	writeTestFile(t, path, `[{"type": "Identifier", "name": "ghost"}]`)
	code, out, errOut := captureCLI(t, []string{"run", path})
	if code != 1 {
		t.Fatalf("expected failure, got code %d", code)
	}
	if out != "" || !strings.Contains(errOut, "type error: ghost is not defined") {
		t.Fatalf("unexpected output stdout %q stderr %q", out, errOut)
	}
}

func TestRunReportsRuntimeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "div.json")
	writeTestFile(t, path, `{"type": "BinaryExpression", "operator": "/", "left": {"type": "IntegerLiteral", "value": 1}, "right": {"type": "IntegerLiteral", "value": 0}}`)
	code, _, errOut := captureCLI(t, []string{"run", path})
	if code != 1 || !strings.Contains(errOut, "runtime error: division by zero") {
		t.Fatalf("unexpected result (code %d) stderr %q", code, errOut)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.json")
	writeTestFile(t, path, addProgram)
	code, out, errOut := captureCLI(t, []string{"--verbose", "run", path})
	if code != 0 || out != "3\n" {
		t.Fatalf("unexpected result (code %d) stdout %q", code, out)
	}
	if !strings.Contains(errOut, "push stack frame") || !strings.Contains(errOut, "program finished") {
		t.Fatalf("expected debug logs on stderr, got %q", errOut)
	}
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.json")
	writeTestFile(t, path, addProgram)
	code, out, errOut := captureCLI(t, []string{"check", path})
	if code != 0 || !strings.Contains(out, "ok (Int)") {
		t.Fatalf("unexpected result (code %d) stdout %q stderr %q", code, out, errOut)
	}
}

func TestEncodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lit.yml")
	writeTestFile(t, path, "- {type: IntegerLiteral, value: 7}\n")
	code, out, errOut := captureCLI(t, []string{"encode", path})
	if code != 0 {
		t.Fatalf("encode failed (code %d): %s", code, errOut)
	}
	if !strings.Contains(out, `"type": "BlockExpression"`) || !strings.Contains(out, `"value": 7`) {
		t.Fatalf("unexpected encoded output %q", out)
	}
}

func writeFixture(t *testing.T, dir, manifest, program string) {
	t.Helper()
	writeTestFile(t, filepath.Join(dir, "manifest.yml"), manifest)
	writeTestFile(t, filepath.Join(dir, "program.json"), program)
}

func TestFixturesCommand(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "add"), "expect:\n  stdout: [\"3\"]\n  result: {kind: Int, value: 3}\n", addProgram)
	writeFixture(t, filepath.Join(root, "wrong"), "expect:\n  result: {kind: Int, value: 4}\n", `[{"type": "IntegerLiteral", "value": 5}]`)
	writeTestFile(t, filepath.Join(root, "later", "manifest.yml"), "skip: true\n")

	code, out, _ := captureCLI(t, []string{"fixtures", root})
	if code != 1 {
		t.Fatalf("expected failing fixture to fail the run, got code %d", code)
	}
	for _, want := range []string{"PASS add", "SKIP later", "FAIL wrong", "1 passed, 1 failed, 1 skipped"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFixturesFromGit(t *testing.T) {
	origin := t.TempDir()
	repo, err := git.PlainInit(origin, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	writeFixture(t, filepath.Join(origin, "corpus", "add"), "expect:\n  stdout: [\"3\"]\n", addProgram)
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	for _, rel := range []string{"corpus/add/manifest.yml", "corpus/add/program.json"} {
		if _, err := worktree.Add(rel); err != nil {
			t.Fatalf("stage %s: %v", rel, err)
		}
	}
	hash, err := worktree.Commit("fixtures", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Nub CLI",
			Email: "nub@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	t.Setenv("NUB_HOME", t.TempDir())

	code, out, errOut := captureCLI(t, []string{"fixtures", "--git", origin, "--rev", hash.String(), "corpus"})
	if code != 0 {
		t.Fatalf("fixtures from git failed (code %d): %s\n%s", code, out, errOut)
	}
	if !strings.Contains(out, "PASS add") || !strings.Contains(out, "1 passed, 0 failed, 0 skipped") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestFixturesRevWithoutGit(t *testing.T) {
	code, _, errOut := captureCLI(t, []string{"fixtures", "--rev", "main"})
	if code != 1 || !strings.Contains(errOut, "--rev requires --git") {
		t.Fatalf("unexpected result (code %d) stderr %q", code, errOut)
	}
}

func TestResolveNubHome(t *testing.T) {
	target := filepath.Join(t.TempDir(), "cache")
	t.Setenv("NUB_HOME", target)
	got, err := resolveNubHome()
	if err != nil || got != target {
		t.Fatalf("resolveNubHome = %q, %v; want %q", got, err, target)
	}
}
