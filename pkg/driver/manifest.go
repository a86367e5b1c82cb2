package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"nub/interpreter-go/pkg/ast"
)

const (
	// ManifestName is the file that marks a fixture directory.
	ManifestName = "manifest.yml"
	// DefaultEntry is the program file used when a manifest names none.
	DefaultEntry = "program.json"
)

// Manifest represents the parsed contents of a fixture's manifest.yml.
type Manifest struct {
	Path        string      `yaml:"-"`
	Description string      `yaml:"description"`
	Entry       string      `yaml:"entry"`
	Skip        bool        `yaml:"skip"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation lists what a fixture run must produce. Error lists are matched
// as substrings of the reported messages.
type Expectation struct {
	Result     *ExpectedValue `yaml:"result"`
	Stdout     []string       `yaml:"stdout"`
	TypeErrors []string       `yaml:"typeErrors"`
	Errors     []string       `yaml:"errors"`
}

// ExpectedValue is the final value a fixture should evaluate to.
type ExpectedValue struct {
	Kind  string `yaml:"kind"`
	Value any    `yaml:"value"`
}

// Fixture is a loaded fixture directory.
type Fixture struct {
	Dir      string
	Manifest *Manifest
	Program  *ast.BlockExpression
}

// Name returns the fixture directory's base name.
func (f *Fixture) Name() string {
	return filepath.Base(f.Dir)
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses manifest.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var manifest Manifest
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}
	manifest.Path = absPath
	if manifest.Entry == "" {
		manifest.Entry = DefaultEntry
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if filepath.IsAbs(m.Entry) || strings.HasPrefix(filepath.Clean(m.Entry), "..") {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry %q must be relative to the fixture directory", m.Entry))
	}
	if result := m.Expect.Result; result != nil {
		switch result.Kind {
		case "Int", "String", "Boolean":
			if result.Value == nil {
				errs.Issues = append(errs.Issues, fmt.Sprintf("expect.result of kind %s requires a value", result.Kind))
			}
		case "":
			errs.Issues = append(errs.Issues, "expect.result.kind must be provided")
		default:
			errs.Issues = append(errs.Issues, fmt.Sprintf("expect.result.kind %q is not one of Int, String, Boolean", result.Kind))
		}
	}
	if len(m.Expect.TypeErrors) > 0 && (m.Expect.Result != nil || len(m.Expect.Stdout) > 0 || len(m.Expect.Errors) > 0) {
		errs.Issues = append(errs.Issues, "expect.typeErrors cannot be combined with runtime expectations")
	}
	if len(m.Expect.Errors) > 0 && m.Expect.Result != nil {
		errs.Issues = append(errs.Issues, "expect.errors cannot be combined with expect.result")
	}
	for i, msg := range m.Expect.TypeErrors {
		if msg == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("expect.typeErrors[%d] must be a non-empty string", i))
		}
	}
	for i, msg := range m.Expect.Errors {
		if msg == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("expect.errors[%d] must be a non-empty string", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// LoadFixture reads the manifest in dir and decodes its entry program.
func LoadFixture(dir string) (*Fixture, error) {
	manifest, err := LoadManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	fixture := &Fixture{Dir: filepath.Dir(manifest.Path), Manifest: manifest}
	if manifest.Skip {
		return fixture, nil
	}
	program, err := LoadProgram(filepath.Join(fixture.Dir, manifest.Entry))
	if err != nil {
		return nil, err
	}
	fixture.Program = program
	return fixture, nil
}

// DiscoverFixtures returns every directory under root holding a manifest.yml,
// in lexical order.
func DiscoverFixtures(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("driver: fixtures root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("driver: fixtures root %s is not a directory", root)
	}
	var dirs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if d.Type().IsRegular() && d.Name() == ManifestName {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("driver: walk %s: %w", root, err)
	}
	sort.Strings(dirs)
	return dirs, nil
}
