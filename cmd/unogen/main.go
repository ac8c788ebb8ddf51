// cmd/unogen/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification naming a type and its constructor, then
// generates a package-level accessor backed by one of the holder strategies
// from github.com/sghaida/uno/singleton.
//
// Key behaviors:
// - Reads spec JSON: package, type, constructor, accessor, strategy
// - Defaults the package name from sibling Go files in the output directory
// - Defaults the accessor name to Shared<Type>
// - Writes output atomically (temp file + rename) to avoid partial writes

// Spec is the full input schema consumed by the generator.
type Spec struct {
	// Package is the package clause of the generated file. When empty it is
	// inferred from sibling Go files in the output directory.
	Package string `json:"package"`

	// Type is the instance type the accessor returns a pointer to.
	Type string `json:"type"`

	// Constructor is a free function `func() *Type` in the same package.
	Constructor string `json:"constructor"`

	// Accessor is the generated function name. Defaults to Shared<Type>.
	Accessor string `json:"accessor"`

	// Strategy selects the holder: once, eager, doublechecked or locked.
	// Defaults to once.
	Strategy string `json:"strategy"`
}

// strategyHolders maps spec strategies to singleton holder constructors.
var strategyHolders = map[string]string{
	"once":          "NewOnce",
	"eager":         "NewEager",
	"doublechecked": "NewDoubleChecked",
	"locked":        "NewLocked",
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec Spec

	// HolderCtor is the singleton package constructor for the strategy.
	HolderCtor string

	// HolderVar is the unexported package-level holder variable name.
	HolderVar string
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("unogen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to <type>.uno.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: unogen -spec <type.uno.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	if strings.TrimSpace(spec.Package) == "" {
		// Best-effort: an empty result still fails validation below with a
		// message pointing at the package field.
		spec.Package = findPackageName(packageDir)
	}
	if strings.TrimSpace(spec.Accessor) == "" {
		spec.Accessor = "Shared" + spec.Type
	}
	if strings.TrimSpace(spec.Strategy) == "" {
		spec.Strategy = "once"
	}

	validateSpec(&spec)

	data := templateData{
		Spec:       spec,
		HolderCtor: strategyHolders[spec.Strategy],
		HolderVar:  holderVarName(spec.Accessor),
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	must(writeFileAtomic(generatedFilePath, []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireIdent := func(fieldName, value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			missingFields = append(missingFields, fieldName)
			return
		}
		if !token.IsIdentifier(trimmed) {
			panic(fmt.Errorf("spec field %s is not a valid Go identifier: %q", fieldName, value))
		}
	}

	requireIdent("package", spec.Package)
	requireIdent("type", spec.Type)
	requireIdent("constructor", spec.Constructor)
	requireIdent("accessor", spec.Accessor)

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	if spec.Accessor == spec.Type {
		// func Store() next to type Store would not compile.
		panic(fmt.Errorf("accessor %q collides with type name; pick another accessor", spec.Accessor))
	}

	if _, ok := strategyHolders[spec.Strategy]; !ok {
		panic(fmt.Errorf("unknown strategy %q (want one of: once, eager, doublechecked, locked)", spec.Strategy))
	}
}

// findPackageName parses sibling Go files in packageDir and returns the first
// package clause found, skipping tests and previously generated files.
func findPackageName(packageDir string) string {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return ""
	}

	fileSet := token.NewFileSet()

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		parsedFile, parseErr := parser.ParseFile(fileSet, filepath.Join(packageDir, fileName), nil, parser.PackageClauseOnly)
		if parseErr != nil || parsedFile.Name == nil {
			continue
		}
		return parsedFile.Name.Name
	}

	return ""
}

// holderVarName derives the unexported holder variable from the accessor name.
func holderVarName(accessor string) string {
	return strings.ToLower(accessor[:1]) + accessor[1:] + "Holder"
}

// genTemplate is the Go source template used to generate the accessor code.
var genTemplate = template.Must(
	template.New("unogen").Parse(`// Code generated by unogen; DO NOT EDIT.

package {{.Spec.Package}}

import (
	"github.com/sghaida/uno/singleton"
)

// {{.HolderVar}} guards the process-wide *{{.Spec.Type}} ({{.Spec.Strategy}} strategy).
var {{.HolderVar}} = singleton.{{.HolderCtor}}({{.Spec.Constructor}})

// {{.Spec.Accessor}} returns the process-wide *{{.Spec.Type}} instance.
//
// Safe for concurrent use; every caller observes the same fully-constructed
// instance.
func {{.Spec.Accessor}}() *{{.Spec.Type}} {
	return {{.HolderVar}}.Instance()
}

// {{.Spec.Accessor}}Initialized reports whether the instance has been constructed.
func {{.Spec.Accessor}}Initialized() bool {
	return {{.HolderVar}}.Initialized()
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
