//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/snipcheck"
	binPath    = "bin/snipcheck"
)

// Default target - build the binary
var Default = Build

// Build builds the snipcheck binary with version metadata
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/snipcheck")
}

// Install installs snipcheck into GOBIN
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/snipcheck")
}

// Clean removes build artifacts
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// QA runs formatting, vet, lint and the test suite
func QA() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci, Test.All, Build)
}

// Snippets builds snipcheck and runs it for one language, e.g.
// "mage snippets csharp". Docs root and version come from the usual
// SNIPCHECK_* environment or .snipcheck.yaml.
func Snippets(language string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "run", "--language", language)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	var files []string
	for _, f := range strings.Split(out, "\n") {
		if f != "" && !strings.HasPrefix(f, "_") {
			files = append(files, f)
		}
	}
	if len(files) > 0 {
		return fmt.Errorf("files need gofmt:\n%s", strings.Join(files, "\n"))
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint when it is installed
func (Lint) Golangci() error {
	err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
	if isCommandNotFound(err) {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return err
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func ldflags() string {
	version := gitOutput("describe", "--tags", "--always", "--dirty", "--match=v*")
	if version == "" {
		version = "dev"
	}
	commit := gitOutput("rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, version, commit, date)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	return strings.Contains(err.Error(), "executable file not found")
}
