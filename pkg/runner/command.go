package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// DefaultCompileTimeout bounds one external build.
const DefaultCompileTimeout = 2 * time.Minute

// ExecFunc runs name with args in dir and returns what it wrote to stdout
// and stderr. A non-zero exit is reported as an *exec.ExitError.
type ExecFunc func(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)

// RunCommand is the ExecFunc backed by os/exec.
func RunCommand(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = 5 * time.Second
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// toolOutput is what an external build left behind.
type toolOutput struct {
	Stdout   string
	Stderr   string
	Exited   bool // false when the build was killed on timeout
	ExitZero bool
}

// toolchain describes one external build tool.
type toolchain struct {
	language snippet.Language
	command  string
	args     []string
	// project lays out the build inputs for src under dir.
	project func(dir string, src Source) error
	parse   func(out toolOutput) Result
}

// CommandCompiler compiles snippets by writing a throwaway project and
// running the language's build tool on it.
type CommandCompiler struct {
	tool toolchain
	// TempDir is where project directories are created; empty means the
	// system temp dir.
	TempDir string
	Timeout time.Duration
	Exec    ExecFunc
	Logger  *slog.Logger
}

// NewDotnetCompiler returns a compiler that builds C# snippets with
// "dotnet build".
func NewDotnetCompiler() *CommandCompiler {
	return &CommandCompiler{tool: dotnetToolchain()}
}

// NewGradleCompiler returns a compiler that builds Java snippets with
// "gradle build".
func NewGradleCompiler() *CommandCompiler {
	return &CommandCompiler{tool: gradleToolchain()}
}

// Language returns the language the compiler accepts.
func (c *CommandCompiler) Language() snippet.Language { return c.tool.language }

// Compile implements Compiler.
func (c *CommandCompiler) Compile(ctx context.Context, src Source) (Result, error) {
	if src.Language != c.tool.language {
		return Result{}, fmt.Errorf("%s compiler cannot build %s", c.tool.command, src.Language)
	}

	dir, err := os.MkdirTemp(c.TempDir, "snipcheck-"+c.tool.language.String()+"-*")
	if err != nil {
		return Result{}, fmt.Errorf("creating build directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			c.logger().Warn("removing build directory", "dir", dir, "error", err)
		}
	}()

	if err := c.tool.project(dir, src); err != nil {
		return Result{}, fmt.Errorf("writing %s project: %w", c.tool.command, err)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCompileTimeout
	}
	buildCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := c.Exec
	if run == nil {
		run = RunCommand
	}
	c.logger().Debug("running build", "tool", c.tool.command, "dir", dir, "file", src.FileName)
	stdout, stderr, err := run(buildCtx, dir, c.tool.command, c.tool.args...)

	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	timedOut := errors.Is(buildCtx.Err(), context.DeadlineExceeded)
	var exitErr *exec.ExitError
	if err != nil && !timedOut && !errors.As(err, &exitErr) {
		return Result{}, fmt.Errorf("running %s: %w", c.tool.command, err)
	}

	return c.tool.parse(toolOutput{
		Stdout:   string(stdout),
		Stderr:   string(stderr),
		Exited:   !timedOut,
		ExitZero: err == nil,
	}), nil
}

func (c *CommandCompiler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// tail returns at most the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
