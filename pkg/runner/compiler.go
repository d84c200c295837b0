package runner

import (
	"context"
	"fmt"

	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// Source is one compilation unit handed to a Compiler.
type Source struct {
	Code     string
	FileName string
	Version  snippet.Version
	Language snippet.Language
	Params   testcase.BuildParams
}

// Diagnostic is a single compiler error. Line is 1-based; Column is 0-based
// and zero when the tool does not report one.
type Diagnostic struct {
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: (Line:%d, Column:%d) %s", d.Code, d.Line, d.Column, d.Message)
}

// Result is the outcome of one compilation.
type Result struct {
	Success     bool         `json:"success"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Compiler compiles a source unit. A non-nil error means the compile could
// not be attempted (missing toolchain, I/O failure); compile errors in the
// snippet are reported through Result.
type Compiler interface {
	Compile(ctx context.Context, src Source) (Result, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, src Source) (Result, error)

// Compile calls f.
func (f CompilerFunc) Compile(ctx context.Context, src Source) (Result, error) {
	return f(ctx, src)
}
