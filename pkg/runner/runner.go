package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/snipcheck/pkg/docs"
	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// Retry defaults for the Gradle daemon warm-up workaround.
const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 20 * time.Second
)

// gradleDaemonStarting appears in the output of the first builds after the
// Gradle daemon spins up; those failures are transient.
const gradleDaemonStarting = "Starting a Gradle Daemon"

// ErrNoCompiler is reported for records whose language has no compiler.
var ErrNoCompiler = errors.New("no compiler configured for language")

// Runner compiles records concurrently.
type Runner struct {
	// FS is rooted at the docs repository checkout.
	FS        fs.FS
	Compilers map[snippet.Language]Compiler
	// Concurrency bounds parallel compiles. Zero means GOMAXPROCS.
	Concurrency int
	// MaxAttempts and RetryDelay govern retries of transient Java failures.
	MaxAttempts int
	RetryDelay  time.Duration
	Logger      *slog.Logger
}

// Run compiles every record and returns one outcome per record, in input
// order. Per-record problems are reported as StatusError outcomes; the
// returned error is non-nil only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, records []testcase.Record) ([]Outcome, error) {
	outcomes := make([]Outcome, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.runOne(gctx, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, fmt.Errorf("running snippets: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return outcomes, fmt.Errorf("running snippets: %w", err)
	}
	return outcomes, nil
}

func (r *Runner) runOne(ctx context.Context, rec testcase.Record) Outcome {
	start := time.Now()
	out := r.compile(ctx, rec)
	out.Record = rec
	out.Duration = time.Since(start)

	log := r.logger().With("test", rec.Name, "status", out.Status, "attempts", out.Attempts)
	if out.Err != nil {
		log.Warn("snippet not compiled", "error", out.Err)
	} else {
		log.Debug("snippet compiled", "duration", out.Duration)
	}
	return out
}

func (r *Runner) compile(ctx context.Context, rec testcase.Record) Outcome {
	fail := func(err error) Outcome {
		return Outcome{Status: StatusError, Err: err, Message: err.Error()}
	}

	compiler, ok := r.Compilers[rec.Language]
	if !ok {
		return fail(fmt.Errorf("%w: %s", ErrNoCompiler, rec.Language))
	}

	path := docs.SnippetPath(rec.Version, rec.Language, rec.FileName)
	content, err := fs.ReadFile(r.FS, path)
	if err != nil {
		return fail(fmt.Errorf("snippet file referenced in documentation: %w", err))
	}
	body, err := Extract(string(content), rec.Language)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", rec.FileName, err))
	}
	code, err := Wrap(Format(body), rec.Language, rec.Params)
	if err != nil {
		return fail(err)
	}

	src := Source{
		Code:     code,
		FileName: rec.FileName,
		Version:  rec.Version,
		Language: rec.Language,
		Params:   rec.Params,
	}

	var res Result
	attempts := 0
	for attempts < r.maxAttempts() {
		attempts++
		res, err = compiler.Compile(ctx, src)
		if err != nil {
			out := fail(fmt.Errorf("compiling %s: %w", rec.FileName, err))
			out.Code, out.Attempts = code, attempts
			return out
		}
		if res.Success || !transient(rec.Language, res) || attempts == r.maxAttempts() {
			break
		}
		r.logger().Info("gradle daemon starting, retrying", "test", rec.Name, "attempt", attempts)
		if err := sleep(ctx, r.retryDelay()); err != nil {
			out := fail(err)
			out.Code, out.Attempts = code, attempts
			return out
		}
	}

	out := Outcome{
		Status:   Evaluate(rec, res),
		Result:   res,
		Code:     code,
		Attempts: attempts,
	}
	if out.Status != StatusPass {
		out.Message = FailureMessage(rec, code, res)
	}
	return out
}

func transient(lang snippet.Language, res Result) bool {
	if lang != snippet.Java {
		return false
	}
	for _, d := range res.Diagnostics {
		if strings.Contains(d.Message, gradleDaemonStarting) {
			return true
		}
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Runner) maxAttempts() int {
	if r.MaxAttempts > 0 {
		return r.MaxAttempts
	}
	return DefaultMaxAttempts
}

// retryDelay returns the configured delay. A negative delay disables waiting.
func (r *Runner) retryDelay() time.Duration {
	if r.RetryDelay == 0 {
		return DefaultRetryDelay
	}
	return r.RetryDelay
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
