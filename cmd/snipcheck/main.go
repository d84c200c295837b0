// snipcheck checks that the code snippets published with the Microsoft Graph
// API reference compile.
//
// Usage:
//
//	snipcheck run --docs-root ./microsoft-graph-docs --version v1.0 --language csharp
//	snipcheck run --language java --known-failures
//	snipcheck list --language csharp --format json
//	snipcheck issues --language java --version beta --stale
//	snipcheck version
//
// Subcommands:
//
//	run     compile every snippet of the selected pipeline (default)
//	list    print the test cases of the selected pipeline without compiling
//	issues  print the known issues registered for a language and version
//	version print build metadata
//
// The known-failures pipeline (--known-failures) runs only snippets with a
// registered known issue; the default pipeline runs everything else.
//
// Exit codes: 0 success, 1 failing snippets, 2 usage or configuration error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/dkoosis/snipcheck/internal/config"
	"github.com/dkoosis/snipcheck/internal/logging"
	"github.com/dkoosis/snipcheck/internal/version"
	"github.com/dkoosis/snipcheck/pkg/docs"
	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/mapper"
	"github.com/dkoosis/snipcheck/pkg/pattern"
	"github.com/dkoosis/snipcheck/pkg/render"
	"github.com/dkoosis/snipcheck/pkg/runner"
	"github.com/dkoosis/snipcheck/pkg/sarif"
	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

const usage = "Usage: snipcheck [run|list|issues|version] [flags]"

// newCompilers returns the compiler per language used by "run". Tests
// replace it to avoid shelling out to dotnet and gradle.
var newCompilers = func(logger *slog.Logger, timeout time.Duration) map[snippet.Language]runner.Compiler {
	dotnet := runner.NewDotnetCompiler()
	gradle := runner.NewGradleCompiler()
	for _, c := range []*runner.CommandCompiler{dotnet, gradle} {
		c.Logger = logger
		c.Timeout = timeout
	}
	return map[snippet.Language]runner.Compiler{
		snippet.CSharp: dotnet,
		snippet.Java:   gradle,
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the application logic and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	command := "run"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "version":
		fmt.Fprint(stdout, version.String())
		return 0
	case "run", "list", "issues":
	default:
		fmt.Fprintf(stderr, "snipcheck: unknown command %q\n%s\n", command, usage)
		return 2
	}

	flagSet := flag.NewFlagSet("snipcheck "+command, flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	opts := registerFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return 2
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintf(stderr, "snipcheck: unexpected arguments %q\n%s\n", flagSet.Args(), usage)
		return 2
	}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "known-failures":
			opts.flags.KnownFailuresSet = true
		case "concurrency":
			opts.flags.ConcurrencySet = true
		case "debug":
			opts.flags.DebugSet = true
		}
	})

	settings, err := config.ResolveConfig(opts.flags)
	if err != nil {
		fmt.Fprintf(stderr, "snipcheck: %v\n", err)
		return 2
	}
	logger := logging.New(stderr, logging.Options{Debug: settings.Debug})
	logger.Debug("settings resolved",
		"config", settings.ConfigFile,
		"docs_root", settings.DocsRoot, "docs_root_source", settings.DocsRootSource,
		"version", settings.Version, "language", settings.Language,
		"known_failures", settings.KnownFailures)

	format := resolveFormat(settings.Format, stdout)
	if format == "sarif" && command != "run" {
		fmt.Fprintf(stderr, "snipcheck %s: sarif output is only available for run\n", command)
		return 2
	}

	tables, err := loadTables(settings.Overlay)
	if err != nil {
		fmt.Fprintf(stderr, "snipcheck: %v\n", err)
		return 2
	}

	a := &app{
		settings: settings,
		tables:   tables,
		format:   format,
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
	}

	switch command {
	case "list":
		return a.list()
	case "issues":
		return a.issues(opts.stale)
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return a.check(ctx, opts.timeout, opts.verbose)
	}
}

type cliOptions struct {
	flags   config.CliFlags
	stale   bool
	verbose bool
	timeout time.Duration
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func registerFlags(flagSet *flag.FlagSet) *cliOptions {
	o := &cliOptions{}
	f := &o.flags
	flagSet.StringVar(&f.DocsRoot, "docs-root", "", "Docs repository checkout (default $SNIPCHECK_DOCS_ROOT or $BUILD_SOURCESDIRECTORY).")
	flagSet.StringVar(&f.Version, "version", "", "Docs version: v1.0 or beta.")
	flagSet.StringVar(&f.Version, "v", "", "Docs version (shorthand).")
	flagSet.StringVar(&f.Language, "language", "", "Snippet language: csharp, java, javascript, objc.")
	flagSet.StringVar(&f.Language, "l", "", "Snippet language (shorthand).")
	flagSet.BoolVar(&f.KnownFailures, "known-failures", false, "Run only snippets with a registered known issue.")
	flagSet.StringVar(&f.DLLPath, "dll-path", "", "Locally built SDK to compile against (C# DLL or Java preview jar directory).")
	flagSet.StringVar(&f.JavaCoreVersion, "java-core-version", "", "microsoft-graph-core version for Java builds.")
	flagSet.StringVar(&f.JavaLibVersion, "java-lib-version", "", "microsoft-graph version for Java builds.")
	flagSet.IntVar(&f.Concurrency, "concurrency", 0, "Parallel compiles (0 = number of CPUs).")
	flagSet.StringVar(&f.Format, "format", "", "Output format: auto, terminal, text, json, sarif.")
	flagSet.StringVar(&f.Theme, "theme", "", "Terminal theme: default, mono.")
	flagSet.StringVar(&f.Overlay, "overlay", "", "YAML file with extra known issues.")
	flagSet.Var((*stringList)(&f.Include), "include", "Glob selecting docs pages to scan (repeatable).")
	flagSet.Var((*stringList)(&f.Exclude), "exclude", "Glob excluding docs pages (repeatable).")
	flagSet.BoolVar(&f.Debug, "debug", false, "Enable debug logging.")
	flagSet.BoolVar(&o.stale, "stale", false, "issues: list only known issues that match no snippet.")
	flagSet.BoolVar(&o.verbose, "verbose", false, "run: print the full compiler message of every failing snippet.")
	flagSet.DurationVar(&o.timeout, "timeout", runner.DefaultCompileTimeout, "run: time limit for one snippet build.")
	return o
}

func loadTables(overlay string) (knownissue.Tables, error) {
	tables := knownissue.Default()
	if overlay == "" {
		return tables, nil
	}
	f, err := os.Open(overlay)
	if err != nil {
		return knownissue.Tables{}, fmt.Errorf("opening overlay: %w", err)
	}
	defer f.Close()

	rules, err := knownissue.LoadOverlay(f)
	if err != nil {
		return knownissue.Tables{}, fmt.Errorf("overlay %s: %w", overlay, err)
	}
	return tables.With(rules...), nil
}

type app struct {
	settings *config.Settings
	tables   knownissue.Tables
	format   string
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func (a *app) docsFS() fs.FS {
	return os.DirFS(a.settings.DocsRoot)
}

func (a *app) generator(fsys fs.FS) *testcase.Generator {
	resolver := docs.NewResolver(fsys)
	resolver.Include = a.settings.Include
	resolver.Exclude = a.settings.Exclude
	resolver.Logger = a.logger

	gen := testcase.New(resolver, a.tables)
	gen.Logger = a.logger
	return gen
}

// list prints the test cases of the selected pipeline.
func (a *app) list() int {
	s := a.settings
	records, err := a.generator(a.docsFS()).Generate(s.Options())
	if err != nil {
		return a.fail(err)
	}
	a.render(mapper.FromRecords(s.Version, s.Language, s.KnownFailures, records))
	return 0
}

// issues prints the registry for the selected language and version, or with
// stale only the entries no docs page references any more.
func (a *app) issues(stale bool) int {
	s := a.settings
	reg := knownissue.Build(a.tables, s.Language, s.Version)
	if !stale {
		a.render(mapper.FromRegistry(reg))
		return 0
	}

	keys, err := a.generator(a.docsFS()).Stale(s.Options())
	if err != nil {
		return a.fail(err)
	}
	for _, k := range keys {
		a.logger.Warn("known issue matches no snippet", "key", k)
	}
	a.render(mapper.FromStale(reg, keys))
	return 0
}

// check compiles the selected pipeline and reports the outcomes.
func (a *app) check(ctx context.Context, timeout time.Duration, verbose bool) int {
	s := a.settings
	fsys := a.docsFS()
	records, err := a.generator(fsys).Generate(s.Options())
	if err != nil {
		return a.fail(err)
	}
	a.logger.Info("compiling snippets", "count", len(records),
		"language", s.Language, "version", s.Version, "known_failures", s.KnownFailures)

	r := &runner.Runner{
		FS:          fsys,
		Compilers:   newCompilers(a.logger, timeout),
		Concurrency: s.Concurrency,
		Logger:      a.logger,
	}
	outcomes, err := r.Run(ctx, records)
	if err != nil {
		return a.fail(err)
	}

	if a.format == "sarif" {
		if _, err := sarif.FromOutcomes(outcomes).WriteTo(a.stdout); err != nil {
			return a.fail(fmt.Errorf("writing sarif: %w", err))
		}
	} else {
		a.render(mapper.FromOutcomes(outcomes))
	}

	if verbose {
		for _, o := range outcomes {
			if o.Status == runner.StatusPass || o.Message == "" {
				continue
			}
			fmt.Fprintf(a.stderr, "\n--- %s [%s]\n%s\n", o.Record.Name, o.Status, o.Message)
		}
	}

	if runner.Summarize(outcomes).Failed() {
		return 1
	}
	return 0
}

func (a *app) render(patterns []pattern.Pattern) {
	theme := render.ThemeByName(a.settings.Theme)
	// Honor NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	out := render.New(render.Format(a.format), theme, termWidth(a.stdout)).Render(patterns)
	fmt.Fprint(a.stdout, out)
}

func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "snipcheck: %v\n", err)
	return 2
}

// resolveFormat maps "auto" to terminal for a TTY and text otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "terminal"
	}
	return "text"
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
