package testcase

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dkoosis/snipcheck/pkg/docs"
	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// ErrDuplicateName is returned when two snippets produce the same test name.
var ErrDuplicateName = errors.New("duplicate test case name")

// LinkResolver finds the snippet files referenced by the documentation.
// *docs.Resolver implements it.
type LinkResolver interface {
	Resolve(version snippet.Version, lang snippet.Language) (docs.LinkMap, error)
}

// Options selects what one generation run produces.
type Options struct {
	Version  snippet.Version
	Language snippet.Language
	// KnownFailuresRequested selects the known-issue pipeline. When false
	// only snippets without a known issue are produced, when true only
	// snippets with one.
	KnownFailuresRequested bool
	Params                 BuildParams
}

// Partition holds every record of a run split by known-issue status.
type Partition struct {
	Expected []Record `json:"expected"`
	Known    []Record `json:"known"`
}

// All returns both groups ordered by file name.
func (p Partition) All() []Record {
	all := make([]Record, 0, len(p.Expected)+len(p.Known))
	all = append(all, p.Expected...)
	all = append(all, p.Known...)
	sortByFileName(all)
	return all
}

// Generator joins documentation links with the known-issue registry.
type Generator struct {
	Links  LinkResolver
	Tables knownissue.Tables
	Logger *slog.Logger
}

// New creates a generator.
func New(links LinkResolver, tables knownissue.Tables) *Generator {
	return &Generator{Links: links, Tables: tables}
}

// Include reports whether a record belongs to the pipeline selected by
// knownFailuresRequested. Every record belongs to exactly one.
func Include(r Record, knownFailuresRequested bool) bool {
	return r.IsKnownIssue == knownFailuresRequested
}

// Generate returns the records of the pipeline selected by
// opts.KnownFailuresRequested, ordered by snippet file name.
func (g *Generator) Generate(opts Options) ([]Record, error) {
	all, _, err := g.records(opts)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(all))
	for _, r := range all {
		if Include(r, opts.KnownFailuresRequested) {
			out = append(out, r)
		}
	}
	g.logger().Debug("generated test cases",
		"version", opts.Version, "language", opts.Language,
		"known_failures", opts.KnownFailuresRequested,
		"selected", len(out), "total", len(all))
	return out, nil
}

// Partition returns both pipelines from a single pass. opts.KnownFailuresRequested
// is ignored.
func (g *Generator) Partition(opts Options) (Partition, error) {
	all, _, err := g.records(opts)
	if err != nil {
		return Partition{}, err
	}
	var p Partition
	for _, r := range all {
		if Include(r, true) {
			p.Known = append(p.Known, r)
		} else {
			p.Expected = append(p.Expected, r)
		}
	}
	return p, nil
}

// Stale returns the registry keys for opts' language and version that no
// documented snippet uses, sorted.
func (g *Generator) Stale(opts Options) ([]string, error) {
	all, reg, err := g.records(opts)
	if err != nil {
		return nil, err
	}
	used := make([]string, len(all))
	for i, r := range all {
		used[i] = r.LookupKey
	}
	return reg.Unmatched(used), nil
}

func (g *Generator) records(opts Options) ([]Record, knownissue.Registry, error) {
	if g.Links == nil {
		return nil, knownissue.Registry{}, errors.New("testcase: generator has no link resolver")
	}
	links, err := g.Links.Resolve(opts.Version, opts.Language)
	if err != nil {
		return nil, knownissue.Registry{}, fmt.Errorf("resolving documentation links: %w", err)
	}
	reg := knownissue.Build(g.Tables, opts.Language, opts.Version)

	alternate := opts.Params.UsesAlternateArtifact()
	records := make([]Record, 0, len(links))
	for _, name := range links.Names() {
		id, err := snippet.DeriveIdentity(name, opts.Version, opts.Language, alternate)
		if err != nil {
			return nil, reg, fmt.Errorf("deriving test name: %w", err)
		}
		r := Record{
			Name:      id.Name,
			LookupKey: id.LookupKey,
			Version:   opts.Version,
			Language:  opts.Language,
			DocsLink:  links[name],
			FileName:  name,
			Params:    opts.Params.Clone(),
		}
		if issue, ok := reg.Lookup(id.LookupKey); ok {
			r.IsKnownIssue = true
			r.KnownIssueMessage = issue.Message
			r.Owner = issue.Owner
		}
		records = append(records, r)
	}
	if err := checkUnique(records); err != nil {
		return nil, reg, err
	}

	g.logger().Debug("reconciled snippets against known issues",
		"snippets", len(records), "registry_entries", reg.Len())
	return records, reg, nil
}

func sortByFileName(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.FileName, b.FileName)
	})
}

func checkUnique(records []Record) error {
	seen := make(map[string]string, len(records))
	for _, r := range records {
		if prev, ok := seen[r.Name]; ok {
			return fmt.Errorf("%w: %s (from %s and %s)", ErrDuplicateName, r.Name, prev, r.FileName)
		}
		seen[r.Name] = r.FileName
	}
	return nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}
