package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// LinkMap maps a snippet file name (e.g. "user-get-csharp-snippets.md") to
// the documentation page that shows it.
type LinkMap map[string]string

// Names returns the snippet file names in lexical order.
func (m LinkMap) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Resolver scans documentation pages for snippet references.
type Resolver struct {
	// FS is rooted at the docs repository checkout.
	FS fs.FS
	// Include and Exclude filter page file names with doublestar patterns.
	// Include defaults to every file.
	Include []string
	Exclude []string
	Logger  *slog.Logger
}

// NewResolver creates a resolver over fsys with default filters.
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{FS: fsys}
}

// snippetRef matches references such as
// "../includes/snippets/csharp/user-get-csharp-snippets.md".
func snippetRef(lang snippet.Language) *regexp.Regexp {
	l := regexp.QuoteMeta(lang.String())
	return regexp.MustCompile(`includes/snippets/` + l + `/([^/\s"'()\[\]<>]+)-` + l + `-snippets\.md`)
}

// Resolve reads every page for version and returns the snippet files for lang
// they reference. Pages are visited in lexical order; when two pages show the
// same snippet the later page wins. A missing or unreadable pages directory is
// an error.
func (r *Resolver) Resolve(version snippet.Version, lang snippet.Language) (LinkMap, error) {
	if !version.Valid() {
		return nil, fmt.Errorf("%w: %d", snippet.ErrUnknownVersion, int(version))
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %d", snippet.ErrUnknownLanguage, int(lang))
	}

	dir := PagesDir(version)
	entries, err := fs.ReadDir(r.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("reading documentation pages %s: %w", dir, err)
	}

	ref := snippetRef(lang)
	links := make(LinkMap)
	var pages int
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !r.selected(entry.Name()) {
			continue
		}
		content, err := fs.ReadFile(r.FS, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading documentation page %s: %w", entry.Name(), err)
		}
		pages++

		page := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		link := PageURL(page, version, lang)
		for _, m := range ref.FindAllStringSubmatch(string(content), -1) {
			links[m[1]+"-"+lang.String()+snippet.FileSuffix] = link
		}
	}

	r.logger().Debug("resolved documentation links",
		"version", version, "language", lang, "pages", pages, "snippets", len(links))
	return links, nil
}

func (r *Resolver) selected(name string) bool {
	include := r.Include
	if len(include) == 0 {
		include = []string{"*"}
	}
	return matchAny(include, name) && !matchAny(r.Exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
