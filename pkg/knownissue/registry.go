package knownissue

import (
	"maps"
	"slices"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// Registry maps test identity keys to known issues for one language and
// version. It is read-only once built.
type Registry struct {
	lang    snippet.Language
	version snippet.Version
	entries map[string]KnownIssue
}

// Build expands tables for lang and version. Language specific entries take
// precedence over shared entries with the same key. A language without its
// own tier only receives shared entries.
func Build(t Tables, lang snippet.Language, version snippet.Version) Registry {
	entries := make(map[string]KnownIssue)
	for _, r := range t.Language[lang] {
		r.expand(lang, version, entries)
	}

	shared := make(map[string]KnownIssue)
	for _, r := range t.Shared {
		r.expand(lang, version, shared)
	}
	for key, issue := range shared {
		if _, ok := entries[key]; !ok {
			entries[key] = issue
		}
	}
	return Registry{lang: lang, version: version, entries: entries}
}

// Lookup returns the known issue registered under key.
func (r Registry) Lookup(key string) (KnownIssue, bool) {
	issue, ok := r.entries[key]
	return issue, ok
}

// Len returns the number of registered keys.
func (r Registry) Len() int { return len(r.entries) }

// Language returns the language the registry was built for.
func (r Registry) Language() snippet.Language { return r.lang }

// Version returns the docs version the registry was built for.
func (r Registry) Version() snippet.Version { return r.version }

// Keys returns all registered keys in lexical order.
func (r Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Unmatched returns the registered keys that are not in used, sorted. These
// entries no longer correspond to any discovered snippet and can be pruned.
func (r Registry) Unmatched(used []string) []string {
	seen := make(map[string]struct{}, len(used))
	for _, k := range used {
		seen[k] = struct{}{}
	}
	var stale []string
	for _, k := range r.Keys() {
		if _, ok := seen[k]; !ok {
			stale = append(stale, k)
		}
	}
	return stale
}
