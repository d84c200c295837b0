package knownissue

import (
	"slices"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// Rule describes one known-issue cause. Empty Languages or Versions mean the
// rule applies to all of them.
type Rule struct {
	Owner     Owner
	Message   string
	Languages []snippet.Language
	Versions  []snippet.Version
	Snippets  []string // snippet stems, e.g. "get-rows"
}

// AppliesTo reports whether the rule covers the language and version.
func (r Rule) AppliesTo(lang snippet.Language, version snippet.Version) bool {
	if len(r.Languages) > 0 && !slices.Contains(r.Languages, lang) {
		return false
	}
	return len(r.Versions) == 0 || slices.Contains(r.Versions, version)
}

// expand writes the rule's keys for lang/version into dst, overwriting earlier entries.
func (r Rule) expand(lang snippet.Language, version snippet.Version, dst map[string]KnownIssue) {
	if !r.AppliesTo(lang, version) {
		return
	}
	issue := KnownIssue{Owner: r.Owner, Message: r.Message}
	for _, stem := range r.Snippets {
		dst[snippet.Key(stem, lang, version)] = issue
	}
}

// Tables holds the rule tiers a registry is built from.
type Tables struct {
	// Language holds issues specific to one language's SDK or tooling.
	Language map[snippet.Language][]Rule
	// Shared holds issues rooted in docs, service metadata or snippet
	// generation, which recur identically in every language.
	Shared []Rule
}

// With returns a copy of t with extra rules appended. Rules naming languages
// join those language tiers; rules without languages join the shared tier.
// Appended rules win over earlier rules of the same tier.
func (t Tables) With(rules ...Rule) Tables {
	out := Tables{
		Language: make(map[snippet.Language][]Rule, len(t.Language)),
		Shared:   slices.Clone(t.Shared),
	}
	for lang, rs := range t.Language {
		out.Language[lang] = slices.Clone(rs)
	}
	for _, r := range rules {
		if len(r.Languages) == 0 {
			out.Shared = append(out.Shared, r)
			continue
		}
		for _, lang := range r.Languages {
			out.Language[lang] = append(out.Language[lang], r)
		}
	}
	return out
}
