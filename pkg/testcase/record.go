// Package testcase turns the snippets referenced by the documentation into
// compile test cases and decides which pipeline each of them belongs to.
package testcase

import (
	"maps"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// Version pin names understood by the Java build.
const (
	PinJavaCore = "java_core_version"
	PinJavaLib  = "java_lib_version"
)

// BuildParams carries the per-run compile parameters down to each record.
type BuildParams struct {
	// AlternateArtifactPath points at a locally built SDK to compile against
	// instead of the published package. Empty means the published package.
	AlternateArtifactPath string            `json:"alternate_artifact_path,omitempty"`
	VersionPins           map[string]string `json:"version_pins,omitempty"`
}

// Clone returns a copy that shares no map with p.
func (p BuildParams) Clone() BuildParams {
	p.VersionPins = maps.Clone(p.VersionPins)
	return p
}

// UsesAlternateArtifact reports whether an alternate SDK artifact is set.
func (p BuildParams) UsesAlternateArtifact() bool {
	return p.AlternateArtifactPath != ""
}

// Record is one test case: a snippet, its identity and what the registry
// knows about it.
type Record struct {
	Name              string           `json:"name"`
	LookupKey         string           `json:"lookup_key"`
	Version           snippet.Version  `json:"version"`
	Language          snippet.Language `json:"language"`
	IsKnownIssue      bool             `json:"is_known_issue"`
	KnownIssueMessage string           `json:"known_issue_message,omitempty"`
	Owner             knownissue.Owner `json:"owner,omitempty"`
	DocsLink          string           `json:"docs_link"`
	FileName          string           `json:"file_name"`
	Params            BuildParams      `json:"params"`
}

// Pin returns the version pin called name.
func (r Record) Pin(name string) (string, bool) {
	v, ok := r.Params.VersionPins[name]
	return v, ok
}

// KnownIssue returns the registry entry the record was matched against.
func (r Record) KnownIssue() (knownissue.KnownIssue, bool) {
	if !r.IsKnownIssue {
		return knownissue.KnownIssue{}, false
	}
	return knownissue.KnownIssue{Owner: r.Owner, Message: r.KnownIssueMessage}, true
}

func (r Record) String() string { return r.Name }
