// Package knownissue holds the registry of snippets that are expected to fail
// compilation for a tracked reason.
//
// Issues are stored as rules: one row per cause listing the snippet stems it
// affects and the languages and versions it applies to. Build expands the rules
// for one (language, version) pair into concrete test identity keys.
package knownissue

import (
	"fmt"
	"slices"
)

// Owner categorizes a known issue so failures can be routed to the team that
// has to fix them.
type Owner string

const (
	OwnerSDK                   Owner = "SDK"
	OwnerHTTP                  Owner = "HTTP"
	OwnerHTTPCamelCase         Owner = "HTTPCamelCase"
	OwnerHTTPMethodWrong       Owner = "HTTPMethodWrong"
	OwnerMetadata              Owner = "Metadata"
	OwnerMetadataPreprocessing Owner = "MetadataPreprocessing"
	OwnerSnippetGeneration     Owner = "SnippetGeneration"
	OwnerTestGeneration        Owner = "TestGeneration"
)

// Owners lists every recognized owner.
func Owners() []Owner {
	return []Owner{
		OwnerSDK, OwnerHTTP, OwnerHTTPCamelCase, OwnerHTTPMethodWrong,
		OwnerMetadata, OwnerMetadataPreprocessing, OwnerSnippetGeneration, OwnerTestGeneration,
	}
}

// ParseOwner validates an owner name.
func ParseOwner(s string) (Owner, error) {
	o := Owner(s)
	if slices.Contains(Owners(), o) {
		return o, nil
	}
	return "", fmt.Errorf("unknown known-issue owner %q", s)
}

// KnownIssue explains why a snippet is expected to fail.
type KnownIssue struct {
	Owner   Owner  `json:"owner"`
	Message string `json:"message"`
}
