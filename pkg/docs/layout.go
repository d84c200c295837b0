// Package docs reads the API documentation repository: it finds the snippet
// files each documentation page references and builds links back to the
// published page.
package docs

import (
	"path"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// DocsHost is the site documentation pages are published to.
const DocsHost = "https://docs.microsoft.com/en-us/graph/api/"

// PagesDir returns the directory, relative to the docs repository root, that
// holds one page per documented API operation.
func PagesDir(v snippet.Version) string {
	return path.Join("api-reference", v.Path(), "api")
}

// SnippetsDir returns the directory, relative to the docs repository root,
// holding the generated snippet files for a language.
func SnippetsDir(v snippet.Version, l snippet.Language) string {
	return path.Join("api-reference", v.Path(), "includes", "snippets", l.String())
}

// SnippetPath returns the path of one snippet file relative to the docs root.
func SnippetPath(v snippet.Version, l snippet.Language, fileName string) string {
	return path.Join(SnippetsDir(v, l), fileName)
}

// PageURL builds the published URL of a documentation page with the tab for
// lang selected, e.g.
// https://docs.microsoft.com/en-us/graph/api/user-get?view=graph-rest-1.0&tabs=csharp
func PageURL(page string, v snippet.Version, l snippet.Language) string {
	return DocsHost + page + "?view=graph-rest-" + v.DocsSegment() + "&tabs=" + l.String()
}
