package docs

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

func page(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func TestResolve_MapsSnippetsToPages(t *testing.T) {
	fsys := fstest.MapFS{
		"api-reference/v1.0/api/user-get.md": page(`# Get user
# [C#](#tab/csharp)
[!INCLUDE [sample-code](../includes/snippets/csharp/get-user-csharp-snippets.md)]
# [Java](#tab/java)
[!INCLUDE [sample-code](../includes/snippets/java/get-user-java-snippets.md)]
`),
		"api-reference/v1.0/api/user-list.md": page(`
[!INCLUDE [sample-code](../includes/snippets/csharp/list-users-csharp-snippets.md)]
[!INCLUDE [sample-code](../includes/snippets/csharp/list-users-select-csharp-snippets.md)]
`),
		"api-reference/v1.0/api/overview.md": page("no snippets here"),
	}

	got, err := NewResolver(fsys).Resolve(snippet.V1, snippet.CSharp)
	require.NoError(t, err)

	want := LinkMap{
		"get-user-csharp-snippets.md":          "https://docs.microsoft.com/en-us/graph/api/user-get?view=graph-rest-1.0&tabs=csharp",
		"list-users-csharp-snippets.md":        "https://docs.microsoft.com/en-us/graph/api/user-list?view=graph-rest-1.0&tabs=csharp",
		"list-users-select-csharp-snippets.md": "https://docs.microsoft.com/en-us/graph/api/user-list?view=graph-rest-1.0&tabs=csharp",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_BetaUsesBetaSegment(t *testing.T) {
	fsys := fstest.MapFS{
		"api-reference/beta/api/group-get.md": page("../includes/snippets/java/get-group-java-snippets.md"),
	}

	got, err := NewResolver(fsys).Resolve(snippet.Beta, snippet.Java)
	require.NoError(t, err)
	assert.Equal(t,
		"https://docs.microsoft.com/en-us/graph/api/group-get?view=graph-rest-beta&tabs=java",
		got["get-group-java-snippets.md"])
}

func TestResolve_LaterPageWins(t *testing.T) {
	ref := "../includes/snippets/csharp/shared-csharp-snippets.md"
	fsys := fstest.MapFS{
		"api-reference/v1.0/api/b-page.md": page(ref),
		"api-reference/v1.0/api/a-page.md": page(ref),
	}

	got, err := NewResolver(fsys).Resolve(snippet.V1, snippet.CSharp)
	require.NoError(t, err)
	assert.Equal(t, PageURL("b-page", snippet.V1, snippet.CSharp), got["shared-csharp-snippets.md"])
}

func TestResolve_IgnoresOtherLanguagesAndSubdirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"api-reference/v1.0/api/user-get.md":        page("../includes/snippets/java/get-user-java-snippets.md"),
		"api-reference/v1.0/api/nested/deep-get.md": page("../includes/snippets/csharp/deep-csharp-snippets.md"),
	}

	got, err := NewResolver(fsys).Resolve(snippet.V1, snippet.CSharp)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_IncludeExclude(t *testing.T) {
	ref := func(stem string) *fstest.MapFile {
		return page("../includes/snippets/csharp/" + stem + "-csharp-snippets.md")
	}
	fsys := fstest.MapFS{
		"api-reference/v1.0/api/user-get.md":    ref("user-get"),
		"api-reference/v1.0/api/user-delete.md": ref("user-delete"),
		"api-reference/v1.0/api/group-get.md":   ref("group-get"),
		"api-reference/v1.0/api/notes.txt":      ref("notes"),
	}

	r := &Resolver{FS: fsys, Include: []string{"*.md"}, Exclude: []string{"*-delete.md"}}
	got, err := r.Resolve(snippet.V1, snippet.CSharp)
	require.NoError(t, err)
	assert.Equal(t, []string{"group-get-csharp-snippets.md", "user-get-csharp-snippets.md"}, got.Names())
}

func TestResolve_MissingDirectory(t *testing.T) {
	_, err := NewResolver(fstest.MapFS{}).Resolve(snippet.V1, snippet.CSharp)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResolve_RejectsInvalidInputs(t *testing.T) {
	r := NewResolver(fstest.MapFS{})

	_, err := r.Resolve(snippet.Version(42), snippet.CSharp)
	assert.ErrorIs(t, err, snippet.ErrUnknownVersion)

	_, err = r.Resolve(snippet.V1, snippet.Language(42))
	assert.ErrorIs(t, err, snippet.ErrUnknownLanguage)
}

func TestLayout(t *testing.T) {
	assert.Equal(t, "api-reference/beta/api", PagesDir(snippet.Beta))
	assert.Equal(t, "api-reference/v1.0/includes/snippets/java", SnippetsDir(snippet.V1, snippet.Java))
	assert.Equal(t,
		"api-reference/v1.0/includes/snippets/csharp/user-get-csharp-snippets.md",
		SnippetPath(snippet.V1, snippet.CSharp, "user-get-csharp-snippets.md"))
}
