package snippet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"csharp", CSharp},
		{"C#", CSharp},
		{"CSharp", CSharp},
		{" java ", Java},
		{"JS", JavaScript},
		{"javascript", JavaScript},
		{"Objective-C", ObjC},
		{"objectivec", ObjC},
		{"objc", ObjC},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage_RejectsUnknownTokens(t *testing.T) {
	for _, input := range []string{"", "go", "c", "python"} {
		_, err := ParseLanguage(input)
		assert.ErrorIs(t, err, ErrUnknownLanguage, "input %q", input)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"v1.0", V1},
		{"V1", V1},
		{"v1", V1},
		{"beta", Beta},
		{"Beta", Beta},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseVersion("v2.0")
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestVersion_Segments(t *testing.T) {
	assert.Equal(t, "V1", V1.String())
	assert.Equal(t, "v1.0", V1.Path())
	assert.Equal(t, "1.0", V1.DocsSegment())
	assert.Equal(t, "Beta", Beta.String())
	assert.Equal(t, "beta", Beta.Path())
	assert.Equal(t, "beta", Beta.DocsSegment())
	assert.False(t, Version(7).Valid())
}

func TestLanguage_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Language{"lang": Java})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lang":"java"}`, string(data))

	var back map[string]Language
	require.NoError(t, json.Unmarshal([]byte(`{"lang":"C#"}`), &back))
	assert.Equal(t, CSharp, back["lang"])

	_, err = Language(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestParseFileName(t *testing.T) {
	f, err := ParseFileName("application-addpassword-csharp-snippets.md", CSharp)
	require.NoError(t, err)
	assert.Equal(t, "application-addpassword", f.Stem)
	assert.Equal(t, CSharp, f.Language)
	assert.Equal(t, "application-addpassword-csharp-snippets.md", f.String())
}

func TestParseFileName_FailsLoudlyOnMalformedNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lang  Language
	}{
		{"missing suffix", "user-get-csharp.md", CSharp},
		{"other language", "user-get-java-snippets.md", CSharp},
		{"empty stem", "-csharp-snippets.md", CSharp},
		{"no language", "user-get-snippets.md", Java},
		{"path separator", "nested/user-get-java-snippets.md", Java},
		{"empty", "", Java},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFileName(tt.input, tt.lang)
			assert.ErrorIs(t, err, ErrMalformedFileName)
		})
	}
}

func TestDeriveIdentity(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		version   Version
		lang      Language
		alternate bool
		wantName  string
		wantKey   string
	}{
		{
			name:     "plain v1",
			file:     "user-get-csharp-snippets.md",
			version:  V1,
			lang:     CSharp,
			wantName: "user-get-csharp-V1-compiles",
			wantKey:  "user-get-csharp-V1-compiles",
		},
		{
			name:      "alternate artifact keeps lookup key",
			file:      "user-get-csharp-snippets.md",
			version:   V1,
			lang:      CSharp,
			alternate: true,
			wantName:  "user-get-csharp-arbitraryDll-V1-compiles",
			wantKey:   "user-get-csharp-V1-compiles",
		},
		{
			name:      "java ignores alternate artifact",
			file:      "get-rows-java-snippets.md",
			version:   Beta,
			lang:      Java,
			alternate: true,
			wantName:  "get-rows-java-Beta-compiles",
			wantKey:   "get-rows-java-Beta-compiles",
		},
		{
			name:     "stem containing language token",
			file:     "java-csharp-snippets.md",
			version:  Beta,
			lang:     CSharp,
			wantName: "java-csharp-Beta-compiles",
			wantKey:  "java-csharp-Beta-compiles",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := DeriveIdentity(tt.file, tt.version, tt.lang, tt.alternate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, id.Name)
			assert.Equal(t, tt.wantKey, id.LookupKey)
		})
	}
}

func TestDeriveIdentity_IsDeterministic(t *testing.T) {
	a, err := DeriveIdentity("create-team-post-csharp-snippets.md", Beta, CSharp, true)
	require.NoError(t, err)
	b, err := DeriveIdentity("create-team-post-csharp-snippets.md", Beta, CSharp, true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeriveIdentity_LookupKeyIgnoresArtifactVariant(t *testing.T) {
	files := []string{
		"user-get-csharp-snippets.md",
		"get-count-user-only-csharp-snippets.md",
		"create-term-from--csharp-snippets.md",
	}
	for _, file := range files {
		for _, v := range Versions() {
			plain, err := DeriveIdentity(file, v, CSharp, false)
			require.NoError(t, err)
			alt, err := DeriveIdentity(file, v, CSharp, true)
			require.NoError(t, err)

			assert.Equal(t, plain.LookupKey, alt.LookupKey, file)
			assert.NotEqual(t, plain.Name, alt.Name, file)
			assert.Equal(t, alt.LookupKey, StripAlternateArtifact(alt.Name), file)
			assert.Equal(t, plain.Name, StripAlternateArtifact(plain.Name), "stripping must be a no-op without the infix")
			assert.Equal(t, alt.LookupKey, StripAlternateArtifact(StripAlternateArtifact(alt.Name)), "stripping must be idempotent")
		}
	}
}

func TestDeriveIdentity_RejectsMalformedName(t *testing.T) {
	_, err := DeriveIdentity("user-get-csharp-snippet.md", V1, CSharp, false)
	assert.ErrorIs(t, err, ErrMalformedFileName)
}

func TestKey_MatchesDerivedLookupKey(t *testing.T) {
	id, err := DeriveIdentity("range-clear-java-snippets.md", Beta, Java, false)
	require.NoError(t, err)
	assert.Equal(t, id.LookupKey, Key("range-clear", Java, Beta))
}
