package snippet

import "strings"

// AlternateArtifactInfix marks test names for runs against a locally supplied
// SDK build instead of the published package.
const AlternateArtifactInfix = "arbitraryDll-"

const identitySuffix = "-compiles"

// Identity names one test case.
type Identity struct {
	// Name is the externally visible test name, e.g.
	// "user-get-csharp-V1-compiles" or "user-get-csharp-arbitraryDll-V1-compiles".
	Name string
	// LookupKey is Name without the alternate artifact infix. Known issues are
	// keyed by it so both runs of a snippet share their known-issue status.
	LookupKey string
}

// Key renders the known-issue key for a snippet stem. Registry tables and
// DeriveIdentity share it so the two can never drift apart.
func Key(stem string, lang Language, version Version) string {
	return render(stem, lang, version, false)
}

func render(stem string, lang Language, version Version, alternate bool) string {
	var b strings.Builder
	b.WriteString(stem)
	b.WriteByte('-')
	b.WriteString(lang.String())
	b.WriteByte('-')
	if alternate {
		b.WriteString(AlternateArtifactInfix)
	}
	b.WriteString(version.String())
	b.WriteString(identitySuffix)
	return b.String()
}

// DeriveIdentity computes the test identity for a snippet file. The infix is
// only emitted when useAlternateArtifact is set and the language supports it.
func DeriveIdentity(fileName string, version Version, lang Language, useAlternateArtifact bool) (Identity, error) {
	f, err := ParseFileName(fileName, lang)
	if err != nil {
		return Identity{}, err
	}
	return f.Identity(version, useAlternateArtifact), nil
}

// Identity renders the identity of an already parsed file name.
func (f FileName) Identity(version Version, useAlternateArtifact bool) Identity {
	alternate := useAlternateArtifact && f.Language.SupportsAlternateArtifact()
	return Identity{
		Name:      render(f.Stem, f.Language, version, alternate),
		LookupKey: render(f.Stem, f.Language, version, false),
	}
}

// StripAlternateArtifact removes the alternate artifact infix from a test
// name. It is idempotent and leaves names without the infix untouched.
func StripAlternateArtifact(name string) string {
	return strings.Replace(name, "-"+AlternateArtifactInfix, "-", 1)
}
