// Package snippet models documentation snippet files: the target languages and
// docs versions they belong to, and the test identity derived from a file name.
package snippet

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownLanguage is returned when a language token has no known mapping.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a programming language snippets are generated for.
type Language int

const (
	CSharp Language = iota
	JavaScript
	Java
	ObjC
)

// Languages lists every supported language in declaration order.
func Languages() []Language {
	return []Language{CSharp, JavaScript, Java, ObjC}
}

var languageTokens = map[Language]string{
	CSharp:     "csharp",
	JavaScript: "javascript",
	Java:       "java",
	ObjC:       "objc",
}

var languageAliases = map[string]Language{
	"csharp":      CSharp,
	"c#":          CSharp,
	"java":        Java,
	"javascript":  JavaScript,
	"js":          JavaScript,
	"objc":        ObjC,
	"objectivec":  ObjC,
	"objective-c": ObjC,
}

// fold is shared by the Parse functions; cases.Caser is not safe for
// concurrent use, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseLanguage resolves a user supplied language name (case-insensitive,
// e.g. "C#", "csharp", "JS").
func ParseLanguage(s string) (Language, error) {
	if l, ok := languageAliases[fold(s)]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// String returns the lower-case token used in snippet paths, file names and
// test identities (e.g. "csharp").
func (l Language) String() string {
	if s, ok := languageTokens[l]; ok {
		return s
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// Valid reports whether l is one of the declared languages.
func (l Language) Valid() bool {
	_, ok := languageTokens[l]
	return ok
}

// SupportsAlternateArtifact reports whether runs against a locally built SDK
// artifact get their own test names for this language.
func (l Language) SupportsAlternateArtifact() bool {
	return l == CSharp
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	if _, ok := languageTokens[l]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
