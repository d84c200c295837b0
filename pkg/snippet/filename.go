package snippet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedFileName is returned when a snippet file name does not follow
// the {stem}-{language}-snippets.md convention.
var ErrMalformedFileName = errors.New("malformed snippet file name")

// FileSuffix terminates every snippet file name.
const FileSuffix = "-snippets.md"

// FileName is a parsed snippet file name such as
// "application-addpassword-csharp-snippets.md".
type FileName struct {
	Stem     string // "application-addpassword"
	Language Language
}

// ParseFileName parses name strictly against the expected language. A name
// for another language, without the suffix, or with an empty stem is rejected.
func ParseFileName(name string, lang Language) (FileName, error) {
	if !lang.Valid() {
		return FileName{}, fmt.Errorf("%w: %d", ErrUnknownLanguage, int(lang))
	}
	tail := "-" + lang.String() + FileSuffix
	stem, ok := strings.CutSuffix(name, tail)
	if !ok {
		return FileName{}, fmt.Errorf("%w: %q does not end with %q", ErrMalformedFileName, name, tail)
	}
	if stem == "" || strings.ContainsAny(stem, `/\`) {
		return FileName{}, fmt.Errorf("%w: %q has no usable stem", ErrMalformedFileName, name)
	}
	return FileName{Stem: stem, Language: lang}, nil
}

// String renders the file name back to its on-disk form.
func (f FileName) String() string {
	return f.Stem + "-" + f.Language.String() + FileSuffix
}
