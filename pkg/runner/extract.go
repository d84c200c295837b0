// Package runner compiles documentation snippets and classifies each result
// against the snippet's known-issue status.
package runner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// ErrNoSnippet is returned when a snippet file has no code block in the
// expected language.
var ErrNoSnippet = errors.New("snippet file is not in the expected format")

// fences maps a language to the info string its code blocks are tagged with.
var fences = map[snippet.Language]string{
	snippet.CSharp:     "csharp",
	snippet.Java:       "java",
	snippet.JavaScript: "javascript",
	snippet.ObjC:       "objc",
}

var fencePatterns = func() map[snippet.Language]*regexp.Regexp {
	m := make(map[snippet.Language]*regexp.Regexp, len(fences))
	for lang, fence := range fences {
		// (?s) lets the body span lines; the block runs to the last fence.
		m[lang] = regexp.MustCompile("(?s)```" + regexp.QuoteMeta(fence) + "(.*)```")
	}
	return m
}()

// Extract returns the code block of a snippet markdown file.
func Extract(markdown string, lang snippet.Language) (string, error) {
	re, ok := fencePatterns[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", snippet.ErrUnknownLanguage, lang)
	}
	m := re.FindStringSubmatch(markdown)
	if m == nil {
		return "", fmt.Errorf("%w: no %s code block", ErrNoSnippet, fences[lang])
	}
	return m[1], nil
}

// indent is the depth snippets sit at inside the shell templates.
const indent = "        "

var formatter = strings.NewReplacer("\t", "    ")

// Format normalizes a snippet body for insertion into a shell template. Line
// endings become "\n", every line after the first is indented to the method
// body, blank lines carry no indentation, tabs become four spaces and runs of
// blank lines collapse to one.
func Format(code string) string {
	code = normalizeNewlines(code)
	code = strings.ReplaceAll(code, "\n", "\n"+indent)
	code = replaceAll(code, "\n"+indent+"\n", "\n\n")
	code = formatter.Replace(code)
	return replaceAll(code, "\n\n\n", "\n\n")
}

// replaceAll replaces old until none is left, so overlapping runs collapse.
func replaceAll(s, old, repl string) string {
	for strings.Contains(s, old) {
		s = strings.ReplaceAll(s, old, repl)
	}
	return s
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
