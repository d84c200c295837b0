package sarif

import (
	"fmt"

	"github.com/dkoosis/snipcheck/internal/version"
	"github.com/dkoosis/snipcheck/pkg/docs"
	"github.com/dkoosis/snipcheck/pkg/runner"
)

// Rule ids for outcomes that carry no compiler diagnostic.
const (
	RuleUnexpectedPass = "unexpected-pass"
	RuleSnippetError   = "snippet-error"
	RuleNoDiagnostics  = "no-diagnostics"
)

// FromOutcomes builds a SARIF document with one result per compiler
// diagnostic of a failed snippet, plus one result per unexpected pass or
// snippet error. Passing snippets produce no results; known issues that
// still fail are reported at note level.
func FromOutcomes(outcomes []runner.Outcome) *Builder {
	b := NewBuilder("snipcheck", version.Version)
	b.AddRule(RuleUnexpectedPass, "A snippet with a known issue compiles; the known issue is stale.", "")
	b.AddRule(RuleSnippetError, "The snippet could not be compiled.", "")

	for _, o := range outcomes {
		rec := o.Record
		file := docs.SnippetPath(rec.Version, rec.Language, rec.FileName)
		props := map[string]string{"test": rec.Name}
		if rec.DocsLink != "" {
			props["docsLink"] = rec.DocsLink
		}
		if rec.IsKnownIssue {
			props["owner"] = string(rec.Owner)
			props["knownIssue"] = rec.KnownIssueMessage
		}

		switch o.Status {
		case runner.StatusPass:
			continue
		case runner.StatusUnexpectedPass:
			b.AddResultWithProperties(RuleUnexpectedPass, "error",
				fmt.Sprintf("%s compiles but is registered as a known issue: %s", rec.Name, rec.KnownIssueMessage),
				file, props)
		case runner.StatusError:
			b.AddResultWithProperties(RuleSnippetError, "error",
				fmt.Sprintf("%s: %s", rec.Name, errorText(o)), file, props)
		case runner.StatusFail, runner.StatusExpectedFail:
			level := "error"
			if o.Status == runner.StatusExpectedFail {
				level = "note"
			}
			if len(o.Result.Diagnostics) == 0 {
				b.AddRule(RuleNoDiagnostics, "The compiler failed without diagnostics.", "")
				b.AddResultWithProperties(RuleNoDiagnostics, level, rec.Name+": no diagnostics from the compiler", file, props)
				continue
			}
			for _, d := range o.Result.Diagnostics {
				b.AddRule(d.Code, "", "")
				b.AddResultWithProperties(d.Code, level, fmt.Sprintf("%s: %s", rec.Name, d), file, props)
			}
		}
	}
	return b
}

func errorText(o runner.Outcome) string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Message
}
