package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// noDiagnostics is reported when a failed compile produced no diagnostics.
const noDiagnostics = "No diagnostics from the compiler!"

// FailureMessage renders the report attached to a failed or unexpectedly
// passing test case: the compiled code with line numbers, the compiler
// diagnostics, the documentation page and the known issue, if any.
func FailureMessage(r testcase.Record, code string, res Result) string {
	var b strings.Builder
	writeNumbered(&b, code)

	if res.Success {
		b.WriteString("\nCompilation succeeded.")
	} else {
		writeDiagnostics(&b, res.Diagnostics)
	}

	if r.DocsLink != "" {
		fmt.Fprintf(&b, "\n\nDocs link: %s", r.DocsLink)
	}
	if issue, ok := r.KnownIssue(); ok {
		fmt.Fprintf(&b, "\nKnown issue (%s): %s", issue.Owner, issue.Message)
		if res.Success {
			fmt.Fprintf(&b, "\nThe snippet compiles; remove the known issue for %s.", r.LookupKey)
		}
	}
	return b.String()
}

// writeNumbered writes code with right-aligned line numbers.
func writeNumbered(b *strings.Builder, code string) {
	if code == "" {
		return
	}
	lines := strings.Split(normalizeNewlines(code), "\n")
	width := len(strconv.Itoa(len(lines)))

	b.WriteByte('\n')
	for i, line := range lines {
		fmt.Fprintf(b, "%*d %s\n", width, i+1, line)
	}
}

func writeDiagnostics(b *strings.Builder, diags []Diagnostic) {
	if len(diags) == 0 {
		b.WriteString(noDiagnostics)
		return
	}
	b.WriteByte('\n')
	for _, d := range diags {
		b.WriteString("\n")
		b.WriteString(d.String())
	}
}
