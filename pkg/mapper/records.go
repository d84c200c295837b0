// Package mapper converts snipcheck's domain results into visualization
// patterns.
package mapper

import (
	"fmt"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/pattern"
	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// FromRecords lists generated test cases: a summary of the selection and
// one table of the records in file name order.
func FromRecords(version snippet.Version, lang snippet.Language, knownFailures bool, records []testcase.Record) []pattern.Pattern {
	var known int
	items := make([]pattern.TestTableItem, 0, len(records))
	for _, r := range records {
		item := pattern.TestTableItem{
			Name:   r.Name,
			Status: pattern.StatusExpected,
			Link:   r.DocsLink,
		}
		if issue, ok := r.KnownIssue(); ok {
			known++
			item.Status = pattern.StatusKnown
			item.Details = fmt.Sprintf("%s: %s", issue.Owner, truncateString(issue.Message, 200))
		}
		items = append(items, item)
	}

	pipeline := "expected to compile"
	if knownFailures {
		pipeline = "known issues"
	}
	summary := &pattern.Summary{
		Label: fmt.Sprintf("CASES %s %s: %d %s", lang, version, len(records), pipeline),
		Kind:  pattern.SummaryKindCases,
		Metrics: []pattern.SummaryItem{
			{Label: "Test cases", Value: fmt.Sprintf("%d", len(records)), Kind: "info"},
			{Label: "Known issues", Value: fmt.Sprintf("%d", known), Kind: "warning"},
		},
	}

	patterns := []pattern.Pattern{summary}
	if len(items) > 0 {
		patterns = append(patterns, &pattern.TestTable{
			Label:   fmt.Sprintf("%s %s test cases (%d)", lang, version, len(items)),
			Results: items,
		})
	}
	return patterns
}

// FromRegistry lists the known issues that apply to one language and
// version.
func FromRegistry(reg knownissue.Registry) []pattern.Pattern {
	keys := reg.Keys()
	label := fmt.Sprintf("ISSUES %s %s: %d known issues", reg.Language(), reg.Version(), len(keys))
	return issuePatterns(reg, keys, label, pattern.StatusKnown)
}

// FromStale lists registry keys that match no documented snippet.
func FromStale(reg knownissue.Registry, stale []string) []pattern.Pattern {
	label := fmt.Sprintf("ISSUES %s %s: %d of %d known issues match no snippet",
		reg.Language(), reg.Version(), len(stale), reg.Len())
	return issuePatterns(reg, stale, label, pattern.StatusWarn)
}

func issuePatterns(reg knownissue.Registry, keys []string, label, status string) []pattern.Pattern {
	byOwner := make(map[knownissue.Owner]int)
	items := make([]pattern.TestTableItem, 0, len(keys))
	for _, key := range keys {
		issue, _ := reg.Lookup(key)
		byOwner[issue.Owner]++
		items = append(items, pattern.TestTableItem{
			Name:    key,
			Status:  status,
			Details: fmt.Sprintf("%s: %s", issue.Owner, truncateString(issue.Message, 200)),
		})
	}

	var metrics []pattern.SummaryItem
	for _, o := range knownissue.Owners() {
		if n := byOwner[o]; n > 0 {
			metrics = append(metrics, pattern.SummaryItem{Label: string(o), Value: fmt.Sprintf("%d", n), Kind: "info"})
		}
	}

	patterns := []pattern.Pattern{&pattern.Summary{
		Label:   label,
		Kind:    pattern.SummaryKindIssues,
		Metrics: metrics,
	}}
	if len(items) > 0 {
		patterns = append(patterns, &pattern.TestTable{
			Label:   fmt.Sprintf("Known issues (%d)", len(items)),
			Results: items,
		})
	}
	return patterns
}
