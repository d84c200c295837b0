package mapper

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/pattern"
	"github.com/dkoosis/snipcheck/pkg/runner"
	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

func known(name string) testcase.Record {
	return testcase.Record{
		Name:              name,
		IsKnownIssue:      true,
		Owner:             knownissue.OwnerMetadata,
		KnownIssueMessage: "metadata is wrong",
	}
}

func tables(patterns []pattern.Pattern) []*pattern.TestTable {
	var out []*pattern.TestTable
	for _, p := range patterns {
		if t, ok := p.(*pattern.TestTable); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestFromOutcomes_AllPass(t *testing.T) {
	outcomes := []runner.Outcome{
		{Record: testcase.Record{Name: "b-csharp-V1-compiles"}, Status: runner.StatusPass, Duration: 1500 * time.Millisecond},
		{Record: testcase.Record{Name: "a-csharp-V1-compiles"}, Status: runner.StatusPass, Duration: 500 * time.Millisecond},
	}

	patterns := FromOutcomes(outcomes)
	require.Len(t, patterns, 2)

	summary, ok := patterns[0].(*pattern.Summary)
	require.True(t, ok)
	assert.Equal(t, pattern.SummaryKindRun, summary.Kind)
	assert.Equal(t, "PASS 2 snippets (2.0s)", summary.Label)

	passing := patterns[1].(*pattern.TestTable)
	assert.Equal(t, "Passing snippets (2)", passing.Label)
	assert.Equal(t, "a-csharp-V1-compiles", passing.Results[0].Name, "sorted by name")
	assert.Empty(t, passing.Results[0].Details)
}

func TestFromOutcomes_FailuresFirst(t *testing.T) {
	diags := []runner.Diagnostic{{Code: "CS0103", Line: 3, Column: 1, Message: "missing"}}
	outcomes := []runner.Outcome{
		{Record: testcase.Record{Name: "ok"}, Status: runner.StatusPass},
		{Record: testcase.Record{Name: "broken"}, Status: runner.StatusFail, Result: runner.Result{Diagnostics: diags}},
		{Record: known("stale"), Status: runner.StatusUnexpectedPass, Result: runner.Result{Success: true}},
		{Record: known("still-broken"), Status: runner.StatusExpectedFail, Result: runner.Result{Diagnostics: diags}},
		{Record: testcase.Record{Name: "missing"}, Status: runner.StatusError, Err: errors.New("file not found")},
	}

	patterns := FromOutcomes(outcomes)
	summary := patterns[0].(*pattern.Summary)
	assert.Equal(t, "FAIL 3/5 snippets (0s)", summary.Label)

	var labels []string
	for _, tt := range tables(patterns) {
		labels = append(labels, tt.Label)
	}
	assert.Equal(t, []string{
		"ERROR (1)",
		"UNEXPECTED PASS (1)",
		"FAIL (1)",
		"Known issues still failing (1)",
		"Passing snippets (1)",
	}, labels)

	tt := tables(patterns)
	assert.Equal(t, "file not found", tt[0].Results[0].Details)
	assert.Contains(t, tt[1].Results[0].Details, "known issue (Metadata): metadata is wrong")
	assert.Equal(t, "CS0103: (Line:3, Column:1) missing", tt[2].Results[0].Details)

	var boards []*pattern.Leaderboard
	for _, p := range patterns {
		if lb, ok := p.(*pattern.Leaderboard); ok {
			boards = append(boards, lb)
		}
	}
	require.Len(t, boards, 2)
	assert.Equal(t, "CS0103", boards[0].Items[0].Name)
	assert.Equal(t, "2", boards[0].Items[0].Metric)
	assert.Equal(t, "Metadata", boards[1].Items[0].Name)
}

func TestFromRecords(t *testing.T) {
	records := []testcase.Record{
		{Name: "a-java-Beta-compiles", DocsLink: "https://docs/a"},
		known("b-java-Beta-compiles"),
	}

	patterns := FromRecords(snippet.Beta, snippet.Java, false, records)
	require.Len(t, patterns, 2)

	summary := patterns[0].(*pattern.Summary)
	assert.Equal(t, "CASES java Beta: 2 expected to compile", summary.Label)

	table := patterns[1].(*pattern.TestTable)
	assert.Equal(t, pattern.StatusExpected, table.Results[0].Status)
	assert.Equal(t, "https://docs/a", table.Results[0].Link)
	assert.Equal(t, pattern.StatusKnown, table.Results[1].Status)
	assert.Equal(t, "Metadata: metadata is wrong", table.Results[1].Details)
}

func TestFromRecords_Empty(t *testing.T) {
	patterns := FromRecords(snippet.V1, snippet.CSharp, true, nil)
	require.Len(t, patterns, 1)
	assert.True(t, strings.HasSuffix(patterns[0].(*pattern.Summary).Label, "0 known issues"))
}

func TestFromRegistry(t *testing.T) {
	tbl := knownissue.Tables{}.With(
		knownissue.Rule{Owner: knownissue.OwnerHTTP, Message: "wrong request", Snippets: []string{"a", "b"}},
		knownissue.Rule{Owner: knownissue.OwnerSDK, Message: "sdk", Languages: []snippet.Language{snippet.CSharp}, Snippets: []string{"c"}},
	)
	reg := knownissue.Build(tbl, snippet.CSharp, snippet.V1)

	all := FromRegistry(reg)
	summary := all[0].(*pattern.Summary)
	assert.Equal(t, "ISSUES csharp V1: 3 known issues", summary.Label)
	assert.Equal(t, []pattern.SummaryItem{
		{Label: "SDK", Value: "1", Kind: "info"},
		{Label: "HTTP", Value: "2", Kind: "info"},
	}, summary.Metrics)

	stale := FromStale(reg, []string{"a-csharp-V1-compiles"})
	assert.Equal(t, "ISSUES csharp V1: 1 of 3 known issues match no snippet", stale[0].(*pattern.Summary).Label)
	table := stale[1].(*pattern.TestTable)
	assert.Equal(t, pattern.StatusWarn, table.Results[0].Status)
	assert.Equal(t, "HTTP: wrong request", table.Results[0].Details)

	assert.Len(t, FromStale(reg, nil), 1, "no table without stale keys")
}
