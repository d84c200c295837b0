package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/runner"
	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

func TestBuilder_BasicOutput(t *testing.T) {
	b := NewBuilder("snipcheck", "1.0")
	b.AddResult("CS0103", "error", "name does not exist", "snippets/a.md", 15, 3)

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Version != "2.1.0" {
		t.Errorf("expected version 2.1.0, got %s", doc.Version)
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(doc.Runs))
	}
	if doc.Runs[0].Tool.Driver.Name != "snipcheck" {
		t.Errorf("expected tool snipcheck, got %s", doc.Runs[0].Tool.Driver.Name)
	}
	if len(doc.Runs[0].Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(doc.Runs[0].Results))
	}
	r := doc.Runs[0].Results[0]
	if r.RuleID != "CS0103" {
		t.Errorf("expected ruleId CS0103, got %s", r.RuleID)
	}
	if r.Locations[0].PhysicalLocation.Region.StartLine != 15 {
		t.Errorf("expected line 15, got %d", r.Locations[0].PhysicalLocation.Region.StartLine)
	}
}

func TestBuilder_EmptyRunHasResultsArray(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewBuilder("snipcheck", "").WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"results": []`) {
		t.Errorf("expected empty results array:\n%s", buf.String())
	}
}

func TestBuilder_ChainingAndRules(t *testing.T) {
	b := NewBuilder("tool", "1.0").
		AddRule("r1", "first", "").
		AddRule("r1", "duplicate", "").
		AddResult("r1", "error", "m1", "a.md", 0, 0).
		AddResult("r1", "warning", "m2", "b.md", 2, 0)

	doc := b.Document()
	if len(doc.Runs[0].Results) != 2 {
		t.Errorf("expected 2 results from chained calls, got %d", len(doc.Runs[0].Results))
	}
	if len(doc.Runs[0].Tool.Driver.Rules) != 1 {
		t.Errorf("expected rule to be registered once, got %d", len(doc.Runs[0].Tool.Driver.Rules))
	}
	if doc.Runs[0].Results[0].Locations[0].PhysicalLocation.Region != nil {
		t.Error("expected no region for line 0")
	}
}

func TestFromOutcomes(t *testing.T) {
	rec := func(stem string, known bool) testcase.Record {
		r := testcase.Record{
			Name:     stem + "-csharp-V1-compiles",
			Version:  snippet.V1,
			Language: snippet.CSharp,
			FileName: stem + "-csharp-snippets.md",
			DocsLink: "https://docs/" + stem,
		}
		if known {
			r.IsKnownIssue = true
			r.Owner = knownissue.OwnerSDK
			r.KnownIssueMessage = "sdk bug"
		}
		return r
	}
	diags := []runner.Diagnostic{
		{Code: "CS0103", Line: 4, Column: 2, Message: "missing"},
		{Code: "CS1002", Line: 5, Message: "; expected"},
	}
	outcomes := []runner.Outcome{
		{Record: rec("ok", false), Status: runner.StatusPass},
		{Record: rec("broken", false), Status: runner.StatusFail, Result: runner.Result{Diagnostics: diags}},
		{Record: rec("stale", true), Status: runner.StatusUnexpectedPass, Result: runner.Result{Success: true}},
		{Record: rec("open", true), Status: runner.StatusExpectedFail, Result: runner.Result{Diagnostics: diags[:1]}},
		{Record: rec("gone", false), Status: runner.StatusError, Err: errors.New("file does not exist")},
	}

	doc := FromOutcomes(outcomes).Document()
	results := doc.Runs[0].Results
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	type want struct{ rule, level string }
	wants := []want{
		{"CS0103", "error"},
		{"CS1002", "error"},
		{RuleUnexpectedPass, "error"},
		{"CS0103", "note"},
		{RuleSnippetError, "error"},
	}
	for i, w := range wants {
		if results[i].RuleID != w.rule || results[i].Level != w.level {
			t.Errorf("result %d = %s/%s, want %s/%s", i, results[i].RuleID, results[i].Level, w.rule, w.level)
		}
	}

	uri := results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI
	if uri != "api-reference/v1.0/includes/snippets/csharp/broken-csharp-snippets.md" {
		t.Errorf("unexpected artifact uri %s", uri)
	}
	if results[2].Properties["owner"] != "SDK" {
		t.Errorf("expected owner property on known issue, got %v", results[2].Properties)
	}
	if !strings.Contains(results[4].Message.Text, "file does not exist") {
		t.Errorf("expected error text in message, got %s", results[4].Message.Text)
	}

	ids := map[string]bool{}
	for _, r := range doc.Runs[0].Tool.Driver.Rules {
		ids[r.ID] = true
	}
	for _, id := range []string{RuleUnexpectedPass, RuleSnippetError, "CS0103", "CS1002"} {
		if !ids[id] {
			t.Errorf("expected rule %s to be registered", id)
		}
	}
}
