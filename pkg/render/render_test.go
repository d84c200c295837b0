package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dkoosis/snipcheck/pkg/pattern"
)

func runPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label: "FAIL 1/3 snippets (2.0s)",
			Kind:  pattern.SummaryKindRun,
			Metrics: []pattern.SummaryItem{
				{Label: "Failed", Value: "1/3 snippets", Kind: "error"},
				{Label: "Passed", Value: "2/3 snippets", Kind: "info"},
			},
		},
		&pattern.TestTable{
			Label: "FAIL (1)",
			Results: []pattern.TestTableItem{{
				Name:     "user-get-csharp-V1-compiles",
				Status:   pattern.StatusFail,
				Duration: "1.2s",
				Link:     "https://docs.microsoft.com/en-us/graph/api/user-get?view=graph-rest-1.0&tabs=csharp",
				Details:  "CS0103: (Line:1, Column:0) a\nCS0103: (Line:2, Column:0) b\nCS0103: (Line:3, Column:0) c\nCS0103: (Line:4, Column:0) d",
			}},
		},
		&pattern.Leaderboard{
			Label: "Failures by diagnostic",
			Items: []pattern.LeaderboardItem{{Name: "CS0103", Metric: "4", Rank: 1}},
		},
		&pattern.TestTable{
			Label: "Passing snippets (2)",
			Results: []pattern.TestTableItem{
				{Name: "a-csharp-V1-compiles", Status: pattern.StatusPass},
				{Name: "b-csharp-V1-compiles", Status: pattern.StatusPass},
			},
		},
	}
}

func TestTerminal_Render(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(runPatterns())

	for _, want := range []string{
		"FAIL 1/3 snippets (2.0s)",
		"x Failed: 1/3 snippets",
		"x user-get-csharp-V1-compiles",
		"CS0103: (Line:4, Column:0) d",
		"https://docs.microsoft.com/en-us/graph/api/user-get",
		"+ a-csharp-V1-compiles",
		"CS0103  4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTerminal_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := NewTerminal(MonoTheme(), 40).Render([]pattern.Pattern{
		&pattern.TestTable{Results: []pattern.TestTableItem{{Name: long, Status: pattern.StatusPass}}},
	})
	if strings.Contains(out, long) {
		t.Errorf("expected long name to be truncated:\n%s", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("expected ellipsis in output:\n%s", out)
	}
}

func TestText_Render(t *testing.T) {
	out := NewText().Render(runPatterns())

	if !strings.HasPrefix(out, "SCOPE: FAIL 1/3 snippets (2.0s)\n") {
		t.Errorf("expected SCOPE line first:\n%s", out)
	}
	if !strings.Contains(out, "  FAIL user-get-csharp-V1-compiles (1.2s)\n") {
		t.Errorf("expected failing item:\n%s", out)
	}
	if !strings.Contains(out, "    ... (1 more lines)\n") {
		t.Errorf("expected detail truncation:\n%s", out)
	}
	if strings.Contains(out, "a-csharp-V1-compiles") {
		t.Errorf("expected passing items to be collapsed:\n%s", out)
	}
	if !strings.Contains(out, "Passing snippets (2)") {
		t.Errorf("expected passing table label:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI codes:\n%q", out)
	}
}

func TestText_KnownIssues(t *testing.T) {
	out := NewText().Render([]pattern.Pattern{
		&pattern.TestTable{Label: "Known issues (1)", Results: []pattern.TestTableItem{
			{Name: "a-java-V1-compiles", Status: pattern.StatusKnown, Details: "SDK: broken"},
		}},
	})
	if !strings.Contains(out, "  KNOWN a-java-V1-compiles\n    SDK: broken\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestJSON_Render(t *testing.T) {
	out := NewJSON().Render(runPatterns())

	var doc struct {
		Version  string `json:"version"`
		Patterns []struct {
			Type string `json:"type"`
		} `json:"patterns"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Version != jsonSchemaVersion {
		t.Errorf("expected version %s, got %s", jsonSchemaVersion, doc.Version)
	}
	var types []string
	for _, p := range doc.Patterns {
		types = append(types, p.Type)
	}
	want := "summary,test-table,leaderboard,test-table"
	if got := strings.Join(types, ","); got != want {
		t.Errorf("pattern types = %s, want %s", got, want)
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(FormatTerminal, MonoTheme(), 80).(*Terminal); !ok {
		t.Error("expected terminal renderer")
	}
	if _, ok := New(FormatJSON, MonoTheme(), 80).(*JSON); !ok {
		t.Error("expected JSON renderer")
	}
	if _, ok := New("bogus", MonoTheme(), 80).(*Text); !ok {
		t.Error("expected text renderer fallback")
	}
}
