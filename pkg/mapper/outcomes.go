package mapper

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
	"github.com/dkoosis/snipcheck/pkg/pattern"
	"github.com/dkoosis/snipcheck/pkg/runner"
)

// topN bounds the leaderboards.
const topN = 10

// FromOutcomes converts runner outcomes into visualization patterns.
// Returns: Summary + TestTable per failing status + leaderboards of failure
// causes + collapsed tables for expected failures and passes.
func FromOutcomes(outcomes []runner.Outcome) []pattern.Pattern {
	sum := runner.Summarize(outcomes)
	var total time.Duration
	for _, o := range outcomes {
		total += o.Duration
	}

	patterns := []pattern.Pattern{runSummary(sum, total)}

	groups := make(map[runner.Status][]runner.Outcome)
	for _, o := range outcomes {
		groups[o.Status] = append(groups[o.Status], o)
	}
	for _, g := range groups {
		slices.SortFunc(g, func(a, b runner.Outcome) int {
			return cmp.Compare(a.Record.Name, b.Record.Name)
		})
	}

	// Errors first: they hide whether the snippet compiles at all.
	for _, status := range []runner.Status{runner.StatusError, runner.StatusUnexpectedPass, runner.StatusFail} {
		if g := groups[status]; len(g) > 0 {
			patterns = append(patterns, outcomeTable(statusLabels[status], g, pattern.StatusFail))
		}
	}

	if lb := codeLeaderboard(sum); lb != nil {
		patterns = append(patterns, lb)
	}
	if lb := ownerLeaderboard(sum); lb != nil {
		patterns = append(patterns, lb)
	}

	if g := groups[runner.StatusExpectedFail]; len(g) > 0 {
		patterns = append(patterns, outcomeTable(statusLabels[runner.StatusExpectedFail], g, pattern.StatusKnown))
	}
	if g := groups[runner.StatusPass]; len(g) > 0 {
		patterns = append(patterns, outcomeTable(statusLabels[runner.StatusPass], g, pattern.StatusPass))
	}
	return patterns
}

var statusLabels = map[runner.Status]string{
	runner.StatusError:          "ERROR",
	runner.StatusUnexpectedPass: "UNEXPECTED PASS",
	runner.StatusFail:           "FAIL",
	runner.StatusExpectedFail:   "Known issues still failing",
	runner.StatusPass:           "Passing snippets",
}

func runSummary(s runner.Summary, d time.Duration) *pattern.Summary {
	var metrics []pattern.SummaryItem
	count := func(status runner.Status) int { return s.ByStatus[status] }

	if n := count(runner.StatusError); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Errors", Value: fmt.Sprintf("%d", n), Kind: "error"})
	}
	if n := count(runner.StatusUnexpectedPass); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Unexpected passes", Value: fmt.Sprintf("%d", n), Kind: "error"})
	}
	if n := count(runner.StatusFail); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Failed", Value: fmt.Sprintf("%d/%d snippets", n, s.Total), Kind: "error"})
	}
	if n := count(runner.StatusExpectedFail); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{Label: "Known issues", Value: fmt.Sprintf("%d", n), Kind: "warning"})
	}
	if n := count(runner.StatusPass); n > 0 {
		kind := "success"
		if s.Failed() {
			kind = "info"
		}
		metrics = append(metrics, pattern.SummaryItem{Label: "Passed", Value: fmt.Sprintf("%d/%d snippets", n, s.Total), Kind: kind})
	}

	label := fmt.Sprintf("PASS %d snippets (%s)", s.Total, formatDuration(d))
	if s.Failed() {
		label = fmt.Sprintf("FAIL %d/%d snippets (%s)", s.Failures(), s.Total, formatDuration(d))
	}
	return &pattern.Summary{Label: label, Kind: pattern.SummaryKindRun, Metrics: metrics}
}

func outcomeTable(label string, outcomes []runner.Outcome, status string) *pattern.TestTable {
	items := make([]pattern.TestTableItem, 0, len(outcomes))
	for _, o := range outcomes {
		item := pattern.TestTableItem{
			Name:     o.Record.Name,
			Status:   status,
			Duration: formatDuration(o.Duration),
			Link:     o.Record.DocsLink,
		}
		if status != pattern.StatusPass {
			item.Details = outcomeDetails(o)
		}
		items = append(items, item)
	}
	return &pattern.TestTable{
		Label:   fmt.Sprintf("%s (%d)", label, len(outcomes)),
		Results: items,
	}
}

// outcomeDetails is the short form of an outcome: diagnostics and known
// issue, without the code listing.
func outcomeDetails(o runner.Outcome) string {
	var lines []string
	if o.Err != nil {
		lines = append(lines, o.Err.Error())
	}
	for _, d := range o.Result.Diagnostics {
		lines = append(lines, d.String())
	}
	details := truncateLines(lines, 3)
	if issue, ok := o.Record.KnownIssue(); ok {
		if details != "" {
			details += "\n"
		}
		details += fmt.Sprintf("known issue (%s): %s", issue.Owner, truncateString(issue.Message, 200))
	}
	return details
}

func codeLeaderboard(s runner.Summary) *pattern.Leaderboard {
	codes := s.Codes()
	if len(codes) == 0 {
		return nil
	}
	items := make([]pattern.LeaderboardItem, 0, min(len(codes), topN))
	for i, code := range codes[:min(len(codes), topN)] {
		n := s.FailuresByCode[code]
		items = append(items, pattern.LeaderboardItem{
			Name: code, Metric: fmt.Sprintf("%d", n), Value: float64(n), Rank: i + 1,
		})
	}
	return &pattern.Leaderboard{
		Label:      "Failures by diagnostic",
		MetricName: "Diagnostics",
		Items:      items,
		TotalCount: len(codes),
		ShowRank:   true,
	}
}

func ownerLeaderboard(s runner.Summary) *pattern.Leaderboard {
	if len(s.FailuresByOwner) == 0 {
		return nil
	}
	owners := make([]knownissue.Owner, 0, len(s.FailuresByOwner))
	for o := range s.FailuresByOwner {
		owners = append(owners, o)
	}
	slices.SortFunc(owners, func(a, b knownissue.Owner) int {
		if c := cmp.Compare(s.FailuresByOwner[b], s.FailuresByOwner[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	items := make([]pattern.LeaderboardItem, 0, len(owners))
	for i, o := range owners {
		n := s.FailuresByOwner[o]
		items = append(items, pattern.LeaderboardItem{
			Name: string(o), Metric: fmt.Sprintf("%d", n), Value: float64(n), Rank: i + 1,
		})
	}
	return &pattern.Leaderboard{
		Label:      "Open known issues by owner",
		MetricName: "Known issues",
		Items:      items,
		TotalCount: len(owners),
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func truncateLines(lines []string, max int) string {
	if len(lines) <= max {
		return strings.Join(lines, "\n")
	}
	result := strings.Join(lines[:max], "\n")
	return result + fmt.Sprintf("\n... (%d more lines)", len(lines)-max)
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
