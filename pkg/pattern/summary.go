package pattern

// SummaryKind identifies what a summary describes so renderers can dispatch
// without inspecting labels.
type SummaryKind string

const (
	SummaryKindRun    SummaryKind = "run"
	SummaryKindCases  SummaryKind = "cases"
	SummaryKindIssues SummaryKind = "issues"
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string
	Kind    SummaryKind
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Passed", "Known issues"
	Value string // formatted value
	Kind  string // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
