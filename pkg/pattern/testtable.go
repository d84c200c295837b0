package pattern

// Item statuses understood by the renderers.
const (
	StatusPass     = "pass"
	StatusFail     = "fail"
	StatusWarn     = "warn"
	StatusExpected = "expected"
	StatusKnown    = "known"
)

// TestTable represents test cases with status and timing.
type TestTable struct {
	Label   string
	Results []TestTableItem
}

// TestTableItem is a single test case.
type TestTableItem struct {
	Name     string // test name
	Status   string // one of the Status constants
	Duration string // formatted duration
	Link     string // documentation page
	Details  string // failure report or known-issue text
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
