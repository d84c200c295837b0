package runner

import (
	"maps"
	"slices"

	"github.com/dkoosis/snipcheck/pkg/knownissue"
)

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"by_status"`
	// FailuresByCode counts the diagnostics of every failed compile per
	// compiler code, known issues included.
	FailuresByCode map[string]int `json:"failures_by_code,omitempty"`
	// FailuresByOwner counts known issues that still fail to compile per owner.
	FailuresByOwner map[knownissue.Owner]int `json:"failures_by_owner,omitempty"`
}

// Summarize aggregates outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Total:           len(outcomes),
		ByStatus:        make(map[Status]int),
		FailuresByCode:  make(map[string]int),
		FailuresByOwner: make(map[knownissue.Owner]int),
	}
	for _, o := range outcomes {
		s.ByStatus[o.Status]++
		if o.Status != StatusFail && o.Status != StatusExpectedFail {
			continue
		}
		for _, d := range o.Result.Diagnostics {
			s.FailuresByCode[d.Code]++
		}
		if o.Status == StatusExpectedFail && o.Record.Owner != "" {
			s.FailuresByOwner[o.Record.Owner]++
		}
	}
	return s
}

// Failed reports whether any outcome fails the run.
func (s Summary) Failed() bool {
	return s.Failures() > 0
}

// Failures counts the outcomes that fail the run.
func (s Summary) Failures() int {
	var n int
	for status, count := range s.ByStatus {
		if status.Failed() {
			n += count
		}
	}
	return n
}

// Codes returns the diagnostic codes seen in failures, most frequent first.
func (s Summary) Codes() []string {
	codes := slices.Sorted(maps.Keys(s.FailuresByCode))
	slices.SortStableFunc(codes, func(a, b string) int {
		return s.FailuresByCode[b] - s.FailuresByCode[a]
	})
	return codes
}
