package runner

import (
	"time"

	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// Status classifies a compiled test case.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusExpectedFail is a known issue that still fails to compile.
	StatusExpectedFail Status = "expected-fail"
	// StatusUnexpectedPass is a known issue that compiles. The registry entry
	// is stale and the run fails until it is removed.
	StatusUnexpectedPass Status = "unexpected-pass"
	// StatusError means the snippet could not be compiled at all.
	StatusError Status = "error"
)

// Statuses lists every status in report order.
func Statuses() []Status {
	return []Status{StatusPass, StatusExpectedFail, StatusFail, StatusUnexpectedPass, StatusError}
}

// Failed reports whether the status fails the run.
func (s Status) Failed() bool {
	switch s {
	case StatusFail, StatusUnexpectedPass, StatusError:
		return true
	default:
		return false
	}
}

// Outcome is the result of running one record.
type Outcome struct {
	Record   testcase.Record `json:"record"`
	Status   Status          `json:"status"`
	Result   Result          `json:"result"`
	Code     string          `json:"-"`
	Message  string          `json:"message,omitempty"`
	Attempts int             `json:"attempts"`
	Duration time.Duration   `json:"duration"`
	Err      error           `json:"-"`
}

// Evaluate classifies a compile result against the record's known-issue
// status.
func Evaluate(r testcase.Record, res Result) Status {
	switch {
	case res.Success && r.IsKnownIssue:
		return StatusUnexpectedPass
	case res.Success:
		return StatusPass
	case r.IsKnownIssue:
		return StatusExpectedFail
	default:
		return StatusFail
	}
}
