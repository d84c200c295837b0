package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/snipcheck/pkg/pattern"
)

// maxDetailLines bounds the detail lines printed per item.
const maxDetailLines = 3

// Text renders patterns as terse plain text for CI logs and agents.
// No ANSI codes, patterns in input order, passing items collapsed.
type Text struct{}

// NewText creates a plain text renderer.
func NewText() *Text {
	return &Text{}
}

// Render formats all patterns as plain text.
func (x *Text) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			x.renderSummary(&sb, v)
		case *pattern.Leaderboard:
			x.renderLeaderboard(&sb, v)
		case *pattern.TestTable:
			x.renderTable(&sb, v)
		}
	}
	return sb.String()
}

func (x *Text) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	for _, m := range s.Metrics {
		sb.WriteString("  " + m.Label + ": " + m.Value + "\n")
	}
}

func (x *Text) renderLeaderboard(sb *strings.Builder, l *pattern.Leaderboard) {
	if len(l.Items) == 0 {
		return
	}
	sb.WriteString("\n" + l.Label + "\n")
	for _, item := range l.Items {
		sb.WriteString(fmt.Sprintf("  %s %s\n", item.Metric, item.Name))
	}
}

func (x *Text) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	sb.WriteString("\n" + t.Label + "\n")

	allPass := true
	for _, item := range t.Results {
		if item.Status != pattern.StatusPass {
			allPass = false
			break
		}
	}
	if allPass {
		return
	}

	for _, item := range t.Results {
		dur := ""
		if item.Duration != "" {
			dur = " (" + item.Duration + ")"
		}
		sb.WriteString(fmt.Sprintf("  %s %s%s\n", statusWord(item.Status), item.Name, dur))

		if item.Details != "" {
			lines := strings.Split(item.Details, "\n")
			n := min(len(lines), maxDetailLines)
			for _, line := range lines[:n] {
				sb.WriteString("    " + line + "\n")
			}
			if len(lines) > maxDetailLines {
				sb.WriteString(fmt.Sprintf("    ... (%d more lines)\n", len(lines)-maxDetailLines))
			}
		}
		if item.Link != "" && item.Status == pattern.StatusFail {
			sb.WriteString("    " + item.Link + "\n")
		}
	}
}

func statusWord(status string) string {
	switch status {
	case pattern.StatusPass:
		return "PASS"
	case pattern.StatusFail:
		return "FAIL"
	case pattern.StatusWarn:
		return "WARN"
	case pattern.StatusKnown:
		return "KNOWN"
	default:
		return "-"
	}
}
