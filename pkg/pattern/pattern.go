// Package pattern defines the semantic data types for snipcheck's output.
// Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of visualization pattern.
type PatternType string

const (
	PatternTypeSummary     PatternType = "summary"
	PatternTypeLeaderboard PatternType = "leaderboard"
	PatternTypeTestTable   PatternType = "test-table"
)

// Pattern is the interface all visualization patterns implement.
type Pattern interface {
	Type() PatternType
}
