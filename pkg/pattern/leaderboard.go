package pattern

// Leaderboard represents a ranked list of items by metric.
type Leaderboard struct {
	Label      string
	MetricName string // e.g., "Failures"
	Items      []LeaderboardItem
	TotalCount int // total before filtering to top N
	ShowRank   bool
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name   string // display name
	Metric string // formatted value
	Value  float64
	Rank   int
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
