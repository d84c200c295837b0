// Package version holds build metadata stamped in by the magefile.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the version line printed by "snipcheck version".
func String() string {
	return fmt.Sprintf("snipcheck version %s\nCommit: %s\nBuilt: %s\n", Version, CommitHash, BuildDate)
}
