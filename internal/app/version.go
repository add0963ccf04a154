package app

import "fmt"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/wordnet-vocab/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string logged at the start of every run.
func BuildVersion() string {
	return fmt.Sprintf("vocab %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
