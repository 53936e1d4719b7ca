package version

import "fmt"

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = ""
)

// Short returns the version string
func Short() string {
	return Version
}

// String returns the version with the commit, when known
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
