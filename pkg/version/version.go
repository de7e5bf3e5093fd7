// Package version exposes build metadata injected via -ldflags:
//
//	-X github.com/modu-ai/themeport/pkg/version.Version=v0.2.0
package version

import "fmt"

// Build-time variables. The defaults identify a local build.
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
