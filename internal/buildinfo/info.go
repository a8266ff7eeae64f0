// Package buildinfo exposes the version identifiers stamped into the
// binary at build time.
package buildinfo

// Set via -ldflags "-X github.com/teller-dev/teller/internal/buildinfo.Version=..." etc.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
