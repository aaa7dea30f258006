// Package buildinfo carries identifiers stamped in at link time:
//
//	go build -ldflags "-X salesgraph/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String describes the build in one line.
func String() string {
	return fmt.Sprintf("salesgraph %s (commit %s, built %s)", Version, Commit, Date)
}
