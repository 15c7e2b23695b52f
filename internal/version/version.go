// Package appversion provides build version information injected via ldflags.
//
// All variables are set at build time:
//
//	-ldflags="-X github.com/dantte-lp/goribd/internal/version.Version=v1.0.0
//	          -X github.com/dantte-lp/goribd/internal/version.GitCommit=abc1234
//	          -X github.com/dantte-lp/goribd/internal/version.BuildDate=2026-10-15T12:00:00Z"
//
// Builds without ldflags fall back to the VCS stamp recorded by the Go
// toolchain, when there is one.
package appversion

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Version is the semantic version (e.g., "v0.1.0" or "dev").
var Version = "dev"

// GitCommit is the short git commit hash at build time.
var GitCommit = "unknown"

// BuildDate is the RFC 3339 build timestamp.
var BuildDate = "unknown"

const shortCommitLen = 7

var stampOnce sync.Once

// stamp fills unset variables from the embedded build info.
func stamp() {
	stampOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if GitCommit == "unknown" && s.Value != "" {
					GitCommit = s.Value[:min(shortCommitLen, len(s.Value))]
				}
			case "vcs.time":
				if BuildDate == "unknown" && s.Value != "" {
					BuildDate = s.Value
				}
			}
		}
	})
}

// Full returns a human-readable multi-line version string.
func Full(binary string) string {
	stamp()
	return fmt.Sprintf("%s %s\n  commit:  %s\n  built:   %s\n  go:      %s",
		binary, Version, GitCommit, BuildDate, runtime.Version())
}

// Short returns the version with the commit, e.g. "v0.1.0 (abc1234)".
// It is reported by the Status procedure.
func Short() string {
	stamp()
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
