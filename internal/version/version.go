// Package version provides version information for the netgen CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Info
//   - Concurrency Model: Immutable after link time, safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: Zero-cost variables
//
// Usage:
//
//	go build -ldflags "-X go.eggybyte.com/netgen/internal/version.Version=v0.2.0" ./cmd/netgen
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the CLI version, overridden at link time for releases.
var Version = "v0.1.0-dev"

// Commit is the git commit hash, overridden at link time for releases.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// TargetFramework is the .NET Framework version generated projects target.
const TargetFramework = "v4.8"

// Info is the machine-readable form of the version output.
type Info struct {
	Version         string `json:"version"`
	Commit          string `json:"commit"`
	BuildTime       string `json:"build_time"`
	TargetFramework string `json:"target_framework"`
	GoVersion       string `json:"go_version"`
	Platform        string `json:"platform"`
}

// Get returns the version information. A "go install" build without link
// flags reports its module version instead of the development default.
func Get() Info {
	v := Version
	if v == "v0.1.0-dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return Info{
		Version:         v,
		Commit:          Commit,
		BuildTime:       BuildTime,
		TargetFramework: TargetFramework,
		GoVersion:       runtime.Version(),
		Platform:        runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetVersionString returns the one-line version string:
// netgen version v0.1.0 (commit 4a9b2c1, built 2025-10-31T12:10:00Z)
func GetVersionString() string {
	i := Get()
	return fmt.Sprintf("netgen version %s (commit %s, built %s)", i.Version, i.Commit, i.BuildTime)
}

// GetFullVersionInfo returns multi-line version information.
func GetFullVersionInfo() string {
	i := Get()
	return fmt.Sprintf(`netgen version %s (commit %s, built %s)
target .NET Framework %s
go version %s (%s)`,
		i.Version, i.Commit, i.BuildTime,
		i.TargetFramework,
		i.GoVersion, i.Platform)
}
