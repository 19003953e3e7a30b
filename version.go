package chartinfo

import "runtime"

// Version is the semantic version of the chartinfo library.
const Version = "0.3.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.3.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit is populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/meguminbot/chartinfo.gitCommit=$(git rev-parse HEAD)" ./cmd/chartinfo
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}
}

// String formats the version for a --version flag.
func (v VersionInfo) String() string {
	return "chartinfo " + v.Version + " (" + v.GitCommit + ", " + v.GoVersion + ")"
}

var gitCommit = "unknown"
