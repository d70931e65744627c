// Package version exposes the swatch build stamp. Release builds set the
// variables below with -ldflags; plain `go build` leaves the dev defaults.
package version

import (
	"fmt"
	"runtime"
)

// Set at link time, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=1.2.0 \
//	  -X github.com/jmylchreest/swatch/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/swatch/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"

	// GoVersion is the toolchain that built the binary.
	GoVersion = runtime.Version()
)

// Info is the build stamp as printed by `swatch version --json`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build stamp and the running platform.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line form used by `swatch version` and `swatch --version`.
// Commit and date are only shown when both were stamped.
func String() string {
	info := GetInfo()
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("swatch version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short is the bare version, used as cobra's Version field.
func Short() string {
	return Version
}

// shortCommit trims a full hash to eight characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
